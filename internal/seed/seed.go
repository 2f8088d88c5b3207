// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"forkful/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumRestaurants int
	ShouldClean    bool
}

var categoryNames = []string{
	"Chinese", "Japanese", "Italian", "Mexican", "Vegetarian",
	"American", "Thai", "French", "Indian", "Korean",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d restaurants...", opts.NumUsers, opts.NumRestaurants)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	categories, err := createCategories(factory)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("✓ %d categories available", len(categories))

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	restaurants, err := createRestaurants(factory, categories, opts.NumRestaurants)
	if err != nil {
		return fmt.Errorf("failed to create restaurants: %w", err)
	}
	log.Printf("✓ %d restaurants created", len(restaurants))

	if err := createSocialMesh(factory, users, restaurants); err != nil {
		return fmt.Errorf("failed to create social mesh: %w", err)
	}
	log.Println("✓ comments, favorites, likes, and followships created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE followships, likes, favorites, comments, restaurants, categories, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createCategories(factory *Factory) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category, err := factory.CreateCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include fixed accounts for local login consistency
	base := []struct {
		name    string
		email   string
		isAdmin bool
	}{
		{"root", "root@example.com", true},
		{"user1", "user1@example.com", false},
		{"user2", "user2@example.com", false},
	}
	for _, b := range base {
		user := models.User{
			Name:     b.name,
			Email:    b.email,
			Password: string(hashedPassword),
			IsAdmin:  b.isAdmin,
			Image:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", b.name),
		}
		if err := db.Where(models.User{Email: b.email}).FirstOrCreate(&user).Error; err == nil {
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser(func(u *models.User) {
			// Derive a unique address; faked emails collide at scale
			u.Email = fmt.Sprintf("seed%d@example.com", i)
		})
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, *user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createRestaurants(factory *Factory, categories []models.Category, count int) ([]models.Restaurant, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	restaurants := make([]models.Restaurant, 0, count)

	for i := 0; i < count; i++ {
		category := categories[r.Intn(len(categories))]
		restaurant, err := factory.CreateRestaurant(&category, func(rr *models.Restaurant) {
			rr.ViewCounts = uint(r.Intn(500))
		})
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *restaurant)
	}

	return restaurants, nil
}

// createSocialMesh wires users to restaurants and to each other. Duplicate
// pair inserts hit the unique indexes and are skipped.
func createSocialMesh(factory *Factory, users []models.User, restaurants []models.Restaurant) error {
	if len(users) == 0 || len(restaurants) == 0 {
		return nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range users {
		user := users[i]

		for c := 0; c < 2; c++ {
			restaurant := restaurants[r.Intn(len(restaurants))]
			if _, err := factory.CreateComment(&user, &restaurant); err != nil {
				return err
			}
		}

		for fv := 0; fv < 3; fv++ {
			restaurant := restaurants[r.Intn(len(restaurants))]
			if err := factory.CreateFavorite(user.ID, restaurant.ID); err != nil {
				continue
			}
		}

		for lk := 0; lk < 3; lk++ {
			restaurant := restaurants[r.Intn(len(restaurants))]
			if err := factory.CreateLike(user.ID, restaurant.ID); err != nil {
				continue
			}
		}

		target := users[r.Intn(len(users))]
		if target.ID != user.ID {
			if err := factory.CreateFollowship(user.ID, target.ID); err != nil {
				continue
			}
		}
	}

	return nil
}
