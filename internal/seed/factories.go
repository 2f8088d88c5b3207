// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"forkful/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var restaurantSuffixes = []string{
	"Kitchen", "Bistro", "Diner", "Grill", "House", "Table", "Cantina",
	"Trattoria", "Eatery", "Tavern", "Garden", "Corner",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a user with faked profile data. Overrides run before
// the insert.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Image:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory persists a category, reusing an existing row with the same
// name.
func (f *Factory) CreateCategory(name string) (*models.Category, error) {
	var category models.Category
	if err := f.db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// BuildRestaurant constructs a restaurant struct without persisting it.
// Useful for batch inserts.
func (f *Factory) BuildRestaurant(category *models.Category, overrides ...func(*models.Restaurant)) *models.Restaurant {
	suffix := restaurantSuffixes[f.r.Intn(len(restaurantSuffixes))]
	restaurant := &models.Restaurant{
		Name:        fmt.Sprintf("%s's %s", gofakeit.LastName(), suffix),
		Description: gofakeit.Paragraph(1, 3, 10, " "),
		Image:       fmt.Sprintf("https://loremflickr.com/320/240/restaurant,food/?lock=%d", f.r.Intn(10000)),
		CategoryID:  category.ID,
	}

	// realistic created_at spread over the past 90 days
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	restaurant.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(restaurant)
	}
	return restaurant
}

// CreateRestaurant persists a restaurant built by BuildRestaurant.
func (f *Factory) CreateRestaurant(category *models.Category, overrides ...func(*models.Restaurant)) (*models.Restaurant, error) {
	restaurant := f.BuildRestaurant(category, overrides...)
	if err := f.db.Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// CreateComment persists a faked comment by the user on the restaurant.
func (f *Factory) CreateComment(user *models.User, restaurant *models.Restaurant) (*models.Comment, error) {
	comment := &models.Comment{
		Text:         gofakeit.Sentence(f.r.Intn(15) + 3),
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFavorite inserts a favorite pair. Duplicate pairs fail on the unique
// index.
func (f *Factory) CreateFavorite(userID, restaurantID uint) error {
	return f.db.Create(&models.Favorite{UserID: userID, RestaurantID: restaurantID}).Error
}

// CreateLike inserts a like pair. Duplicate pairs fail on the unique index.
func (f *Factory) CreateLike(userID, restaurantID uint) error {
	return f.db.Create(&models.Like{UserID: userID, RestaurantID: restaurantID}).Error
}

// CreateFollowship inserts a follower -> following pair.
func (f *Factory) CreateFollowship(followerID, followingID uint) error {
	return f.db.Create(&models.Followship{FollowerID: followerID, FollowingID: followingID}).Error
}
