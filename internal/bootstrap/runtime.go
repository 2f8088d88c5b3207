// Package bootstrap wires runtime dependencies for the application binaries.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"forkful/internal/cache"
	"forkful/internal/config"
	"forkful/internal/database"
	"forkful/internal/models"
	"forkful/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevRootAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development root admin: %w", err)
	}

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{NumUsers: 20, NumRestaurants: 50}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

// ensureDevRootAdmin guarantees a usable admin account in development so the
// admin panel is reachable on a fresh database.
func ensureDevRootAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash root password: %w", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		var root models.User
		findErr := tx.Where("email = ?", "root@example.com").First(&root).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			root = models.User{
				Name:     "root",
				Email:    "root@example.com",
				Password: string(hashedPassword),
				IsAdmin:  true,
			}
			return tx.Create(&root).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&models.User{}).Where("id = ?", root.ID).Update("is_admin", true).Error
		}
	}); err != nil {
		return err
	}

	log.Printf("development root admin bootstrap ensured (root@example.com)")
	return nil
}
