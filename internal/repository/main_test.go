package repository

import (
	"testing"

	"forkful/internal/cache"
	"forkful/internal/database"
	"forkful/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database per test. Unless the
// test calls withMiniredis, the Redis client stays uninitialized and caching
// degrades to the DB path.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

// withMiniredis points the cache package at a throwaway Redis so tests can
// exercise the cache-aside paths. The handle allows direct key inspection.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.InitRedis(mr.Addr())
	t.Cleanup(cache.Close)
	return mr
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, categoryID uint) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{Name: name, Description: "a place to eat", CategoryID: categoryID}
	require.NoError(t, db.Create(r).Error)
	return r
}
