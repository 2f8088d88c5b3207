package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"forkful/internal/config"
	"forkful/internal/database"
	"forkful/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Password1234!"

// newTestServer wires a Server against a fresh in-memory SQLite database with
// no Redis. Routes are registered on a bare Fiber app; the middleware stack is
// exercised by its own package tests.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	return newTestServerWithClient(t, nil)
}

// newTestServerWithRedis backs the server with a throwaway Redis so the
// token blacklist is live under test.
func newTestServerWithRedis(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newTestServerWithClient(t, client)
}

func newTestServerWithClient(t *testing.T, redisClient *redis.Client) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))

	cfg := &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		Env:       "test",
		Port:      "8473",
	}

	s, err := NewServerWithDeps(cfg, db, redisClient)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func createTestUser(t *testing.T, s *Server, name, email string, admin bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, Password: string(hash), IsAdmin: admin}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func bearerFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()

	token, err := s.generateToken(user.ID, user.Name)
	require.NoError(t, err)
	return "Bearer " + token
}

func createTestCategory(t *testing.T, s *Server, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, s.db.Create(c).Error)
	return c
}

func createTestRestaurant(t *testing.T, s *Server, name string, categoryID uint) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{Name: name, Description: "a place to eat", CategoryID: categoryID}
	require.NoError(t, s.db.Create(r).Error)
	return r
}

// doRequest performs an HTTP request against the test app. body is JSON
// encoded when non-nil; auth is the Authorization header value ("" for none).
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, auth string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
