// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"forkful/internal/models"
	"forkful/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "forkful-api"
	tokenAudience = "forkful-client"
	tokenLifetime = time.Hour * 24 * 7
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		Password      string `json:"password"`
		PasswordCheck string `json:"passwordCheck"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and password are required"))
	}
	if req.Password != req.PasswordCheck {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Passwords do not match"))
	}

	if err := validation.ValidateName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
	}

	// The email unique constraint backs duplicate detection, so concurrent
	// signups with the same address cannot both succeed.
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return respondServiceError(c, createErr)
	}

	token, err := s.generateToken(user.ID, user.Name)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID, user.Name)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout. The presented token's JTI is
// blacklisted in Redis for the remainder of its lifetime.
func (s *Server) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	// AuthRequired already validated the token; parse again to read claims.
	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		return []byte(s.config.JWTSecret), nil
	})
	if err == nil && token.Valid && s.redis != nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			jti, _ := claims["jti"].(string)
			if jti != "" {
				ttl := tokenLifetime
				if exp, expOk := claims["exp"].(float64); expOk {
					if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
						ttl = remaining
					}
				}
				s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
			}
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// generateToken creates a JWT token for the given user ID and name
func (s *Server) generateToken(userID uint, name string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"name": name,
		"iss":  tokenIssuer,
		"aud":  tokenAudience,
		"exp":  now.Add(tokenLifetime).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
