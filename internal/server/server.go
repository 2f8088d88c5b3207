// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"forkful/internal/cache"
	"forkful/internal/config"
	"forkful/internal/database"
	"forkful/internal/middleware"
	"forkful/internal/models"
	"forkful/internal/repository"
	"forkful/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	commentRepo    repository.CommentRepository
	favoriteRepo   repository.FavoriteRepository
	likeRepo       repository.LikeRepository
	followshipRepo repository.FollowshipRepository

	restaurantService *service.RestaurantService
	userService       *service.UserService
	favoriteService   *service.FavoriteService
	followService     *service.FollowService
	commentService    *service.CommentService
	adminService      *service.AdminService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("forkful-api"),
		userRepo:       repository.NewUserRepository(db),
		restaurantRepo: repository.NewRestaurantRepository(db),
		categoryRepo:   repository.NewCategoryRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		favoriteRepo:   repository.NewFavoriteRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		followshipRepo: repository.NewFollowshipRepository(db),
	}

	server.restaurantService = service.NewRestaurantService(server.restaurantRepo, server.categoryRepo, server.commentRepo)
	server.userService = service.NewUserService(server.userRepo)
	server.favoriteService = service.NewFavoriteService(server.favoriteRepo, server.likeRepo, server.restaurantRepo)
	server.followService = service.NewFollowService(server.followshipRepo, server.userRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.restaurantRepo, server.isAdminByUserID)
	server.adminService = service.NewAdminService(server.restaurantRepo, server.categoryRepo, server.userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Distributed tracing
	app.Use(middleware.TracingMiddleware())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Forkful API Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)

	// Public restaurant routes (browse)
	restaurants := api.Group("/restaurants")
	restaurants.Get("/", s.GetRestaurants)
	restaurants.Get("/feed", s.GetFeed)
	restaurants.Get("/top", s.GetTopRestaurants)
	restaurants.Get("/:id/dashboard", s.GetRestaurantDashboard)
	restaurants.Get("/:id/comments", s.GetRestaurantComments)
	restaurants.Get("/:id", s.GetRestaurant)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// User routes
	users := protected.Group("/users")
	users.Get("/top", s.GetTopUsers)
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Post("/:id/follow", middleware.RateLimit(
		s.redis, 20, time.Minute, "follow"), s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)
	users.Get("/:id", s.GetUserProfile)

	// Favorite and like toggles
	protectedRestaurants := protected.Group("/restaurants")
	protectedRestaurants.Post("/:id/favorite", s.AddFavorite)
	protectedRestaurants.Delete("/:id/favorite", s.RemoveFavorite)
	protectedRestaurants.Post("/:id/like", s.AddLike)
	protectedRestaurants.Delete("/:id/like", s.RemoveLike)
	protectedRestaurants.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)

	// Comment deletion (author or admin)
	protected.Delete("/comments/:id", s.DeleteComment)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/restaurants", s.AdminGetRestaurants)
	admin.Post("/restaurants", s.AdminCreateRestaurant)
	admin.Get("/restaurants/:id", s.AdminGetRestaurant)
	admin.Put("/restaurants/:id", s.AdminUpdateRestaurant)
	admin.Delete("/restaurants/:id", s.AdminDeleteRestaurant)
	admin.Get("/categories", s.AdminGetCategories)
	admin.Post("/categories", s.AdminCreateCategory)
	admin.Put("/categories/:id", s.AdminUpdateCategory)
	admin.Delete("/categories/:id", s.AdminDeleteCategory)
	admin.Get("/users", s.AdminGetUsers)
	admin.Patch("/users/:id/admin", s.AdminSetUserAdmin)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		admin, err := s.isAdminByUserID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}

		return c.Next()
	}
}

// validateToken parses and validates a bearer token, enforcing the signing
// method, issuer, audience and the revocation blacklist. Both the required
// and the optional auth paths go through it so a revoked token never
// authenticates anywhere.
func (s *Server) validateToken(ctx context.Context, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return 0, models.NewUnauthorizedError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return 0, models.NewUnauthorizedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid subject claim")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid user ID in token")
	}

	// Check JTI for revocation
	if jti, exists := claims["jti"].(string); exists && jti != "" {
		if s.redis != nil {
			isBlacklisted, err := s.redis.Exists(ctx, "blacklist:"+jti).Result()
			if err == nil && isBlacklisted > 0 {
				return 0, models.NewUnauthorizedError("Token has been revoked")
			}
		}
	}

	return uint(userID), nil
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		userID, err := s.validateToken(c.Context(), tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// optionalUserID attempts to extract userID from the Authorization header but
// does not enforce it. Public browse endpoints use it to annotate results with
// the viewer's favorite/like state. Validation is the same as AuthRequired's;
// a token that would be rejected there is ignored here.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	userID, err := s.validateToken(c.Context(), parts[1])
	if err != nil {
		return 0, false
	}
	return userID, true
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Forkful API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if s.redis == cache.GetClient() {
			cache.Close()
		} else if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
