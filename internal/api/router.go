package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskflow/task-management-api/internal/api/handler"
	"github.com/taskflow/task-management-api/internal/api/middleware"
	"github.com/taskflow/task-management-api/internal/core/service"
	"github.com/taskflow/task-management-api/internal/infrastructure/config"
	mongostore "github.com/taskflow/task-management-api/internal/infrastructure/db/mongo"
	redisstore "github.com/taskflow/task-management-api/internal/infrastructure/db/redis"
)

// contentSecurityPolicy mirrors the policy served to the single-page client.
const contentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data:; media-src 'self' data:;"

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the task-list cache is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(securityHeaders)
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	taskRepo := mongostore.NewTaskRepository(db)

	var cache service.ListCache
	if rdb != nil && cfg.Cache.Enabled {
		cache = redisstore.NewListCache(rdb, cfg.Cache.TTL)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskService := service.NewTaskService(taskRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(authService)

	// --- Root & auth routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Task Management API")
	})
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)

	// --- Task routes (bearer token required) ---
	tasks := e.Group("/api/tasks", authMiddleware)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// securityHeaders sets the Content-Security-Policy header on every response.
func securityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Content-Security-Policy", contentSecurityPolicy)
		return next(c)
	}
}
