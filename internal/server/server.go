package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/diettrack/backend/config"
	"github.com/diettrack/backend/internal/api"
	"github.com/diettrack/backend/internal/database"
	"github.com/diettrack/backend/internal/middleware"
	"github.com/diettrack/backend/internal/service"
)

// Deps are the constructed services the server wires into routes.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Auth      *service.AuthService
	Users     *service.UserService
	Foods     *service.FoodService
	Meals     *service.MealService
	Assistant *service.AssistantService
	Uploads   *service.UploadService
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	deps   Deps
}

// New creates a new server instance
func New(deps Deps) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	s := &Server{router: router, deps: deps}

	router.GET("/health", s.healthCheck)

	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewAssistantRateLimiter(deps.Redis)
	}

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(deps.Auth).RegisterRoutes(v1)
	api.NewUserHandler(deps.Users, deps.Auth).RegisterRoutes(v1)
	api.NewFoodHandler(deps.Foods, deps.Auth).RegisterRoutes(v1)
	api.NewMealHandler(deps.Meals, deps.Uploads, deps.Auth).RegisterRoutes(v1)
	api.NewAssistantHandler(deps.Assistant, limiter, deps.Auth).RegisterRoutes(v1)

	return s
}

func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if err := database.HealthCheck(ctx, s.deps.DB); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if s.deps.Redis != nil {
		if err := s.deps.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
	} else {
		checks["redis"] = "not configured"
	}

	c.JSON(status, checks)
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.deps.Config.ServerHost + ":" + s.deps.Config.ServerPort,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
