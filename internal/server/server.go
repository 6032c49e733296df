package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/api"
	"github.com/tastebase/backend/internal/middleware"
	"github.com/tastebase/backend/internal/service"
)

// Server wires the catalog services into an HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *logrus.Logger
}

// New builds the server. cache and media may be nil; the recipe service
// degrades gracefully without them.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client, media service.MediaValidator, logger *logrus.Logger) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, cache, media, logger)
	profileService := service.NewProfileService(db, recipeService)

	var limiter *middleware.RateLimiter
	if cache != nil {
		limiter = middleware.NewRateLimiter(cache, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     30,
			KeyPrefix: "ratelimit",
		})
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewRecipeHandler(recipeService, authService, limiter).RegisterRoutes(v1)
	api.NewProfileHandler(profileService, recipeService, authService).RegisterRoutes(v1)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.ServerAddr(),
			Handler: router,
		},
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Info("request")
	}
}
