package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/server"
	"github.com/tastebase/backend/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.WithError(err).Fatal("failed to run migrations")
	}

	// The catalog degrades gracefully without Redis: no caching, no
	// rate limiting.
	cache, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, continuing without cache")
		cache = nil
	}

	var s3cfg *config.S3Config
	if cfg.S3Bucket != "" {
		s3cfg, err = config.NewS3Config(context.Background(), cfg)
		if err != nil {
			logger.WithError(err).Warn("s3 unavailable, accepting upload-path references only")
			s3cfg = nil
		}
	}
	media := service.NewImageService(s3cfg)

	srv := server.New(cfg, db, cache, media, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("server shutdown error")
	}
	logger.Info("server stopped")
}
