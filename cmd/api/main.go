package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/config"
	"github.com/pageza/alchemorsel-v2/scaler/internal/api"
	"github.com/pageza/alchemorsel-v2/scaler/internal/database"
	"github.com/pageza/alchemorsel-v2/scaler/internal/logging"
	"github.com/pageza/alchemorsel-v2/scaler/internal/middleware"
	"github.com/pageza/alchemorsel-v2/scaler/internal/router"
	"github.com/pageza/alchemorsel-v2/scaler/internal/server"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}

	svc := api.Services{
		Recipes: service.NewRecipeService(db, logger),
		Tokens:  service.NewTokenService(cfg.JWTSecret),
	}

	// Continue without rate limiting if Redis is not available
	if redisClient, err := database.NewRedisClient(ctx, cfg, logger); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		svc.Limiter = middleware.NewScalingRateLimiter(redisClient, cfg.RateLimitPerMinute, logger)
	}

	var store service.ObjectStore
	if cfg.S3BucketName != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			logger.Warn("s3 unavailable, shopping list export disabled", zap.Error(err))
		} else {
			store = s3Config
		}
	}
	svc.Exports = service.NewExportService(store, logger)

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	handler, err := router.SetupRouter(router.Options{
		Services:       svc,
		AllowedOrigins: middleware.DefaultAllowedOrigins,
		Registry:       registry,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	return server.New(cfg, handler, logger).Run(ctx)
}
