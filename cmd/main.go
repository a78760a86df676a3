package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ugmineras/noticias/internal/api"
	"github.com/ugmineras/noticias/internal/cache"
	"github.com/ugmineras/noticias/internal/config"
	"github.com/ugmineras/noticias/internal/feed"
	"github.com/ugmineras/noticias/internal/logger"
	"github.com/ugmineras/noticias/internal/middleware"
	"github.com/ugmineras/noticias/internal/normalize"
	"github.com/ugmineras/noticias/internal/storage"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.LogPretty,
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Str("env", cfg.Env).Msg("Starting application...")

	// Cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis client")
		}
		store = redisClient
	} else {
		log.Warn().Msg("REDIS_URL not set, using in-memory cache")
		store = cache.NewMemoryStore()
	}
	defer func() {
		log.Info().Msg("Closing cache...")
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache")
		}
	}()

	// Archive: R2 when every credential is present, local disk otherwise
	var archive storage.Archive
	if cfg.UseR2() {
		r2, err := storage.NewR2Archive(context.Background(), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 archive")
		}
		archive = r2
		log.Info().Str("bucket", cfg.R2Bucket).Msg("Using R2 archive")
	} else {
		local, err := storage.NewLocalArchive(cfg.ArchivePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize local archive")
		}
		archive = local
		log.Info().Str("path", cfg.ArchivePath).Msg("Using local archive")
	}

	processor := feed.NewProcessor(
		feed.NewFetcher(cfg),
		normalize.New(normalize.WithLocation(cfg.Location())),
		store,
		archive,
		feed.OptionsFromConfig(cfg),
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	api.SetupRoutes(app, api.NewHandlers(cfg, processor), cfg)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
