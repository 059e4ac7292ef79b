package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/internal/catalog"
	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/handler"
	"atelier/internal/repository"
	"atelier/internal/router"
	"atelier/internal/service"
	"atelier/internal/session"
	"atelier/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting atelier API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize Redis when enabled
	var rdb redis.Cmdable
	if cfg.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer client.Close()
		rdb = client
	}

	// Initialize session storage
	kv, err := storage.New(ctx, cfg.Store.Backend, pool, rdb, cfg.Store.PersistTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage: %w", err)
	}

	sessions := session.NewManager(kv, session.Config{
		KeyPrefix:    cfg.Store.KeyPrefix,
		IdleTTL:      cfg.Store.SessionTTL,
		ReadTimeout:  cfg.Store.ReadTimeout,
		WriteTimeout: cfg.Store.WriteTimeout,
	}, logger)
	go sessions.Run(ctx, cfg.Store.EvictInterval)

	// Initialize catalog loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	}
	catalogLoader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, s3Loader != nil, logger)

	cat, err := catalog.Load(ctx, catalogLoader, cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info().Int("products", cat.Len()).Msg("catalog loaded")

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)

	// Initialize services
	catalogService := service.NewCatalogService(cat, logger)
	cartService := service.NewCartService(sessions, cat, logger)
	wishlistService := service.NewWishlistService(sessions, cat, logger)
	checkoutService := service.NewCheckoutService(sessions, orderRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Wishlist: handler.NewWishlistHandler(wishlistService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Settings: handler.NewSettingsHandler(settingsService, logger),
	}, sessions.NewID, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("store_backend", cfg.Store.Backend).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
