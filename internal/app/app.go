// ABOUTME: Application bootstrap shared by the API server and the CLI
// ABOUTME: Builds logger, catalog, dump store and aggregation service from configuration

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sports-news-api/api"
	"sports-news-api/api/handlers"
	"sports-news-api/api/middleware"
	"sports-news-api/core/aggregate"
	"sports-news-api/core/dedup"
	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
	"sports-news-api/infrastructure/cache"
	"sports-news-api/infrastructure/cache/memory"
	"sports-news-api/infrastructure/http/standard"
	"sports-news-api/infrastructure/logger/structured"
	"sports-news-api/pkg/config"
	"sports-news-api/pkg/featureflags"
)

// ShutdownTimeout bounds graceful shutdown of the HTTP server
const ShutdownTimeout = 30 * time.Second

// App holds every long-lived component of a running process
type App struct {
	Config  *config.Config
	Logger  interfaces.Logger
	Catalog *domain.Catalog
	Flags   featureflags.Manager
	Service *aggregate.Service
	Store   interfaces.Cache

	closeStore func() error
}

// New wires the application from cfg. A dump store that cannot be opened
// falls back to memory so aggregation keeps working.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return NewWithLogger(ctx, cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger
func NewWithLogger(ctx context.Context, cfg *config.Config, logger interfaces.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger = interfaces.LoggerOrNop(logger)

	catalog, err := config.LoadCatalog(cfg.Pipeline.FeedsFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	flags := featureflags.NewEnvManager("")

	store, closeStore, err := cache.NewDumpStore(ctx, cfg.Dump)
	if err != nil {
		logger.Error("Failed to open dump store, falling back to memory", map[string]interface{}{
			"backend": cfg.Dump.Backend,
			"error":   err.Error(),
		})
		store = memory.NewMemoryCache()
	} else {
		logger.Info("Using dump store", map[string]interface{}{
			"backend": cfg.Dump.Backend,
		})
	}

	// feed timeouts come from the request context so per-call options can raise them
	httpClient := standard.NewStandardHTTPClient(0, &middleware.LoggingRoundTripper{
		Logger: logger,
	})

	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	service := aggregate.NewService(deps, dedup.SelectScorer(flags.IsEnabled(ctx, featureflags.FuzzyMatching)))

	logger.Info("Sports news pipeline ready", map[string]interface{}{
		"sports":          len(catalog.Topics()),
		"feeds":           len(catalog.All()),
		"fuzzy_available": service.FuzzyAvailable(),
		"threshold":       cfg.Pipeline.FuzzyThreshold,
		"limit_per_feed":  cfg.Pipeline.LimitPerFeed,
	})

	return &App{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Flags:      flags,
		Service:    service,
		Store:      store,
		closeStore: closeStore,
	}, nil
}

// Options returns the configured aggregation defaults
func (a *App) Options() aggregate.Options {
	return a.Config.Pipeline.AggregateOptions()
}

// Handler builds the HTTP router with every route registered
func (a *App) Handler() http.Handler {
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         a.Logger,
		Flags:          a.Flags,
		AllowedOrigins: a.Config.Server.AllowedOrigins,
	})

	handlers.NewSportsHandler(a.Service, a.Catalog, a.Options(), a.Config.Dump.TTL, a.Logger).
		RegisterRoutes(humaAPI)

	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:        ":" + a.Config.Server.Port,
		Handler:     a.Handler(),
		ReadTimeout: 15 * time.Second,
		// a request may wait for the whole aggregation
		WriteTimeout: a.Config.Pipeline.GlobalTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.Logger.Info("Server stopped", nil)
	return nil
}

// Close releases the dump store
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
