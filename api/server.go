// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"sports-news-api/api/middleware"
	"sports-news-api/core/interfaces"
	"sports-news-api/pkg/featureflags"
)

const (
	// Title is the OpenAPI document title
	Title = "Sports News Aggregator"

	// Version is the OpenAPI document version
	Version = "1.3.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
	Flags  featureflags.Manager

	// AllowedOrigins defaults to every origin
	AllowedOrigins []string
}

// NewAPI creates a Huma API without request logging or feature flags
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests never reach the handlers
	router.Use(corsHandler(cfg.AllowedOrigins).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Aggregates sports news from RSS/Atom feeds into one de-duplicated JSON list"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})
}
