// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package sportsnews

import (
	"context"
	"time"

	"sports-news-api/core/aggregate"
	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
	"sports-news-api/infrastructure/cache/file"
	"sports-news-api/infrastructure/cache/memory"
	httpInfra "sports-news-api/infrastructure/http/standard"
	"sports-news-api/infrastructure/logger/structured"
	"sports-news-api/pkg/config"
	"sports-news-api/pkg/featureflags"
)

// Config holds the configuration for the client
type Config struct {
	// DumpStore receives saved results; nil disables saving
	DumpStore interfaces.Cache

	// HTTPClient performs feed requests
	HTTPClient interfaces.HTTPClient

	// Logger receives pipeline logs
	Logger interfaces.Logger

	// Catalog maps sports to feeds; nil uses the built-in catalog
	Catalog *domain.Catalog

	// FuzzyMatching selects the token-set scorer
	FuzzyMatching bool

	// Defaults seeds every aggregation call
	Defaults aggregate.Options

	// DumpTTL is passed to the dump store
	DumpTTL time.Duration
}

// DefaultHTTPClient creates an HTTP client without a client-wide timeout;
// each fetch is bounded by the feed timeout of its aggregation call
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(0, nil)
}

// DefaultMemoryStore creates an in-memory dump store
func DefaultMemoryStore() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultFileStore writes dumps as sports_news_<sport>.json files into dir
func DefaultFileStore(dir string) (interfaces.Cache, error) {
	return file.NewStore(dir)
}

// DefaultLogger creates a text logger that writes warnings and errors to stderr
func DefaultLogger() interfaces.Logger {
	logger, err := structured.NewLogger(structured.Options{Level: "warn", Format: "text"})
	if err != nil {
		return QuietLogger()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithEnvConfig applies the same environment variables the server reads
func WithEnvConfig() Option {
	return func(c *Config) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load environment").WithCause(err)
		}
		c.Defaults = cfg.Pipeline.AggregateOptions()
		c.DumpTTL = cfg.Dump.TTL
		c.FuzzyMatching = featureflags.NewEnvManager("").IsEnabled(context.Background(), featureflags.FuzzyMatching)
		if cfg.Pipeline.FeedsFile != "" {
			return WithCatalogFile(cfg.Pipeline.FeedsFile)(c)
		}
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	defaults := aggregate.DefaultOptions()
	defaults.LimitPerFeed = 50

	return Config{
		HTTPClient:    DefaultHTTPClient(),
		Logger:        DefaultLogger(),
		FuzzyMatching: true,
		Defaults:      defaults,
		DumpTTL:       24 * time.Hour,
	}
}
