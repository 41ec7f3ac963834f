// ABOUTME: Configuration options for the sports news library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package sportsnews

import (
	"time"

	"sports-news-api/core/aggregate"
	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
	"sports-news-api/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithDumpStore sets where saved results are written
func WithDumpStore(store interfaces.Cache) Option {
	return func(c *Config) error {
		c.DumpStore = store
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithCatalog replaces the built-in feed catalog
func WithCatalog(catalog *domain.Catalog) Option {
	return func(c *Config) error {
		if catalog == nil {
			return NewError(ErrorTypeConfiguration, "catalog cannot be nil")
		}
		c.Catalog = catalog
		return nil
	}
}

// WithFeeds builds the catalog from a sport -> feed URLs mapping
func WithFeeds(feeds map[string][]string) Option {
	return func(c *Config) error {
		topics := make(map[string][]domain.FeedSource, len(feeds))
		for sport, urls := range feeds {
			for _, u := range urls {
				topics[sport] = append(topics[sport], domain.FeedSource{URL: u})
			}
		}
		c.Catalog = domain.NewCatalog(topics)
		return nil
	}
}

// WithCatalogFile loads the catalog from a YAML file
func WithCatalogFile(path string) Option {
	return func(c *Config) error {
		catalog, err := config.LoadCatalog(path)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load catalog").
				WithCause(err).
				WithContext("path", path)
		}
		c.Catalog = catalog
		return nil
	}
}

// WithFuzzyMatching chooses token-set title matching (true) or exact matching (false)
func WithFuzzyMatching(enabled bool) Option {
	return func(c *Config) error {
		c.FuzzyMatching = enabled
		return nil
	}
}

// WithDefaults sets the options every aggregation starts from
func WithDefaults(opts aggregate.Options) Option {
	return func(c *Config) error {
		c.Defaults = opts
		return nil
	}
}

// WithTimeouts sets the per-feed and per-sport timeouts
func WithTimeouts(feed, global time.Duration) Option {
	return func(c *Config) error {
		if feed <= 0 || global <= 0 {
			return NewError(ErrorTypeConfiguration, "timeouts must be positive")
		}
		c.Defaults.FeedTimeout = feed
		c.Defaults.GlobalTimeout = global
		return nil
	}
}

// WithRetries lets connection failures and 5xx responses be retried
func WithRetries(retries int) Option {
	return func(c *Config) error {
		if retries < 0 {
			return NewError(ErrorTypeConfiguration, "retries cannot be negative")
		}
		c.Defaults.Retries = retries
		return nil
	}
}

// WithMaxConcurrency caps simultaneous fetches per sport
func WithMaxConcurrency(n int) Option {
	return func(c *Config) error {
		c.Defaults.MaxConcurrency = n
		return nil
	}
}

// WithDumpTTL sets how long stores with expiry keep saved results
func WithDumpTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.DumpTTL = ttl
		return nil
	}
}

// AggregateOption adjusts a single aggregation call
type AggregateOption func(*aggregateCall)

type aggregateCall struct {
	opts aggregate.Options
	save bool
}

// WithThreshold sets the title similarity threshold (0-100)
func WithThreshold(threshold int) AggregateOption {
	return func(c *aggregateCall) {
		c.opts.Threshold = threshold
	}
}

// WithLimitPerFeed caps entries kept per feed; 0 means unlimited
func WithLimitPerFeed(limit int) AggregateOption {
	return func(c *aggregateCall) {
		c.opts.LimitPerFeed = limit
	}
}

// WithNewestFirst sorts articles by publication date instead of feed order
func WithNewestFirst() AggregateOption {
	return func(c *aggregateCall) {
		c.opts.Order = aggregate.OrderNewest
	}
}

// WithSave writes each result to the dump store
func WithSave() AggregateOption {
	return func(c *aggregateCall) {
		c.save = true
	}
}
