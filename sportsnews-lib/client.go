// ABOUTME: Main client for the sports news library
// ABOUTME: Runs the fetch, normalize and de-duplicate pipeline without HTTP server dependencies

package sportsnews

import (
	"context"
	"errors"

	"sports-news-api/core/aggregate"
	"sports-news-api/core/dedup"
	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
	"sports-news-api/pkg/config"
)

// Client is the main entry point for the sports news library
type Client struct {
	service *aggregate.Service
	catalog *domain.Catalog
	config  Config
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: cfg.HTTPClient,
		Cache:      cfg.DumpStore,
		Logger:     cfg.Logger,
	}

	return &Client{
		service: aggregate.NewService(deps, dedup.SelectScorer(cfg.FuzzyMatching)),
		catalog: cfg.Catalog,
		config:  cfg,
	}, nil
}

// validateConfig fills the catalog and rejects unusable settings
func validateConfig(cfg *Config) error {
	if cfg.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = QuietLogger()
	}
	if cfg.Catalog == nil {
		catalog, err := config.DefaultCatalog()
		if err != nil {
			return NewError(ErrorTypeInternal, "built-in catalog is invalid").WithCause(err)
		}
		cfg.Catalog = catalog
	}
	if len(cfg.Catalog.Topics()) == 0 {
		return NewError(ErrorTypeConfiguration, "catalog has no sports")
	}
	return nil
}

// Close releases the dump store when it holds resources
func (c *Client) Close() error {
	type closer interface{ Close() error }
	if store, ok := c.config.DumpStore.(closer); ok {
		return store.Close()
	}
	return nil
}

// Sports returns the configured sport names in sorted order
func (c *Client) Sports() []string {
	return c.catalog.Topics()
}

// Sources lists every sport with its feed URLs
func (c *Client) Sources() []Source {
	topics := c.catalog.Topics()
	out := make([]Source, 0, len(topics))
	for _, topic := range topics {
		sources, _ := c.catalog.Sources(topic)
		feeds := make([]string, 0, len(sources))
		for _, src := range sources {
			feeds = append(feeds, src.URL)
		}
		out = append(out, Source{Sport: topic, Feeds: feeds})
	}
	return out
}

// FuzzyAvailable reports whether titles are compared with the token-set scorer
func (c *Client) FuzzyAvailable() bool {
	return c.service.FuzzyAvailable()
}

// Aggregate fetches and de-duplicates one sport. Feed failures are reported in
// Result.Feeds; an error means the sport is unknown or the save failed.
func (c *Client) Aggregate(ctx context.Context, sport string, opts ...AggregateOption) (*Result, error) {
	call := c.newCall(opts)

	sources, err := c.catalog.Sources(sport)
	if err != nil {
		return nil, fromCore(err, sport)
	}

	res, err := c.service.Aggregate(ctx, sport, sources, call.opts)
	if err != nil {
		return nil, fromCore(err, sport)
	}

	return c.finish(ctx, res, call)
}

// AggregateAll aggregates every sport separately, in sorted sport order
func (c *Client) AggregateAll(ctx context.Context, opts ...AggregateOption) ([]*Result, error) {
	call := c.newCall(opts)

	results, err := c.service.AggregateCatalog(ctx, c.catalog, nil, call.opts)
	if err != nil {
		return nil, fromCore(err, "")
	}

	out := make([]*Result, 0, len(results))
	for _, res := range results {
		public, err := c.finish(ctx, res, call)
		if err != nil {
			return nil, err
		}
		out = append(out, public)
	}
	return out, nil
}

// HealthCheck probes every configured feed
func (c *Client) HealthCheck(ctx context.Context) *HealthReport {
	report := c.service.HealthCheck(ctx, c.catalog.All(), c.config.Defaults.FeedTimeout)
	return healthToPublic(report)
}

func (c *Client) newCall(opts []AggregateOption) aggregateCall {
	call := aggregateCall{opts: c.config.Defaults}
	for _, opt := range opts {
		opt(&call)
	}
	return call
}

// finish saves the result when asked and converts it
func (c *Client) finish(ctx context.Context, res *domain.AggregationResult, call aggregateCall) (*Result, error) {
	public := resultToPublic(res)
	if !call.save {
		return public, nil
	}

	if c.config.DumpStore == nil {
		return nil, ErrNoDumpStore
	}
	if err := c.service.Dump(ctx, res, c.config.DumpTTL); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, NewError(ErrorTypeStorage, "failed to save dump").
			WithCause(err).
			WithContext("sport", res.Topic)
	}
	public.DumpKey = aggregate.DumpKey(res.Topic)
	return public, nil
}
