package aggregate

import (
	"fmt"
	"strings"
	"time"

	"sports-news-api/core/dedup"
)

// Order selects how the de-duplicated articles are arranged
type Order string

const (
	// OrderFeed keeps feed-configuration order, then in-feed order
	OrderFeed Order = "feed"

	// OrderNewest sorts by publication date, unknown dates last
	OrderNewest Order = "newest"
)

// ParseOrder accepts "feed", "newest" or an empty string (feed)
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderFeed:
		return OrderFeed, nil
	case OrderNewest:
		return OrderNewest, nil
	default:
		return "", fmt.Errorf("invalid order %q: must be 'feed' or 'newest'", s)
	}
}

const (
	DefaultGlobalTimeout = 30 * time.Second
	DefaultFeedTimeout   = 12 * time.Second
	DefaultRetryBackoff  = 100 * time.Millisecond
)

// Options tunes one aggregation call.
// Threshold is used as given (0 is a valid threshold), so start from DefaultOptions.
type Options struct {
	// Threshold is the title similarity score at which articles are duplicates
	Threshold int

	// LimitPerFeed caps kept entries per feed; 0 means unlimited
	LimitPerFeed int

	// GlobalTimeout bounds the whole aggregation
	GlobalTimeout time.Duration

	// FeedTimeout bounds each individual request
	FeedTimeout time.Duration

	// Retries is how many extra attempts a retryable fetch failure gets
	Retries int

	// RetryBackoff is the first retry delay; it doubles per attempt
	RetryBackoff time.Duration

	// Order arranges the final article list
	Order Order

	// MaxConcurrency caps simultaneous fetches; 0 fetches every feed at once
	MaxConcurrency int
}

// DefaultOptions returns the options used when a caller sets nothing
func DefaultOptions() Options {
	return Options{
		Threshold:     dedup.DefaultThreshold,
		GlobalTimeout: DefaultGlobalTimeout,
		FeedTimeout:   DefaultFeedTimeout,
		RetryBackoff:  DefaultRetryBackoff,
		Order:         OrderFeed,
	}
}

// normalized fills unset durations and bounds numeric fields
func (o Options) normalized() Options {
	o.Threshold = dedup.ClampThreshold(o.Threshold)
	if o.LimitPerFeed < 0 {
		o.LimitPerFeed = 0
	}
	if o.GlobalTimeout <= 0 {
		o.GlobalTimeout = DefaultGlobalTimeout
	}
	if o.FeedTimeout <= 0 {
		o.FeedTimeout = DefaultFeedTimeout
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = DefaultRetryBackoff
	}
	if o.Order == "" {
		o.Order = OrderFeed
	}
	if o.MaxConcurrency < 0 {
		o.MaxConcurrency = 0
	}
	return o
}

// feedLimit returns the tighter of the per-call and per-feed caps
func (o Options) feedLimit(source int) int {
	switch {
	case source <= 0:
		return o.LimitPerFeed
	case o.LimitPerFeed <= 0:
		return source
	default:
		return min(source, o.LimitPerFeed)
	}
}
