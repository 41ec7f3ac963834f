package config

import "sports-news-api/core/aggregate"

// AggregateOptions turns the pipeline settings into per-call aggregation defaults
func (p PipelineConfig) AggregateOptions() aggregate.Options {
	opts := aggregate.DefaultOptions()
	opts.Threshold = p.FuzzyThreshold
	opts.LimitPerFeed = p.LimitPerFeed
	opts.Retries = p.Retries
	opts.MaxConcurrency = p.MaxConcurrency
	if p.FeedTimeout > 0 {
		opts.FeedTimeout = p.FeedTimeout
	}
	if p.GlobalTimeout > 0 {
		opts.GlobalTimeout = p.GlobalTimeout
	}
	return opts
}
