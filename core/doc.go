// Package core contains the business logic of the sports news aggregator.
// It does not depend on any web framework or storage backend.
//
// The core package is organized into several sub-packages:
//
// - domain: Articles, feed sources, the topic catalog and aggregation results
// - fetcher: Downloads feeds through the injected HTTP client and classifies failures
// - parser: Turns RSS/Atom bytes into normalized articles
// - dedup: Link canonicalization, title normalization and similarity scoring
// - aggregate: Concurrent fetch, merge and de-duplication per topic, health probes and dumps
// - errors: Configuration and fetch error types
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "sports-news-api/core/aggregate"
//	    "sports-news-api/core/dedup"
//	    "sports-news-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myStore,      // implements interfaces.Cache, used for dumps
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := aggregate.NewService(deps, dedup.SelectScorer(true))
//	result, err := service.Aggregate(ctx, "soccer", sources, aggregate.DefaultOptions())
package core
