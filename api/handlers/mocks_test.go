package handlers

import (
	"context"
	"sync"
	"time"

	"sports-news-api/core/aggregate"
	"sports-news-api/core/domain"
)

type aggregateCall struct {
	topic   string
	sources []domain.FeedSource
	opts    aggregate.Options
}

// fakeService records calls and returns canned results
type fakeService struct {
	mu      sync.Mutex
	result  *domain.AggregationResult
	err     error
	report  domain.HealthReport
	dumpErr error

	calls  []aggregateCall
	dumped []*domain.AggregationResult
}

func (f *fakeService) Aggregate(ctx context.Context, topic string, sources []domain.FeedSource, opts aggregate.Options) (*domain.AggregationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, aggregateCall{topic: topic, sources: sources, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	res.Topic = topic
	return &res, nil
}

func (f *fakeService) HealthCheck(ctx context.Context, sources []domain.FeedSource, timeout time.Duration) domain.HealthReport {
	return f.report
}

func (f *fakeService) Dump(ctx context.Context, result *domain.AggregationResult, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dumpErr != nil {
		return f.dumpErr
	}
	f.dumped = append(f.dumped, result)
	return nil
}

func (f *fakeService) lastCall() aggregateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(map[string][]domain.FeedSource{
		"soccer": {
			{URL: "https://www.skysports.com/rss/12040"},
			{URL: "https://www.bbc.co.uk/sport/football/rss.xml"},
		},
		"nba": {
			{URL: "https://www.cbssports.com/rss/headlines/nba/"},
		},
	})
}

func testResult() *domain.AggregationResult {
	return &domain.AggregationResult{
		Articles: []domain.Article{
			{
				Title:       "Late winner sends City top",
				Link:        "https://example.com/city",
				PublishedAt: time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC),
				Source:      "example.com",
				Summary:     "A stoppage-time goal decided it.",
				Topic:       "soccer",
			},
			{
				Title: "Transfer window <rumours> & gossip",
				Link:  "https://example.com/gossip",
				Topic: "soccer",
			},
		},
		Feeds: []domain.FeedOutcome{
			{Topic: "soccer", URL: "https://www.skysports.com/rss/12040", Status: domain.FeedSucceeded, Entries: 3, Kept: 2},
			{Topic: "soccer", URL: "https://www.bbc.co.uk/sport/football/rss.xml", Status: domain.FeedFailed, Error: "unexpected status 503"},
		},
		Stats: domain.AggregationStats{Raw: 3, Items: 2, DroppedByTitle: 1, Threshold: 85, LimitPerFeed: 50, FuzzyAvailable: true},
	}
}

func testDefaults() aggregate.Options {
	opts := aggregate.DefaultOptions()
	opts.LimitPerFeed = 50
	return opts
}
