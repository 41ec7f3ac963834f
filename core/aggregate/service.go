// ABOUTME: Aggregation service fans out feed fetches for a topic and merges the results
// ABOUTME: Feeds degrade independently; only configuration errors fail an aggregation

package aggregate

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sports-news-api/core/dedup"
	"sports-news-api/core/domain"
	coreerrors "sports-news-api/core/errors"
	"sports-news-api/core/fetcher"
	"sports-news-api/core/interfaces"
	"sports-news-api/core/parser"
)

// Service runs the fetch, parse and de-duplicate pipeline
type Service struct {
	deps    interfaces.Dependencies
	logger  interfaces.Logger
	fetcher *fetcher.Fetcher
	parser  *parser.Parser
	dedup   *dedup.Deduplicator
}

// NewService creates an aggregation service.
// scorer decides title similarity; nil means exact matching.
func NewService(deps interfaces.Dependencies, scorer dedup.Scorer) *Service {
	logger := interfaces.LoggerOrNop(deps.Logger)
	return &Service{
		deps:    deps,
		logger:  logger,
		fetcher: fetcher.NewFetcher(deps),
		parser:  parser.NewParser(logger),
		dedup:   dedup.NewDeduplicator(scorer),
	}
}

// FuzzyAvailable reports whether approximate title matching is active
func (s *Service) FuzzyAvailable() bool {
	return s.dedup.FuzzyAvailable()
}

// feedSlot is written by exactly one fetch task
type feedSlot struct {
	outcome  domain.FeedOutcome
	articles []domain.Article
}

// Aggregate fetches every source of topic concurrently and returns the
// de-duplicated articles in feed-configuration order. Feed failures are
// recorded in the result; the returned error is always a *coreerrors.ConfigError.
func (s *Service) Aggregate(ctx context.Context, topic string, sources []domain.FeedSource, opts Options) (*domain.AggregationResult, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return nil, &coreerrors.ConfigError{Message: "topic is required"}
	}
	if len(sources) == 0 {
		return nil, &coreerrors.ConfigError{Topic: topic, Message: "no feeds configured"}
	}
	opts = opts.normalized()

	ctx, cancel := context.WithTimeout(ctx, opts.GlobalTimeout)
	defer cancel()

	start := time.Now()
	slots := make([]feedSlot, len(sources))

	var g errgroup.Group
	if opts.MaxConcurrency > 0 {
		g.SetLimit(opts.MaxConcurrency)
	}
	for i, src := range sources {
		if src.Topic == "" {
			src.Topic = topic
		}
		g.Go(func() error {
			slots[i] = s.collect(ctx, src, opts)
			return nil
		})
	}
	// tasks record failures in their slot and never return an error
	g.Wait()

	result := s.merge(topic, slots, opts)

	s.logger.Info("Aggregated topic", map[string]interface{}{
		"topic":            topic,
		"feeds":            len(sources),
		"succeeded":        result.Succeeded(),
		"raw":              result.Stats.Raw,
		"items":            result.Stats.Items,
		"dropped_by_link":  result.Stats.DroppedByLink,
		"dropped_by_title": result.Stats.DroppedByTitle,
		"duration_ms":      time.Since(start).Milliseconds(),
	})

	return result, nil
}

// collect fetches and parses one feed into its slot
func (s *Service) collect(ctx context.Context, src domain.FeedSource, opts Options) feedSlot {
	start := time.Now()
	slot := feedSlot{outcome: domain.FeedOutcome{Topic: src.Topic, URL: src.URL}}
	fail := func(err error) feedSlot {
		slot.outcome.Status = statusFor(ctx, err)
		slot.outcome.Error = err.Error()
		slot.outcome.Duration = time.Since(start)
		return slot
	}

	body, err := s.fetchWithRetry(ctx, src.URL, opts)
	if err != nil {
		return fail(err)
	}

	seq, entries, err := s.parser.Parse(body, src)
	if err != nil {
		s.logger.Warn("Feed could not be parsed", map[string]interface{}{
			"url":   src.URL,
			"error": err.Error(),
		})
		return fail(err)
	}

	slot.articles = slices.Collect(parser.Limit(seq, opts.feedLimit(src.Limit)))
	slot.outcome.Status = domain.FeedSucceeded
	slot.outcome.Entries = entries
	slot.outcome.Duration = time.Since(start)

	s.logger.Info("Parsed feed", map[string]interface{}{
		"url":         src.URL,
		"entries":     entries,
		"articles":    len(slot.articles),
		"duration_ms": slot.outcome.DurationMS(),
	})

	return slot
}

// fetchWithRetry retries connection failures and 5xx responses with exponential backoff
func (s *Service) fetchWithRetry(ctx context.Context, url string, opts Options) ([]byte, error) {
	backoff := opts.RetryBackoff
	for attempt := 0; ; attempt++ {
		body, err := s.fetcher.Fetch(ctx, url, opts.FeedTimeout)
		if err == nil || attempt >= opts.Retries || !retryable(err) {
			return body, err
		}

		s.logger.Debug("Retrying feed", map[string]interface{}{
			"url":     url,
			"attempt": attempt + 1,
			"backoff": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, err
		case <-timer.C:
		}
		backoff *= 2
	}
}

func retryable(err error) bool {
	var fetchErr *coreerrors.FetchError
	return errors.As(err, &fetchErr) && fetchErr.Retryable()
}

// statusFor records expired deadlines as timeouts and everything else as failures
func statusFor(ctx context.Context, err error) domain.FeedStatus {
	if coreerrors.IsTimeout(err) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.FeedTimedOut
	}
	return domain.FeedFailed
}

// merge concatenates slots in configuration order and de-duplicates once
func (s *Service) merge(topic string, slots []feedSlot, opts Options) *domain.AggregationResult {
	result := &domain.AggregationResult{
		Topic:       topic,
		Feeds:       make([]domain.FeedOutcome, len(slots)),
		GeneratedAt: time.Now().UTC(),
	}

	var all []domain.Article
	for i, slot := range slots {
		result.Feeds[i] = slot.outcome
		all = append(all, slot.articles...)
	}

	deduped := s.dedup.Dedupe(all, opts.Threshold)
	articles := deduped.Articles

	kept := make(map[string]int, len(slots))
	for _, a := range articles {
		kept[a.FeedURL]++
	}
	for i := range result.Feeds {
		url := result.Feeds[i].URL
		result.Feeds[i].Kept = kept[url]
		// a feed configured twice only gets its kept count once
		kept[url] = 0
	}

	if opts.Order == OrderNewest {
		domain.SortNewestFirst(articles)
	}

	result.Articles = articles
	result.Stats = domain.AggregationStats{
		Raw:            len(all),
		Items:          len(articles),
		DroppedByLink:  deduped.DroppedByLink,
		DroppedByTitle: deduped.DroppedByTitle,
		Threshold:      opts.Threshold,
		LimitPerFeed:   opts.LimitPerFeed,
		FuzzyAvailable: s.dedup.FuzzyAvailable(),
	}
	return result
}
