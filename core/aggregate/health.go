package aggregate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"sports-news-api/core/domain"
)

// HealthCheck probes every source concurrently without parsing anything
func (s *Service) HealthCheck(ctx context.Context, sources []domain.FeedSource, timeout time.Duration) domain.HealthReport {
	if timeout <= 0 {
		timeout = DefaultFeedTimeout
	}

	feeds := make([]domain.FeedHealth, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			start := time.Now()
			status, err := s.fetcher.Probe(ctx, src.URL, timeout)
			feeds[i] = domain.FeedHealth{
				Topic:      src.Topic,
				URL:        src.URL,
				Reachable:  err == nil,
				StatusCode: status,
				Latency:    time.Since(start),
			}
			if err != nil {
				feeds[i].Error = err.Error()
			}
			return nil
		})
	}
	// tasks record failures in their slot and never return an error
	g.Wait()

	report := domain.HealthReport{Feeds: feeds, Total: len(feeds)}
	for _, f := range feeds {
		if f.Reachable {
			report.OK++
		}
	}

	s.logger.Info("Health check finished", map[string]interface{}{
		"ok":    report.OK,
		"total": report.Total,
	})

	return report
}
