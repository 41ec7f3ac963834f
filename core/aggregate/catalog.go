package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sports-news-api/core/domain"
)

// AggregateCatalog aggregates several topics concurrently and returns results
// in the requested order. No topics means every catalog topic. Every topic is
// resolved before anything is fetched, so an unknown topic fails fast.
func (s *Service) AggregateCatalog(ctx context.Context, catalog *domain.Catalog, topics []string, opts Options) ([]*domain.AggregationResult, error) {
	if len(topics) == 0 {
		topics = catalog.Topics()
	}

	sources := make([][]domain.FeedSource, len(topics))
	for i, topic := range topics {
		src, err := catalog.Sources(topic)
		if err != nil {
			return nil, err
		}
		sources[i] = src
	}

	results := make([]*domain.AggregationResult, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	for i, topic := range topics {
		g.Go(func() error {
			res, err := s.Aggregate(gctx, topic, sources[i], opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
