package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
)

// DumpKey is the store key holding the latest snapshot of a topic
func DumpKey(topic string) string {
	return "dump:" + topic
}

// Dump writes result as a JSON snapshot under key. A ttl of 0 keeps it indefinitely.
func Dump(ctx context.Context, store interfaces.Cache, key string, result *domain.AggregationResult, ttl time.Duration) error {
	if store == nil {
		return fmt.Errorf("dump store not configured")
	}
	if result == nil {
		return fmt.Errorf("nothing to dump for key %s", key)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode dump: %w", err)
	}

	if err := store.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to write dump %s: %w", key, err)
	}
	return nil
}

// Dump saves result into the configured dump store under its topic key
func (s *Service) Dump(ctx context.Context, result *domain.AggregationResult, ttl time.Duration) error {
	if result == nil {
		return fmt.Errorf("nothing to dump")
	}
	key := DumpKey(result.Topic)
	if err := Dump(ctx, s.deps.Cache, key, result, ttl); err != nil {
		return err
	}
	s.logger.Info("Saved aggregation dump", map[string]interface{}{
		"key":   key,
		"items": len(result.Articles),
	})
	return nil
}
