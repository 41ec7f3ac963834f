// ABOUTME: Redis dump store for aggregation snapshots using go-redis
// ABOUTME: Each topic dump is one string value under a namespaced key with the dump TTL

package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sports-news-api/core/interfaces"
	"sports-news-api/pkg/config"
)

// DefaultKeyPrefix namespaces dump keys when the configuration sets none
const DefaultKeyPrefix = "sportsnews:"

const pingTimeout = 5 * time.Second

// Store keeps aggregation dumps in Redis. Keys such as "dump:soccer" are
// written as "<prefix>dump:soccer" so several deployments can share a database.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to Redis and verifies the connection with a ping
func NewStore(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}

	return &Store{client: client, prefix: keyPrefix(cfg.KeyPrefix)}, nil
}

func keyPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return DefaultKeyPrefix
	}
	return prefix
}

// Key returns the Redis key a dump key is stored under
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Get returns a saved snapshot or interfaces.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set replaces the snapshot for key. A zero ttl keeps it until replaced.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.Key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a snapshot; missing keys are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.Key(key)).Err()
}

// Close closes the Redis connection pool
func (s *Store) Close() error {
	return s.client.Close()
}
