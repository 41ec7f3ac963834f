// ABOUTME: Dump store factory picks the configured snapshot backend
// ABOUTME: Returns the store together with a close function for shutdown

package cache

import (
	"context"
	"fmt"

	"sports-news-api/core/interfaces"
	"sports-news-api/infrastructure/cache/file"
	"sports-news-api/infrastructure/cache/memory"
	"sports-news-api/infrastructure/cache/postgres"
	"sports-news-api/infrastructure/cache/redis"
	"sports-news-api/infrastructure/cache/sqlite"
	"sports-news-api/pkg/config"
)

// NewDumpStore opens the backend named in cfg.Backend
func NewDumpStore(ctx context.Context, cfg config.DumpConfig) (interfaces.Cache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendFile, "":
		store, err := file.NewStore(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.BackendMemory:
		return memory.NewMemoryCache(), noop, nil

	case config.BackendRedis:
		store, err := redis.NewStore(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil

	case config.BackendSQLite:
		store, err := sqlite.NewSQLiteCache(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil

	case config.BackendPostgres:
		store, err := postgres.NewStore(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		return store, func() error { store.Close(); return nil }, nil

	default:
		return nil, noop, fmt.Errorf("unknown dump backend %q", cfg.Backend)
	}
}
