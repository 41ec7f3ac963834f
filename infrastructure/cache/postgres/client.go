// ABOUTME: Postgres dump store implementation on a pgx connection pool
// ABOUTME: Snapshots are upserted into a single key/value table with optional expiry

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sports-news-api/core/interfaces"
)

const schema = `
CREATE TABLE IF NOT EXISTS sports_news_dumps (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	expires_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Store implements the Cache interface using Postgres
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to databaseURL, pings it and ensures the table exists
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, errors.New("postgres url cannot be empty")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	store := &Store{pool: pool}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create dumps table: %w", err)
	}

	return store, nil
}

// Get retrieves a snapshot that has not expired
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM sports_news_dumps WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Set upserts a snapshot; 0 TTL never expires
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl).UTC()
		expiresAt = &t
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sports_news_dumps (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now();`,
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a snapshot; missing keys are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sports_news_dumps WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (s *Store) Close() {
	s.pool.Close()
}
