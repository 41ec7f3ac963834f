// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Cache.Get for missing or expired keys
var ErrKeyNotFound = errors.New("key not found")

// Cache defines the interface for the key/value stores that receive
// one-shot aggregation dumps. Implementations can be a JSON file directory,
// in-memory, Redis, SQLite or Postgres.
//
// The pipeline never reads fetched feeds back from a Cache; every aggregation
// performs a fresh fetch. A Cache only holds snapshots a caller asked to save.
//
// Example usage:
//
//	store := someStore // implements Cache
//
//	// Save a snapshot
//	err := store.Set(ctx, "dump:soccer", resultJSON, 24*time.Hour)
//
//	// Read it back
//	data, err := store.Get(ctx, "dump:soccer")
//	if err != nil {
//		// handle error or missing snapshot
//	}
type Cache interface {
	// Get retrieves a value by key.
	// Returns ErrKeyNotFound if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
