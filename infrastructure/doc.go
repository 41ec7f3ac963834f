// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache: NewDumpStore picks a snapshot backend from configuration
// - cache/file: One JSON file per topic, written atomically
// - cache/memory: In-process store on go-cache
// - cache/redis: Redis store on go-redis
// - cache/sqlite: SQLite table on go-sqlite3
// - cache/postgres: PostgreSQL table on pgx
// - http/standard: net/http client that sends the aggregator's user agent
// - logger/structured: logrus logger with optional rotated files
//
// # Dump Stores
//
//	store, closeStore, err := cache.NewDumpStore(ctx, cfg.Dump)
//	if err != nil {
//	    // fall back to memory
//	}
//	defer closeStore()
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Feed fetched", map[string]interface{}{
//	    "url":     feedURL,
//	    "entries": 20,
//	})
package infrastructure
