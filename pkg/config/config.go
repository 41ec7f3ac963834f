// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, logging, pipeline and dump stores

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logger configuration
	Log LogConfig

	// Pipeline contains aggregation defaults
	Pipeline PipelineConfig

	// Dump contains snapshot store configuration
	Dump DumpConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// PipelineConfig holds the defaults used for every aggregation
type PipelineConfig struct {
	// FeedsFile is a YAML catalog path; empty uses the embedded catalog
	FeedsFile string

	// FuzzyThreshold is the default title similarity threshold (0-100)
	FuzzyThreshold int

	// LimitPerFeed is the default per-feed entry cap
	LimitPerFeed int

	// FeedTimeout bounds each feed request
	FeedTimeout time.Duration

	// GlobalTimeout bounds one topic aggregation
	GlobalTimeout time.Duration

	// Retries is how many extra attempts retryable fetch failures get
	Retries int

	// MaxConcurrency caps simultaneous fetches per topic; 0 means unbounded
	MaxConcurrency int
}

// DumpConfig holds snapshot store configuration
type DumpConfig struct {
	// Backend is one of file, memory, redis, sqlite, postgres
	Backend string

	// Dir is where the file backend writes snapshots
	Dir string

	// TTL is how long stores that support expiry keep a snapshot
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// PostgresURL is the connection string for the postgres backend
	PostgresURL string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces dump keys
	KeyPrefix string
}

// Dump backends
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var validBackends = []string{BackendFile, BackendMemory, BackendRedis, BackendSQLite, BackendPostgres}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			AllowedOrigins: getEnvAsListOrDefault("CORS_ORIGINS", nil),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Pipeline: PipelineConfig{
			FeedsFile:      getEnvOrDefault("FEEDS_FILE", ""),
			FuzzyThreshold: getEnvAsIntOrDefault("FUZZY_THRESHOLD", 85),
			LimitPerFeed:   getEnvAsIntOrDefault("LIMIT_PER_FEED", 50),
			FeedTimeout:    getEnvAsSecondsOrDefault("FEED_TIMEOUT_SECONDS", 12),
			GlobalTimeout:  getEnvAsSecondsOrDefault("GLOBAL_TIMEOUT_SECONDS", 30),
			Retries:        getEnvAsIntOrDefault("FEED_RETRIES", 0),
			MaxConcurrency: getEnvAsIntOrDefault("MAX_CONCURRENCY", 0),
		},
		Dump: DumpConfig{
			Backend: strings.ToLower(getEnvOrDefault("DUMP_BACKEND", BackendFile)),
			Dir:     getEnvOrDefault("DUMP_DIR", "."),
			TTL:     getEnvAsSecondsOrDefault("DUMP_TTL_SECONDS", 86400),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "sportsnews:"),
			},
			SQLitePath:  getEnvOrDefault("SQLITE_PATH", "dumps.db"),
			PostgresURL: getEnvOrDefault("POSTGRES_URL", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsSecondsOrDefault reads a whole number of seconds
func getEnvAsSecondsOrDefault(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultSeconds)) * time.Second
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Pipeline.FuzzyThreshold < 0 || c.Pipeline.FuzzyThreshold > 100 {
		return errors.New("fuzzy threshold must be between 0 and 100")
	}

	if c.Pipeline.LimitPerFeed < 0 {
		return errors.New("limit per feed cannot be negative")
	}

	if c.Pipeline.FeedTimeout < time.Second {
		return errors.New("feed timeout must be at least 1 second")
	}

	if c.Pipeline.GlobalTimeout < c.Pipeline.FeedTimeout {
		return errors.New("global timeout cannot be shorter than the feed timeout")
	}

	if c.Pipeline.Retries < 0 {
		return errors.New("retries cannot be negative")
	}

	if !isValidBackend(c.Dump.Backend) {
		return fmt.Errorf("dump backend must be one of: %s", strings.Join(validBackends, ", "))
	}

	if c.Dump.Backend == BackendRedis && c.Dump.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis dumps")
	}

	if c.Dump.Backend == BackendPostgres && c.Dump.PostgresURL == "" {
		return errors.New("postgres url cannot be empty when using postgres dumps")
	}

	return nil
}

func isValidBackend(backend string) bool {
	for _, b := range validBackends {
		if b == backend {
			return true
		}
	}
	return false
}
