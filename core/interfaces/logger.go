package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core free of a concrete logging library.
//
// Example usage:
//
//	logger.Info("Fetched feed", map[string]interface{}{
//		"url":         "https://www.espn.com/espn/rss/soccer/news",
//		"bytes":       48213,
//		"duration_ms": 412,
//	})
//
//	logger.Warn("Feed failed", map[string]interface{}{
//		"url":   "https://www.skysports.com/rss/12040",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Used for degraded feeds that don't prevent an aggregation from completing.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Services fall back to it when no logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}

// LoggerOrNop returns l, or a NopLogger when l is nil
func LoggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
