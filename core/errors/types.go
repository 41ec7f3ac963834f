// ABOUTME: Custom error types for the aggregation pipeline
// ABOUTME: Separates recoverable per-feed failures from caller contract violations

package errors

import (
	"errors"
	"fmt"
)

// FetchKind classifies why a feed fetch failed
type FetchKind string

const (
	// FetchTimeout means the request did not finish before its deadline
	FetchTimeout FetchKind = "timeout"

	// FetchConnection means the request failed at the transport level
	FetchConnection FetchKind = "connection"

	// FetchHTTPStatus means the server answered with a non-2xx status
	FetchHTTPStatus FetchKind = "http_status"
)

// FetchError represents a failed feed retrieval
type FetchError struct {
	Kind       FetchKind
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchHTTPStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case FetchTimeout:
		return fmt.Sprintf("fetch %s: timed out", e.URL)
	default:
		if e.Err != nil {
			return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("fetch %s: connection error", e.URL)
	}
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a retry could plausibly succeed
func (e *FetchError) Retryable() bool {
	switch e.Kind {
	case FetchConnection:
		return true
	case FetchHTTPStatus:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// ParseError represents a feed body that could not be parsed
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid aggregation request (unknown topic, empty feed list)
type ConfigError struct {
	Topic   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Topic == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error for topic '%s': %s", e.Topic, e.Message)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsTimeout checks if an error is a FetchError caused by a timeout
func IsTimeout(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == FetchTimeout
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
