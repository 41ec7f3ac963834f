// ABOUTME: Error types and handling for the sports news library
// ABOUTME: Provides structured errors with context for library operations

package sportsnews

import (
	"errors"
	"fmt"

	coreerrors "sports-news-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates an unknown sport, an empty feed list or a bad option
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeStorage indicates a dump could not be written
	ErrorTypeStorage ErrorType = "storage"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrNoDumpStore is returned when a dump is requested without a configured store
var ErrNoDumpStore = NewError(ErrorTypeConfiguration, "no dump store configured")

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}

// IsStorageError checks if an error is a storage error
func IsStorageError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeStorage
}

// fromCore wraps a pipeline error in a library error
func fromCore(err error, sport string) error {
	if err == nil {
		return nil
	}
	var configErr *coreerrors.ConfigError
	if errors.As(err, &configErr) {
		return NewError(ErrorTypeConfiguration, configErr.Message).
			WithCause(err).
			WithContext("sport", sport)
	}
	return NewError(ErrorTypeInternal, "aggregation failed").WithCause(err).WithContext("sport", sport)
}
