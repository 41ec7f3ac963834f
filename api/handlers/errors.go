// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "sports-news-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}

	var configErr *coreerrors.ConfigError
	if errors.As(err, &configErr) {
		return huma.Error400BadRequest(configErr.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Aggregation timed out", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
