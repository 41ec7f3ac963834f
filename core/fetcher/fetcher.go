// ABOUTME: Feed fetcher retrieves raw feed bytes for one URL with a per-request timeout
// ABOUTME: Classifies failures as timeout, connection or HTTP status errors without retrying

package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	coreerrors "sports-news-api/core/errors"
	"sports-news-api/core/interfaces"
)

// MaxBodyBytes caps how much of a feed response is read
const MaxBodyBytes = 8 << 20

// Fetcher downloads feed documents through an injected HTTP client
type Fetcher struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewFetcher creates a fetcher using the HTTP client and logger from deps
func NewFetcher(deps interfaces.Dependencies) *Fetcher {
	return &Fetcher{
		client: deps.HTTPClient,
		logger: interfaces.LoggerOrNop(deps.Logger),
	}
}

// Fetch returns the raw body of url. A timeout <= 0 relies on ctx alone.
// Errors are always *coreerrors.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	if f.client == nil {
		return nil, &coreerrors.FetchError{Kind: coreerrors.FetchConnection, URL: url, Err: errors.New("HTTP client not configured")}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		fetchErr := classify(ctx, url, err)
		f.logger.Warn("Feed request failed", map[string]interface{}{
			"url":         url,
			"kind":        string(fetchErr.Kind),
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil, fetchErr
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		f.logger.Warn("Feed returned non-2xx status", map[string]interface{}{
			"url":         url,
			"status":      resp.StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil, &coreerrors.FetchError{Kind: coreerrors.FetchHTTPStatus, URL: url, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), MaxBodyBytes))
	if err != nil {
		return nil, classify(ctx, url, fmt.Errorf("read body: %w", err))
	}

	f.logger.Info("Fetched feed", map[string]interface{}{
		"url":         url,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return body, nil
}

// Probe checks that url answers with a 2xx status without reading the body.
// It returns the status code (0 when no response arrived).
func (f *Fetcher) Probe(ctx context.Context, url string, timeout time.Duration) (int, error) {
	if f.client == nil {
		return 0, &coreerrors.FetchError{Kind: coreerrors.FetchConnection, URL: url, Err: errors.New("HTTP client not configured")}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return 0, classify(ctx, url, err)
	}
	resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return resp.StatusCode(), &coreerrors.FetchError{Kind: coreerrors.FetchHTTPStatus, URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.StatusCode(), nil
}

// classify maps a transport error to a FetchError kind
func classify(ctx context.Context, url string, err error) *coreerrors.FetchError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &coreerrors.FetchError{Kind: coreerrors.FetchTimeout, URL: url, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &coreerrors.FetchError{Kind: coreerrors.FetchTimeout, URL: url, Err: err}
	}

	return &coreerrors.FetchError{Kind: coreerrors.FetchConnection, URL: url, Err: err}
}
