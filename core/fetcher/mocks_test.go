package fetcher

import (
	"context"
	"io"
	"strings"

	"sports-news-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingCloser{Reader: strings.NewReader(m.body), resp: m}
}

func (m *mockResponse) Header(key string) string {
	return ""
}

type trackingCloser struct {
	io.Reader
	resp *mockResponse
}

func (c *trackingCloser) Close() error {
	c.resp.closed = true
	return nil
}

// recordingLogger captures messages for assertions
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}
