package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"sports-news-api/core/interfaces"
)

// feedStub describes how the mock client answers one URL
type feedStub struct {
	status int
	body   string
	delay  time.Duration
	err    error
}

// mockHTTPClient answers from a URL -> stub table and counts calls
type mockHTTPClient struct {
	mu    sync.Mutex
	stubs map[string]feedStub
	calls map[string]int
	// failFirst makes the first n calls per URL fail with a connection error
	failFirst int
}

func newMockHTTPClient(stubs map[string]feedStub) *mockHTTPClient {
	return &mockHTTPClient{stubs: stubs, calls: make(map[string]int)}
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls[url]++
	call := m.calls[url]
	stub, ok := m.stubs[url]
	m.mu.Unlock()

	if call <= m.failFirst {
		return nil, errors.New("connection reset by peer")
	}
	if !ok {
		return nil, fmt.Errorf("no route to %s", url)
	}

	if stub.delay > 0 {
		select {
		case <-time.After(stub.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if stub.err != nil {
		return nil, stub.err
	}

	status := stub.status
	if status == 0 {
		status = 200
	}
	return &mockResponse{statusCode: status, body: stub.body}, nil
}

func (m *mockHTTPClient) callCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[url]
}

type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }

func (m *mockResponse) Header(key string) string { return "" }

// mockCache is an in-memory dump store
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// rss builds a minimal RSS document from title/link pairs
func rss(pairs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>`)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, "<item><title>%s</title><link>%s</link></item>", pairs[i], pairs[i+1])
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

// rssDated builds an RSS document with a pubDate per item: title, link, date triples
func rssDated(triples ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>`)
	for i := 0; i+2 < len(triples); i += 3 {
		fmt.Fprintf(&b, "<item><title>%s</title><link>%s</link><pubDate>%s</pubDate></item>", triples[i], triples[i+1], triples[i+2])
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}
