package sportsnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-news-api/core/aggregate"
	"sports-news-api/infrastructure/cache/memory"
)

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	feeds := map[string]string{
		"/soccer-a": rss(
			"Arsenal sign new striker", "https://news.example.com/arsenal", "Mon, 04 Mar 2024 10:00:00 GMT",
			"Liverpool win derby", "https://news.example.com/derby", "Tue, 05 Mar 2024 10:00:00 GMT",
		),
		"/soccer-b": rss(
			"ARSENAL SIGN NEW STRIKER", "https://other.example.com/arsenal", "",
		),
		"/nba": rss(
			"Celtics clinch top seed", "https://hoops.example.com/celtics", "Mon, 04 Mar 2024 02:00:00 EST",
		),
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := feeds[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// rss builds a feed from title, link, pubDate triples; an empty pubDate is omitted
func rss(triples ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>`)
	for i := 0; i+2 < len(triples); i += 3 {
		fmt.Fprintf(&b, `<item><title>%s</title><link>%s</link>`, triples[i], triples[i+1])
		if triples[i+2] != "" {
			fmt.Fprintf(&b, `<pubDate>%s</pubDate>`, triples[i+2])
		}
		b.WriteString(`</item>`)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func newTestClient(t *testing.T, extra ...Option) *Client {
	t.Helper()
	server := feedServer(t)
	opts := append([]Option{
		WithQuietMode(),
		WithFeeds(map[string][]string{
			"soccer": {server.URL + "/soccer-a", server.URL + "/soccer-b"},
			"nba":    {server.URL + "/nba", server.URL + "/missing"},
		}),
	}, extra...)

	client, err := NewClient(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)

	assert.Contains(t, client.Sports(), "soccer")
	assert.Contains(t, client.Sports(), "f1")
	assert.True(t, client.FuzzyAvailable())
}

func TestNewClient_OptionErrors(t *testing.T) {
	_, err := NewClient(WithRetries(-1))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithTimeouts(0, time.Second))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithCatalogFile("/does/not/exist.yaml"))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithHTTPClient(nil))
	assert.True(t, IsConfigurationError(err))
}

func TestClient_Aggregate(t *testing.T) {
	client := newTestClient(t)

	res, err := client.Aggregate(context.Background(), "soccer")
	require.NoError(t, err)

	require.Len(t, res.Articles, 2)
	assert.Equal(t, "Arsenal sign new striker", res.Articles[0].Title)
	assert.Equal(t, "Liverpool win derby", res.Articles[1].Title)
	assert.Equal(t, 1, res.Stats.DroppedByTitle)
	assert.Equal(t, 3, res.Stats.Raw)
	require.NotNil(t, res.Articles[0].Published)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), *res.Articles[0].Published)
	assert.Empty(t, res.DumpKey)
}

func TestClient_Aggregate_NewestFirst(t *testing.T) {
	client := newTestClient(t)

	res, err := client.Aggregate(context.Background(), "soccer", WithNewestFirst())
	require.NoError(t, err)
	require.Len(t, res.Articles, 2)
	assert.Equal(t, "Liverpool win derby", res.Articles[0].Title)
}

func TestClient_Aggregate_ExactMatching(t *testing.T) {
	client := newTestClient(t, WithFuzzyMatching(false))

	res, err := client.Aggregate(context.Background(), "soccer")
	require.NoError(t, err)

	// normalized titles are identical, so exact matching still drops the shouted copy
	assert.Len(t, res.Articles, 2)
	assert.False(t, res.Stats.FuzzyAvailable)
}

func TestClient_Aggregate_PartialFailure(t *testing.T) {
	client := newTestClient(t)

	res, err := client.Aggregate(context.Background(), "nba")
	require.NoError(t, err)

	require.Len(t, res.Articles, 1)
	require.Len(t, res.Feeds, 2)
	assert.Equal(t, "succeeded", res.Feeds[0].Status)
	assert.Equal(t, "failed", res.Feeds[1].Status)
	assert.Equal(t, time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC), *res.Articles[0].Published)
}

func TestClient_Aggregate_UnknownSport(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Aggregate(context.Background(), "curling")
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestClient_Aggregate_Save(t *testing.T) {
	store := memory.NewMemoryCache()
	client := newTestClient(t, WithDumpStore(store))

	res, err := client.Aggregate(context.Background(), "soccer", WithSave())
	require.NoError(t, err)
	assert.Equal(t, "dump:soccer", res.DumpKey)

	data, err := store.Get(context.Background(), aggregate.DumpKey("soccer"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Liverpool win derby")
}

func TestClient_Aggregate_SaveWithoutStore(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Aggregate(context.Background(), "soccer", WithSave())
	assert.ErrorIs(t, err, ErrNoDumpStore)
}

func TestClient_AggregateAll(t *testing.T) {
	client := newTestClient(t)

	results, err := client.AggregateAll(context.Background(), WithLimitPerFeed(1))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "nba", results[0].Sport)
	assert.Equal(t, "soccer", results[1].Sport)
	assert.Len(t, results[1].Articles, 1)
	assert.Equal(t, 1, results[1].Stats.LimitPerFeed)
}

func TestClient_HealthCheck(t *testing.T) {
	client := newTestClient(t)

	report := client.HealthCheck(context.Background())
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.OK)
	assert.False(t, report.Healthy())
}

func TestClient_Sources(t *testing.T) {
	client := newTestClient(t)

	sources := client.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, "nba", sources[0].Sport)
	assert.Len(t, sources[1].Feeds, 2)
}

func TestClient_Aggregate_FeedTimeoutAboveDefault(t *testing.T) {
	if testing.Short() {
		t.Skip("waits longer than the default feed timeout")
	}

	delay := aggregate.DefaultFeedTimeout + time.Second
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		_, _ = w.Write([]byte(rss("Late kickoff confirmed", "https://news.example.com/late", "")))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(
		WithQuietMode(),
		WithFeeds(map[string][]string{"soccer": {server.URL + "/slow"}}),
		WithTimeouts(delay+5*time.Second, delay+10*time.Second),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	res, err := client.Aggregate(context.Background(), "soccer")
	require.NoError(t, err)

	require.Len(t, res.Feeds, 1)
	assert.Equal(t, "succeeded", res.Feeds[0].Status, res.Feeds[0].Error)
	require.Len(t, res.Articles, 1)
	assert.Equal(t, "Late kickoff confirmed", res.Articles[0].Title)
}
