package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soccerRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Soccer</title>
<item><title>Club signs striker</title><link>https://news.example.com/a</link><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>
<item><title>Club signs new striker</title><link>https://news.example.com/b</link></item>
<item><title>Derby ends level</title><link>https://news.example.com/c</link><pubDate>Tue, 03 Jan 2006 15:04:05 GMT</pubDate></item>
</channel></rss>`

const tennisRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Tennis</title>
<item><title>Final goes to five sets</title><link>https://news.example.com/t</link></item>
</channel></rss>`

// setup serves two sports and points the CLI at them
func setup(t *testing.T) (feedsFile string, brokenURL string) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/soccer", func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, soccerRSS) })
	mux.HandleFunc("/tennis", func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, tennisRSS) })
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) })
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	feedsFile = filepath.Join(t.TempDir(), "feeds.yaml")
	yaml := fmt.Sprintf("topics:\n  soccer:\n    - %s/soccer\n  tennis:\n    - %s/tennis\n", srv.URL, srv.URL)
	require.NoError(t, os.WriteFile(feedsFile, []byte(yaml), 0o600))

	t.Setenv("DUMP_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "error")
	return feedsFile, srv.URL + "/broken"
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAggregate_OneSport(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "aggregate", "--sport", "soccer")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Club signs striker", items[0]["title"])
	assert.Equal(t, "Derby ends level", items[1]["title"])
	assert.Equal(t, "soccer", items[0]["sport"])
}

func TestAggregate_NewestFirstWithDebug(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "aggregate", "-s", "soccer", "--order", "newest", "--debug")
	require.NoError(t, err)

	var resp struct {
		Items []map[string]any `json:"items"`
		Meta  struct {
			Sport          string `json:"sport"`
			Raw            int    `json:"raw"`
			DroppedByTitle int    `json:"dropped_by_title"`
			Order          string `json:"order"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Derby ends level", resp.Items[0]["title"])
	assert.Equal(t, "soccer", resp.Meta.Sport)
	assert.Equal(t, 3, resp.Meta.Raw)
	assert.Equal(t, 1, resp.Meta.DroppedByTitle)
	assert.Equal(t, "newest", resp.Meta.Order)
}

func TestAggregate_ThresholdOverride(t *testing.T) {
	feeds, _ := setup(t)

	// 100 only collapses identical normalized titles
	out, err := run(t, "--feeds", feeds, "aggregate", "-s", "soccer", "--threshold", "100")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 3)
}

func TestAggregate_AllSportsMerged(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "aggregate")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 3)
}

func TestAggregate_PerSport(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "aggregate", "--per-sport", "--limit", "1")
	require.NoError(t, err)

	var results [][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, items := range results {
		assert.Len(t, items, 1)
	}
}

func TestAggregate_UnknownSport(t *testing.T) {
	feeds, _ := setup(t)

	_, err := run(t, "--feeds", feeds, "aggregate", "--sport", "curling")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Valid: soccer, tennis")
}

func TestAggregate_BadOrder(t *testing.T) {
	feeds, _ := setup(t)

	_, err := run(t, "--feeds", feeds, "aggregate", "--order", "oldest")
	assert.Error(t, err)
}

func TestAggregate_SaveDisabled(t *testing.T) {
	feeds, _ := setup(t)
	t.Setenv("FEATURE_DUMP_ENABLED", "false")

	_, err := run(t, "--feeds", feeds, "aggregate", "--save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestAggregate_SaveToFileStore(t *testing.T) {
	feeds, _ := setup(t)
	dir := t.TempDir()
	t.Setenv("DUMP_BACKEND", "file")
	t.Setenv("DUMP_DIR", dir)

	_, err := run(t, "--feeds", feeds, "aggregate", "--sport", "tennis", "--save")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "sports_news_tennis.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Final goes to five sets")
}

func TestSources(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "sources")
	require.NoError(t, err)

	var sources []struct {
		Sport string   `json:"sport"`
		Feeds []string `json:"feeds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sources))
	require.Len(t, sources, 2)
	assert.Equal(t, "soccer", sources[0].Sport)
	assert.Len(t, sources[0].Feeds, 1)
}

func TestHealth(t *testing.T) {
	feeds, _ := setup(t)

	out, err := run(t, "--feeds", feeds, "health")
	require.NoError(t, err)
	assert.Contains(t, out, `"feed_ok": 2`)
}

func TestHealth_UnreachableFeedFails(t *testing.T) {
	_, broken := setup(t)
	feeds := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(feeds, []byte("topics:\n  soccer:\n    - "+broken+"\n"), 0o600))

	out, err := run(t, "--feeds", feeds, "health")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 feeds unreachable")
	assert.Contains(t, out, `"status": 502`)
}

func TestInvalidConfiguration(t *testing.T) {
	feeds, _ := setup(t)
	t.Setenv("FUZZY_THRESHOLD", "120")

	_, err := run(t, "--feeds", feeds, "sources")
	assert.Error(t, err)
}
