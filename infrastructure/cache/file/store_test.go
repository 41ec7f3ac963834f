package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-news-api/core/interfaces"
)

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"dump:soccer":    "sports_news_soccer.json",
		"dump:all":       "sports_news_all.json",
		"dump:F1":        "sports_news_f1.json",
		"dump:../escape": "sports_news____escape.json",
		"dump:":          "sports_news_all.json",
		"custom-key":     "sports_news_custom-key.json",
	}
	for key, want := range tests {
		assert.Equal(t, want, fileName(key), key)
	}
}

func TestStore_SetWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "dump:soccer", []byte(`{"sport":"soccer","items":[]}`), 0))

	raw, err := os.ReadFile(filepath.Join(dir, "sports_news_soccer.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "\n  \"sport\": \"soccer\""), string(raw))
}

func TestStore_SetKeepsNonJSON(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "dump:raw", []byte("plain text"), 0))
	got, err := store.Get(ctx, "dump:raw")
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(got))
}

func TestStore_GetMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "dump:curling")
	assert.True(t, errors.Is(err, interfaces.ErrKeyNotFound))
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "dump:nba", []byte(`[1]`), 0))
	require.NoError(t, store.Set(ctx, "dump:nba", []byte(`[2]`), 0))

	got, err := store.Get(ctx, "dump:nba")
	require.NoError(t, err)
	assert.Contains(t, string(got), "2")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")

	require.NoError(t, store.Delete(ctx, "dump:nba"))
	require.NoError(t, store.Delete(ctx, "dump:nba"))
	_, err = store.Get(ctx, "dump:nba")
	assert.True(t, errors.Is(err, interfaces.ErrKeyNotFound))
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dumps")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
