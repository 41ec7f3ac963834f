package parser

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-news-api/core/domain"
	coreerrors "sports-news-api/core/errors"
)

var soccerSource = domain.FeedSource{Topic: "soccer", URL: "https://www.example.com/rss"}

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Example Sport</title>
    <link>https://www.example.com</link>
    <description>Sport news</description>
    <item>
      <title>  Team A wins 3-1  </title>
      <link>https://www.example.com/news/1</link>
      <description>&lt;p&gt;Late &lt;b&gt;winner&lt;/b&gt;&lt;/p&gt;</description>
      <pubDate>Tue, 05 Mar 2024 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No link here</title>
      <description>dropped</description>
    </item>
    <item>
      <link>https://www.example.com/news/untitled</link>
    </item>
    <item>
      <title>Undated story</title>
      <link>https://www.example.com/news/2</link>
      <pubDate>sometime soon</pubDate>
      <dc:publisher>Example Wire</dc:publisher>
    </item>
    <item>
      <title>GUID link</title>
      <guid isPermaLink="false">https://www.example.com/news/3</guid>
    </item>
  </channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Sport</title>
  <id>urn:uuid:feed</id>
  <updated>2024-03-05T10:00:00Z</updated>
  <entry>
    <title>Atom entry</title>
    <link href="https://atom.example.org/a"/>
    <id>urn:uuid:1</id>
    <updated>2024-03-05T10:00:00+02:00</updated>
    <summary>Short summary</summary>
  </entry>
</feed>`

func collect(t *testing.T, raw string, source domain.FeedSource) ([]domain.Article, int) {
	t.Helper()
	seq, entries, err := NewParser(nil).Parse([]byte(raw), source)
	require.NoError(t, err)
	return slices.Collect(seq), entries
}

func TestParse_RSS(t *testing.T) {
	articles, entries := collect(t, rssFeed, soccerSource)

	assert.Equal(t, 5, entries)
	require.Len(t, articles, 3)

	first := articles[0]
	assert.Equal(t, "Team A wins 3-1", first.Title)
	assert.Equal(t, "https://www.example.com/news/1", first.Link)
	assert.Equal(t, "Late winner", first.Summary)
	assert.Equal(t, "example.com", first.Source)
	assert.Equal(t, "soccer", first.Topic)
	assert.Equal(t, soccerSource.URL, first.FeedURL)
	assert.True(t, first.PublishedAt.Equal(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)))

	undated := articles[1]
	assert.Equal(t, "Undated story", undated.Title)
	assert.False(t, undated.HasPublished())
	assert.Equal(t, "", undated.Summary)
	assert.Equal(t, "Example Wire", undated.Source)

	assert.Equal(t, "https://www.example.com/news/3", articles[2].Link)
}

func TestParse_Atom(t *testing.T) {
	articles, entries := collect(t, atomFeed, domain.FeedSource{Topic: "f1", URL: "https://atom.example.org/feed"})

	assert.Equal(t, 1, entries)
	require.Len(t, articles, 1)
	assert.Equal(t, "Atom entry", articles[0].Title)
	assert.Equal(t, "https://atom.example.org/a", articles[0].Link)
	assert.Equal(t, "Short summary", articles[0].Summary)
	assert.True(t, articles[0].PublishedAt.Equal(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)))
}

func TestParse_CorruptFeed(t *testing.T) {
	for _, raw := range []string{"", "   ", "this is not a feed", "<html><body>hi</body></html>"} {
		seq, entries, err := NewParser(nil).Parse([]byte(raw), soccerSource)

		assert.Nil(t, seq)
		assert.Equal(t, 0, entries)
		assert.True(t, coreerrors.IsParse(err), "expected ParseError for %q, got %v", raw, err)
	}
}

func TestParse_SequenceStopsEarly(t *testing.T) {
	seq, _, err := NewParser(nil).Parse([]byte(rssFeed), soccerSource)
	require.NoError(t, err)

	var seen []string
	for article := range seq {
		seen = append(seen, article.Title)
		break
	}

	assert.Equal(t, []string{"Team A wins 3-1"}, seen)
}

func TestLimit(t *testing.T) {
	seq, _, err := NewParser(nil).Parse([]byte(rssFeed), soccerSource)
	require.NoError(t, err)

	limited := slices.Collect(Limit(seq, 2))

	require.Len(t, limited, 2)
	assert.Equal(t, "Team A wins 3-1", limited[0].Title)
	assert.Equal(t, "Undated story", limited[1].Title)
}

func TestLimit_Unlimited(t *testing.T) {
	seq, _, err := NewParser(nil).Parse([]byte(rssFeed), soccerSource)
	require.NoError(t, err)

	assert.Len(t, slices.Collect(Limit(seq, 0)), 3)
}
