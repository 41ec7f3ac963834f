// ABOUTME: Article domain model represents a single normalized news entry
// ABOUTME: Provides validation and the JSON shape served to API clients

package domain

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// Article represents one normalized entry taken from a feed
type Article struct {
	// Title is the trimmed headline, never empty for emitted articles
	Title string

	// Link is the article URL and the primary identity key
	Link string

	// PublishedAt is the publication instant in UTC.
	// The zero value is the "unknown" sentinel.
	PublishedAt time.Time

	// Source names where the article came from (feed-provided source or link domain)
	Source string

	// Summary is an optional plain-text excerpt
	Summary string

	// Topic is the sport/category the article was collected for
	Topic string

	// FeedURL is the feed the article was parsed from
	FeedURL string
}

// IsValid checks if the article has all required fields
func (a *Article) IsValid() bool {
	if strings.TrimSpace(a.Title) == "" {
		return false
	}

	if strings.TrimSpace(a.Link) == "" {
		return false
	}

	return true
}

// HasPublished reports whether the publication date is known
func (a *Article) HasPublished() bool {
	return !a.PublishedAt.IsZero()
}

// PublishedISO returns the publication date as RFC3339 UTC ("Z" suffix),
// or an empty string when the date is unknown
func (a *Article) PublishedISO() string {
	if !a.HasPublished() {
		return ""
	}
	return a.PublishedAt.UTC().Format(time.RFC3339)
}

type articleJSON struct {
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Published *string `json:"published"`
	Source    *string `json:"source"`
	Summary   *string `json:"summary"`
	Sport     *string `json:"sport"`
}

// MarshalJSON renders optional fields as null when they are empty
func (a Article) MarshalJSON() ([]byte, error) {
	out := articleJSON{
		Title:     a.Title,
		Link:      a.Link,
		Published: optional(a.PublishedISO()),
		Source:    optional(a.Source),
		Summary:   optional(a.Summary),
		Sport:     optional(a.Topic),
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the representation produced by MarshalJSON
func (a *Article) UnmarshalJSON(data []byte) error {
	var in articleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*a = Article{
		Title:   in.Title,
		Link:    in.Link,
		Source:  deref(in.Source),
		Summary: deref(in.Summary),
		Topic:   deref(in.Sport),
	}
	if in.Published != nil {
		if t, err := time.Parse(time.RFC3339, *in.Published); err == nil {
			a.PublishedAt = t.UTC()
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DomainOf returns the host of a link without scheme and leading "www."
func DomainOf(link string) string {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}
