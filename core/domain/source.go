// ABOUTME: Feed source and catalog models describe which feeds belong to which topic
// ABOUTME: The catalog is built once at startup and only read afterwards

package domain

import (
	"sort"
	"strings"

	coreerrors "sports-news-api/core/errors"
)

// FeedSource is one configured feed for a topic
type FeedSource struct {
	// Topic is the sport/category the feed belongs to
	Topic string `json:"topic" yaml:"-"`

	// URL is the RSS/Atom feed location
	URL string `json:"url" yaml:"url"`

	// Limit caps how many entries are kept from this feed (0 = no cap)
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// Catalog maps a topic name to its ordered feed list
type Catalog struct {
	topics map[string][]FeedSource
}

// NewCatalog builds a catalog from a topic -> feed URLs mapping.
// Topic names are lowercased; feed order is preserved.
func NewCatalog(feeds map[string][]FeedSource) *Catalog {
	c := &Catalog{topics: make(map[string][]FeedSource, len(feeds))}
	for topic, sources := range feeds {
		name := strings.ToLower(strings.TrimSpace(topic))
		copied := make([]FeedSource, 0, len(sources))
		for _, src := range sources {
			src.Topic = name
			src.URL = strings.TrimSpace(src.URL)
			copied = append(copied, src)
		}
		c.topics[name] = copied
	}
	return c
}

// Topics returns all topic names in sorted order
func (c *Catalog) Topics() []string {
	names := make([]string, 0, len(c.topics))
	for name := range c.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a topic is configured
func (c *Catalog) Has(topic string) bool {
	_, ok := c.topics[strings.ToLower(strings.TrimSpace(topic))]
	return ok
}

// Sources returns a copy of the feed list for a topic
func (c *Catalog) Sources(topic string) ([]FeedSource, error) {
	name := strings.ToLower(strings.TrimSpace(topic))
	sources, ok := c.topics[name]
	if !ok {
		return nil, &coreerrors.ConfigError{
			Topic:   name,
			Message: "unknown topic, valid topics: " + strings.Join(c.Topics(), ", "),
		}
	}
	if len(sources) == 0 {
		return nil, &coreerrors.ConfigError{Topic: name, Message: "no feeds configured"}
	}

	out := make([]FeedSource, len(sources))
	copy(out, sources)
	return out, nil
}

// All returns every feed of every topic, topics in sorted order
func (c *Catalog) All() []FeedSource {
	var out []FeedSource
	for _, name := range c.Topics() {
		out = append(out, c.topics[name]...)
	}
	return out
}
