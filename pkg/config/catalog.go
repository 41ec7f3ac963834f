// ABOUTME: Feed catalog loading from YAML with an embedded default catalog
// ABOUTME: Catalog entries are plain URLs or {url, limit} mappings per topic

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"sports-news-api/core/domain"
)

//go:embed feeds.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk catalog layout
type catalogFile struct {
	Topics map[string][]feedEntry `yaml:"topics"`
}

// feedEntry accepts either a bare URL or a mapping
type feedEntry struct {
	URL   string `yaml:"url"`
	Limit int    `yaml:"limit"`
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *feedEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.URL)
	}
	type plain feedEntry
	return node.Decode((*plain)(e))
}

// DefaultCatalog returns the built-in sports catalog
func DefaultCatalog() (*domain.Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog file; an empty path returns the default catalog
func LoadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes and validates catalog YAML
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid feeds yaml: %w", err)
	}
	if len(file.Topics) == 0 {
		return nil, errors.New("feeds catalog defines no topics")
	}

	topics := make(map[string][]domain.FeedSource, len(file.Topics))
	for topic, entries := range file.Topics {
		if len(entries) == 0 {
			return nil, fmt.Errorf("topic %q has no feeds", topic)
		}
		sources := make([]domain.FeedSource, 0, len(entries))
		for _, entry := range entries {
			if err := validateFeedURL(entry.URL); err != nil {
				return nil, fmt.Errorf("topic %q: %w", topic, err)
			}
			if entry.Limit < 0 {
				return nil, fmt.Errorf("topic %q: limit for %s cannot be negative", topic, entry.URL)
			}
			sources = append(sources, domain.FeedSource{URL: entry.URL, Limit: entry.Limit})
		}
		topics[topic] = sources
	}

	return domain.NewCatalog(topics), nil
}

func validateFeedURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid feed url %q", raw)
	}
	return nil
}
