// ABOUTME: Public types for the sports news library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package sportsnews

import (
	"time"

	"sports-news-api/core/domain"
)

// Article is one de-duplicated news item
type Article struct {
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"`
	Source    string     `json:"source,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Sport     string     `json:"sport"`
}

// FeedReport describes how one feed fared during an aggregation
type FeedReport struct {
	Sport    string        `json:"sport"`
	URL      string        `json:"url"`
	Status   string        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Entries  int           `json:"entries"`
	Kept     int           `json:"kept"`
	Duration time.Duration `json:"duration"`
}

// Stats summarizes an aggregation
type Stats struct {
	Raw            int  `json:"raw"`
	Items          int  `json:"items"`
	DroppedByLink  int  `json:"dropped_by_link"`
	DroppedByTitle int  `json:"dropped_by_title"`
	Threshold      int  `json:"title_sim_threshold"`
	LimitPerFeed   int  `json:"limit_per_feed"`
	FuzzyAvailable bool `json:"fuzzy_available"`
}

// Result is the outcome of aggregating one sport
type Result struct {
	Sport       string       `json:"sport"`
	Articles    []Article    `json:"items"`
	Feeds       []FeedReport `json:"feeds"`
	Stats       Stats        `json:"stats"`
	GeneratedAt time.Time    `json:"generated_at"`

	// DumpKey is set when the result was saved
	DumpKey string `json:"dump_key,omitempty"`
}

// FeedHealth is the probe result for one feed
type FeedHealth struct {
	Sport      string        `json:"sport"`
	URL        string        `json:"url"`
	OK         bool          `json:"ok"`
	StatusCode int           `json:"status,omitempty"`
	Latency    time.Duration `json:"latency"`
	Error      string        `json:"error,omitempty"`
}

// HealthReport summarizes feed reachability
type HealthReport struct {
	Feeds []FeedHealth `json:"feeds"`
	OK    int          `json:"feed_ok"`
	Total int          `json:"feed_total"`
}

// Healthy reports whether every feed answered with a 2xx status
func (r *HealthReport) Healthy() bool {
	return r.OK == r.Total
}

// Source lists the feeds configured for one sport
type Source struct {
	Sport string   `json:"sport"`
	Feeds []string `json:"feeds"`
}

func resultToPublic(r *domain.AggregationResult) *Result {
	out := &Result{
		Sport:       r.Topic,
		Articles:    make([]Article, 0, len(r.Articles)),
		Feeds:       make([]FeedReport, 0, len(r.Feeds)),
		GeneratedAt: r.GeneratedAt,
		Stats: Stats{
			Raw:            r.Stats.Raw,
			Items:          r.Stats.Items,
			DroppedByLink:  r.Stats.DroppedByLink,
			DroppedByTitle: r.Stats.DroppedByTitle,
			Threshold:      r.Stats.Threshold,
			LimitPerFeed:   r.Stats.LimitPerFeed,
			FuzzyAvailable: r.Stats.FuzzyAvailable,
		},
	}

	for _, a := range r.Articles {
		article := Article{
			Title:   a.Title,
			Link:    a.Link,
			Source:  a.Source,
			Summary: a.Summary,
			Sport:   a.Topic,
		}
		if a.HasPublished() {
			published := a.PublishedAt
			article.Published = &published
		}
		out.Articles = append(out.Articles, article)
	}

	for _, f := range r.Feeds {
		out.Feeds = append(out.Feeds, FeedReport{
			Sport:    f.Topic,
			URL:      f.URL,
			Status:   string(f.Status),
			Error:    f.Error,
			Entries:  f.Entries,
			Kept:     f.Kept,
			Duration: f.Duration,
		})
	}

	return out
}

func healthToPublic(r domain.HealthReport) *HealthReport {
	out := &HealthReport{OK: r.OK, Total: r.Total, Feeds: make([]FeedHealth, 0, len(r.Feeds))}
	for _, f := range r.Feeds {
		out.Feeds = append(out.Feeds, FeedHealth{
			Sport:      f.Topic,
			URL:        f.URL,
			OK:         f.Reachable,
			StatusCode: f.StatusCode,
			Latency:    f.Latency,
			Error:      f.Error,
		})
	}
	return out
}
