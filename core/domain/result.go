// ABOUTME: Aggregation result models carry de-duplicated articles and per-feed outcomes
// ABOUTME: Results are built fresh for every aggregation call and never mutated afterwards

package domain

import "time"

// FeedStatus is the outcome of fetching and parsing one feed
type FeedStatus string

const (
	// FeedSucceeded means the feed was fetched and parsed
	FeedSucceeded FeedStatus = "succeeded"

	// FeedFailed means the fetch failed or the body could not be parsed
	FeedFailed FeedStatus = "failed"

	// FeedTimedOut means the per-feed or global timeout elapsed first
	FeedTimedOut FeedStatus = "timed_out"
)

// FeedOutcome records what happened to a single feed during aggregation
type FeedOutcome struct {
	Topic    string        `json:"sport"`
	URL      string        `json:"url"`
	Status   FeedStatus    `json:"status"`
	Error    string        `json:"error,omitempty"`
	Entries  int           `json:"entries"`
	Kept     int           `json:"kept"`
	Duration time.Duration `json:"-"`
}

// DurationMS returns the feed's processing time in milliseconds
func (o FeedOutcome) DurationMS() int64 {
	return o.Duration.Milliseconds()
}

// AggregationStats summarizes an aggregation run
type AggregationStats struct {
	Raw            int  `json:"raw"`
	Items          int  `json:"items"`
	DroppedByLink  int  `json:"dropped_by_link"`
	DroppedByTitle int  `json:"dropped_by_title"`
	Threshold      int  `json:"title_sim_threshold"`
	LimitPerFeed   int  `json:"limit_per_feed"`
	FuzzyAvailable bool `json:"fuzzy_available"`
}

// AggregationResult is the de-duplicated article list for one topic
type AggregationResult struct {
	Topic       string           `json:"sport"`
	Articles    []Article        `json:"items"`
	Feeds       []FeedOutcome    `json:"feeds"`
	Stats       AggregationStats `json:"stats"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Succeeded counts feeds that were fetched and parsed
func (r *AggregationResult) Succeeded() int {
	n := 0
	for _, f := range r.Feeds {
		if f.Status == FeedSucceeded {
			n++
		}
	}
	return n
}

// Failures returns the outcomes of feeds that did not succeed
func (r *AggregationResult) Failures() []FeedOutcome {
	var out []FeedOutcome
	for _, f := range r.Feeds {
		if f.Status != FeedSucceeded {
			out = append(out, f)
		}
	}
	return out
}
