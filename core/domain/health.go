// ABOUTME: Health models report whether configured feeds answer at all
// ABOUTME: Probes only check reachability; nothing is parsed or de-duplicated

package domain

import "time"

// FeedHealth is the result of probing a single feed
type FeedHealth struct {
	Topic      string        `json:"sport"`
	URL        string        `json:"url"`
	Reachable  bool          `json:"ok"`
	StatusCode int           `json:"status,omitempty"`
	Latency    time.Duration `json:"-"`
	Error      string        `json:"error,omitempty"`
}

// HealthReport aggregates feed probes
type HealthReport struct {
	Feeds []FeedHealth `json:"feeds"`
	OK    int          `json:"ok"`
	Total int          `json:"total"`
}

// Healthy reports whether every probed feed was reachable
func (r HealthReport) Healthy() bool {
	return r.OK == r.Total
}
