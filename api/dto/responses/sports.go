// ABOUTME: Response DTOs for the sports news endpoints
// ABOUTME: Optional article fields are rendered as null, never omitted

package responses

// ArticleResponse is one de-duplicated news item
type ArticleResponse struct {
	Title     string  `json:"title" doc:"Headline"`
	Link      string  `json:"link" doc:"Article URL"`
	Published *string `json:"published" doc:"Publication time in RFC 3339 UTC, null when unknown"`
	Source    *string `json:"source" doc:"Publisher name or link domain"`
	Summary   *string `json:"summary" doc:"Plain-text summary"`
	Sport     *string `json:"sport" doc:"Sport the article was collected for"`
}

// FeedOutcomeResponse reports what happened to one feed
type FeedOutcomeResponse struct {
	Sport      string `json:"sport"`
	URL        string `json:"url"`
	Status     string `json:"status" enum:"succeeded,failed,timed_out"`
	Error      string `json:"error,omitempty"`
	Entries    int    `json:"entries" doc:"Entries found in the feed"`
	Kept       int    `json:"kept" doc:"Articles from this feed that survived de-duplication"`
	DurationMS int64  `json:"duration_ms"`
}

// DebugMeta carries aggregation statistics for debug responses
type DebugMeta struct {
	Sport             string                `json:"sport" doc:"Requested sport or 'all'"`
	Items             int                   `json:"items"`
	Raw               int                   `json:"raw" doc:"Articles collected before de-duplication"`
	DroppedByLink     int                   `json:"dropped_by_link"`
	DroppedByTitle    int                   `json:"dropped_by_title"`
	TitleSimThreshold int                   `json:"title_sim_threshold"`
	LimitPerFeed      int                   `json:"limit_per_feed"`
	Order             string                `json:"order"`
	FuzzyAvailable    bool                  `json:"fuzzy_available"`
	Saved             string                `json:"saved,omitempty" doc:"Dump key when save=true"`
	Feeds             []FeedOutcomeResponse `json:"feeds"`
}

// DebugResponse wraps articles with their aggregation statistics
type DebugResponse struct {
	Items []ArticleResponse `json:"items"`
	Meta  DebugMeta         `json:"meta"`
}

// FeedHealthResponse is the probe result of one feed
type FeedHealthResponse struct {
	Sport  string `json:"sport"`
	URL    string `json:"url"`
	OK     bool   `json:"ok"`
	Status *int   `json:"status" doc:"HTTP status, null when no response arrived"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse summarizes feed reachability
type HealthResponse struct {
	Service   string               `json:"service"`
	OK        bool                 `json:"ok" doc:"True when every feed answered with a 2xx status"`
	FeedOK    int                  `json:"feed_ok"`
	FeedTotal int                  `json:"feed_total"`
	Feeds     []FeedHealthResponse `json:"feeds"`
}

// SourceResponse lists the feeds configured for one sport
type SourceResponse struct {
	Sport string   `json:"sport"`
	Feeds []string `json:"feeds"`
}
