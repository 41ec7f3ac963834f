// ABOUTME: Mappers for converting aggregation results into API DTOs
// ABOUTME: Keeps domain types out of the HTTP contract

package mappers

import (
	"sports-news-api/api/dto/responses"
	"sports-news-api/core/domain"
)

// ToArticleResponse converts a domain Article to its JSON shape
func ToArticleResponse(a domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		Title:     a.Title,
		Link:      a.Link,
		Published: optional(a.PublishedISO()),
		Source:    optional(a.Source),
		Summary:   optional(a.Summary),
		Sport:     optional(a.Topic),
	}
}

// ToArticleResponses converts a result's articles; never returns nil
func ToArticleResponses(articles []domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(a))
	}
	return out
}

// ToDebugResponse adds aggregation statistics to the articles
func ToDebugResponse(sport string, order string, result *domain.AggregationResult) responses.DebugResponse {
	feeds := make([]responses.FeedOutcomeResponse, 0, len(result.Feeds))
	for _, f := range result.Feeds {
		feeds = append(feeds, responses.FeedOutcomeResponse{
			Sport:      f.Topic,
			URL:        f.URL,
			Status:     string(f.Status),
			Error:      f.Error,
			Entries:    f.Entries,
			Kept:       f.Kept,
			DurationMS: f.DurationMS(),
		})
	}

	return responses.DebugResponse{
		Items: ToArticleResponses(result.Articles),
		Meta: responses.DebugMeta{
			Sport:             sport,
			Items:             result.Stats.Items,
			Raw:               result.Stats.Raw,
			DroppedByLink:     result.Stats.DroppedByLink,
			DroppedByTitle:    result.Stats.DroppedByTitle,
			TitleSimThreshold: result.Stats.Threshold,
			LimitPerFeed:      result.Stats.LimitPerFeed,
			Order:             order,
			FuzzyAvailable:    result.Stats.FuzzyAvailable,
			Feeds:             feeds,
		},
	}
}

// ToHealthResponse converts a probe report; status is null for transport failures
func ToHealthResponse(service string, report domain.HealthReport) responses.HealthResponse {
	feeds := make([]responses.FeedHealthResponse, 0, len(report.Feeds))
	for _, f := range report.Feeds {
		item := responses.FeedHealthResponse{
			Sport: f.Topic,
			URL:   f.URL,
			OK:    f.Reachable,
			Error: f.Error,
		}
		if f.StatusCode != 0 {
			status := f.StatusCode
			item.Status = &status
		}
		feeds = append(feeds, item)
	}

	return responses.HealthResponse{
		Service:   service,
		OK:        report.Healthy(),
		FeedOK:    report.OK,
		FeedTotal: report.Total,
		Feeds:     feeds,
	}
}

// ToSourceResponses lists every topic with its feed URLs, topics sorted
func ToSourceResponses(catalog *domain.Catalog) []responses.SourceResponse {
	topics := catalog.Topics()
	out := make([]responses.SourceResponse, 0, len(topics))
	for _, topic := range topics {
		sources, _ := catalog.Sources(topic)
		urls := make([]string, 0, len(sources))
		for _, src := range sources {
			urls = append(urls, src.URL)
		}
		out = append(out, responses.SourceResponse{Sport: topic, Feeds: urls})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
