// ABOUTME: Sports news handlers for the Huma API
// ABOUTME: Aggregates configured feeds per request and optionally saves a dump

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"sports-news-api/api/dto/mappers"
	"sports-news-api/api/dto/responses"
	"sports-news-api/core/aggregate"
	"sports-news-api/core/domain"
	"sports-news-api/core/interfaces"
	"sports-news-api/pkg/featureflags"
)

// ServiceName is reported by /health and used as the HTML page title
const ServiceName = "Sports News Aggregator"

// AllSports labels requests that omit the sport parameter
const AllSports = "all"

// SportsService is the part of the aggregation service the handlers use
type SportsService interface {
	Aggregate(ctx context.Context, topic string, sources []domain.FeedSource, opts aggregate.Options) (*domain.AggregationResult, error)
	HealthCheck(ctx context.Context, sources []domain.FeedSource, timeout time.Duration) domain.HealthReport
	Dump(ctx context.Context, result *domain.AggregationResult, ttl time.Duration) error
}

// SportsHandler serves the sports news endpoints
type SportsHandler struct {
	service  SportsService
	catalog  *domain.Catalog
	defaults aggregate.Options
	dumpTTL  time.Duration
	logger   interfaces.Logger
}

// NewSportsHandler creates a handler. defaults supplies every option a request leaves unset.
func NewSportsHandler(service SportsService, catalog *domain.Catalog, defaults aggregate.Options, dumpTTL time.Duration, logger interfaces.Logger) *SportsHandler {
	return &SportsHandler{
		service:  service,
		catalog:  catalog,
		defaults: defaults,
		dumpTTL:  dumpTTL,
		logger:   interfaces.LoggerOrNop(logger),
	}
}

// RegisterRoutes registers all sports news routes
func (h *SportsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSports",
		Method:      http.MethodGet,
		Path:        "/sports",
		Summary:     "Aggregate sports news into one JSON",
		Description: "Fetches every feed of a sport (or of all sports), removes duplicate links and near-duplicate titles, and returns the articles",
		Tags:        []string{"Sports"},
	}, h.GetSports)

	huma.Register(api, huma.Operation{
		OperationID: "getSportsHTML",
		Method:      http.MethodGet,
		Path:        "/sports/html",
		Summary:     "View sports news in HTML",
		Tags:        []string{"Sports"},
	}, h.GetSportsHTML)

	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Check feed health and basic service status",
		Description: "Probes every configured feed; answers 200 when all respond with 2xx and 207 otherwise",
		Tags:        []string{"Health"},
	}, h.GetHealth)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/sources",
		Summary:     "List configured sports and feed URLs",
		Tags:        []string{"Sports"},
	}, h.ListSources)
}

// SportsQuery holds the parameters shared by the JSON and HTML views
type SportsQuery struct {
	Sport        string `query:"sport" doc:"One sport, e.g. soccer or nba. If omitted, aggregates all."`
	Threshold    int    `query:"title_sim_threshold" minimum:"0" maximum:"100" doc:"Title similarity (0-100) at which articles count as duplicates; higher is stricter"`
	LimitPerFeed int    `query:"limit_per_feed" minimum:"1" maximum:"200" doc:"Entries kept per feed"`
	Order        string `query:"order" enum:"feed,newest" doc:"feed keeps feed order, newest sorts by publication date"`

	thresholdSet bool
	limitSet     bool
}

// Resolve records which numeric parameters were sent so configured defaults can fill the rest
func (q *SportsQuery) Resolve(ctx huma.Context) []error {
	q.thresholdSet = ctx.Query("title_sim_threshold") != ""
	q.limitSet = ctx.Query("limit_per_feed") != ""
	return nil
}

// SportsInput defines the input for the GetSports operation
type SportsInput struct {
	SportsQuery
	Debug bool `query:"debug" doc:"Return aggregation statistics along with the items"`
	Save  bool `query:"save" doc:"Also write the result to the configured dump store"`
}

// SportsOutput is either a plain article list or a debug envelope
type SportsOutput struct {
	Body any
}

// GetSports handles the GET /sports endpoint
func (h *SportsHandler) GetSports(ctx context.Context, input *SportsInput) (*SportsOutput, error) {
	if input.Save && !featureflags.IsEnabled(ctx, featureflags.DumpEnabled) {
		return nil, huma.Error403Forbidden("saving dumps is disabled")
	}

	label, result, opts, err := h.aggregate(ctx, &input.SportsQuery)
	if err != nil {
		return nil, err
	}

	var saved string
	if input.Save {
		if err := h.service.Dump(ctx, result, h.dumpTTL); err != nil {
			h.logger.Error("Failed to save dump", map[string]interface{}{
				"sport": label,
				"error": err.Error(),
			})
			return nil, toHumaError(fmt.Errorf("save dump: %w", err))
		}
		saved = aggregate.DumpKey(result.Topic)
	}

	if input.Debug {
		resp := mappers.ToDebugResponse(label, string(opts.Order), result)
		resp.Meta.Saved = saved
		return &SportsOutput{Body: resp}, nil
	}

	return &SportsOutput{Body: mappers.ToArticleResponses(result.Articles)}, nil
}

// aggregate resolves the requested sport and runs one aggregation
func (h *SportsHandler) aggregate(ctx context.Context, q *SportsQuery) (string, *domain.AggregationResult, aggregate.Options, error) {
	opts := h.options(q)

	label, sources, err := h.resolve(q.Sport)
	if err != nil {
		return "", nil, opts, err
	}

	result, err := h.service.Aggregate(ctx, label, sources, opts)
	if err != nil {
		return "", nil, opts, toHumaError(err)
	}
	return label, result, opts, nil
}

// options overlays request parameters on the configured defaults
func (h *SportsHandler) options(q *SportsQuery) aggregate.Options {
	opts := h.defaults
	if q.thresholdSet {
		opts.Threshold = q.Threshold
	}
	if q.limitSet {
		opts.LimitPerFeed = q.LimitPerFeed
	}
	// huma has already rejected values outside the enum
	if q.Order != "" {
		if order, err := aggregate.ParseOrder(q.Order); err == nil {
			opts.Order = order
		}
	}
	return opts
}

// resolve maps the sport parameter to its feeds. No sport means every feed of every sport.
func (h *SportsHandler) resolve(sport string) (string, []domain.FeedSource, error) {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		return AllSports, h.catalog.All(), nil
	}

	if !h.catalog.Has(sport) {
		return "", nil, huma.Error400BadRequest(fmt.Sprintf("Unknown sport '%s'. Valid: %s",
			sport, strings.Join(h.catalog.Topics(), ", ")))
	}

	sources, err := h.catalog.Sources(sport)
	if err != nil {
		return "", nil, toHumaError(err)
	}
	return sport, sources, nil
}

// HealthOutput carries 200 when every feed answered and 207 otherwise
type HealthOutput struct {
	Status int
	Body   responses.HealthResponse
}

// GetHealth handles the GET /health endpoint
func (h *SportsHandler) GetHealth(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	report := h.service.HealthCheck(ctx, h.catalog.All(), h.defaults.FeedTimeout)

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusMultiStatus
	}

	return &HealthOutput{
		Status: status,
		Body:   mappers.ToHealthResponse(ServiceName, report),
	}, nil
}

// SourcesOutput lists configured sports
type SourcesOutput struct {
	Body []responses.SourceResponse
}

// ListSources handles the GET /sources endpoint
func (h *SportsHandler) ListSources(ctx context.Context, _ *struct{}) (*SourcesOutput, error) {
	return &SourcesOutput{Body: mappers.ToSourceResponses(h.catalog)}, nil
}
