package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sports-news-api/api/dto/mappers"
	"sports-news-api/api/handlers"
	"sports-news-api/core/aggregate"
	"sports-news-api/core/domain"
	"sports-news-api/pkg/featureflags"
)

type aggregateFlags struct {
	sport     string
	threshold int
	limit     int
	order     string
	save      bool
	debug     bool
	perSport  bool
}

func newAggregateCmd(c *cli) *cobra.Command {
	f := &aggregateFlags{}

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Fetch, normalize and de-duplicate the feeds of one sport or all sports",
		Example: `  sportsnews aggregate --sport soccer
  sportsnews aggregate --threshold 90 --order newest --debug
  sportsnews aggregate --per-sport --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			opts := a.Options()
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = f.threshold
			}
			if cmd.Flags().Changed("limit") {
				opts.LimitPerFeed = f.limit
			}
			if opts.Order, err = aggregate.ParseOrder(f.order); err != nil {
				return err
			}
			if f.save && !a.Flags.IsEnabled(cmd.Context(), featureflags.DumpEnabled) {
				return fmt.Errorf("saving dumps is disabled")
			}

			var results []*domain.AggregationResult
			sport := strings.ToLower(strings.TrimSpace(f.sport))
			switch {
			case f.perSport:
				var topics []string
				if sport != "" {
					topics = []string{sport}
				}
				results, err = a.Service.AggregateCatalog(cmd.Context(), a.Catalog, topics, opts)
			case sport == "":
				var result *domain.AggregationResult
				result, err = a.Service.Aggregate(cmd.Context(), handlers.AllSports, a.Catalog.All(), opts)
				results = append(results, result)
			default:
				if !a.Catalog.Has(sport) {
					return fmt.Errorf("unknown sport '%s'. Valid: %s", sport, strings.Join(a.Catalog.Topics(), ", "))
				}
				var sources []domain.FeedSource
				if sources, err = a.Catalog.Sources(sport); err != nil {
					return err
				}
				var result *domain.AggregationResult
				result, err = a.Service.Aggregate(cmd.Context(), sport, sources, opts)
				results = append(results, result)
			}
			if err != nil {
				return err
			}

			out := make([]any, 0, len(results))
			for _, result := range results {
				var saved string
				if f.save {
					if err := a.Service.Dump(cmd.Context(), result, a.Config.Dump.TTL); err != nil {
						return fmt.Errorf("save dump for %s: %w", result.Topic, err)
					}
					saved = aggregate.DumpKey(result.Topic)
					fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", saved)
				}

				if f.debug {
					resp := mappers.ToDebugResponse(result.Topic, string(opts.Order), result)
					resp.Meta.Saved = saved
					out = append(out, resp)
				} else {
					out = append(out, mappers.ToArticleResponses(result.Articles))
				}
			}

			if len(out) == 1 && !f.perSport {
				return writeJSON(cmd.OutOrStdout(), out[0])
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&f.sport, "sport", "s", "", "Sport to aggregate; empty merges every sport")
	cmd.Flags().IntVarP(&f.threshold, "threshold", "t", 0, "Title similarity threshold (0-100)")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "Entries kept per feed; 0 means unlimited")
	cmd.Flags().StringVar(&f.order, "order", string(aggregate.OrderFeed), "Result order: feed or newest")
	cmd.Flags().BoolVar(&f.save, "save", false, "Also write each result to the dump store")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Include aggregation statistics")
	cmd.Flags().BoolVar(&f.perSport, "per-sport", false, "Aggregate each sport separately")
	return cmd
}
