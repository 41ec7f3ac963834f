package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"sports-news-api/internal/app"
	"sports-news-api/pkg/config"
)

// cli carries state shared by every subcommand
type cli struct {
	feedsFile string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "sportsnews",
		Short: "Aggregate and de-duplicate sports news feeds",
		Long: `sportsnews fetches the RSS/Atom feeds configured for each sport, drops
duplicate links and near-duplicate headlines, and prints the result as JSON.
Configuration is read from the same environment variables as the API server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.feedsFile, "feeds", "", "Path to a feeds YAML catalog (overrides FEEDS_FILE)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newAggregateCmd(c),
		newHealthCmd(c),
		newSourcesCmd(c),
		newServeCmd(c),
	)
	return root
}

// load reads the environment, applies flag overrides and wires the application
func (c *cli) load(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if c.feedsFile != "" {
		cfg.Pipeline.FeedsFile = c.feedsFile
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}
	return app.New(ctx, cfg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
