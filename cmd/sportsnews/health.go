package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sports-news-api/api/dto/mappers"
	"sports-news-api/api/handlers"
)

func newHealthCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe every configured feed; exits non-zero when any is unreachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report := a.Service.HealthCheck(cmd.Context(), a.Catalog.All(), a.Options().FeedTimeout)
			if err := writeJSON(cmd.OutOrStdout(), mappers.ToHealthResponse(handlers.ServiceName, report)); err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("%d of %d feeds unreachable", report.Total-report.OK, report.Total)
			}
			return nil
		},
	}
}
