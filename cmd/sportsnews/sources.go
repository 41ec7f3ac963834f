package main

import (
	"github.com/spf13/cobra"

	"sports-news-api/api/dto/mappers"
)

func newSourcesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured sports and their feed URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return writeJSON(cmd.OutOrStdout(), mappers.ToSourceResponses(a.Catalog))
		},
	}
}
