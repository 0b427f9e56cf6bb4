package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "names [query]",
		Short: "List cricketer names, optionally filtered by a substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if len(args) == 1 {
				query.Set("q", args[0])
			}
			if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}

			var result Names
			if err := client.Get(cmd.Context(), "/api/v1/names", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of names to return")

	return cmd
}
