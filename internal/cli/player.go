package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerNewCmd())
	cmd.AddCommand(newPlayerShowCmd())

	return cmd
}

func newPlayerNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a guest player and save its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerCreated

			if err := client.Post(cmd.Context(), "/api/v1/players", nil, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.PlayerID); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			client.SetToken(result.PlayerID)

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPlayerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved player token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Token == "" {
				return fmt.Errorf("no player token; run \"cricle player new\" first")
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(PlayerCreated{PlayerID: cfg.Token})
			return nil
		},
	}
}
