package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Play today's game",
	}

	cmd.AddCommand(newGameStateCmd())
	cmd.AddCommand(newGameGuessCmd())

	return cmd
}

func requireToken() error {
	if cfg.Token == "" {
		return fmt.Errorf("no player token; run \"cricle player new\" first")
	}
	return nil
}

func newGameStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show today's game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			var result GameState
			if err := client.Get(cmd.Context(), "/api/v1/game", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <name...>",
		Short: "Guess today's cricketer",
		Example: `  cricle game guess MS Dhoni
  cricle game guess "Virat Kohli"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			req := map[string]string{"name": strings.Join(args, " ")}
			var result GuessResult
			if err := client.Post(cmd.Context(), "/api/v1/game/guess", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
