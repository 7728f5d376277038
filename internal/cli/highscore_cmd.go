package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHighScoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "highscore",
		Short: "Show the persisted high score",
		RunE: func(cmd *cobra.Command, args []string) error {
			score := app.Store.HighScore(context.Background())
			fmt.Fprintf(cmd.OutOrStdout(), "High score: %d\n", score)
			return nil
		},
	}
}
