package cli

import (
	"context"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/repository"
	"github.com/spf13/cobra"
)

// StateStore is what the CLI needs from persistence: the high score and the
// settings object, both with never-fail semantics.
type StateStore interface {
	HighScore(ctx context.Context) int
	SetHighScore(ctx context.Context, score int)
	Settings(ctx context.Context) domain.Settings
	SaveSettings(ctx context.Context, settings domain.Settings)
}

var _ StateStore = (*repository.SQLiteStateStore)(nil)

// App holds the dependencies CLI commands run against.
type App struct {
	Store StateStore

	// IsInteractive reports whether stdin is a terminal; play refuses to
	// start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "drill" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "drill",
		Short: "Arithmetic drill with streaks and a persistent high score",
	}

	root.AddCommand(
		newPlayCmd(app),
		newSettingsCmd(app),
		newHighScoreCmd(app),
	)

	return root
}
