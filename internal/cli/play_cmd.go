package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/game"
	"github.com/alexanderramin/drill/internal/generator"
	"github.com/alexanderramin/drill/internal/rng"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *App) *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a drill session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("play needs an interactive terminal")
			}

			ctx := context.Background()
			cfg, err := sessionConfig(ctx, app, difficulty)
			if err != nil {
				return err
			}

			machine, err := game.NewMachine(ctx, cfg, generator.New(rng.New()), app.Store)
			if err != nil {
				return err
			}

			model := newGameModel(machine)
			program := tea.NewProgram(model, tea.WithAltScreen())

			// State changes driven by orchestrator timers arrive outside
			// the tea loop; forward them in as messages. The send must
			// not block: key-driven dispatches notify from inside
			// Update, where a synchronous Send would deadlock the loop.
			machine.Subscribe(func(s domain.GameState) {
				go program.Send(stateChangedMsg{state: s})
			})
			orch := game.NewOrchestrator(machine, game.TimerScheduler{},
				game.WithErrorHandler(func(err error) {
					program.Send(sessionErrMsg{err: err})
				}))
			defer orch.Stop()

			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("running session: %w", err)
			}
			if gm, ok := final.(gameModel); ok {
				if gm.err != nil {
					return gm.err
				}
				fmt.Print(sessionSummary(machine))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty preset: easy, medium or hard")

	return cmd
}

// sessionConfig resolves the preset and overlays the persisted settings.
func sessionConfig(ctx context.Context, app *App, difficulty string) (domain.DifficultyConfig, error) {
	preset, ok := domain.Presets[difficulty]
	if !ok {
		return domain.DifficultyConfig{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	cfg, err := app.Store.Settings(ctx).Apply(preset)
	if err != nil {
		return domain.DifficultyConfig{}, fmt.Errorf("resolving session config: %w", err)
	}
	return cfg, nil
}

func sessionSummary(m *game.Machine) string {
	stats := m.Stats()
	s := m.Snapshot()
	return fmt.Sprintf("Session %s: answered %d, correct %d. High score: %d.\n",
		shortID(stats.SessionID), stats.Answered, stats.Correct, s.HighScore)
}
