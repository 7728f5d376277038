package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Edit and persist drill settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("settings needs an interactive terminal")
			}

			ctx := context.Background()
			values := newSettingsFormValues(app.Store.Settings(ctx))

			if err := buildSettingsForm(&values).Run(); err != nil {
				return fmt.Errorf("running settings form: %w", err)
			}

			settings, err := values.toSettings()
			if err != nil {
				return err
			}
			// Refuse combinations the generator cannot satisfy before
			// they are persisted.
			if _, err := settings.Apply(domain.DefaultConfig()); err != nil {
				return err
			}

			app.Store.SaveSettings(ctx, settings)
			fmt.Println("Settings saved.")
			return nil
		},
	}
}

// settingsFormValues holds form state. huh inputs edit strings; conversion
// back to typed settings happens after the form completes.
type settingsFormValues struct {
	maxResult  string
	minOperand string
	maxOperand string
	allowZero  bool
	operations []string
	unknowns   []string
}

func newSettingsFormValues(s domain.Settings) settingsFormValues {
	return settingsFormValues{
		maxResult:  strconv.Itoa(s.MaxResult),
		minOperand: strconv.Itoa(s.MinOperand),
		maxOperand: strconv.Itoa(s.MaxOperand),
		allowZero:  s.AllowZero,
		operations: s.Operations,
		unknowns:   s.UnknownPositions,
	}
}

func (v settingsFormValues) toSettings() (domain.Settings, error) {
	maxResult, err := strconv.Atoi(v.maxResult)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parsing max result: %w", err)
	}
	minOperand, err := strconv.Atoi(v.minOperand)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parsing min operand: %w", err)
	}
	maxOperand, err := strconv.Atoi(v.maxOperand)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parsing max operand: %w", err)
	}
	return domain.Settings{
		MaxResult:        maxResult,
		MinOperand:       minOperand,
		MaxOperand:       maxOperand,
		AllowZero:        v.allowZero,
		Operations:       v.operations,
		UnknownPositions: v.unknowns,
	}, nil
}
