package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// numberInput returns a huh.Input for a non-negative integer field.
func numberInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateNonNegativeInt)
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// buildSettingsForm assembles the settings form over values.
func buildSettingsForm(values *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Operations").
				Options(
					huh.NewOption("Addition", "addition"),
					huh.NewOption("Subtraction", "subtraction"),
					huh.NewOption("Multiplication", "multiplication"),
					huh.NewOption("Division", "division"),
				).
				Value(&values.operations),
			huh.NewMultiSelect[string]().
				Title("Hidden slot").
				Options(
					huh.NewOption("Result", "result"),
					huh.NewOption("First operand", "operand-0"),
					huh.NewOption("Second operand", "operand-1"),
				).
				Value(&values.unknowns),
		),
		huh.NewGroup(
			numberInput("Max result", "10", &values.maxResult),
			numberInput("Min operand", "0", &values.minOperand),
			numberInput("Max operand", "10", &values.maxOperand),
			huh.NewConfirm().
				Title("Allow zero operands?").
				Value(&values.allowZero),
		),
	).WithShowHelp(false)
}
