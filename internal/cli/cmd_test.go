package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoreCmd_PrintsPersistedScore(t *testing.T) {
	store := newMemStore()
	store.score = 17
	app := &App{Store: store}

	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"highscore"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "High score: 17")
}

func TestPlayCmd_RefusesNonInteractiveTerminal(t *testing.T) {
	app := &App{
		Store:         newMemStore(),
		IsInteractive: func() bool { return false },
	}

	root := NewRootCmd(app)
	root.SetArgs([]string{"play"})
	root.SetErr(&bytes.Buffer{})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestSessionConfig_AppliesStoredSettings(t *testing.T) {
	store := newMemStore()
	store.settings = domain.Settings{MaxResult: 30, MinOperand: 2, MaxOperand: 15, AllowZero: false}
	app := &App{Store: store}

	cfg, err := sessionConfig(context.Background(), app, "easy")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Constraints.MaxResult)
	assert.Equal(t, 2, cfg.Constraints.MinOperand)
	assert.False(t, cfg.Constraints.AllowZero)
}

func TestSessionConfig_UnknownDifficulty(t *testing.T) {
	app := &App{Store: newMemStore()}
	_, err := sessionConfig(context.Background(), app, "impossible")
	assert.Error(t, err)
}

func TestSettingsFormValues_RoundTrip(t *testing.T) {
	s := domain.Settings{
		MaxResult:  25,
		MinOperand: 1,
		MaxOperand: 9,
		AllowZero:  false,
		Operations: []string{"addition", "division"},
	}
	values := newSettingsFormValues(s)
	got, err := values.toSettings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSettingsFormValues_RejectsGarbage(t *testing.T) {
	values := settingsFormValues{maxResult: "ten", minOperand: "0", maxOperand: "10"}
	_, err := values.toSettings()
	assert.Error(t, err)
}

func TestValidateNonNegativeInt(t *testing.T) {
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.NoError(t, validateNonNegativeInt("42"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateNonNegativeInt("x"))
	assert.Error(t, validateNonNegativeInt(""))
}
