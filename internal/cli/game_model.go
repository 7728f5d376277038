package cli

import (
	"context"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// stateChangedMsg carries a machine snapshot produced outside the tea loop
// (orchestrator timers).
type stateChangedMsg struct {
	state domain.GameState
}

// sessionErrMsg signals a fatal session error (infeasible configuration
// discovered mid-play).
type sessionErrMsg struct {
	err error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type gameKeyMap struct {
	Digits key.Binding
	Delete key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func newGameKeyMap() gameKeyMap {
	return gameKeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type answer"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// gameModel renders the drill and translates key events into machine
// actions. All game rules live in the machine; the model only mirrors its
// latest snapshot.
type gameModel struct {
	machine *game.Machine
	state   domain.GameState
	keys    gameKeyMap

	width    int
	height   int
	err      error
	quitting bool
}

func newGameModel(m *game.Machine) gameModel {
	return gameModel{
		machine: m,
		state:   m.Snapshot(),
		keys:    newGameKeyMap(),
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		m.state = msg.state
		return m, nil

	case sessionErrMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m gameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.machine.Submit(ctx)

	case key.Matches(msg, m.keys.Delete):
		m.machine.DeleteDigit(ctx)

	case key.Matches(msg, m.keys.Digits):
		if len(msg.Runes) == 1 {
			m.machine.UpdateAnswer(ctx, msg.Runes[0])
		}
	}

	// Key-driven transitions are synchronous; refresh the mirror without
	// waiting for the subscription round trip.
	m.state = m.machine.Snapshot()
	return m, nil
}
