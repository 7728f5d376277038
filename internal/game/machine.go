package game

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/generator"
	"github.com/google/uuid"
)

// SessionStats are per-session counters. They live in memory only and reset
// with the process; the high score is the single persisted scalar.
type SessionStats struct {
	SessionID string
	Answered  int
	Correct   int
}

// Machine owns the game state and serializes every transition. All mutation
// flows through dispatch, which applies the pure reducer under a lock, so
// actions can arrive from both the input loop and orchestrator timers
// without racing.
type Machine struct {
	cfg    domain.DifficultyConfig
	gen    *generator.Generator
	scores ScoreStore

	mu    sync.Mutex
	state domain.GameState
	stats SessionStats
	subs  []func(domain.GameState)
}

// NewMachine validates the configuration, generates the opening problem and
// loads the persisted high score.
func NewMachine(ctx context.Context, cfg domain.DifficultyConfig, gen *generator.Generator, scores ScoreStore) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	first, err := gen.Generate(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return &Machine{
		cfg:    cfg,
		gen:    gen,
		scores: scores,
		state: domain.GameState{
			Problem:   first,
			Correct:   domain.CorrectnessUnknown,
			Phase:     domain.PhaseIdle,
			HighScore: scores.HighScore(ctx),
		},
		stats: SessionStats{SessionID: uuid.NewString()},
	}, nil
}

// Subscribe registers fn to receive a snapshot after every state change.
// Subscribers are called outside the machine lock and may dispatch actions.
func (m *Machine) Subscribe(fn func(domain.GameState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() domain.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Stats returns the in-memory session counters.
func (m *Machine) Stats() SessionStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Config returns the session's difficulty configuration.
func (m *Machine) Config() domain.DifficultyConfig {
	return m.cfg
}

// UpdateAnswer appends one digit to the typed answer. Non-digits and input
// outside the idle phase are no-ops.
func (m *Machine) UpdateAnswer(ctx context.Context, digit rune) {
	m.dispatch(ctx, UpdateAnswerAction{Digit: digit})
}

// DeleteDigit removes the last typed digit.
func (m *Machine) DeleteDigit(ctx context.Context) {
	m.dispatch(ctx, DeleteDigitAction{})
}

// Submit evaluates the typed answer. Empty answers and mid-animation calls
// are no-ops, which is what makes double submission impossible.
func (m *Machine) Submit(ctx context.Context) {
	m.dispatch(ctx, SubmitAction{})
}

// Advance generates and installs the next problem, passing the outgoing one
// for anti-repeat. Generation failure propagates: it signals an infeasible
// configuration, not a transient.
func (m *Machine) Advance(ctx context.Context) error {
	m.mu.Lock()
	outgoing := m.state.Problem
	m.mu.Unlock()

	next, err := m.gen.Generate(m.cfg, &outgoing)
	if err != nil {
		return fmt.Errorf("advancing: %w", err)
	}
	m.dispatch(ctx, AdvanceAction{Next: next})
	return nil
}

// Settle performs the terminal reset closing the celebration cycle.
func (m *Machine) Settle(ctx context.Context) {
	m.dispatch(ctx, SettleAction{})
}

func (m *Machine) dispatch(ctx context.Context, action Action) {
	m.mu.Lock()
	before := m.state
	after := Reduce(before, action)
	m.state = after

	if _, ok := action.(SubmitAction); ok && after.Phase == domain.PhaseRevealing && before.Phase == domain.PhaseIdle {
		m.stats.Answered++
		if after.Correct == domain.CorrectnessCorrect {
			m.stats.Correct++
		}
	}

	persist := after.HighScore > before.HighScore
	subs := make([]func(domain.GameState), len(m.subs))
	copy(subs, m.subs)
	changed := !statesEqual(before, after)
	m.mu.Unlock()

	if persist {
		m.scores.SetHighScore(ctx, after.HighScore)
	}
	if changed {
		for _, fn := range subs {
			fn(after)
		}
	}
}

// statesEqual reports whether two states are indistinguishable. GameState
// holds an operand slice, so it is not directly comparable.
func statesEqual(a, b domain.GameState) bool {
	return a.Answer == b.Answer &&
		a.Streak == b.Streak &&
		a.HighScore == b.HighScore &&
		a.Correct == b.Correct &&
		a.Phase == b.Phase &&
		a.Problem.Operation == b.Problem.Operation &&
		a.Problem.Unknown == b.Problem.Unknown &&
		a.Problem.Answer == b.Problem.Answer &&
		a.Problem.Display == b.Problem.Display &&
		slices.Equal(a.Problem.Operands, b.Problem.Operands)
}
