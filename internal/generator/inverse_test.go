package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	tests := []struct {
		name   string
		op     domain.Operation
		idx    int
		result int
		known  int
		want   int
		ok     bool
	}{
		{"addition left", domain.OpAddition, 0, 7, 4, 3, true},
		{"addition right", domain.OpAddition, 1, 7, 3, 4, true},
		{"subtraction minuend", domain.OpSubtraction, 0, 5, 4, 9, true},
		{"subtraction subtrahend", domain.OpSubtraction, 1, 5, 9, 4, true},
		{"multiplication", domain.OpMultiplication, 0, 12, 4, 3, true},
		{"multiplication non-integral", domain.OpMultiplication, 0, 13, 4, 0, false},
		{"multiplication zero factor", domain.OpMultiplication, 0, 0, 0, 0, false},
		{"division dividend", domain.OpDivision, 0, 3, 4, 12, true},
		{"division divisor", domain.OpDivision, 1, 3, 12, 4, true},
		{"division divisor zero result", domain.OpDivision, 1, 0, 12, 0, false},
		{"division divisor non-integral", domain.OpDivision, 1, 5, 12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := invert(tt.op, tt.idx, tt.result, tt.known)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// TestSolveForOperand_Invariants property-tests hidden-operand generation
// across operations and both operand slots.
func TestSolveForOperand_Invariants(t *testing.T) {
	g := New(rng.NewSeeded(19))
	cfg := domain.DifficultyConfig{
		Name:         "inverse",
		Operations:   []domain.Operation{domain.OpAddition, domain.OpSubtraction, domain.OpMultiplication, domain.OpDivision},
		OperandCount: 2,
		UnknownPositions: []domain.UnknownPosition{
			domain.UnknownOperand(0), domain.UnknownOperand(1),
		},
		Constraints: domain.Constraints{MaxResult: 30, MinOperand: 0, MaxOperand: 30, AllowZero: true},
	}

	for trial := 0; trial < 500; trial++ {
		p, err := g.Generate(cfg, nil)
		require.NoError(t, err, "trial %d", trial)
		require.False(t, p.Unknown.IsResult())

		idx := p.Unknown.OperandIndex()
		assert.Equal(t, p.Operands[idx], p.Answer, "trial %d: answer must fill the hidden slot", trial)
		for _, v := range p.Operands {
			assert.GreaterOrEqual(t, v, 0, "trial %d", trial)
			assert.LessOrEqual(t, v, 30, "trial %d", trial)
		}
		assert.NoError(t, p.Verify(), "trial %d: %s", trial, p.Display)
		assert.Equal(t, 1, strings.Count(p.Display, "?"), "trial %d display %q", trial, p.Display)
		assert.False(t, strings.HasSuffix(p.Display, "= ?"), "trial %d: result must be visible", trial)
	}
}

// TestSolveForOperand_ScenarioHiddenFactor mirrors the canonical hidden
// factor drill: a problem shown as "? × 4 = 12" must answer 3.
func TestSolveForOperand_ScenarioHiddenFactor(t *testing.T) {
	g := New(rng.NewSeeded(29))
	cfg := domain.DifficultyConfig{
		Name:             "hidden-factor",
		Operations:       []domain.Operation{domain.OpMultiplication},
		OperandCount:     2,
		UnknownPositions: []domain.UnknownPosition{domain.UnknownOperand(0)},
		Constraints:      domain.Constraints{MaxResult: 20, MinOperand: 1, MaxOperand: 10, AllowZero: false},
	}

	for trial := 0; trial < 200; trial++ {
		p, err := g.Generate(cfg, nil)
		require.NoError(t, err)
		require.Len(t, p.Operands, 2)

		visible, ok := domain.Evaluate(domain.OpMultiplication, p.Operands)
		require.True(t, ok)
		assert.Equal(t, p.Operands[0], p.Answer)
		assert.True(t, strings.HasPrefix(p.Display, "?"), "display %q", p.Display)
		assert.Contains(t, p.Display, "= ")
		assert.Equal(t, p.Answer*p.Operands[1], visible)
	}
}

// TestSolveForOperand_InfeasibleBoundsFailLoudly: a hidden subtrahend with a
// result floor above the operand ceiling can never satisfy the bounds, and
// the exhausted budget must surface as ErrInfeasible rather than a clamped
// wrong problem.
func TestSolveForOperand_InfeasibleBoundsFailLoudly(t *testing.T) {
	g := New(rng.NewSeeded(41))
	cfg := domain.DifficultyConfig{
		Name:             "infeasible",
		Operations:       []domain.Operation{domain.OpMultiplication},
		OperandCount:     2,
		UnknownPositions: []domain.UnknownPosition{domain.UnknownOperand(0)},
		// Factors at least 5 with products capped at 20: 5×5=25 already
		// overshoots, so no hidden factor can be derived.
		Constraints: domain.Constraints{MaxResult: 20, MinOperand: 5, MaxOperand: 20, AllowZero: false},
	}

	_, err := g.Generate(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasible), "got %v", err)
}

// TestSolveForAddend_ChainWithHiddenSlot covers addition chains longer than
// two operands with a hidden addend.
func TestSolveForAddend_ChainWithHiddenSlot(t *testing.T) {
	g := New(rng.NewSeeded(47))
	cfg := domain.DifficultyConfig{
		Name:             "hidden-addend",
		Operations:       []domain.Operation{domain.OpAddition},
		OperandCount:     3,
		UnknownPositions: []domain.UnknownPosition{domain.UnknownOperand(1)},
		Constraints:      domain.Constraints{MaxResult: 15, MinOperand: 0, MaxOperand: 10, AllowZero: true},
	}

	for trial := 0; trial < 300; trial++ {
		p, err := g.Generate(cfg, nil)
		require.NoError(t, err)
		require.Len(t, p.Operands, 3)
		assert.Equal(t, p.Operands[1], p.Answer, "trial %d", trial)
		sum := p.Operands[0] + p.Operands[1] + p.Operands[2]
		assert.LessOrEqual(t, sum, 15, "trial %d", trial)
		assert.NoError(t, p.Verify(), "trial %d", trial)
		assert.Equal(t, 1, strings.Count(p.Display, "?"), "trial %d", trial)
	}
}

// TestSolveForOperand_DivisionNeverZeroDivisor sweeps hidden-divisor
// problems for the division guarantees.
func TestSolveForOperand_DivisionNeverZeroDivisor(t *testing.T) {
	g := New(rng.NewSeeded(43))
	cfg := domain.DifficultyConfig{
		Name:             "hidden-divisor",
		Operations:       []domain.Operation{domain.OpDivision},
		OperandCount:     2,
		UnknownPositions: []domain.UnknownPosition{domain.UnknownOperand(1)},
		Constraints:      domain.Constraints{MaxResult: 12, MinOperand: 0, MaxOperand: 40, AllowZero: true},
	}

	for trial := 0; trial < 300; trial++ {
		p, err := g.Generate(cfg, nil)
		require.NoError(t, err)
		assert.NotZero(t, p.Answer, "trial %d: derived divisor must be non-zero", trial)
		assert.Zero(t, p.Operands[0]%p.Answer, "trial %d", trial)
	}
}
