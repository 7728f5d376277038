// Package generator produces arithmetic problems satisfying a difficulty
// configuration. Problems are constructed so constraints hold by derivation
// wherever possible; the few genuinely sampled paths use a bounded retry
// budget and every candidate passes an independent re-verification gate
// before it is returned.
package generator

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/rng"
)

// maxAttempts bounds every rejection-sampling loop in this package.
const maxAttempts = 100

// ErrInfeasible reports a configuration whose constraint space admits no
// solution within the retry budget. It signals a design-time
// misconfiguration, not a runtime transient.
var ErrInfeasible = errors.New("no problem satisfies the configured constraints")

// Generator draws problems from a difficulty configuration.
type Generator struct {
	src *rng.Source
}

// New returns a Generator sampling from src.
func New(src *rng.Source) *Generator {
	return &Generator{src: src}
}

// Generate produces one problem satisfying cfg. previous, when non-nil, is
// the problem just answered and is excluded from the draw where a feasible
// alternative exists.
func (g *Generator) Generate(cfg domain.DifficultyConfig, previous *domain.Problem) (domain.Problem, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Problem{}, fmt.Errorf("generating problem: %w", err)
	}

	op := rng.Pick(g.src, cfg.Operations)
	unknown := g.pickUnknown(cfg, op)

	var p domain.Problem
	var err error
	if unknown.IsResult() {
		p, err = g.generateForResult(cfg, op, previous)
	} else {
		p, err = g.solveForOperand(cfg, op, unknown)
	}
	if err != nil {
		return domain.Problem{}, err
	}

	// Hard correctness gate: the stated answer must survive independent
	// re-evaluation regardless of which construction path produced it.
	if err := p.Verify(); err != nil {
		return domain.Problem{}, fmt.Errorf("verifying generated problem: %w", err)
	}
	return p, nil
}

// pickUnknown chooses a hidden slot valid for the operation's operand count.
func (g *Generator) pickUnknown(cfg domain.DifficultyConfig, op domain.Operation) domain.UnknownPosition {
	count := operandCount(cfg, op)
	valid := make([]domain.UnknownPosition, 0, len(cfg.UnknownPositions))
	for _, u := range cfg.UnknownPositions {
		if u.IsResult() || u.OperandIndex() < count {
			valid = append(valid, u)
		}
	}
	if len(valid) == 0 {
		return domain.UnknownResult
	}
	return rng.Pick(g.src, valid)
}

// operandCount returns the operand count for op. Only addition generalizes
// beyond two operands; the other operations are binary facts.
func operandCount(cfg domain.DifficultyConfig, op domain.Operation) int {
	if op == domain.OpAddition {
		return cfg.OperandCount
	}
	return 2
}

func (g *Generator) generateForResult(cfg domain.DifficultyConfig, op domain.Operation, previous *domain.Problem) (domain.Problem, error) {
	switch op {
	case domain.OpAddition:
		if cfg.OperandCount > 2 {
			return g.generateAdditionChain(cfg)
		}
		return g.generateAdditionPair(cfg, previous)
	case domain.OpSubtraction:
		return g.generateSubtraction(cfg)
	case domain.OpMultiplication:
		return g.generateMultiplication(cfg)
	case domain.OpDivision:
		return g.generateDivision(cfg)
	}
	return domain.Problem{}, fmt.Errorf("generating problem: unsupported operation %q", op)
}

// resultProblem assembles a result-unknown problem from its true operands.
func resultProblem(op domain.Operation, operands []int) (domain.Problem, error) {
	result, ok := domain.Evaluate(op, operands)
	if !ok {
		return domain.Problem{}, fmt.Errorf("assembling problem: %v %s sequence does not evaluate", operands, op)
	}
	return domain.Problem{
		Operation: op,
		Operands:  operands,
		Unknown:   domain.UnknownResult,
		Answer:    result,
		Display:   domain.FormatDisplay(op, operands, domain.UnknownResult, result),
	}, nil
}

// generateSubtraction draws the result first so it is non-negative by
// construction, then derives the minuend from a drawn subtrahend. When the
// derived minuend overshoots the operand ceiling it is clamped and the
// subtrahend compensated so the result still holds exactly.
func (g *Generator) generateSubtraction(cfg domain.DifficultyConfig) (domain.Problem, error) {
	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result := g.src.IntBetween(0, cs.MaxResult)
		subtrahend := g.src.IntBetween(minOp, cs.MaxOperand)
		minuend := result + subtrahend
		if minuend > cs.MaxOperand {
			over := minuend - cs.MaxOperand
			minuend = cs.MaxOperand
			subtrahend -= over
		}
		if subtrahend < minOp || minuend < minOp {
			continue
		}
		return resultProblem(domain.OpSubtraction, []int{minuend, subtrahend})
	}

	// Deterministic fallback: the smallest valid fact under the bounds.
	if cs.MaxOperand < minOp {
		return domain.Problem{}, fmt.Errorf("generating subtraction: %w", ErrInfeasible)
	}
	return resultProblem(domain.OpSubtraction, []int{cs.MaxOperand, minOp})
}

// generateMultiplication draws the first factor, then bounds the second so
// the product cannot exceed the result ceiling.
func (g *Generator) generateMultiplication(cfg domain.DifficultyConfig) (domain.Problem, error) {
	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		first := g.src.IntBetween(minOp, cs.MaxOperand)
		high := cs.MaxOperand
		if first != 0 {
			high = min(cs.MaxOperand, cs.MaxResult/first)
		}
		if high < minOp {
			continue
		}
		second := g.src.IntBetween(minOp, high)
		return resultProblem(domain.OpMultiplication, []int{first, second})
	}

	if minOp*minOp > cs.MaxResult {
		return domain.Problem{}, fmt.Errorf("generating multiplication: %w", ErrInfeasible)
	}
	return resultProblem(domain.OpMultiplication, []int{minOp, minOp})
}

// generateDivision derives the dividend as quotient times divisor, so the
// result is whole and the divisor non-zero by construction rather than by
// rejection.
func (g *Generator) generateDivision(cfg domain.DifficultyConfig) (domain.Problem, error) {
	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()
	divisorMin := max(1, minOp)
	if cs.MaxOperand < divisorMin {
		// No divisor fits under the operand ceiling; widening the draw
		// would hand out divisors above it.
		return domain.Problem{}, fmt.Errorf("generating division: %w", ErrInfeasible)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		divisor := g.src.IntBetween(divisorMin, cs.MaxOperand)
		qHigh := min(cs.MaxResult, cs.MaxOperand/divisor)
		qLow := ceilDiv(minOp, divisor)
		if !cs.AllowZero && qLow < 1 {
			qLow = 1
		}
		if qHigh < qLow {
			continue
		}
		quotient := g.src.IntBetween(qLow, qHigh)
		return resultProblem(domain.OpDivision, []int{quotient * divisor, divisor})
	}

	// Smallest valid fact: dividend == divisor, quotient 1.
	return resultProblem(domain.OpDivision, []int{divisorMin, divisorMin})
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
