package generator

import (
	"fmt"

	"github.com/alexanderramin/drill/internal/domain"
)

// solveForOperand builds a problem whose hidden slot is an operand rather
// than the result. It draws the target result and the known operand first,
// then algebraically inverts the operation to derive the hidden operand,
// rejecting candidates whose derived value falls outside the operand range,
// needs a zero divisor, or is not an integer. Exhausting the budget is a
// hard failure: it means the constraint space cannot be satisfied.
func (g *Generator) solveForOperand(cfg domain.DifficultyConfig, op domain.Operation, unknown domain.UnknownPosition) (domain.Problem, error) {
	if op == domain.OpAddition && cfg.OperandCount > 2 {
		return g.solveForAddend(cfg, unknown)
	}

	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()
	idx := unknown.OperandIndex()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result := g.src.IntBetween(0, cs.MaxResult)
		known := g.src.IntBetween(minOp, cs.MaxOperand)

		derived, ok := invert(op, idx, result, known)
		if !ok || derived < minOp || derived > cs.MaxOperand {
			continue
		}

		operands := orderOperands(idx, derived, known)
		// The visible result must itself satisfy the equation; a drawn
		// result that the completed operand pair does not reproduce is a
		// rejected candidate (subtraction clamping has no analogue here).
		if got, ok := domain.Evaluate(op, operands); !ok || got != result {
			continue
		}

		return domain.Problem{
			Operation: op,
			Operands:  operands,
			Unknown:   unknown,
			Answer:    derived,
			Display:   domain.FormatDisplay(op, operands, unknown, result),
		}, nil
	}

	return domain.Problem{}, fmt.Errorf("solving for %s under %s: %w", unknown, op, ErrInfeasible)
}

// solveForAddend handles hidden operands in addition chains of more than two
// operands: draw the target sum and the known addends, then the hidden slot
// is the remainder.
func (g *Generator) solveForAddend(cfg domain.DifficultyConfig, unknown domain.UnknownPosition) (domain.Problem, error) {
	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()
	n := cfg.OperandCount
	idx := unknown.OperandIndex()

	resultLow := max(1, n*minOp)
	if resultLow > cs.MaxResult {
		return domain.Problem{}, fmt.Errorf("solving for %s in %d-operand addition: %w", unknown, n, ErrInfeasible)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result := g.src.IntBetween(resultLow, cs.MaxResult)
		operands := make([]int, n)
		sum := 0
		for j := range operands {
			if j == idx {
				continue
			}
			operands[j] = g.src.IntBetween(minOp, cs.MaxOperand)
			sum += operands[j]
		}
		derived := result - sum
		if derived < minOp || derived > cs.MaxOperand {
			continue
		}
		operands[idx] = derived

		return domain.Problem{
			Operation: domain.OpAddition,
			Operands:  operands,
			Unknown:   unknown,
			Answer:    derived,
			Display:   domain.FormatDisplay(domain.OpAddition, operands, unknown, result),
		}, nil
	}

	return domain.Problem{}, fmt.Errorf("solving for %s in %d-operand addition: %w", unknown, n, ErrInfeasible)
}

// invert solves `x op y = result` for the hidden side. idx selects whether
// the hidden operand is x (0) or y (1). ok is false when the inversion is
// undefined: division by zero or a non-integral quotient.
func invert(op domain.Operation, idx, result, known int) (value int, ok bool) {
	switch op {
	case domain.OpAddition:
		return result - known, true
	case domain.OpSubtraction:
		if idx == 0 {
			// ? − known = result
			return result + known, true
		}
		// known − ? = result
		return known - result, true
	case domain.OpMultiplication:
		if known == 0 {
			// 0 × ? = result only determines ? when result is 0, and
			// then any value works; reject rather than guess.
			return 0, false
		}
		if result%known != 0 {
			return 0, false
		}
		return result / known, true
	case domain.OpDivision:
		if idx == 0 {
			// ? ÷ known = result
			if known == 0 {
				return 0, false
			}
			return result * known, true
		}
		// known ÷ ? = result
		if result == 0 || known%result != 0 {
			return 0, false
		}
		return known / result, true
	}
	return 0, false
}

// orderOperands places the derived value into the hidden slot.
func orderOperands(idx, derived, known int) []int {
	if idx == 0 {
		return []int{derived, known}
	}
	return []int{known, derived}
}
