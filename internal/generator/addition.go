package generator

import (
	"fmt"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/rng"
)

// pair is an ordered addition operand pair.
type pair struct {
	a, b int
}

// pairTable holds, for every achievable sum, the ordered operand pairs
// producing it. Enumerating the space up front gives uniform coverage and
// stays non-degenerate at small result ceilings, where rejection sampling
// thrashes (maxResult=1 admits exactly (0,1) and (1,0)).
type pairTable struct {
	sums  []int
	pairs map[int][]pair
}

func buildPairTable(cs domain.Constraints) pairTable {
	minOp := cs.EffectiveMinOperand()
	t := pairTable{pairs: make(map[int][]pair)}
	for sum := 1; sum <= cs.MaxResult; sum++ {
		var ps []pair
		for a := minOp; a <= min(sum, cs.MaxOperand); a++ {
			b := sum - a
			if b < minOp || b > cs.MaxOperand {
				continue
			}
			ps = append(ps, pair{a, b})
		}
		if len(ps) > 0 {
			t.sums = append(t.sums, sum)
			t.pairs[sum] = ps
		}
	}
	return t
}

// without returns the pairs for sum with the excluded pair filtered out.
func (t pairTable) without(sum int, excluded *pair) []pair {
	ps := t.pairs[sum]
	if excluded == nil {
		return ps
	}
	filtered := make([]pair, 0, len(ps))
	for _, p := range ps {
		if p != *excluded {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// previousPair extracts the ordered pair from the prior problem when it was
// a two-operand addition; anti-repeat only applies to that shape.
func previousPair(previous *domain.Problem) *pair {
	if previous == nil || previous.Operation != domain.OpAddition || len(previous.Operands) != 2 {
		return nil
	}
	return &pair{previous.Operands[0], previous.Operands[1]}
}

// generateAdditionPair draws a uniformly random achievable sum, then a
// uniformly random ordered pair for it. The previous problem's exact pair is
// excluded unless it is provably the only pair anywhere in the table.
func (g *Generator) generateAdditionPair(cfg domain.DifficultyConfig, previous *domain.Problem) (domain.Problem, error) {
	t := buildPairTable(cfg.Constraints)
	if len(t.sums) == 0 {
		return domain.Problem{}, fmt.Errorf("generating addition: %w", ErrInfeasible)
	}

	excluded := previousPair(previous)
	sum := rng.Pick(g.src, t.sums)
	pool := t.without(sum, excluded)
	if len(pool) == 0 {
		// The exclusion emptied this sum's pool. Look for any other sum
		// with a feasible alternative before permitting a repeat.
		alternatives := make([]int, 0, len(t.sums))
		for _, s := range t.sums {
			if len(t.without(s, excluded)) > 0 {
				alternatives = append(alternatives, s)
			}
		}
		if len(alternatives) > 0 {
			sum = rng.Pick(g.src, alternatives)
			pool = t.without(sum, excluded)
		} else {
			// The previous pair is the sole problem the constraint
			// space admits; a repeat is the only option.
			pool = t.pairs[sum]
		}
	}

	p := rng.Pick(g.src, pool)
	return resultProblem(domain.OpAddition, []int{p.a, p.b})
}

// generateAdditionChain allocates operands sequentially toward a drawn
// target sum, keeping enough headroom for every remaining slot, then
// permutes the sequence so magnitude does not pile up in the last position.
func (g *Generator) generateAdditionChain(cfg domain.DifficultyConfig) (domain.Problem, error) {
	cs := cfg.Constraints
	minOp := cs.EffectiveMinOperand()
	n := cfg.OperandCount

	low := max(1, n*minOp)
	high := min(cs.MaxResult, n*cs.MaxOperand)
	if high < low {
		return domain.Problem{}, fmt.Errorf("generating %d-operand addition: %w", n, ErrInfeasible)
	}
	target := g.src.IntBetween(low, high)

	operands := make([]int, 0, n)
	remaining := target
	for i := 0; i < n-1; i++ {
		slotsAfter := n - 1 - i
		vLow := max(minOp, remaining-slotsAfter*cs.MaxOperand)
		vHigh := min(cs.MaxOperand, remaining-slotsAfter*minOp)
		v := g.src.IntBetween(vLow, vHigh)
		operands = append(operands, v)
		remaining -= v
	}
	// The final slot absorbs the remainder; the headroom bounds above
	// guarantee it lands inside the operand range.
	operands = append(operands, remaining)
	rng.Shuffle(g.src, operands)

	return resultProblem(domain.OpAddition, operands)
}
