package domain

import "fmt"

// Constraints bounds the numeric space a problem may be drawn from.
type Constraints struct {
	MaxResult  int
	MinOperand int
	MaxOperand int
	AllowZero  bool
}

// EffectiveMinOperand folds the zero-inclusion policy into the lower bound.
func (c Constraints) EffectiveMinOperand() int {
	if !c.AllowZero && c.MinOperand < 1 {
		return 1
	}
	return c.MinOperand
}

// DifficultyConfig describes the problem space for one session.
type DifficultyConfig struct {
	Name             string
	Operations       []Operation
	OperandCount     int
	UnknownPositions []UnknownPosition
	Constraints      Constraints
}

// Validate rejects configurations the generator cannot satisfy.
func (c DifficultyConfig) Validate() error {
	if len(c.Operations) == 0 {
		return fmt.Errorf("config %q: no operations", c.Name)
	}
	for _, op := range c.Operations {
		if !ValidOperations[string(op)] {
			return fmt.Errorf("config %q: unknown operation %q", c.Name, op)
		}
	}
	if c.OperandCount < 2 {
		return fmt.Errorf("config %q: operand count %d, need at least 2", c.Name, c.OperandCount)
	}
	if len(c.UnknownPositions) == 0 {
		return fmt.Errorf("config %q: no unknown positions", c.Name)
	}
	for _, u := range c.UnknownPositions {
		if !u.IsResult() && u.OperandIndex() >= c.OperandCount {
			return fmt.Errorf("config %q: unknown position %s exceeds operand count %d", c.Name, u, c.OperandCount)
		}
	}
	cs := c.Constraints
	if cs.MinOperand > cs.MaxOperand {
		return fmt.Errorf("config %q: min operand %d exceeds max operand %d", c.Name, cs.MinOperand, cs.MaxOperand)
	}
	if cs.MaxResult < 1 {
		return fmt.Errorf("config %q: max result %d, need at least 1", c.Name, cs.MaxResult)
	}
	// Addition must admit at least one pair under the zero policy.
	min := cs.EffectiveMinOperand()
	if 2*min > cs.MaxResult {
		for _, op := range c.Operations {
			if op == OpAddition {
				return fmt.Errorf("config %q: no addition pair fits max result %d with min operand %d", c.Name, cs.MaxResult, min)
			}
		}
	}
	return nil
}

// Presets are the built-in difficulty configurations.
var Presets = map[string]DifficultyConfig{
	"easy": {
		Name:             "easy",
		Operations:       []Operation{OpAddition},
		OperandCount:     2,
		UnknownPositions: []UnknownPosition{UnknownResult},
		Constraints:      Constraints{MaxResult: 10, MinOperand: 0, MaxOperand: 10, AllowZero: true},
	},
	"medium": {
		Name:             "medium",
		Operations:       []Operation{OpAddition, OpSubtraction},
		OperandCount:     2,
		UnknownPositions: []UnknownPosition{UnknownResult},
		Constraints:      Constraints{MaxResult: 20, MinOperand: 0, MaxOperand: 20, AllowZero: true},
	},
	"hard": {
		Name:             "hard",
		Operations:       []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision},
		OperandCount:     2,
		UnknownPositions: []UnknownPosition{UnknownResult, UnknownOperand(0), UnknownOperand(1)},
		Constraints:      Constraints{MaxResult: 100, MinOperand: 1, MaxOperand: 12, AllowZero: false},
	},
}

// DefaultConfig is the session configuration used when nothing else is chosen.
func DefaultConfig() DifficultyConfig {
	return Presets["easy"]
}

// GameState is the single mutable aggregate the reducer transitions.
type GameState struct {
	Problem   Problem
	Answer    string
	Streak    int
	HighScore int
	Correct   Correctness
	Phase     CelebrationPhase
}
