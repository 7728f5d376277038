package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownPosition identifies the slot in an equation the player must supply:
// the result, or one of the operands by zero-based index.
type UnknownPosition int

// UnknownResult marks the equation's result as the hidden slot.
const UnknownResult UnknownPosition = -1

// UnknownOperand returns the position for the operand at index i.
func UnknownOperand(i int) UnknownPosition {
	return UnknownPosition(i)
}

// IsResult reports whether the hidden slot is the equation's result.
func (u UnknownPosition) IsResult() bool {
	return u == UnknownResult
}

// OperandIndex returns the zero-based operand index. Only valid when
// IsResult() is false.
func (u UnknownPosition) OperandIndex() int {
	return int(u)
}

func (u UnknownPosition) String() string {
	if u.IsResult() {
		return "result"
	}
	return fmt.Sprintf("operand-%d", int(u))
}

// ParseUnknownPosition parses the string form used in persisted settings
// ("result" or "operand-N").
func ParseUnknownPosition(s string) (UnknownPosition, error) {
	if s == "result" {
		return UnknownResult, nil
	}
	rest, ok := strings.CutPrefix(s, "operand-")
	if !ok {
		return 0, fmt.Errorf("parsing unknown position %q", s)
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("parsing unknown position %q", s)
	}
	return UnknownOperand(i), nil
}

// Problem is one generated arithmetic fact. It is immutable after
// construction; advancing the game installs a fresh Problem rather than
// mutating the current one.
type Problem struct {
	Operation Operation
	Operands  []int
	Unknown   UnknownPosition
	Answer    int
	Display   string
}

// Evaluate left-folds op over operands. ok is false when the fold is
// undefined over the integers: a zero divisor or a non-integral quotient.
func Evaluate(op Operation, operands []int) (result int, ok bool) {
	if len(operands) == 0 {
		return 0, false
	}
	result = operands[0]
	for _, v := range operands[1:] {
		switch op {
		case OpAddition:
			result += v
		case OpSubtraction:
			result -= v
		case OpMultiplication:
			result *= v
		case OpDivision:
			if v == 0 || result%v != 0 {
				return 0, false
			}
			result /= v
		default:
			return 0, false
		}
	}
	return result, true
}

// Result returns the visible result of the equation: the stated answer when
// the result slot is hidden, otherwise the evaluated operand sequence.
func (p Problem) Result() (int, bool) {
	if p.Unknown.IsResult() {
		return p.Answer, true
	}
	return Evaluate(p.Operation, p.Operands)
}

// Verify re-evaluates the equation with the answer substituted into the
// hidden slot and checks it against the visible result. A failure here is an
// internal invariant violation, never an expected runtime condition.
func (p Problem) Verify() error {
	filled := make([]int, len(p.Operands))
	copy(filled, p.Operands)
	want := p.Answer
	if !p.Unknown.IsResult() {
		i := p.Unknown.OperandIndex()
		if i >= len(filled) {
			return fmt.Errorf("unknown position %s out of range for %d operands", p.Unknown, len(filled))
		}
		filled[i] = p.Answer
		visible, ok := p.Result()
		if !ok {
			return fmt.Errorf("equation %q has no integer result", p.Display)
		}
		want = visible
	}
	got, ok := Evaluate(p.Operation, filled)
	if !ok {
		return fmt.Errorf("equation %q does not evaluate over the integers", p.Display)
	}
	if got != want {
		return fmt.Errorf("equation %q evaluates to %d, stated result is %d", p.Display, got, want)
	}
	return nil
}

// FormatDisplay renders the equation with the hidden slot replaced by "?".
// The result slot renders as "= ?" when hidden, "= <result>" otherwise.
func FormatDisplay(op Operation, operands []int, unknown UnknownPosition, result int) string {
	parts := make([]string, len(operands))
	for i, v := range operands {
		if !unknown.IsResult() && unknown.OperandIndex() == i {
			parts[i] = "?"
			continue
		}
		parts[i] = strconv.Itoa(v)
	}
	lhs := strings.Join(parts, " "+op.Symbol()+" ")
	if unknown.IsResult() {
		return lhs + " = ?"
	}
	return lhs + " = " + strconv.Itoa(result)
}
