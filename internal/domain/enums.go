package domain

type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// ValidOperations is the canonical set of accepted operation strings.
var ValidOperations = map[string]bool{
	"addition": true, "subtraction": true,
	"multiplication": true, "division": true,
}

// Symbol returns the glyph used when rendering an equation.
func (op Operation) Symbol() string {
	switch op {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "−"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	}
	return "?"
}

type CelebrationPhase string

const (
	PhaseIdle          CelebrationPhase = "idle"
	PhaseRevealing     CelebrationPhase = "revealing"
	PhaseTransitioning CelebrationPhase = "transitioning"
)

// Correctness is the tri-state outcome of the currently shown problem.
type Correctness string

const (
	CorrectnessUnknown   Correctness = "unknown"
	CorrectnessCorrect   Correctness = "correct"
	CorrectnessIncorrect Correctness = "incorrect"
)
