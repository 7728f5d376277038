package game

import (
	"strconv"

	"github.com/alexanderramin/drill/internal/domain"
)

// MaxAnswerLen caps the typed answer; three digits cover every result the
// constraint space can produce.
const MaxAnswerLen = 3

// Reduce is the pure transition function over the game state. Rejected
// actions return the state unchanged; there is no error surface here because
// invalid input is an expected UI race, not a fault.
func Reduce(s domain.GameState, action Action) domain.GameState {
	switch a := action.(type) {

	case UpdateAnswerAction:
		if s.Phase != domain.PhaseIdle {
			return s
		}
		if a.Digit < '0' || a.Digit > '9' || len(s.Answer) >= MaxAnswerLen {
			return s
		}
		s.Answer += string(a.Digit)
		return s

	case DeleteDigitAction:
		if s.Phase != domain.PhaseIdle || s.Answer == "" {
			return s
		}
		s.Answer = s.Answer[:len(s.Answer)-1]
		return s

	case SubmitAction:
		if s.Phase != domain.PhaseIdle || s.Answer == "" {
			return s
		}
		answer, err := strconv.Atoi(s.Answer)
		if err != nil {
			// Unreachable with digit-only input; treat as a no-op.
			return s
		}
		if answer == s.Problem.Answer {
			s.Correct = domain.CorrectnessCorrect
			s.Streak++
			if s.Streak > s.HighScore {
				s.HighScore = s.Streak
			}
		} else {
			// The streak stays visible through the reveal; the reset
			// is deferred to the advance.
			s.Correct = domain.CorrectnessIncorrect
		}
		s.Phase = domain.PhaseRevealing
		return s

	case AdvanceAction:
		if s.Correct == domain.CorrectnessIncorrect {
			s.Streak = 0
		}
		s.Problem = a.Next
		s.Answer = ""
		s.Correct = domain.CorrectnessUnknown
		s.Phase = domain.PhaseTransitioning
		return s

	case SettleAction:
		if s.Phase != domain.PhaseTransitioning {
			return s
		}
		s.Phase = domain.PhaseIdle
		return s
	}

	return s
}
