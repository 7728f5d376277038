package game

import "github.com/alexanderramin/drill/internal/domain"

// Action is the tagged union driving the reducer. Each variant carries the
// full payload its transition needs, so Reduce stays pure.
type Action interface {
	isAction()
}

// UpdateAnswerAction appends one digit to the typed answer.
type UpdateAnswerAction struct {
	Digit rune
}

// DeleteDigitAction removes the last typed digit.
type DeleteDigitAction struct{}

// SubmitAction evaluates the typed answer against the current problem.
type SubmitAction struct{}

// AdvanceAction installs the next problem. The machine generates Next before
// dispatching so the reducer performs no I/O.
type AdvanceAction struct {
	Next domain.Problem
}

// SettleAction is the terminal reset closing the celebration cycle.
type SettleAction struct{}

func (UpdateAnswerAction) isAction() {}
func (DeleteDigitAction) isAction()  {}
func (SubmitAction) isAction()       {}
func (AdvanceAction) isAction()      {}
func (SettleAction) isAction()       {}
