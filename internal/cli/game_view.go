package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	equationStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	scoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m gameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render("drill") + "\n\n")
	b.WriteString(m.equationLine() + "\n\n")
	b.WriteString(m.feedbackLine() + "\n\n")
	b.WriteString(m.scoreLine() + "\n")
	b.WriteString(m.helpLine() + "\n")
	return b.String()
}

// equationLine shows the current problem with the typed answer standing in
// for the hidden slot. During the reveal the completed equation is shown.
func (m gameModel) equationLine() string {
	s := m.state
	if s.Phase == domain.PhaseRevealing {
		// The outgoing problem with its true answer filled in.
		filled := strings.Replace(s.Problem.Display, "?", strconv.Itoa(s.Problem.Answer), 1)
		return equationStyle.Render(filled)
	}
	if s.Phase == domain.PhaseTransitioning {
		// The next problem sliding in; keep its slot masked.
		return equationStyle.Render(s.Problem.Display)
	}

	typed := s.Answer
	if typed == "" {
		typed = "_"
	}
	line := strings.Replace(s.Problem.Display, "?", answerStyle.Render(typed), 1)
	return equationStyle.Render(line)
}

func (m gameModel) feedbackLine() string {
	switch m.state.Correct {
	case domain.CorrectnessCorrect:
		return correctStyle.Render("✓ Correct!")
	case domain.CorrectnessIncorrect:
		return incorrectStyle.Render(fmt.Sprintf("✗ It was %d", m.state.Problem.Answer))
	}
	if m.state.Phase == domain.PhaseTransitioning {
		return dimStyle.Render("…")
	}
	return ""
}

func (m gameModel) scoreLine() string {
	stats := m.machine.Stats()
	return scoreStyle.Render(fmt.Sprintf("streak %d · best %d", m.state.Streak, m.state.HighScore)) +
		dimStyle.Render(fmt.Sprintf("   %d/%d session %s", stats.Correct, stats.Answered, shortID(stats.SessionID)))
}

// shortID is the leading uuid group, enough to correlate a session across
// the footer and the summary line.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m gameModel) helpLine() string {
	parts := make([]string, 0, 4)
	for _, b := range []struct{ k, desc string }{
		{m.keys.Digits.Help().Key, m.keys.Digits.Help().Desc},
		{m.keys.Delete.Help().Key, m.keys.Delete.Help().Desc},
		{m.keys.Submit.Help().Key, m.keys.Submit.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	} {
		parts = append(parts, b.k+" "+b.desc)
	}
	return dimStyle.Render(strings.Join(parts, " · "))
}
