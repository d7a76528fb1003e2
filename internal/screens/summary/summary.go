// Package summary shows the outcome of a finished review.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/ui/components"
	"github.com/murajaa/murajaa/internal/ui/layout"
	"github.com/murajaa/murajaa/internal/ui/theme"
)

// Feedback returns the encouragement line for a percentage.
func Feedback(percentage int) string {
	switch {
	case percentage >= 100:
		return "Masha'Allah! Flawless recall."
	case percentage >= 80:
		return "Well done! Excellent level, keep going."
	case percentage >= 50:
		return "Good, memorization needs more repetition."
	default:
		return "No worries, review is the key to retention. Try again."
	}
}

// SummaryScreen displays the result of a review.
type SummaryScreen struct {
	result  quiz.TestResult
	saveErr error
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen. saveErr is shown as a warning when the result
// could not be stored. again builds the screen for another review and may be nil.
func New(result quiz.TestResult, saveErr error, again func() screen.Screen) *SummaryScreen {
	items := []components.MenuItem{
		{Label: "New review", Disabled: again == nil, Action: func() tea.Cmd {
			next := again()
			return tea.Sequence(
				func() tea.Msg { return router.PopToRootMsg{} },
				func() tea.Msg { return router.PushScreenMsg{Screen: next} },
			)
		}},
		{Label: "Home", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	}
	return &SummaryScreen{
		result:  result,
		saveErr: saveErr,
		menu:    components.NewMenu(items),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Review Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

// HandlesEscape is true so Esc skips the selection screen below and goes home.
func (s *SummaryScreen) HandlesEscape() bool { return true }

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	pct := r.Percentage()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Review complete!"))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	b.WriteString(layout.Centered(width, scoreStyle,
		fmt.Sprintf("%d / %d correct    %d%%", r.Score, r.TotalQuestions, pct)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(pct)/100, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body, Feedback(pct)))
	b.WriteString("\n\n")

	if s.saveErr != nil {
		b.WriteString(layout.Centered(width, theme.Warning, "⚠ This result could not be saved to history."))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
