// Package details shows the per-question breakdown of one stored review.
package details

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/screens"
	"github.com/murajaa/murajaa/internal/ui/layout"
	"github.com/murajaa/murajaa/internal/ui/theme"
)

type deletedMsg struct {
	Err error
}

// DetailsScreen lists every question of a review with its grade.
type DetailsScreen struct {
	deps       screens.Deps
	result     quiz.TestResult
	offset     int
	confirming bool
	errMsg     string
}

var (
	_ screen.Screen          = (*DetailsScreen)(nil)
	_ screen.KeyHintProvider = (*DetailsScreen)(nil)
	_ screen.EscapeHandler   = (*DetailsScreen)(nil)
)

// New creates a DetailsScreen for result.
func New(deps screens.Deps, result quiz.TestResult) *DetailsScreen {
	return &DetailsScreen{deps: deps.WithDefaults(), result: result}
}

func (s *DetailsScreen) Init() tea.Cmd { return nil }

func (s *DetailsScreen) Title() string {
	return screens.DescribeSelection(s.result)
}

func (s *DetailsScreen) HandlesEscape() bool { return s.confirming }

func (s *DetailsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyPressMsg:
		key := msg.String()
		if s.confirming {
			switch key {
			case "y", "Y":
				s.confirming = false
				return s, s.delete()
			case "n", "N", "esc":
				s.confirming = false
			}
			return s, nil
		}
		switch key {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.result.Results)-1 {
				s.offset++
			}
		case "d", "D":
			s.confirming = true
		}
	}
	return s, nil
}

func (s *DetailsScreen) delete() tea.Cmd {
	hist, log, id := s.deps.History, s.deps.Log, s.result.ID
	return func() tea.Msg {
		if hist == nil {
			return deletedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		err := hist.Delete(ctx, id)
		if err != nil {
			log.Error("delete review", zap.String("id", id), zap.Error(err))
		}
		return deletedMsg{Err: err}
	}
}

func questionLine(i int, qr quiz.QuestionResult) string {
	mark := theme.Correct.Render("✓")
	if !qr.IsCorrect {
		mark = theme.Incorrect.Render("✗")
	}
	q := qr.Question
	return fmt.Sprintf("%s %2d. %-8s %s %d → %d", mark, i+1, q.Type,
		q.ReferenceAyah.Surah.EnglishName, q.ReferenceAyah.NumberInSurah, q.TargetAyah.NumberInSurah)
}

func (s *DetailsScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title,
		fmt.Sprintf("%s  ·  %d / %d  ·  %d%%", screens.FormatDate(r.Date), r.Score, r.TotalQuestions, r.Percentage())))
	b.WriteString("\n\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")

	if len(r.Results) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "No questions recorded."))
	}

	textWidth := min(width-8, 72)
	// each entry takes four lines
	perPage := max((height-8)/4, 1)
	end := min(s.offset+perPage, len(r.Results))
	for i := s.offset; i < end; i++ {
		qr := r.Results[i]
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(textWidth).Render(questionLine(i, qr))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Width(textWidth).Align(lipgloss.Right).Render(qr.Question.ReferenceAyah.Text)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Width(textWidth).Align(lipgloss.Right).Render(qr.Question.TargetAyah.Text)))
		b.WriteString("\n\n")
	}

	if s.confirming {
		b.WriteString(layout.Centered(width, theme.Warning, "Delete this review? [Y/N]"))
	}
	if s.errMsg != "" {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Error: "+s.errMsg))
	}
	return b.String()
}
