package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/ui/components"
	"github.com/murajaa/murajaa/internal/ui/layout"
	"github.com/murajaa/murajaa/internal/ui/theme"
)

func ayahLabel(a quran.Ayah) string {
	name := a.Surah.EnglishName
	if name == "" {
		name = fmt.Sprintf("Surah %d", a.Surah.Number)
	}
	return fmt.Sprintf("%s · ayah %d", name, a.NumberInSurah)
}

// renderQuestionView renders the current question and, once revealed, its answer.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q, ok := s.sess.Current()
	if !ok {
		return renderSaving(width, height)
	}

	var b strings.Builder

	done := float64(s.sess.Index()) / float64(s.sess.Total())
	bar := components.NewProgressBar("Progress", done, min(width-8, 60))
	bar.Counter = s.Status()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), q.Type.Label()))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 72)
	ref := theme.Card.Width(cardWidth).Render(
		theme.Verse.Width(cardWidth-6).Render(q.ReferenceAyah.Text) + "\n\n" +
			theme.Hint.Width(cardWidth-6).Align(lipgloss.Center).Render(ayahLabel(q.ReferenceAyah)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, ref))
	b.WriteString("\n\n")

	if s.showHint && !s.revealed {
		hint := fmt.Sprintf("Hint: the answer is ayah %d", q.TargetAyah.NumberInSurah)
		if q.TargetAyah.Surah.Number != q.ReferenceAyah.Surah.Number {
			hint += " of " + ayahLabel(q.TargetAyah)
		}
		b.WriteString(layout.Centered(width, theme.Warning, hint))
		b.WriteString("\n\n")
	}

	switch {
	case s.typing:
		b.WriteString(layout.Centered(width, lipgloss.NewStyle(), "Recall: "+s.input.View()))
	case s.revealed:
		b.WriteString(s.renderAnswer(width, cardWidth))
	default:
		b.WriteString(layout.Centered(width, theme.Hint, "Recite it to yourself, then press Enter to check."))
	}

	return b.String()
}

func (s *SessionScreen) renderAnswer(width, cardWidth int) string {
	q, _ := s.sess.Current()

	var b strings.Builder
	answer := theme.AnswerCard.Width(cardWidth).Render(
		theme.Verse.Width(cardWidth-6).Render(q.TargetAyah.Text) + "\n\n" +
			theme.Hint.Width(cardWidth-6).Align(lipgloss.Center).Render(ayahLabel(q.TargetAyah)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
	b.WriteString("\n\n")

	if ev := s.evaluation; ev != nil {
		b.WriteString(layout.Centered(width, lipgloss.NewStyle(), "Your recall: "+s.input.View()))
		b.WriteString("\n")
		style := theme.Incorrect
		if ev.IsCorrect {
			style = theme.Correct
		}
		line := fmt.Sprintf("%s (%.0f%% match)", ev.Feedback, ev.Similarity*100)
		b.WriteString(layout.Centered(width, style, line))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Did you remember it?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Hint, "[Y] Yes    [N] No"))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End review early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Unfinished reviews are not saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error), "[Y] Yes, end review"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))

	return b.String()
}

func renderSaving(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Saving your result...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
