package selection

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/ui/layout"
	"github.com/murajaa/murajaa/internal/ui/theme"
)

const labelWidth = 12

func (s *SelectionScreen) row(f field, label, control string) string {
	style := theme.Unselected
	marker := "  "
	if s.focus == f {
		style = theme.Selected
		marker = "▸ "
	}
	return style.Render(marker+fmt.Sprintf("%-*s", labelWidth, label)) + control
}

func (s *SelectionScreen) surahInfo() string {
	id, err := s.surah.NumericValue()
	if err != nil || id == 0 {
		return ""
	}
	for _, su := range s.surahs {
		if su.Number == id {
			return describeSurah(su)
		}
	}
	return ""
}

func describeSurah(su quran.Surah) string {
	return fmt.Sprintf("%s (%s) · %d ayat", su.EnglishName, su.Name, su.NumberOfAyahs)
}

func (s *SelectionScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading verses...")
	}

	var rows []string
	rows = append(rows, s.row(fieldMode, "Review by", s.mode.View()))
	rows = append(rows, "")

	if s.isSurahMode() {
		rows = append(rows, s.row(fieldSurah, "Surah", s.surah.View()))
		if info := s.surahInfo(); info != "" {
			rows = append(rows, strings.Repeat(" ", labelWidth+2)+theme.Hint.Render(info))
		}
		rows = append(rows, s.row(fieldFrom, "From ayah", s.from.View()))
		rows = append(rows, s.row(fieldTo, "To ayah", s.to.View()))
		rows = append(rows, strings.Repeat(" ", labelWidth+2)+theme.Hint.Render("leave the range empty for the whole surah"))
	} else {
		rows = append(rows, s.row(fieldJuz, "Juz", s.juz.View()))
	}
	rows = append(rows, "")
	rows = append(rows, s.row(fieldCount, "Questions", s.count.View()))

	form := theme.Card.Width(min(width-8, 64)).Render(strings.Join(rows, "\n"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "What would you like to review?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.errMsg))
	}
	return b.String()
}
