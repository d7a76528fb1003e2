package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestToggleCycles(t *testing.T) {
	tg := NewToggle("Juz", "Surah")
	tg = tg.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if tg.Value() != "Juz" {
		t.Fatalf("unfocused toggle changed to %q", tg.Value())
	}

	tg.Focused = true
	tg = tg.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if tg.Value() != "Surah" {
		t.Errorf("after right = %q, want Surah", tg.Value())
	}
	tg = tg.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if tg.Value() != "Juz" {
		t.Errorf("right wraps: got %q, want Juz", tg.Value())
	}
	tg = tg.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if tg.Value() != "Surah" {
		t.Errorf("left wraps: got %q, want Surah", tg.Value())
	}
}

func TestNumberInputRejectsLetters(t *testing.T) {
	in := NewNumberInput("count", 0, 3)
	in.Focus()

	in, _ = in.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	if in.Value() != "12" {
		t.Errorf("value = %q, want 12", in.Value())
	}
	n, err := in.NumericValue()
	if err != nil || n != 12 {
		t.Errorf("NumericValue = %d, %v", n, err)
	}
}

func TestNumberInputPrefill(t *testing.T) {
	in := NewNumberInput("count", 10, 3)
	if in.Value() != "10" {
		t.Errorf("value = %q, want 10", in.Value())
	}
	empty := NewNumberInput("from", 0, 3)
	if n, err := empty.NumericValue(); err != nil || n != 0 {
		t.Errorf("empty NumericValue = %d, %v", n, err)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { picked = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { picked = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "D" {
		t.Errorf("picked = %q, want D", picked)
	}
}

func TestProgressBarCounter(t *testing.T) {
	p := NewProgressBar("", 0.5, 40)
	p.Counter = "3 / 6"
	if got := p.View(); !strings.Contains(got, "3 / 6") {
		t.Errorf("view missing counter: %q", got)
	}
}
