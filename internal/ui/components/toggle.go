package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/murajaa/murajaa/internal/ui/theme"
)

// Toggle is a horizontal single-choice selector switched with left/right.
type Toggle struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewToggle creates a toggle with the first option selected.
func NewToggle(options ...string) Toggle {
	return Toggle{Options: options}
}

// Update handles left/right and h/l.
func (t Toggle) Update(msg tea.Msg) Toggle {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.Focused || len(t.Options) == 0 {
		return t
	}

	switch kmsg.String() {
	case "left", "h":
		t.Selected = (t.Selected - 1 + len(t.Options)) % len(t.Options)
	case "right", "l", "space", " ":
		t.Selected = (t.Selected + 1) % len(t.Options)
	}
	return t
}

// Value returns the selected option label.
func (t Toggle) Value() string {
	if t.Selected < 0 || t.Selected >= len(t.Options) {
		return ""
	}
	return t.Options[t.Selected]
}

// View renders the options side by side, marking the selected one.
func (t Toggle) View() string {
	parts := make([]string, len(t.Options))
	for i, opt := range t.Options {
		switch {
		case i == t.Selected && t.Focused:
			parts[i] = theme.Selected.Render("◉ " + opt)
		case i == t.Selected:
			parts[i] = theme.Unselected.Render("◉ " + opt)
		default:
			parts[i] = theme.Hint.Render("○ " + opt)
		}
	}
	return strings.Join(parts, "   ")
}
