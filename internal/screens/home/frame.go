package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/ui/theme"
)

const homeTitleFull = `╔╦╗╦ ╦╦═╗╔═╗ ╦╔═╗╔═╗
║║║║ ║╠╦╝╠═╣ ║╠═╣╠═╣
╩ ╩╚═╝╩╚═╩ ╩╚╝╩ ╩╩ ╩`

const homeTitleCompact = "M · U · R · A · J · A · A"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	art := homeTitleFull
	if compact {
		art = homeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders attempt statistics in a bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case st.attempts == 0:
		line = dimStyle.Render("No reviews yet")
	case compact:
		line = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("#%d", st.attempts)),
			lastStyle.Render(fmt.Sprintf("%d%%", st.last)),
			bestStyle.Render(fmt.Sprintf("★%d%%", st.best)),
		)
	default:
		line = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("%d REVIEWS", st.attempts)),
			lastStyle.Render(fmt.Sprintf("LAST %d%%", st.last)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d%%", st.best)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderButtons renders each menu item as a fixed-width button.
func renderButtons(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderButtonsCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderButtonsCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available, run murajaa update", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderFrame wraps content in a double border, centered in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
