package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗██╗   ██╗██████╗  █████╗      ██╗ █████╗  █████╗
 ████╗ ████║██║   ██║██╔══██╗██╔══██╗     ██║██╔══██╗██╔══██╗
 ██╔████╔██║██║   ██║██████╔╝███████║     ██║███████║███████║
 ██║╚██╔╝██║██║   ██║██╔══██╗██╔══██║██   ██║██╔══██║██╔══██║
 ██║ ╚═╝ ██║╚██████╔╝██║  ██║██║  ██║╚█████╔╝██║  ██║██║  ██║
 ╚═╝     ╚═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝ ╚════╝ ╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "M U R A J A A"

// RenderBanner returns the MURAJAA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
