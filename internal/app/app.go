// Package app is the root Bubble Tea model: it owns the screen stack and
// draws the frame around the active screen.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/screens"
	"github.com/murajaa/murajaa/internal/screens/home"
	"github.com/murajaa/murajaa/internal/screens/welcome"
	"github.com/murajaa/murajaa/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps screens.Deps

	// Start, when set, opens the app on this screen above home instead of
	// showing the welcome screen.
	Start screen.Screen
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

// New creates the root model. Without opts.Start the app opens on the
// welcome screen, which gives way to home.
func New(opts Options) Model {
	deps := opts.Deps.WithDefaults()
	if opts.Start != nil {
		return Model{router: router.New(home.New(deps)), start: opts.Start}
	}
	w := welcome.New(func() screen.Screen { return home.New(deps) })
	return Model{router: router.New(w)}
}

func (m Model) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.start != nil {
		start := m.start
		return tea.Batch(cmd, func() tea.Msg { return router.PushScreenMsg{Screen: start} })
	}
	return cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.activeHandlesEscape() {
				if m.router.Depth() > 1 {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) activeHandlesEscape() bool {
	eh, ok := m.router.Active().(screen.EscapeHandler)
	return ok && eh.HandlesEscape()
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame around the active screen.
func (m Model) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m Model) footerHints(active screen.Screen) []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			quit,
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quit,
	}
}

// Run starts the Bubble Tea program.
func Run(m Model) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
