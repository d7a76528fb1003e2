// Package history lists past reviews.
package history

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
	"github.com/murajaa/murajaa/internal/screens/details"
	"github.com/murajaa/murajaa/internal/ui/layout"
	"github.com/murajaa/murajaa/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []quiz.TestResult
	Err     error
}

type historyChangedMsg struct {
	Err error
}

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmClear
)

// HistoryScreen displays past reviews, newest first.
type HistoryScreen struct {
	deps     screens.Deps
	results  []quiz.TestResult
	selected int
	confirm  confirmKind
	loaded   bool
	errMsg   string
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
	_ screen.Resumer         = (*HistoryScreen)(nil)
	_ screen.EscapeHandler   = (*HistoryScreen)(nil)
)

// New creates a new HistoryScreen.
func New(deps screens.Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps.WithDefaults()}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

// Resume reloads the list, which may have changed on the details screen.
func (s *HistoryScreen) Resume() tea.Cmd {
	return s.load()
}

// HandlesEscape is true while a confirmation is open so Esc cancels it.
func (s *HistoryScreen) HandlesEscape() bool {
	return s.confirm != confirmNone
}

func (s *HistoryScreen) load() tea.Cmd {
	hist := s.deps.History
	return func() tea.Msg {
		if hist == nil {
			return historyLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		results, err := hist.List(ctx)
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) mutate(op string, fn func(ctx context.Context, h screens.HistoryStore) error) tea.Cmd {
	hist, log := s.deps.History, s.deps.Log
	return func() tea.Msg {
		if hist == nil {
			return historyChangedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		err := fn(ctx, hist)
		if err != nil {
			log.Error("history "+op, zap.Error(err))
		}
		return historyChangedMsg{Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if len(s.results) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "D", Description: "Delete"},
		{Key: "C", Description: "Clear all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.results = msg.Results
		if s.selected >= len(s.results) {
			s.selected = max(len(s.results)-1, 0)
		}
		return s, nil

	case historyChangedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyPressMsg:
		if s.confirm != confirmNone {
			return s.handleConfirm(msg.String())
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if r, ok := s.current(); ok {
				next := details.New(s.deps, r)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
		case "d", "D":
			if _, ok := s.current(); ok {
				s.confirm = confirmDelete
			}
		case "c", "C":
			if len(s.results) > 0 {
				s.confirm = confirmClear
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) current() (quiz.TestResult, bool) {
	if s.selected < 0 || s.selected >= len(s.results) {
		return quiz.TestResult{}, false
	}
	return s.results[s.selected], true
}

func (s *HistoryScreen) handleConfirm(key string) (screen.Screen, tea.Cmd) {
	kind := s.confirm
	switch key {
	case "y", "Y":
		s.confirm = confirmNone
		if kind == confirmClear {
			return s, s.mutate("clear", func(ctx context.Context, h screens.HistoryStore) error {
				return h.Clear(ctx)
			})
		}
		r, ok := s.current()
		if !ok {
			return s, nil
		}
		return s, s.mutate("delete", func(ctx context.Context, h screens.HistoryStore) error {
			return h.Delete(ctx, r.ID)
		})
	case "n", "N", "esc":
		s.confirm = confirmNone
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No reviews yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// keep the selected row visible
	visible := max(height-6, 3)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.results))

	for i := start; i < end; i++ {
		r := s.results[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-10s  %2d/%-2d  %3d%%",
			prefix, screens.FormatDate(r.Date), screens.DescribeSelection(r), r.Score, r.TotalQuestions, r.Percentage())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	switch s.confirm {
	case confirmDelete:
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Warning, "Delete this review? [Y/N]"))
	case confirmClear:
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Warning, fmt.Sprintf("Delete all %d reviews? [Y/N]", len(s.results))))
	}

	return b.String()
}
