package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/screens"
	historyscreen "github.com/murajaa/murajaa/internal/screens/history"
	"github.com/murajaa/murajaa/internal/screens/selection"
	"github.com/murajaa/murajaa/internal/selfupdate"
	"github.com/murajaa/murajaa/internal/ui/components"
)

type stats struct {
	attempts int
	last     int
	best     int
}

func computeStats(results []quiz.TestResult) stats {
	st := stats{attempts: len(results)}
	for i, r := range results {
		p := r.Percentage()
		if i == 0 {
			st.last = p
		}
		if p > st.best {
			st.best = p
		}
	}
	return st
}

type statsLoadedMsg struct {
	stats stats
	err   error
}

type updateCheckedMsg struct {
	latest string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps         screens.Deps
	menu         components.Menu
	menuLabels   []string
	stats        stats
	latestUpdate string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screens.Deps) *HomeScreen {
	deps = deps.WithDefaults()

	menuLabels := []string{"START REVIEW", "HISTORY", "QUIT"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: selection.New(deps)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(deps)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.loadStats(), h.checkUpdate())
}

// Resume refreshes the stats after a review or a history edit.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	if h.deps.History == nil {
		return nil
	}
	hist := h.deps.History
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		results, err := hist.List(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{stats: computeStats(results)}
	}
}

func (h *HomeScreen) checkUpdate() tea.Cmd {
	if h.deps.Updates == nil || !selfupdate.IsRelease(h.deps.Version) {
		return nil
	}
	checker, version, log := h.deps.Updates, h.deps.Version, h.deps.Log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			log.Debug("update check failed", zap.Error(err))
			return nil
		}
		if !res.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{latest: res.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			h.deps.Log.Warn("load history stats", zap.Error(msg.err))
			return h, nil
		}
		h.stats = msg.stats
		return h, nil
	case updateCheckedMsg:
		h.latestUpdate = msg.latest
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if compact {
		sections = append(sections, renderButtonsCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderButtons(h.menuLabels, h.menu.Selected, cw))
	}
	if h.latestUpdate != "" {
		sections = append(sections, renderUpdateNote(h.latestUpdate, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
