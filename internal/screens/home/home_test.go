package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/router"
	historyscreen "github.com/murajaa/murajaa/internal/screens/history"
	"github.com/murajaa/murajaa/internal/screens/screenstest"
	"github.com/murajaa/murajaa/internal/screens/selection"
	"github.com/murajaa/murajaa/internal/selfupdate"
)

type fakeChecker struct {
	result *selfupdate.CheckResult
	err    error
	calls  int
}

func (f *fakeChecker) Check(context.Context, *selfupdate.CheckInput) (*selfupdate.CheckResult, error) {
	f.calls++
	return f.result, f.err
}

func TestComputeStats(t *testing.T) {
	st := computeStats([]quiz.TestResult{
		screenstest.Result("newest", 3, 4),
		screenstest.Result("b", 10, 10),
		screenstest.Result("c", 0, 5),
	})
	assert.Equal(t, stats{attempts: 3, last: 75, best: 100}, st)
	assert.Equal(t, stats{}, computeStats(nil))
}

func TestHome_LoadsStats(t *testing.T) {
	hist := &screenstest.History{Results: []quiz.TestResult{screenstest.Result("a", 4, 5)}}
	h := New(screenstest.Deps(hist, nil, nil))

	h.Update(h.loadStats()())
	assert.Equal(t, 1, h.stats.attempts)
	assert.Contains(t, h.View(110, 30), "LAST 80%")
}

func TestHome_StatsErrorKeepsMenu(t *testing.T) {
	hist := &screenstest.History{Err: errors.New("locked")}
	h := New(screenstest.Deps(hist, nil, nil))

	h.Update(h.loadStats()())
	assert.Contains(t, h.View(110, 30), "No reviews yet")
}

func TestHome_ResumeReloadsStats(t *testing.T) {
	hist := &screenstest.History{}
	h := New(screenstest.Deps(hist, nil, nil))
	h.Update(h.loadStats()())
	require.Zero(t, h.stats.attempts)

	hist.Results = []quiz.TestResult{screenstest.Result("a", 1, 1)}
	h.Update(h.Resume()())
	assert.Equal(t, 1, h.stats.attempts)
}

func TestHome_MenuNavigation(t *testing.T) {
	h := New(screenstest.Deps(&screenstest.History{}, nil, nil))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push := cmd().(router.PushScreenMsg)
	assert.IsType(t, &selection.SelectionScreen{}, push.Screen)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push = cmd().(router.PushScreenMsg)
	assert.IsType(t, &historyscreen.HistoryScreen{}, push.Screen)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_UpdateNote(t *testing.T) {
	checker := &fakeChecker{result: &selfupdate.CheckResult{UpdateAvailable: true, LatestVersion: "v1.3.0"}}
	deps := screenstest.Deps(nil, nil, nil)
	deps.Updates = checker
	deps.Version = "v1.2.0"

	h := New(deps)
	h.Update(h.checkUpdate()())
	assert.Contains(t, h.View(110, 30), "New version v1.3.0 available")
}

func TestHome_NoUpdateCheckForDevBuild(t *testing.T) {
	checker := &fakeChecker{}
	deps := screenstest.Deps(nil, nil, nil)
	deps.Updates = checker
	deps.Version = "dev"

	h := New(deps)
	assert.Nil(t, h.checkUpdate())
	assert.Zero(t, checker.calls)
}
