package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screens/home"
	"github.com/murajaa/murajaa/internal/screens/screenstest"
	"github.com/murajaa/murajaa/internal/screens/session"
	"github.com/murajaa/murajaa/internal/screens/welcome"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNew_StartsOnWelcome(t *testing.T) {
	m := New(Options{Deps: screenstest.Deps(&screenstest.History{}, nil, nil)})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestNew_StartScreenPushedOverHome(t *testing.T) {
	deps := screenstest.Deps(&screenstest.History{}, nil, nil)
	start := session.New(deps, screenstest.Session(2), nil)
	m := New(Options{Deps: deps, Start: start})
	require.IsType(t, &home.HomeScreen{}, m.router.Active())

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, router.PushScreenMsg{Screen: start})
	assert.Same(t, start, m.router.Active())
}

func TestEscPopsPlainScreens(t *testing.T) {
	deps := screenstest.Deps(&screenstest.History{}, nil, nil)
	m := New(Options{Deps: deps, Start: home.New(deps)})
	m, _ = update(t, m, router.PushScreenMsg{Screen: home.New(deps)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestEscForwardedToHandler(t *testing.T) {
	deps := screenstest.Deps(&screenstest.History{}, nil, nil)
	s := session.New(deps, screenstest.Session(2), nil)
	m := New(Options{Deps: deps, Start: s})
	m, _ = update(t, m, router.PushScreenMsg{Screen: s})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.router.Depth())
	assert.Contains(t, s.View(80, 30), "End review early?")
}

func TestViewShowsStatusAndHints(t *testing.T) {
	deps := screenstest.Deps(&screenstest.History{}, nil, nil)
	s := session.New(deps, screenstest.Session(4), nil)
	m := New(Options{Deps: deps, Start: s})
	m, _ = update(t, m, router.PushScreenMsg{Screen: s})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.render()
	assert.Contains(t, out, "1 / 4")
	assert.Contains(t, out, "Reveal")
}

func TestViewTooSmall(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}
