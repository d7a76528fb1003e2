// Package selection is the screen where the user picks what to review.
package selection

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/screens"
	"github.com/murajaa/murajaa/internal/screens/session"
	"github.com/murajaa/murajaa/internal/ui/components"
	"github.com/murajaa/murajaa/internal/ui/layout"
)

const (
	modeJuz   = "Juz"
	modeSurah = "Surah"
)

// field identifies a focusable control.
type field int

const (
	fieldMode field = iota
	fieldJuz
	fieldSurah
	fieldFrom
	fieldTo
	fieldCount
)

const (
	msgProviderDown = "Could not load verses. Check your connection and press Enter to retry."
	msgTooFew       = "Choose at least two ayat."
)

type surahsLoadedMsg struct {
	surahs []quran.Surah
	err    error
}

type sessionStartedMsg struct {
	sess *quiz.Session
	err  error
}

// SelectionScreen collects a selection and a question count and starts a review.
type SelectionScreen struct {
	deps screens.Deps

	mode   components.Toggle
	juz    components.TextInput
	surah  components.TextInput
	from   components.TextInput
	to     components.TextInput
	count  components.TextInput
	focus  field
	surahs []quran.Surah

	autoStart bool
	loading   bool
	errMsg    string
}

var _ screen.Screen = (*SelectionScreen)(nil)
var _ screen.KeyHintProvider = (*SelectionScreen)(nil)

// New creates a SelectionScreen with empty fields and the default count.
func New(deps screens.Deps) *SelectionScreen {
	deps = deps.WithDefaults()
	s := &SelectionScreen{
		deps:  deps,
		mode:  components.NewToggle(modeJuz, modeSurah),
		juz:   components.NewNumberInput("1-30", 0, 2),
		surah: components.NewNumberInput("1-114", 0, 3),
		from:  components.NewNumberInput("first", 0, 3),
		to:    components.NewNumberInput("last", 0, 3),
		count: components.NewNumberInput("questions", deps.DefaultCount, 3),
	}
	s.setFocus(fieldMode)
	return s
}

// NewWithSelection creates a SelectionScreen prefilled with sel and count
// that starts the review as soon as it is shown. Failures stay on the
// screen so the user can correct them.
func NewWithSelection(deps screens.Deps, sel quiz.Selection, count int) *SelectionScreen {
	s := New(deps)
	switch sel.Type {
	case quiz.SelectionSurah:
		s.mode.Selected = 1
		s.surah.Model.SetValue(itoa(sel.ID))
		if sel.Range != nil {
			s.from.Model.SetValue(itoa(sel.Range.From))
			s.to.Model.SetValue(itoa(sel.Range.To))
		}
	default:
		s.juz.Model.SetValue(itoa(sel.ID))
	}
	if count > 0 {
		s.count.Model.SetValue(itoa(count))
	}
	s.autoStart = true
	return s
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprint(n)
}

func (s *SelectionScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.loadSurahs()}
	if s.autoStart {
		cmds = append(cmds, s.submit())
	}
	return tea.Batch(cmds...)
}

func (s *SelectionScreen) Title() string {
	return "New Review"
}

func (s *SelectionScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
	}
	if s.focus == fieldMode {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Mode"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *SelectionScreen) loadSurahs() tea.Cmd {
	if s.deps.Surahs == nil {
		return nil
	}
	dir := s.deps.Surahs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		list, err := dir.FetchSurahList(ctx)
		return surahsLoadedMsg{surahs: list, err: err}
	}
}

func (s *SelectionScreen) isSurahMode() bool {
	return s.mode.Value() == modeSurah
}

// fields returns the focus order for the current mode.
func (s *SelectionScreen) fields() []field {
	if s.isSurahMode() {
		return []field{fieldMode, fieldSurah, fieldFrom, fieldTo, fieldCount}
	}
	return []field{fieldMode, fieldJuz, fieldCount}
}

func (s *SelectionScreen) input(f field) *components.TextInput {
	switch f {
	case fieldJuz:
		return &s.juz
	case fieldSurah:
		return &s.surah
	case fieldFrom:
		return &s.from
	case fieldTo:
		return &s.to
	case fieldCount:
		return &s.count
	}
	return nil
}

func (s *SelectionScreen) setFocus(f field) tea.Cmd {
	if in := s.input(s.focus); in != nil {
		in.Blur()
	}
	s.mode.Focused = f == fieldMode
	s.focus = f
	if in := s.input(f); in != nil {
		return in.Focus()
	}
	return nil
}

func (s *SelectionScreen) moveFocus(delta int) tea.Cmd {
	order := s.fields()
	idx := 0
	for i, f := range order {
		if f == s.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return s.setFocus(order[idx])
}

// selection builds the selection and count from the form. An error is a
// user-facing message.
func (s *SelectionScreen) selection() (quiz.Selection, int, error) {
	count, err := s.count.NumericValue()
	if err != nil {
		return quiz.Selection{}, 0, err
	}

	var sel quiz.Selection
	if s.isSurahMode() {
		id, err := s.surah.NumericValue()
		if err != nil {
			return quiz.Selection{}, 0, err
		}
		from, err := s.from.NumericValue()
		if err != nil {
			return quiz.Selection{}, 0, err
		}
		to, err := s.to.NumericValue()
		if err != nil {
			return quiz.Selection{}, 0, err
		}
		// a lone end bound starts at ayah 1; a lone start bound is left
		// open and resolved against the fetched surah
		if from == 0 && to > 0 {
			from = 1
		}
		sel = quiz.SurahSelection(id, from, to)
	} else {
		id, err := s.juz.NumericValue()
		if err != nil {
			return quiz.Selection{}, 0, err
		}
		sel = quiz.JuzSelection(id)
	}

	if err := sel.Validate(); err != nil {
		return quiz.Selection{}, 0, err
	}
	if err := quiz.ValidateCount(count); err != nil {
		return quiz.Selection{}, 0, err
	}
	return sel, count, nil
}

func (s *SelectionScreen) submit() tea.Cmd {
	sel, count, err := s.selection()
	if err != nil {
		s.errMsg = describeError(err)
		return nil
	}
	if s.deps.Starter == nil {
		s.errMsg = msgProviderDown
		return nil
	}

	s.loading = true
	s.errMsg = ""
	starter, log := s.deps.Starter, s.deps.Log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		sess, err := starter.Start(ctx, sel, count)
		if err != nil {
			log.Warn("start review", zap.Stringer("selection", sel), zap.Int("count", count), zap.Error(err))
		}
		return sessionStartedMsg{sess: sess, err: err}
	}
}

func describeError(err error) string {
	var unavailable *quran.ErrProviderUnavailable
	var tooFew *quiz.ErrInsufficientRange
	var invalid *quiz.ErrInvalidSelection
	switch {
	case errors.As(err, &unavailable):
		return msgProviderDown
	case errors.As(err, &tooFew), errors.Is(err, quiz.ErrNoQuestions):
		return msgTooFew
	case errors.As(err, &invalid):
		return fmt.Sprintf("Invalid %s: %s.", invalid.Field, invalid.Reason)
	}
	return err.Error()
}

func (s *SelectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case surahsLoadedMsg:
		if msg.err != nil {
			// names are decoration; typing a number still works
			s.deps.Log.Warn("load surah directory", zap.Error(msg.err))
			return s, nil
		}
		s.surahs = msg.surahs
		return s, nil

	case sessionStartedMsg:
		s.loading = false
		s.autoStart = false
		if msg.err != nil {
			s.errMsg = describeError(msg.err)
			return s, nil
		}
		deps := s.deps
		again := func() screen.Screen { return New(deps) }
		next := session.New(deps, msg.sess, again)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "down", "tab":
			return s, s.moveFocus(1)
		case "up", "shift+tab":
			return s, s.moveFocus(-1)
		}
		if s.focus == fieldMode {
			s.mode = s.mode.Update(msg)
			s.errMsg = ""
			return s, nil
		}
	}

	if in := s.input(s.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return s, cmd
	}
	return s, nil
}
