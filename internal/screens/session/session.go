// Package session is the screen that runs a review: it shows each reference
// ayah, reveals the neighbour on request and records the user's self-grade.
package session

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/review"
	"github.com/murajaa/murajaa/internal/router"
	"github.com/murajaa/murajaa/internal/screen"
	"github.com/murajaa/murajaa/internal/screens"
	"github.com/murajaa/murajaa/internal/screens/summary"
	"github.com/murajaa/murajaa/internal/ui/components"
	"github.com/murajaa/murajaa/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running review.
type SessionScreen struct {
	deps  screens.Deps
	sess  *quiz.Session
	again func() screen.Screen

	revealed    bool
	showHint    bool
	typing      bool
	input       components.TextInput
	evaluation  *review.Result
	quitConfirm bool
	saving      bool
	errMsg      string
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.EscapeHandler   = (*SessionScreen)(nil)
	_ screen.StatusProvider  = (*SessionScreen)(nil)
)

// New creates a SessionScreen over a ready session. again builds the screen
// offered as "New review" on the summary.
func New(deps screens.Deps, sess *quiz.Session, again func() screen.Screen) *SessionScreen {
	s := &SessionScreen{
		deps:  deps.WithDefaults(),
		sess:  sess,
		again: again,
		input: newRecallInput(),
	}
	return s
}

func newRecallInput() components.TextInput {
	in := components.NewTextInput("Type the ayah from memory...", false, 0)
	in.Blur()
	return in
}

func (s *SessionScreen) Init() tea.Cmd {
	s.deps.Log.Info("review started",
		zap.Stringer("selection", s.sess.Selection()),
		zap.Int("questions", s.sess.Total()),
	)
	return nil
}

func (s *SessionScreen) Title() string {
	return s.sess.Selection().String()
}

// Status shows the position within the review.
func (s *SessionScreen) Status() string {
	cur := min(s.sess.Index()+1, s.sess.Total())
	return fmt.Sprintf("%d / %d", cur, s.sess.Total())
}

// HandlesEscape is always true: Esc asks before abandoning a review.
func (s *SessionScreen) HandlesEscape() bool { return true }

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.saving:
		return nil
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End review"},
			{Key: "N", Description: "Keep going"},
		}
	case s.typing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.revealed:
		return []layout.KeyHint{
			{Key: "Y", Description: "I knew it"},
			{Key: "N", Description: "I missed it"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Reveal"},
		{Key: "T", Description: "Type answer"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.saving:
		return renderSaving(width, height)
	case s.quitConfirm:
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.saving {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.deps.Log.Info("review abandoned",
				zap.Stringer("selection", s.sess.Selection()),
				zap.Int("graded", s.sess.Index()),
			)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.typing {
		switch key {
		case "esc":
			s.typing = false
			s.input.Blur()
			return s, nil
		case "enter":
			return s.checkTyped()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "h", "H":
		s.showHint = !s.showHint
		return s, nil
	}

	if !s.revealed {
		switch key {
		case "enter", "space", " ":
			s.revealed = true
		case "t", "T":
			s.typing = true
			return s, s.input.Focus()
		}
		return s, nil
	}

	switch key {
	case "y", "Y":
		return s.grade(true)
	case "n", "N":
		return s.grade(false)
	}
	return s, nil
}

func (s *SessionScreen) checkTyped() (screen.Screen, tea.Cmd) {
	q, ok := s.sess.Current()
	if !ok {
		return s, nil
	}
	res := review.Evaluate(s.input.Value(), q.TargetAyah.Text)
	s.evaluation = &res
	s.typing = false
	s.revealed = true
	s.input.Blur()
	s.input.Submit(res.IsCorrect)
	return s, nil
}

func (s *SessionScreen) grade(correct bool) (screen.Screen, tea.Cmd) {
	if _, err := s.sess.Grade(correct); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.revealed = false
	s.showHint = false
	s.evaluation = nil
	s.input = newRecallInput()

	if s.sess.Phase() != quiz.PhaseComplete {
		return s, nil
	}

	result, err := s.sess.Finalize(s.deps.NewID(), s.deps.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.saving = true
	return s, s.save(result)
}

func (s *SessionScreen) save(result quiz.TestResult) tea.Cmd {
	hist := s.deps.History
	return func() tea.Msg {
		if hist == nil {
			return resultSavedMsg{Result: result}
		}
		ctx, cancel := context.WithTimeout(context.Background(), screens.Timeout)
		defer cancel()
		return resultSavedMsg{Result: result, Err: hist.Save(ctx, result)}
	}
}

func (s *SessionScreen) handleSaved(msg resultSavedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false
	if msg.Err != nil {
		s.deps.Log.Error("save review result", zap.String("id", msg.Result.ID), zap.Error(msg.Err))
	} else {
		s.deps.Log.Info("review finished",
			zap.String("id", msg.Result.ID),
			zap.Int("score", msg.Result.Score),
			zap.Int("total", msg.Result.TotalQuestions),
		)
	}
	next := summary.New(msg.Result, msg.Err, s.again)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
