package quiz

import (
	"time"
)

// Phase is the lifecycle stage of a Session.
type Phase int

const (
	PhaseReady    Phase = iota // Questions generated, none graded
	PhaseActive                // At least one question graded
	PhaseComplete              // Every question graded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Session walks an ordered question list and keeps the score.
// It is not safe for concurrent use.
type Session struct {
	selection Selection
	questions []Question
	results   []QuestionResult
	index     int
	score     int
	phase     Phase
}

// NewSession creates a READY session over questions.
func NewSession(sel Selection, questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		selection: sel,
		questions: questions,
		results:   make([]QuestionResult, 0, len(questions)),
	}, nil
}

// Selection returns the selection the session was built from.
func (s *Session) Selection() Selection { return s.selection }

// Current returns the question awaiting a grade. The bool is false once
// the session is complete.
func (s *Session) Current() (Question, bool) {
	if s.phase == PhaseComplete {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total is the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score is the number of questions graded correct so far.
func (s *Session) Score() int { return s.score }

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Results returns a copy of the grades recorded so far.
func (s *Session) Results() []QuestionResult {
	out := make([]QuestionResult, len(s.results))
	copy(out, s.results)
	return out
}

// Grade records the user's verdict on the current question and advances.
func (s *Session) Grade(isCorrect bool) (QuestionResult, error) {
	if s.phase == PhaseComplete {
		return QuestionResult{}, ErrSessionComplete
	}

	res := QuestionResult{Question: s.questions[s.index], IsCorrect: isCorrect}
	s.results = append(s.results, res)
	if isCorrect {
		s.score++
	}

	s.index++
	if s.index >= len(s.questions) {
		s.phase = PhaseComplete
	} else {
		s.phase = PhaseActive
	}
	return res, nil
}

// Finalize builds the persisted record of a complete session.
func (s *Session) Finalize(id string, now time.Time) (TestResult, error) {
	if s.phase != PhaseComplete {
		return TestResult{}, ErrSessionNotComplete
	}
	return TestResult{
		ID:             id,
		Date:           now.UnixMilli(),
		Type:           s.selection.Type,
		SelectionID:    s.selection.ID,
		Score:          s.score,
		TotalQuestions: len(s.questions),
		Results:        s.Results(),
	}, nil
}
