package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions is returned when a session would start with zero questions.
	ErrNoQuestions = errors.New("no questions to ask")

	// ErrSessionComplete is returned when grading a finished session.
	ErrSessionComplete = errors.New("session already complete")

	// ErrSessionNotComplete is returned when finalizing an unfinished session.
	ErrSessionNotComplete = errors.New("session not complete")
)

// ErrInsufficientRange indicates fewer than two ayat were available, so no
// adjacency question exists.
type ErrInsufficientRange struct {
	Available int
}

func (e *ErrInsufficientRange) Error() string {
	return fmt.Sprintf("insufficient range: need at least 2 ayat, have %d", e.Available)
}

// ErrInvalidSelection indicates a selection or question count outside the
// allowed bounds.
type ErrInvalidSelection struct {
	Field  string
	Reason string
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("invalid selection: %s %s", e.Field, e.Reason)
}
