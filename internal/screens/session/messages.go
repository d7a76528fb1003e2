package session

import "github.com/murajaa/murajaa/internal/quiz"

// resultSavedMsg is sent once the finished attempt has been written to history.
type resultSavedMsg struct {
	Result quiz.TestResult
	Err    error
}
