package quran

import "fmt"

// ErrProviderUnavailable indicates the content API could not be reached or
// returned something that could not be understood.
type ErrProviderUnavailable struct {
	Op  string
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content provider unavailable (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("content provider unavailable (%s)", e.Op)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
