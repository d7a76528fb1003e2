package screens

import (
	"fmt"
	"time"

	"github.com/murajaa/murajaa/internal/quiz"
)

// FormatDate renders a stored epoch-millisecond date in local time.
func FormatDate(ms int64) string {
	return time.UnixMilli(ms).Local().Format("Jan 02, 2006 15:04")
}

// DescribeSelection renders the unit a stored result was drawn from.
func DescribeSelection(r quiz.TestResult) string {
	if r.Type == quiz.SelectionSurah {
		return fmt.Sprintf("Surah %d", r.SelectionID)
	}
	return fmt.Sprintf("Juz %d", r.SelectionID)
}
