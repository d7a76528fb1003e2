package quiz

import (
	"github.com/murajaa/murajaa/internal/quran"
)

// Direction says which neighbour of the reference ayah is asked for.
type Direction string

const (
	DirectionNext     Direction = "NEXT"
	DirectionPrevious Direction = "PREVIOUS"
)

// Label returns the human-readable prompt for the direction.
func (d Direction) Label() string {
	if d == DirectionPrevious {
		return "What comes before this ayah?"
	}
	return "What comes after this ayah?"
}

// Question asks for the ayah adjacent to ReferenceAyah.
type Question struct {
	Type          Direction  `json:"type"`
	ReferenceAyah quran.Ayah `json:"referenceAyah"`
	TargetAyah    quran.Ayah `json:"targetAyah"`
}

// QuestionResult is the user's self-grade for one question.
type QuestionResult struct {
	Question  Question `json:"question"`
	IsCorrect bool     `json:"isCorrect"`
}

// TestResult is a finished session as it is persisted in history.
type TestResult struct {
	ID             string           `json:"id"`
	Date           int64            `json:"date"` // epoch milliseconds
	Type           SelectionType    `json:"type"`
	SelectionID    int              `json:"selectionId"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Results        []QuestionResult `json:"results"`
}

// Percentage returns the score as a whole percentage, rounded half up.
func (r TestResult) Percentage() int {
	return Percentage(r.Score, r.TotalQuestions)
}

// Percentage returns score/total as a rounded whole percentage; 0 when total is 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (total * 2)
}
