package quiz

import (
	"fmt"

	"github.com/murajaa/murajaa/internal/quran"
)

// SelectionType is the kind of unit a quiz is drawn from.
type SelectionType string

const (
	SelectionJuz   SelectionType = "JUZ"
	SelectionSurah SelectionType = "SURAH"
)

// Range is an inclusive, 1-based ayah range within a surah.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Selection identifies the ayat a quiz is drawn from.
type Selection struct {
	Type  SelectionType `json:"type"`
	ID    int           `json:"id"`
	Range *Range        `json:"range,omitempty"`
}

// JuzSelection selects a whole juz.
func JuzSelection(id int) Selection {
	return Selection{Type: SelectionJuz, ID: id}
}

// SurahSelection selects a surah, optionally narrowed to from..to.
// A zero from and to selects the whole surah; a zero to alone runs the
// range to the surah's last ayah.
func SurahSelection(id, from, to int) Selection {
	sel := Selection{Type: SelectionSurah, ID: id}
	if from != 0 || to != 0 {
		sel.Range = &Range{From: from, To: to}
	}
	return sel
}

// Validate checks the selection shape. Upper range bounds are checked
// against the surah's ayah count once it is known.
func (s Selection) Validate() error {
	switch s.Type {
	case SelectionJuz:
		if s.ID < 1 || s.ID > quran.JuzCount {
			return &ErrInvalidSelection{Field: "juz", Reason: fmt.Sprintf("must be between 1 and %d", quran.JuzCount)}
		}
		if s.Range != nil {
			return &ErrInvalidSelection{Field: "range", Reason: "is only allowed for a surah"}
		}
	case SelectionSurah:
		if s.ID < 1 || s.ID > quran.SurahCount {
			return &ErrInvalidSelection{Field: "surah", Reason: fmt.Sprintf("must be between 1 and %d", quran.SurahCount)}
		}
		if r := s.Range; r != nil {
			if r.From < 1 {
				return &ErrInvalidSelection{Field: "range", Reason: "must start at ayah 1 or later"}
			}
			if r.To != 0 && r.To < r.From {
				return &ErrInvalidSelection{Field: "range", Reason: fmt.Sprintf("end %d is before start %d", r.To, r.From)}
			}
		}
	default:
		return &ErrInvalidSelection{Field: "type", Reason: fmt.Sprintf("%q is not JUZ or SURAH", s.Type)}
	}
	return nil
}

// ValidateCount checks a requested question count.
func ValidateCount(requested int) error {
	if requested < 1 {
		return &ErrInvalidSelection{Field: "count", Reason: "must be at least 1"}
	}
	return nil
}

// String renders the selection for titles and logs, e.g. "Juz 30" or
// "Surah 2 (255-257)".
func (s Selection) String() string {
	switch s.Type {
	case SelectionJuz:
		return fmt.Sprintf("Juz %d", s.ID)
	case SelectionSurah:
		if r := s.Range; r != nil {
			if r.To == 0 {
				return fmt.Sprintf("Surah %d (%d-end)", s.ID, r.From)
			}
			return fmt.Sprintf("Surah %d (%d-%d)", s.ID, r.From, r.To)
		}
		return fmt.Sprintf("Surah %d", s.ID)
	}
	return string(s.Type)
}
