// Package screenstest provides in-memory service fakes for screen tests.
package screenstest

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/screens"
)

// History is an in-memory screens.HistoryStore.
type History struct {
	mu      sync.Mutex
	Results []quiz.TestResult
	Err     error // returned by every call when set
	Saved   int
}

func (h *History) Save(_ context.Context, r quiz.TestResult) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return h.Err
	}
	h.Results = append([]quiz.TestResult{r}, h.Results...)
	h.Saved++
	return nil
}

func (h *History) List(context.Context) ([]quiz.TestResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return nil, h.Err
	}
	return slices.Clone(h.Results), nil
}

func (h *History) Get(_ context.Context, id string) (quiz.TestResult, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return quiz.TestResult{}, false, h.Err
	}
	for _, r := range h.Results {
		if r.ID == id {
			return r, true, nil
		}
	}
	return quiz.TestResult{}, false, nil
}

func (h *History) Delete(_ context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return h.Err
	}
	h.Results = slices.DeleteFunc(h.Results, func(r quiz.TestResult) bool { return r.ID == id })
	return nil
}

func (h *History) Clear(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return h.Err
	}
	h.Results = nil
	return nil
}

// Starter returns a fixed session or error and records its last call.
type Starter struct {
	Session   *quiz.Session
	Err       error
	Calls     int
	Selection quiz.Selection
	Requested int
}

func (s *Starter) Start(_ context.Context, sel quiz.Selection, requested int) (*quiz.Session, error) {
	s.Calls++
	s.Selection = sel
	s.Requested = requested
	return s.Session, s.Err
}

// Surahs is a fixed screens.SurahDirectory.
type Surahs struct {
	List []quran.Surah
	Err  error
}

func (s *Surahs) FetchSurahList(context.Context) ([]quran.Surah, error) {
	return s.List, s.Err
}

var (
	_ screens.HistoryStore   = (*History)(nil)
	_ screens.Starter        = (*Starter)(nil)
	_ screens.SurahDirectory = (*Surahs)(nil)
)

// Ayat builds n consecutive ayat of surah 1 numbered from 1.
func Ayat(n int) []quran.Ayah {
	ref := quran.SurahRef{Number: 1, Name: "الفاتحة", EnglishName: "Al-Faatiha", NumberOfAyahs: n}
	out := make([]quran.Ayah, n)
	for i := range out {
		out[i] = quran.Ayah{
			Number:        i + 1,
			Text:          fmt.Sprintf("آية %d", i+1),
			Surah:         ref,
			NumberInSurah: i + 1,
			Juz:           1,
		}
	}
	return out
}

// Session builds a ready session of n NEXT questions over Ayat(n+1).
func Session(n int) *quiz.Session {
	ayat := Ayat(n + 1)
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{Type: quiz.DirectionNext, ReferenceAyah: ayat[i], TargetAyah: ayat[i+1]}
	}
	s, err := quiz.NewSession(quiz.SurahSelection(1, 0, 0), qs)
	if err != nil {
		panic(err)
	}
	return s
}

// Result builds a stored result with the given score out of total.
func Result(id string, score, total int) quiz.TestResult {
	return quiz.TestResult{
		ID:             id,
		Date:           time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC).UnixMilli(),
		Type:           quiz.SelectionJuz,
		SelectionID:    30,
		Score:          score,
		TotalQuestions: total,
	}
}

// Deps wires the fakes into a screens.Deps with a fixed clock and ids.
func Deps(h *History, st *Starter, su *Surahs) screens.Deps {
	n := 0
	d := screens.Deps{
		DefaultCount: 10,
		Now:          func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	// nil pointers must stay nil interfaces
	if h != nil {
		d.History = h
	}
	if st != nil {
		d.Starter = st
	}
	if su != nil {
		d.Surahs = su
	}
	return d.WithDefaults()
}
