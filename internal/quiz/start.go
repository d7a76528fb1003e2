package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quran"
)

// Provider fetches ayat for a selection.
type Provider interface {
	FetchJuz(ctx context.Context, juz int) ([]quran.Ayah, error)
	FetchSurah(ctx context.Context, surah int) ([]quran.Ayah, error)
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Starter turns a selection into a ready session.
type Starter struct {
	provider Provider
	rng      RandSource
	log      *zap.Logger
}

// NewStarter creates a Starter. A nil rng uses the process-wide generator
// and a nil logger discards output.
func NewStarter(p Provider, rng RandSource, log *zap.Logger) *Starter {
	if rng == nil {
		rng = globalRand{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Starter{provider: p, rng: rng, log: log}
}

// Start validates sel, fetches its ayat, and generates a session of up to
// requested questions. Provider failures are returned unchanged as
// *quran.ErrProviderUnavailable.
func (s *Starter) Start(ctx context.Context, sel Selection, requested int) (*Session, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateCount(requested); err != nil {
		return nil, err
	}

	ayat, sel, err := s.fetch(ctx, sel)
	if err != nil {
		return nil, err
	}

	questions, err := Generate(ayat, requested, s.rng)
	if err != nil {
		return nil, err
	}
	if len(questions) < min(requested, len(ayat)-1) {
		s.log.Debug("retry budget exhausted",
			zap.Stringer("selection", sel),
			zap.Int("requested", requested),
			zap.Int("generated", len(questions)),
			zap.Int("ayat", len(ayat)),
		)
	}

	return NewSession(sel, questions)
}

// fetch loads the ayat for sel. For a surah range the returned selection
// has its open upper bound resolved to the surah's last ayah.
func (s *Starter) fetch(ctx context.Context, sel Selection) ([]quran.Ayah, Selection, error) {
	if sel.Type == SelectionJuz {
		ayat, err := s.provider.FetchJuz(ctx, sel.ID)
		return ayat, sel, err
	}

	ayat, err := s.provider.FetchSurah(ctx, sel.ID)
	if err != nil {
		return nil, sel, err
	}
	if sel.Range == nil {
		return ayat, sel, nil
	}

	r := *sel.Range
	count := surahLength(ayat)
	if r.To == 0 {
		r.To = count
	}
	if r.From > count || r.To > count {
		return nil, sel, &ErrInvalidSelection{
			Field:  "range",
			Reason: fmt.Sprintf("%d-%d exceeds the %d ayat of surah %d", r.From, r.To, count, sel.ID),
		}
	}
	sel.Range = &r

	return FilterRange(ayat, r), sel, nil
}

// surahLength is the ayah count the provider reported for the surah, or the
// highest in-surah number present when it reported none.
func surahLength(ayat []quran.Ayah) int {
	n := 0
	for _, a := range ayat {
		n = max(n, a.NumberInSurah, a.Surah.NumberOfAyahs)
	}
	return n
}

// FilterRange keeps the ayat whose in-surah number lies within r.
func FilterRange(ayat []quran.Ayah, r Range) []quran.Ayah {
	out := make([]quran.Ayah, 0, len(ayat))
	for _, a := range ayat {
		if a.NumberInSurah >= r.From && a.NumberInSurah <= r.To {
			out = append(out, a)
		}
	}
	return out
}
