// Package screens holds what the individual screens share: the services
// they call and how they reach them.
package screens

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/selfupdate"
)

// Starter builds a ready quiz session for a selection.
type Starter interface {
	Start(ctx context.Context, sel quiz.Selection, requested int) (*quiz.Session, error)
}

// SurahDirectory lists the surahs for the selection picker.
type SurahDirectory interface {
	FetchSurahList(ctx context.Context) ([]quran.Surah, error)
}

// HistoryStore persists finished attempts.
type HistoryStore interface {
	Save(ctx context.Context, r quiz.TestResult) error
	List(ctx context.Context) ([]quiz.TestResult, error)
	Get(ctx context.Context, id string) (quiz.TestResult, bool, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// UpdateChecker reports whether a newer release exists.
type UpdateChecker interface {
	Check(ctx context.Context, input *selfupdate.CheckInput) (*selfupdate.CheckResult, error)
}

// Deps bundles the services screens are built with.
type Deps struct {
	Starter      Starter
	Surahs       SurahDirectory
	History      HistoryStore
	Updates      UpdateChecker // optional
	Version      string
	Log          *zap.Logger
	DefaultCount int

	// Now and NewID default to time.Now and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

// WithDefaults fills unset optional fields.
func (d Deps) WithDefaults() Deps {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.DefaultCount <= 0 {
		d.DefaultCount = 10
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = func() string { return uuid.New().String() }
	}
	return d
}

// Timeout bounds every service call a screen makes.
const Timeout = 30 * time.Second
