// Package history persists finished quiz attempts, most recent first.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/store"
)

// StorageKey is the single key the whole collection lives under.
const StorageKey = "murajaa_history"

// ErrMalformedHistory indicates the stored collection could not be decoded.
// List treats it as an empty history and only logs it.
type ErrMalformedHistory struct {
	Err error
}

func (e *ErrMalformedHistory) Error() string {
	return fmt.Sprintf("malformed history: %v", e.Err)
}

func (e *ErrMalformedHistory) Unwrap() error { return e.Err }

// Store reads and writes the attempt history.
// Every mutation rewrites the whole collection; concurrent writers are not
// coordinated.
type Store struct {
	kv  store.KV
	log *zap.Logger
}

// New creates a Store over kv. A nil logger discards diagnostics.
func New(kv store.KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Save prepends r to the collection.
func (s *Store) Save(ctx context.Context, r quiz.TestResult) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}

	next := make([]quiz.TestResult, 0, len(all)+1)
	next = append(next, r)
	next = append(next, all...)
	return s.write(ctx, next)
}

// List returns every saved attempt, most recent first. A missing, empty or
// undecodable collection yields an empty slice.
func (s *Store) List(ctx context.Context) ([]quiz.TestResult, error) {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if !ok || len(raw) == 0 {
		return []quiz.TestResult{}, nil
	}

	var out []quiz.TestResult
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("ignoring stored history",
			zap.Error(&ErrMalformedHistory{Err: err}),
			zap.Int("bytes", len(raw)),
		)
		return []quiz.TestResult{}, nil
	}
	if out == nil {
		out = []quiz.TestResult{}
	}
	return out, nil
}

// Get looks up a single attempt by id.
func (s *Store) Get(ctx context.Context, id string) (quiz.TestResult, bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return quiz.TestResult{}, false, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, true, nil
		}
	}
	return quiz.TestResult{}, false, nil
}

// Delete removes every attempt with the given id. An unknown id leaves the
// collection unchanged.
func (s *Store) Delete(ctx context.Context, id string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]quiz.TestResult, 0, len(all))
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.write(ctx, kept)
}

// Clear removes the whole collection.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, all []quiz.TestResult) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
