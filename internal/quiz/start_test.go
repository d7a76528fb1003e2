package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murajaa/murajaa/internal/quran"
)

type fakeProvider struct {
	juz      map[int][]quran.Ayah
	surah    map[int][]quran.Ayah
	err      error
	juzCalls int
}

func (f *fakeProvider) FetchJuz(_ context.Context, id int) ([]quran.Ayah, error) {
	f.juzCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.juz[id], nil
}

func (f *fakeProvider) FetchSurah(_ context.Context, id int) ([]quran.Ayah, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.surah[id], nil
}

func TestStart_SurahRangeYieldsUniqueAnchors(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, rand.New(rand.NewPCG(42, 7)), nil)

	sess, err := s.Start(context.Background(), SurahSelection(1, 1, 7), 5)
	require.NoError(t, err)
	assert.Equal(t, PhaseReady, sess.Phase())
	require.Equal(t, 5, sess.Total())

	seen := map[int]bool{}
	for range sess.Total() {
		q, ok := sess.Current()
		require.True(t, ok)
		assert.False(t, seen[q.ReferenceAyah.NumberInSurah], "duplicate anchor %d", q.ReferenceAyah.NumberInSurah)
		seen[q.ReferenceAyah.NumberInSurah] = true
		_, err := sess.Grade(true)
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseComplete, sess.Phase())
}

func TestStart_RangeFiltersOnNumberInSurah(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, rand.New(rand.NewPCG(1, 1)), nil)

	sess, err := s.Start(context.Background(), SurahSelection(1, 3, 5), 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, sess.Total(), 2)

	for range sess.Total() {
		q, _ := sess.Current()
		for _, a := range []quran.Ayah{q.ReferenceAyah, q.TargetAyah} {
			assert.GreaterOrEqual(t, a.NumberInSurah, 3)
			assert.LessOrEqual(t, a.NumberInSurah, 5)
		}
		_, _ = sess.Grade(false)
	}
}

func TestStart_SingleAyahRange(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, nil, nil)

	_, err := s.Start(context.Background(), SurahSelection(1, 4, 4), 5)
	var ir *ErrInsufficientRange
	require.ErrorAs(t, err, &ir)
	assert.Equal(t, 1, ir.Available)
}

func TestStart_RangeBeyondSurah(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, nil, nil)

	_, err := s.Start(context.Background(), SurahSelection(1, 5, 9), 5)
	var inv *ErrInvalidSelection
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "range", inv.Field)
}

func TestStart_OpenRangeRunsToSurahEnd(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, rand.New(rand.NewPCG(3, 3)), nil)

	sess, err := s.Start(context.Background(), SurahSelection(1, 5, 0), 10)
	require.NoError(t, err)
	assert.Equal(t, SurahSelection(1, 5, 7), sess.Selection())
	require.Positive(t, sess.Total())
	assert.LessOrEqual(t, sess.Total(), 2)

	for range sess.Total() {
		q, _ := sess.Current()
		for _, a := range []quran.Ayah{q.ReferenceAyah, q.TargetAyah} {
			assert.GreaterOrEqual(t, a.NumberInSurah, 5)
			assert.LessOrEqual(t, a.NumberInSurah, 7)
		}
		_, _ = sess.Grade(true)
	}
}

func TestStart_OpenRangeStartBeyondSurah(t *testing.T) {
	p := &fakeProvider{surah: map[int][]quran.Ayah{1: makeAyat(7)}}
	s := NewStarter(p, nil, nil)

	_, err := s.Start(context.Background(), SurahSelection(1, 8, 0), 5)
	var inv *ErrInvalidSelection
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "range", inv.Field)
}

func TestStart_InvalidSelectionSkipsFetch(t *testing.T) {
	p := &fakeProvider{}
	s := NewStarter(p, nil, nil)

	_, err := s.Start(context.Background(), JuzSelection(31), 5)
	var inv *ErrInvalidSelection
	require.ErrorAs(t, err, &inv)

	_, err = s.Start(context.Background(), JuzSelection(1), 0)
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "count", inv.Field)
	assert.Zero(t, p.juzCalls)
}

func TestStart_ProviderFailurePassesThrough(t *testing.T) {
	want := &quran.ErrProviderUnavailable{Op: "fetch juz", Err: errors.New("connection refused")}
	s := NewStarter(&fakeProvider{err: want}, nil, nil)

	_, err := s.Start(context.Background(), JuzSelection(30), 5)
	var got *quran.ErrProviderUnavailable
	require.ErrorAs(t, err, &got)
	assert.Same(t, want, got)
}

func TestStart_LogsBudgetExhaustion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := &fakeProvider{juz: map[int][]quran.Ayah{30: makeAyat(10)}}
	// Always index 0: one NEXT question, then every draw repeats the anchor.
	s := NewStarter(p, &scriptedRand{}, zap.New(core))

	sess, err := s.Start(context.Background(), JuzSelection(30), 4)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Total())

	entries := logs.FilterMessage("retry budget exhausted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["requested"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["generated"])
}

func TestStart_NoLogWhenRangeCapsCount(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := &fakeProvider{juz: map[int][]quran.Ayah{1: makeAyat(2)}}
	s := NewStarter(p, &scriptedRand{}, zap.New(core))

	sess, err := s.Start(context.Background(), JuzSelection(1), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Total())
	assert.Zero(t, logs.Len())
}
