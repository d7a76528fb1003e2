package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/store"
)

func openKV(t *testing.T) store.KV {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.KV()
}

func result(id string, score, total int) quiz.TestResult {
	ref := quran.Ayah{Number: 1, Text: "بسم الله الرحمن الرحيم", NumberInSurah: 1, Surah: quran.SurahRef{Number: 1, Name: "الفاتحة"}}
	tgt := quran.Ayah{Number: 2, Text: "الحمد لله رب العالمين", NumberInSurah: 2, Surah: quran.SurahRef{Number: 1, Name: "الفاتحة"}}
	return quiz.TestResult{
		ID:             id,
		Date:           1_700_000_000_000,
		Type:           quiz.SelectionSurah,
		SelectionID:    1,
		Score:          score,
		TotalQuestions: total,
		Results: []quiz.QuestionResult{
			{Question: quiz.Question{Type: quiz.DirectionNext, ReferenceAyah: ref, TargetAyah: tgt}, IsCorrect: score > 0},
		},
	}
}

func TestList_Empty(t *testing.T) {
	h := New(openKV(t), nil)

	got, err := h.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSave_PrependsMostRecentFirst(t *testing.T) {
	h := New(openKV(t), nil)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, result("a", 1, 1)))
	require.NoError(t, h.Save(ctx, result("b", 0, 1)))
	require.NoError(t, h.Save(ctx, result("c", 1, 1)))

	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)

	// Round trip keeps nested verse data.
	assert.Equal(t, "الحمد لله رب العالمين", got[2].Results[0].Question.TargetAyah.Text)
	assert.Equal(t, quiz.DirectionNext, got[2].Results[0].Question.Type)
}

func TestSave_ListReturnsIdenticalResult(t *testing.T) {
	h := New(openKV(t), nil)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, result("stale", 1, 1)))
	require.NoError(t, h.Clear(ctx))

	baqarah := quran.SurahRef{Number: 2, Name: "البقرة", EnglishName: "Al-Baqara", NumberOfAyahs: 286}
	kursi := quran.Ayah{Number: 262, Text: "الله لا إله إلا هو الحي القيوم", Surah: baqarah, NumberInSurah: 255, Juz: 3, HizbQuarter: 17}
	after := quran.Ayah{Number: 263, Text: "لا إكراه في الدين", Surah: baqarah, NumberInSurah: 256, Juz: 3, HizbQuarter: 17}
	before := quran.Ayah{Number: 261, Text: "تلك الرسل فضلنا بعضهم على بعض", Surah: baqarah, NumberInSurah: 254, Juz: 3, HizbQuarter: 17}

	want := quiz.TestResult{
		ID:             "f3c1e2a4-kursi",
		Date:           1_760_000_000_123,
		Type:           quiz.SelectionSurah,
		SelectionID:    2,
		Score:          1,
		TotalQuestions: 2,
		Results: []quiz.QuestionResult{
			{Question: quiz.Question{Type: quiz.DirectionNext, ReferenceAyah: kursi, TargetAyah: after}, IsCorrect: true},
			{Question: quiz.Question{Type: quiz.DirectionPrevious, ReferenceAyah: kursi, TargetAyah: before}, IsCorrect: false},
		},
	}
	require.NoError(t, h.Save(ctx, want))

	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])

	one, ok, err := h.Get(ctx, want.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, one)
}

func TestDelete(t *testing.T) {
	h := New(openKV(t), nil)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, h.Save(ctx, result(id, 1, 1)))
	}

	require.NoError(t, h.Delete(ctx, "b"))
	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	require.NoError(t, h.Delete(ctx, "missing"))
	got, err = h.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDelete_RemovesAllDuplicates(t *testing.T) {
	h := New(openKV(t), nil)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, result("dup", 1, 1)))
	require.NoError(t, h.Save(ctx, result("x", 1, 1)))
	require.NoError(t, h.Save(ctx, result("dup", 0, 1)))

	require.NoError(t, h.Delete(ctx, "dup"))
	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestClear(t *testing.T) {
	kv := openKV(t)
	h := New(kv, nil)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, result("a", 1, 1)))
	require.NoError(t, h.Clear(ctx))

	_, ok, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGet(t *testing.T) {
	h := New(openKV(t), nil)
	ctx := context.Background()
	require.NoError(t, h.Save(ctx, result("a", 3, 4)))

	r, ok, err := h.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, r.Score)

	_, ok, err = h.Get(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList_MalformedIsLoggedNotReturned(t *testing.T) {
	kv := openKV(t)
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, StorageKey, []byte(`{not json`)))

	core, logs := observer.New(zapcore.WarnLevel)
	h := New(kv, zap.New(core))

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	entries := logs.All()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["error"].(string)
	require.True(t, ok)
	assert.Contains(t, logged, "malformed history")

	// A save after corruption starts a fresh collection.
	require.NoError(t, h.Save(ctx, result("fresh", 1, 1)))
	got, err = h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingKV) Put(context.Context, string, []byte) error        { return f.err }
func (f failingKV) Delete(context.Context, string) error             { return f.err }

func TestStorageFailuresAreReturned(t *testing.T) {
	boom := errors.New("disk full")
	h := New(failingKV{err: boom}, nil)
	ctx := context.Background()

	_, err := h.List(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, h.Save(ctx, result("a", 1, 1)), boom)
	assert.ErrorIs(t, h.Delete(ctx, "a"), boom)
	assert.ErrorIs(t, h.Clear(ctx), boom)
}
