package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips tashkeel", "بِسْمِ اللَّهِ", "بسم الله"},
		{"folds alef forms", "إِنَّ أَكْرَمَكُمْ آمَنُوا ٱلْحَمْدُ", "ان اكرمكم امنوا الحمد"},
		{"folds ya and ta marbuta", "عَلَى الصَّلَاةِ", "علي الصلاه"},
		{"strips tatweel", "الـــرحمن", "الرحمن"},
		{"collapses whitespace", "  قل   هو\tالله ", "قل هو الله"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestEvaluate_ExactIgnoringDiacritics(t *testing.T) {
	r := Evaluate("الحمد لله رب العالمين", "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ")
	assert.True(t, r.IsCorrect)
	assert.InDelta(t, 1.0, r.Similarity, 1e-9)
	assert.Equal(t, "Exact match.", r.Feedback)
	assert.Equal(t, r.NormalizedCorrectAnswer, r.NormalizedUserAnswer)
}

func TestEvaluate_SmallTypoStillCorrect(t *testing.T) {
	r := Evaluate("الحمد لله رب العالمن", "الحمد لله رب العالمين")
	assert.True(t, r.IsCorrect)
	assert.Less(t, r.Similarity, 1.0)
	assert.GreaterOrEqual(t, r.Similarity, MatchThreshold)
}

func TestEvaluate_Different(t *testing.T) {
	r := Evaluate("قل هو الله احد", "الحمد لله رب العالمين")
	assert.False(t, r.IsCorrect)
	assert.Less(t, r.Similarity, MatchThreshold)
}

func TestEvaluate_Empty(t *testing.T) {
	r := Evaluate("   ", "الحمد لله")
	assert.False(t, r.IsCorrect)
	assert.Zero(t, r.Similarity)
	assert.Contains(t, r.Feedback, "Nothing typed")
}
