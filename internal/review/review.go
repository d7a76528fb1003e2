// Package review compares a typed recall against the expected ayah.
package review

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchThreshold is the minimum similarity counted as a correct recall.
const MatchThreshold = 0.85

// Result is the outcome of comparing a recall with the expected text.
// It is advisory; the user's own grade is what gets recorded.
type Result struct {
	IsCorrect               bool
	Similarity              float64
	Feedback                string
	NormalizedUserAnswer    string
	NormalizedCorrectAnswer string
}

const tatweel = 'ـ'

var letterForms = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ٱ", "ا",
	"ى", "ي",
	"ئ", "ي",
	"ؤ", "و",
	"ة", "ه",
)

// Normalize reduces Arabic text to a comparable skeleton: it strips
// diacritics and tatweel, folds alef, ya and ta marbuta variants, and
// collapses whitespace.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	stripped = strings.Map(func(r rune) rune {
		if r == tatweel || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, stripped)

	stripped = letterForms.Replace(stripped)
	return strings.Join(strings.Fields(stripped), " ")
}

// Evaluate scores answer against expected.
func Evaluate(answer, expected string) Result {
	user := Normalize(answer)
	want := Normalize(expected)

	var sim float64
	switch {
	case user == "" && want == "":
		sim = 1
	case user == "" || want == "":
		sim = 0
	default:
		sim = levenshtein.Similarity(user, want, nil)
	}

	return Result{
		IsCorrect:               sim >= MatchThreshold,
		Similarity:              sim,
		Feedback:                feedback(user, sim),
		NormalizedUserAnswer:    user,
		NormalizedCorrectAnswer: want,
	}
}

func feedback(user string, sim float64) string {
	switch {
	case user == "":
		return "Nothing typed. Reveal the ayah and grade yourself."
	case sim >= 0.999:
		return "Exact match."
	case sim >= MatchThreshold:
		return "Very close. Check the small differences."
	case sim >= 0.6:
		return "Partly right. Some words are missing or out of place."
	default:
		return "Quite different from the ayah."
	}
}
