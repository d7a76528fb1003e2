package quiz

import (
	"github.com/murajaa/murajaa/internal/quran"
)

// MaxGenerateAttempts bounds the random draws of a single Generate call.
const MaxGenerateAttempts = 100

// RandSource supplies uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generate builds up to requested adjacency questions over ayat.
//
// Each question anchors on a distinct index of ayat. An anchor whose drawn
// direction has no neighbour (NEXT on the last ayah, PREVIOUS on the first)
// consumes an attempt and stays available. When the attempt budget runs
// out, the questions collected so far are returned without error.
func Generate(ayat []quran.Ayah, requested int, src RandSource) ([]Question, error) {
	n := len(ayat)
	if n < 2 {
		return nil, &ErrInsufficientRange{Available: n}
	}

	target := min(requested, n-1)
	if target <= 0 {
		return []Question{}, nil
	}

	out := make([]Question, 0, target)
	used := make(map[int]bool, target)

	for attempts := 0; len(out) < target && attempts < MaxGenerateAttempts; attempts++ {
		i := src.IntN(n)
		if used[i] {
			continue
		}

		switch dir := src.IntN(2); {
		case dir == 0 && i < n-1:
			out = append(out, Question{Type: DirectionNext, ReferenceAyah: ayat[i], TargetAyah: ayat[i+1]})
		case dir == 1 && i > 0:
			out = append(out, Question{Type: DirectionPrevious, ReferenceAyah: ayat[i], TargetAyah: ayat[i-1]})
		default:
			continue
		}
		used[i] = true
	}

	return out, nil
}
