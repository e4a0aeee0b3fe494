package similarity

import (
	"context"
	"strings"
)

// PairKey is an unordered, lowercase label pair for WordOverlap overrides.
type PairKey struct{ A, B string }

// WordOverlap scores labels by the Jaccard index of their lowercase,
// whitespace-separated words. Pairs found in Pinned (either order,
// compared lowercase) return the pinned score instead.
type WordOverlap struct {
	Pinned map[PairKey]float64
}

// Similarity implements Similarity.
func (w WordOverlap) Similarity(_ context.Context, a, b string) (float64, error) {
	return w.Score(a, b), nil
}

// Score is Similarity without the context.
func (w WordOverlap) Score(a, b string) float64 {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if v, ok := w.Pinned[PairKey{la, lb}]; ok {
		return v
	}
	if v, ok := w.Pinned[PairKey{lb, la}]; ok {
		return v
	}

	wa, wb := wordSet(la), wordSet(lb)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	inter := 0
	for word := range wa {
		if _, ok := wb[word]; ok {
			inter++
		}
	}

	return float64(inter) / float64(len(wa)+len(wb)-inter)
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}

	return out
}

// CharOverlap scores labels by the number of distinct lowercase runes they
// share divided by the number of distinct runes in a. It is asymmetric.
type CharOverlap struct{}

// Similarity implements Similarity.
func (CharOverlap) Similarity(_ context.Context, a, b string) (float64, error) {
	return CharOverlap{}.Score(a, b), nil
}

// Score is Similarity without the context.
func (CharOverlap) Score(a, b string) float64 {
	ra, rb := runeSet(strings.ToLower(a)), runeSet(strings.ToLower(b))
	common := 0
	for r := range ra {
		if _, ok := rb[r]; ok {
			common++
		}
	}

	return float64(common) / float64(max(len(ra), 1))
}

func runeSet(s string) map[rune]struct{} {
	out := make(map[rune]struct{}, len(s))
	for _, r := range s {
		out[r] = struct{}{}
	}

	return out
}
