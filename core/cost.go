package core

import "math"

// Cost converts a similarity into an additive search cost, -ln(similarity).
// Higher similarity gives lower cost and similarity 1 costs 0. The second
// result is false when similarity <= 0, where the transform is undefined;
// cost-based searches skip such edges entirely.
//
// Similarities above 1 yield negative costs. That is outside the model and
// left to the caller.
func Cost(similarity float64) (float64, bool) {
	if !(similarity > 0) {
		return 0, false
	}

	return -math.Log(similarity), true
}

// Passes reports whether an edge with the given similarity clears a
// call-time min-similarity filter.
func Passes(similarity, minSimilarity float64) bool {
	return similarity >= minSimilarity
}
