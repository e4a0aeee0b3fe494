package astar

import "math"

// Heuristic estimates the remaining cost from node to goal in the
// -ln(similarity) cost space. It should return a value >= 0.
type Heuristic func(node, goal string) float64

// Zero is the trivial admissible heuristic.
func Zero(string, string) float64 { return 0 }

// Option configures an A* run.
type Option func(*Options)

// Options holds configurable parameters for A*.
type Options struct {
	Heuristic        Heuristic
	MinSimilarity    float64
	HasMinSimilarity bool
}

// WithHeuristic installs h. A nil h selects Zero.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMinSimilarity follows only edges with similarity >= s. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("astar: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}
