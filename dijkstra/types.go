package dijkstra

import "math"

// Option configures a Dijkstra run.
type Option func(*Options)

// Options holds configurable parameters for Dijkstra.
type Options struct {
	// MinSimilarity is the call-time edge filter, valid when HasMinSimilarity.
	// Without it the graph's admission threshold is used.
	MinSimilarity    float64
	HasMinSimilarity bool
}

// WithMinSimilarity follows only edges with similarity >= s. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("dijkstra: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}
