package matrix

import (
	"fmt"
	"math"
)

// Option configures FloydWarshall.
type Option func(*Options)

// Options holds configurable parameters for FloydWarshall.
type Options struct {
	// MinSimilarity is the call-time edge filter, valid when HasMinSimilarity.
	MinSimilarity    float64
	HasMinSimilarity bool

	// MaxNodes rejects graphs with more nodes. 0 means unlimited.
	MaxNodes int
}

// WithMinSimilarity follows only edges with similarity >= s. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("matrix: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}

// WithMaxNodes refuses graphs larger than n nodes. Panics if n < 0.
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("matrix: WithMaxNodes(%d): limit cannot be negative", n))
	}
	return func(o *Options) { o.MaxNodes = n }
}
