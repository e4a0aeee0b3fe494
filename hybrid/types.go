package hybrid

import (
	"fmt"
	"math"
)

// DefaultDepthLimit is the node-count bound applied when WithDepthLimit is
// not given.
const DefaultDepthLimit = 3

// Strategy names the algorithm that produced a hybrid result.
type Strategy string

const (
	StrategyNone     Strategy = ""
	StrategyBFS      Strategy = "bfs"
	StrategyDijkstra Strategy = "dijkstra"
)

// Option configures a hybrid search.
type Option func(*Options)

// Options holds configurable parameters for Search.
type Options struct {
	DepthLimit       int
	MinSimilarity    float64
	HasMinSimilarity bool
}

// DefaultOptions returns DefaultDepthLimit and the graph threshold filter.
func DefaultOptions() Options {
	return Options{DepthLimit: DefaultDepthLimit}
}

// WithDepthLimit sets the BFS acceptance bound. Panics if limit < 0.
func WithDepthLimit(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("hybrid: WithDepthLimit(%d): limit cannot be negative", limit))
	}
	return func(o *Options) { o.DepthLimit = limit }
}

// WithMinSimilarity applies s as the edge filter of both tiers. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("hybrid: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}
