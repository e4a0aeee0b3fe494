package dfs

import (
	"fmt"
	"math"
)

// Option configures DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// MaxDepth, if non-negative, limits expansion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// MinSimilarity is the call-time edge filter, valid when HasMinSimilarity.
	MinSimilarity    float64
	HasMinSimilarity bool
}

// DefaultOptions returns no depth limit and the graph threshold as filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth limits expansion depth. Panics if limit < 0.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("dfs: WithMaxDepth(%d): depth cannot be negative", limit))
	}
	return func(o *Options) { o.MaxDepth = limit }
}

// WithMinSimilarity overrides the edge filter for this call. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("dfs: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}

// Result collects the traversal: pre-order visitation, depth at first visit
// and the predecessor that led there.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns the DFS-tree path from the start to dest. It is a path
// the traversal happened to take, not a shortest one. The second result is
// false if dest was not visited.
func (r *Result) PathTo(dest string) ([]string, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	path := []string{dest}
	for p, ok := r.Parent[dest]; ok; p, ok = r.Parent[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
