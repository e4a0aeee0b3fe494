package bfs

import (
	"fmt"
	"math"
)

// Option configures BFS and Search via functional arguments.
// Option constructors panic on meaningless input; the algorithms never fail.
type Option func(*Options)

// Options holds the parameters of one BFS or Search call.
type Options struct {
	// MaxDepth, if >= 0, stops expansion at that depth. -1 means no limit.
	MaxDepth int

	// MinSimilarity is the call-time edge filter, valid when HasMinSimilarity.
	MinSimilarity    float64
	HasMinSimilarity bool
}

// DefaultOptions returns no depth limit and the graph threshold as filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth limits expansion depth. Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("bfs: WithMaxDepth(%d): depth cannot be negative", d))
	}
	return func(o *Options) { o.MaxDepth = d }
}

// WithMinSimilarity overrides the edge filter for this call. Panics on NaN.
func WithMinSimilarity(s float64) Option {
	if math.IsNaN(s) {
		panic("bfs: WithMinSimilarity(NaN)")
	}
	return func(o *Options) {
		o.MinSimilarity = s
		o.HasMinSimilarity = true
	}
}

func buildOptions(threshold float64, opts []Option) Options {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if !o.HasMinSimilarity {
		o.MinSimilarity = threshold
	}

	return o
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in first-discovery order, start first.
//   - Depth: node → distance (edges) from the start.
//   - Parent: node → predecessor in the BFS tree (start has none).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the BFS-tree path from the start to dest.
// The second result is false if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
