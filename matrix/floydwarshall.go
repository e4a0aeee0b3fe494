package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/semgraph/core"
)

// noHop marks an empty next-hop cell.
const noHop = -1

// Result is the all-pairs outcome of FloydWarshall. It is read-only.
type Result struct {
	g     *core.Graph
	nodes []string
	index map[string]int
	dist  *Dense // nil when the graph is empty
	next  []int  // row-major n×n next-hop table; noHop = unreachable
}

// FloydWarshall computes all-pairs minimum -ln(similarity) costs over the
// edges of g that pass the similarity filter. Edges with similarity <= 0
// are never admitted. An empty graph yields an empty Result.
//
// Steps:
//  1. Resolve options; an unset min-similarity falls back to g's threshold.
//  2. Enforce the WithMaxNodes gate before allocating anything.
//  3. Index nodes in insertion order.
//  4. Seed the n×n distance and next-hop tables from direct edges.
//  5. Run the k → i → j closure.
//
// The only error is ErrTooManyNodes when WithMaxNodes is exceeded.
//
// Complexity: O(n³) time, O(n²) memory.
func FloydWarshall(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Options
	var o Options
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if !o.HasMinSimilarity {
		o.MinSimilarity = g.Threshold()
	}

	// 2) Size gate
	nodes := g.AllNodes()
	n := len(nodes)
	if o.MaxNodes > 0 && n > o.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrTooManyNodes, n, o.MaxNodes)
	}

	// 3) Index
	res := &Result{g: g, nodes: nodes, index: make(map[string]int, n)}
	for i, id := range nodes {
		res.index[id] = i
	}
	if n == 0 {
		return res, nil
	}

	// 4) Seed
	res.dist, _ = NewDense(n, n) // n > 0
	res.next = make([]int, n*n)
	res.seed(o.MinSimilarity)

	// 5) Closure
	res.relax()

	return res, nil
}

// seed sets the diagonal to 0, every other cell to +Inf, then lowers cells
// that have a direct admitted edge.
func (r *Result) seed(minSim float64) {
	n := len(r.nodes)
	d := r.dist.data
	r.dist.Fill(math.Inf(1))

	var (
		i, j int
		e    core.Edge
		w    float64
		ok   bool
	)
	for i = 0; i < n; i++ {
		d[i*n+i] = 0
		for j = 0; j < n; j++ {
			r.next[i*n+j] = noHop
		}
		r.next[i*n+i] = i
	}

	for i = 0; i < n; i++ {
		for _, e = range r.g.Neighbors(r.nodes[i]) {
			if !core.Passes(e.Similarity, minSim) {
				continue
			}
			if w, ok = core.Cost(e.Similarity); !ok {
				continue
			}
			j = r.index[e.Target]
			if w < d[i*n+j] {
				d[i*n+j] = w
				r.next[i*n+j] = j
			}
		}
	}
}

// relax is the O(n³) closure. Loop order is fixed (k → i → j) and only
// strict improvements are taken, so results are deterministic.
func (r *Result) relax() {
	n := len(r.nodes)
	data := r.dist.data
	next := r.next

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

// Nodes returns the node order backing the matrix rows and columns.
func (r *Result) Nodes() []string {
	out := make([]string, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Distances returns a copy of the cost matrix, or nil for an empty graph.
func (r *Result) Distances() *Dense {
	if r.dist == nil {
		return nil
	}

	return r.dist.Clone()
}

// Cost returns the minimum cost from start to goal. ok is false when either
// node is absent or goal is unreachable.
func (r *Result) Cost(start, goal string) (float64, bool) {
	i, okI := r.index[start]
	j, okJ := r.index[goal]
	if !okI || !okJ {
		return 0, false
	}
	v := r.dist.data[i*len(r.nodes)+j]
	if math.IsInf(v, 1) {
		return 0, false
	}

	return v, true
}

// Path rebuilds the minimum-cost path by walking the next-hop table. It
// returns nil when either node is absent or goal is unreachable.
func (r *Result) Path(start, goal string) []string {
	i, okI := r.index[start]
	j, okJ := r.index[goal]
	if !okI || !okJ {
		return nil
	}
	n := len(r.nodes)
	if r.next[i*n+j] == noHop {
		return nil
	}

	path := []string{start}
	cur := i
	// A simple path has at most n nodes.
	for steps := 0; cur != j; steps++ {
		if steps >= n {
			return nil
		}
		cur = r.next[cur*n+j]
		if cur == noHop {
			return nil
		}
		path = append(path, r.nodes[cur])
	}

	return path
}

// Search reports the start→goal pair as a core.SearchResult. Every node
// takes part in the closure, so NodesVisited and NodesExplored are both the
// node count.
func (r *Result) Search(start, goal string) (*core.SearchResult, bool) {
	path := r.Path(start, goal)
	if path == nil {
		return nil, false
	}

	return r.g.NewSearchResult(path, len(r.nodes), len(r.nodes)), true
}
