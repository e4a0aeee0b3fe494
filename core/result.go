package core

import "fmt"

// SearchResult is the outcome of a goal-directed search.
//
// TotalSimilarity is the product of the edge similarities along Path (the
// multiplicative path confidence), not the additive search cost.
// PathLength counts nodes, not edges.
type SearchResult struct {
	Path            []string `json:"path" yaml:"path"`
	TotalSimilarity float64  `json:"total_similarity" yaml:"total_similarity"`
	PathLength      int      `json:"path_length" yaml:"path_length"`
	NodesVisited    int      `json:"nodes_visited" yaml:"nodes_visited"`
	NodesExplored   int      `json:"nodes_explored" yaml:"nodes_explored"`
}

// String implements fmt.Stringer.
func (r *SearchResult) String() string {
	return fmt.Sprintf("SearchResult(path_length=%d, similarity=%.3f, visited=%d)",
		r.PathLength, r.TotalSimilarity, r.NodesVisited)
}

// PathSimilarity multiplies the stored similarities of consecutive hops in
// path. Hops with no stored edge are skipped. An empty or single-node path
// yields 1.
func (g *Graph) PathSimilarity(path []string) float64 {
	total := 1.0
	var i int
	for i = 0; i+1 < len(path); i++ {
		if w, ok := g.EdgeWeight(path[i], path[i+1]); ok {
			total *= w
		}
	}

	return total
}

// PathCost sums the -ln(similarity) cost of consecutive hops in path. ok
// is false when a hop has no stored edge or a similarity with no finite
// cost. An empty or single-node path costs 0.
func (g *Graph) PathCost(path []string) (float64, bool) {
	total := 0.0
	var (
		i      int
		w, c   float64
		stored bool
		finite bool
	)
	for i = 0; i+1 < len(path); i++ {
		if w, stored = g.EdgeWeight(path[i], path[i+1]); !stored {
			return 0, false
		}
		if c, finite = Cost(w); !finite {
			return 0, false
		}
		total += c
	}

	return total, true
}

// NewSearchResult builds a SearchResult for path, deriving TotalSimilarity
// from g and PathLength from len(path).
func (g *Graph) NewSearchResult(path []string, visited, explored int) *SearchResult {
	return &SearchResult{
		Path:            path,
		TotalSimilarity: g.PathSimilarity(path),
		PathLength:      len(path),
		NodesVisited:    visited,
		NodesExplored:   explored,
	}
}

// ReversePath reverses p in place and returns it. Algorithms build paths
// goal-first from predecessor maps.
func ReversePath(p []string) []string {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}
