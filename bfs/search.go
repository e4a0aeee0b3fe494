package bfs

import (
	"sort"

	"github.com/katalvlaran/semgraph/core"
)

// pathItem is one Search frontier entry: the node, the path that reached it
// and the running similarity product along that path.
type pathItem struct {
	path       []string
	similarity float64
}

// Search finds a fewest-hop path from start to goal and returns as soon as
// the goal is dequeued. The second result is false when start or goal is
// absent or goal is unreachable under the similarity filter; no partial
// order is returned in that case. WithMaxDepth is honored: nodes at the depth
// limit are not expanded.
//
// NodesVisited counts discovered nodes, NodesExplored counts dequeues.
//
// Steps:
//  1. Reject absent endpoints.
//  2. Seed the frontier with the one-node path [start].
//  3. Dequeue; return when the path ends at goal.
//  4. Expand within the depth limit, strongest neighbours first, marking
//     each target discovered as it is enqueued.
//
// Complexity: O(V·L + E log d) where L is the longest path copied and d the
// largest out-degree.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.SearchResult, bool) {
	// 1) Endpoints
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, false
	}
	o := buildOptions(g.Threshold(), opts)

	// 2) Seed
	queue := []pathItem{{path: []string{start}, similarity: 1.0}}
	visited := map[string]bool{start: true}
	explored := 0

	var (
		cur   pathItem
		node  string
		edges []core.Edge
		e     core.Edge
	)
	for len(queue) > 0 {
		// 3) Dequeue, goal test
		cur = queue[0]
		queue = queue[1:]
		explored++

		node = cur.path[len(cur.path)-1]
		if node == goal {
			return &core.SearchResult{
				Path:            cur.path,
				TotalSimilarity: cur.similarity,
				PathLength:      len(cur.path),
				NodesVisited:    len(visited),
				NodesExplored:   explored,
			}, true
		}
		// 4) Expand
		if o.MaxDepth >= 0 && len(cur.path)-1 >= o.MaxDepth {
			continue
		}

		edges = byDescendingSimilarity(g.Neighbors(node))
		for _, e = range edges {
			if !core.Passes(e.Similarity, o.MinSimilarity) || visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			next := make([]string, len(cur.path), len(cur.path)+1)
			copy(next, cur.path)
			queue = append(queue, pathItem{
				path:       append(next, e.Target),
				similarity: cur.similarity * e.Similarity,
			})
		}
	}

	return nil, false
}

// byDescendingSimilarity returns a sorted copy; adjacency stays untouched.
func byDescendingSimilarity(edges []core.Edge) []core.Edge {
	out := make([]core.Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })

	return out
}
