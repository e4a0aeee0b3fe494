package dfs

import (
	"github.com/katalvlaran/semgraph/core"
)

// frame is one explicit-stack entry.
type frame struct {
	id     string
	depth  int
	parent string
}

// DFS performs depth-first search on g from start and returns the pre-order
// visitation. An absent start yields an empty Result.
func DFS(g *core.Graph, start string, opts ...Option) *Result {
	res := &Result{
		Order:  []string{},
		Depth:  map[string]int{},
		Parent: map[string]string{},
	}
	if !g.HasNode(start) {
		return res
	}

	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if !o.HasMinSimilarity {
		o.MinSimilarity = g.Threshold()
	}

	// 2. Walk
	visited := make(map[string]bool, g.NodeCount())
	stack := []frame{{id: start}}
	var (
		top   frame
		edges []core.Edge
		i     int
	)
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.id] {
			continue
		}

		visited[top.id] = true
		res.Order = append(res.Order, top.id)
		res.Depth[top.id] = top.depth
		if top.depth > 0 {
			res.Parent[top.id] = top.parent
		}

		if o.MaxDepth >= 0 && top.depth >= o.MaxDepth {
			continue
		}

		// 3. Push admitted neighbors in reverse so the first one pops first
		edges = g.Neighbors(top.id)
		for i = len(edges) - 1; i >= 0; i-- {
			if !core.Passes(edges[i].Similarity, o.MinSimilarity) || visited[edges[i].Target] {
				continue
			}
			stack = append(stack, frame{id: edges[i].Target, depth: top.depth + 1, parent: top.id})
		}
	}

	return res
}
