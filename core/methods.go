package core

// Threshold reports the admission threshold configured at construction.
// A nil graph reports DefaultThreshold.
func (g *Graph) Threshold() float64 {
	if g == nil {
		return DefaultThreshold
	}

	return g.threshold
}

// AddNode inserts id if absent. Re-adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	g.adjacency[id] = nil
}

// HasNode reports whether id is a member of the node set.
func (g *Graph) HasNode(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.nodes[id]

	return ok
}

// AddEdge stores the directed edge from→to when similarity clears the
// threshold. If the pair already exists the stored similarity becomes
// max(existing, similarity) and no second entry is created.
//
// Steps:
//  1. Reject silently if similarity < threshold (no nodes are created either).
//  2. Ensure both endpoints exist.
//  3. Max-merge into an existing entry, or append a new one.
//
// Complexity: O(deg(from)) for the duplicate scan.
func (g *Graph) AddEdge(from, to string, similarity float64) {
	// 1) Admission rule
	if similarity < g.threshold {
		return
	}

	// 2) Endpoints
	g.AddNode(from)
	g.AddNode(to)

	// 3) Max-merge or append
	edges := g.adjacency[from]
	for i := range edges {
		if edges[i].Target == to {
			if similarity > edges[i].Similarity {
				edges[i].Similarity = similarity
			}
			return
		}
	}
	g.adjacency[from] = append(edges, Edge{Target: to, Similarity: similarity})
	g.edgeCount++
}

// AddBidirectionalEdge calls AddEdge(a,b,s) and AddEdge(b,a,s). Each direction
// passes the admission and max-merge rules on its own.
func (g *Graph) AddBidirectionalEdge(a, b string, similarity float64) {
	g.AddEdge(a, b, similarity)
	g.AddEdge(b, a, similarity)
}

// Neighbors returns the outgoing edges of node in insertion order, or nil
// for an unknown node. The slice aliases internal storage and must be
// treated as read-only.
// Complexity: O(1)
func (g *Graph) Neighbors(node string) []Edge {
	if g == nil {
		return nil
	}

	return g.adjacency[node]
}

// EdgeWeight returns the similarity stored on from→to.
// Complexity: O(deg(from)), a linear scan of the adjacency.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	var e Edge
	for _, e = range g.Neighbors(from) {
		if e.Target == to {
			return e.Similarity, true
		}
	}

	return 0, false
}

// HasEdge reports whether from→to is stored.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// AllNodes returns a copy of the node labels in first-insertion order.
// Complexity: O(V)
func (g *Graph) AllNodes() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// AllEdges returns every stored directed edge, grouped by source in node
// insertion order and by adjacency order within a source.
// Complexity: O(V+E)
func (g *Graph) AllEdges() []WeightedEdge {
	if g == nil {
		return nil
	}
	out := make([]WeightedEdge, 0, g.edgeCount)
	var src string
	var e Edge
	for _, src = range g.order {
		for _, e = range g.adjacency[src] {
			out = append(out, WeightedEdge{Source: src, Target: e.Target, Similarity: e.Similarity})
		}
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// EdgeCount returns the number of stored directed edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edgeCount
}

// Stats summarizes the graph. AverageDegree is NumEdges/NumNodes, or 0 for
// an empty graph.
func (g *Graph) Stats() Stats {
	s := Stats{
		NumNodes:  g.NodeCount(),
		NumEdges:  g.EdgeCount(),
		Threshold: g.Threshold(),
	}
	if s.NumNodes > 0 {
		s.AverageDegree = float64(s.NumEdges) / float64(s.NumNodes)
	}

	return s
}

// Clone returns an independent deep copy suitable as a per-goroutine snapshot.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithThreshold(g.threshold))
	var id string
	for _, id = range g.order {
		c.AddNode(id)
		if edges := g.adjacency[id]; len(edges) > 0 {
			c.adjacency[id] = append([]Edge(nil), edges...)
		}
	}
	c.edgeCount = g.edgeCount

	return c
}
