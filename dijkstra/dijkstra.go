package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/semgraph/core"
)

// ShortestPath returns the minimum-cost path from start to goal and its
// total cost. ok is false when either endpoint is absent or goal cannot be
// reached through edges passing the similarity filter; cost and path are
// zero values in that case.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) (cost float64, path []string, ok bool) {
	r, found := run(g, start, goal, opts)
	if !found {
		return 0, nil, false
	}

	return r.dist[goal], r.pathTo(goal), true
}

// Search is ShortestPath reported as a core.SearchResult. NodesVisited
// counts heap pops (stale ones included) and NodesExplored counts settled
// nodes.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.SearchResult, bool) {
	r, found := run(g, start, goal, opts)
	if !found {
		return nil, false
	}

	return g.NewSearchResult(r.pathTo(goal), r.pops, r.settled), true
}

// run validates the endpoints, resolves options and drives one runner.
//
// Steps:
//  1. Reject absent endpoints without allocating state.
//  2. Apply options; an unset min-similarity falls back to g's threshold.
//  3. Allocate maps sized to the node count and run the main loop.
func run(g *core.Graph, start, goal string, opts []Option) (*runner, bool) {
	// 1) Endpoints
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, false
	}

	// 2) Options
	var o Options
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if !o.HasMinSimilarity {
		o.MinSimilarity = g.Threshold()
	}

	// 3) State and main loop
	r := &runner{
		g:       g,
		minSim:  o.MinSimilarity,
		dist:    make(map[string]float64, g.NodeCount()),
		prev:    make(map[string]string, g.NodeCount()),
		visited: make(map[string]bool, g.NodeCount()),
	}

	return r, r.process(start, goal)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	minSim  float64
	dist    map[string]float64 // best known cost; absent means +Inf
	prev    map[string]string  // predecessor on the best known path
	visited map[string]bool    // settled nodes
	pq      nodePQ
	pops    int
	settled int
}

// process runs the main loop and reports whether goal was settled.
//
// Steps:
//  1. Seed the heap with start at distance 0.
//  2. Pop the closest entry; skip it if already settled or stale.
//  3. Settle it and stop early when it is goal.
//  4. Otherwise relax its admitted outgoing edges.
//
// Complexity: O((V + E) log V) with lazy decrease-key; stale entries bound
// the heap by E.
func (r *runner) process(start, goal string) bool {
	// 1) Seed
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	var item *nodeItem
	for r.pq.Len() > 0 {
		// 2) Pop; a stale entry had a shorter distance pushed after it
		item = heap.Pop(&r.pq).(*nodeItem)
		r.pops++
		if r.visited[item.id] || item.dist != r.dist[item.id] {
			continue
		}
		// 3) Settle, early exit
		r.visited[item.id] = true
		r.settled++
		if item.id == goal {
			return true
		}

		// 4) Relax
		r.relax(item.id)
	}

	return false
}

// relax improves the distance of every admitted neighbor of u.
func (r *runner) relax(u string) {
	var (
		e       core.Edge
		w       float64
		ok      bool
		newDist float64
		best    float64
		known   bool
	)
	for _, e = range r.g.Neighbors(u) {
		if r.visited[e.Target] || !core.Passes(e.Similarity, r.minSim) {
			continue
		}
		if w, ok = core.Cost(e.Similarity); !ok {
			continue
		}

		newDist = r.dist[u] + w
		best, known = r.dist[e.Target]
		if known && newDist >= best {
			continue
		}
		r.dist[e.Target] = newDist
		r.prev[e.Target] = u
		heap.Push(&r.pq, &nodeItem{id: e.Target, dist: newDist})
	}
}

// pathTo walks the predecessor chain back from dest.
func (r *runner) pathTo(dest string) []string {
	path := []string{dest}
	cur := dest
	var (
		p  string
		ok bool
	)
	for {
		if p, ok = r.prev[cur]; !ok {
			break
		}
		path = append(path, p)
		cur = p
	}

	return core.ReversePath(path)
}

// nodeItem is one heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
