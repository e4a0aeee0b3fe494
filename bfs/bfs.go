package bfs

import (
	"github.com/katalvlaran/semgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start and returns the full
// visitation order. An absent start yields an empty Result.
//
// Steps:
//  1. Allocate an empty Result; return it if start is absent.
//  2. Build the walker with options resolved against g's threshold.
//  3. Seed the queue with start and drain it level by level.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) *Result {
	// 1) Result
	res := &Result{
		Order:  []string{},
		Depth:  map[string]int{},
		Parent: map[string]string{},
	}
	if !g.HasNode(start) {
		return res
	}

	// 2) Walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    buildOptions(g.Threshold(), opts),
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res:     res,
	}

	// 3) Seed queue with start (no parent) and drain
	w.enqueue(start, 0, "")
	w.loop()

	return res
}

// enqueue marks id discovered at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if d > 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the FIFO frontier until empty.
// Complexity: O(V + E)
func (w *walker) loop() {
	var item queueItem
	for len(w.queue) > 0 {
		item = w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		// depth limit: record the node, do not expand it
		if w.opts.MaxDepth >= 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors enqueues every unseen neighbor reachable through an edge
// that clears the similarity filter.
func (w *walker) enqueueNeighbors(item queueItem) {
	var e core.Edge
	for _, e = range w.graph.Neighbors(item.id) {
		if !core.Passes(e.Similarity, w.opts.MinSimilarity) {
			continue
		}
		if !w.visited[e.Target] {
			w.enqueue(e.Target, item.depth+1, item.id)
		}
	}
}
