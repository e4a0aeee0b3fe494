package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/semgraph/core"
)

// ShortestPath runs A* from start to goal and returns the path cost and the
// path. ok is false when an endpoint is absent or goal is unreachable
// under the similarity filter.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) (cost float64, path []string, ok bool) {
	s, found := run(g, start, goal, opts)
	if !found {
		return 0, nil, false
	}

	return s.gScore[goal], s.pathTo(goal), true
}

// Search is ShortestPath reported as a core.SearchResult. NodesVisited
// counts open-set pops and NodesExplored counts distinct expanded nodes.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.SearchResult, bool) {
	s, found := run(g, start, goal, opts)
	if !found {
		return nil, false
	}

	return g.NewSearchResult(s.pathTo(goal), s.pops, len(s.closed)), true
}

func run(g *core.Graph, start, goal string, opts []Option) (*searcher, bool) {
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, false
	}

	var o Options
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = Zero
	}
	if !o.HasMinSimilarity {
		o.MinSimilarity = g.Threshold()
	}

	s := &searcher{
		g:      g,
		goal:   goal,
		h:      o.Heuristic,
		minSim: o.MinSimilarity,
		gScore: make(map[string]float64, g.NodeCount()),
		prev:   make(map[string]string, g.NodeCount()),
		closed: make(map[string]bool, g.NodeCount()),
	}

	return s, s.process(start)
}

// searcher holds the mutable state for one A* execution. closed records
// every node expanded at least once and only feeds NodesExplored.
type searcher struct {
	g      *core.Graph
	goal   string
	h      Heuristic
	minSim float64
	gScore map[string]float64
	prev   map[string]string
	closed map[string]bool
	open   openSet
	pops   int
}

// estimate evaluates the heuristic, mapping NaN and -Inf to +Inf.
func (s *searcher) estimate(node string) float64 {
	v := s.h(node, s.goal)
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return math.Inf(1)
	}

	return v
}

// process drives the open set until goal is popped or the set drains.
//
// Steps:
//  1. Seed the open set with start at g=0.
//  2. Pop the lowest (f, g, id) entry; skip it if a cheaper g was recorded
//     after it was pushed.
//  3. Stop when the popped node is goal.
//  4. Relax every admitted neighbour whose tentative g improves. Expanded
//     nodes are reopened on improvement, so an admissible heuristic yields
//     an optimal path even when it is not consistent.
//
// Complexity: O((V + E) log V) with a consistent heuristic; reopening can
// add re-expansions otherwise.
func (s *searcher) process(start string) bool {
	// 1) Seed
	s.gScore[start] = 0
	heap.Push(&s.open, &entry{f: s.estimate(start), g: 0, id: start})

	var (
		cur     *entry
		e       core.Edge
		w       float64
		ok      bool
		tg      float64
		best    float64
		present bool
	)
	for s.open.Len() > 0 {
		// 2) Pop, discarding stale entries
		cur = heap.Pop(&s.open).(*entry)
		s.pops++
		if cur.g != s.gScore[cur.id] {
			continue
		}
		s.closed[cur.id] = true

		// 3) Goal test on pop
		if cur.id == s.goal {
			return true
		}

		// 4) Relax
		for _, e = range s.g.Neighbors(cur.id) {
			if !core.Passes(e.Similarity, s.minSim) {
				continue
			}
			if w, ok = core.Cost(e.Similarity); !ok {
				continue
			}
			// Similarities above 1 cost less than zero; never reopen through
			// them so a cycle of such edges cannot loop forever.
			if w < 0 && s.closed[e.Target] {
				continue
			}
			tg = cur.g + w
			best, present = s.gScore[e.Target]
			if present && tg >= best {
				continue
			}
			s.gScore[e.Target] = tg
			s.prev[e.Target] = cur.id
			heap.Push(&s.open, &entry{f: tg + s.estimate(e.Target), g: tg, id: e.Target})
		}
	}

	return false
}

func (s *searcher) pathTo(dest string) []string {
	path := []string{dest}
	for p, ok := s.prev[dest]; ok; p, ok = s.prev[p] {
		path = append(path, p)
	}

	return core.ReversePath(path)
}

// entry is one open-set element.
type entry struct {
	f  float64
	g  float64
	id string
}

// openSet is a min-heap ordered by (f, g, id).
type openSet []*entry

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.id < b.id
}

func (q openSet) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openSet) Push(x interface{}) { *q = append(*q, x.(*entry)) }
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
