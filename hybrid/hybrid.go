package hybrid

import (
	"github.com/katalvlaran/semgraph/bfs"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/dijkstra"
)

// Search returns the BFS path from start to goal when its PathLength is
// <= the depth limit, and Dijkstra's result otherwise. The Strategy reports
// which tier answered; ok is false when neither finds a path.
func Search(g *core.Graph, start, goal string, opts ...Option) (*core.SearchResult, Strategy, bool) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	minSim := g.Threshold()
	if o.HasMinSimilarity {
		minSim = o.MinSimilarity
	}

	if res, ok := bfs.Search(g, start, goal, bfs.WithMinSimilarity(minSim)); ok && res.PathLength <= o.DepthLimit {
		return res, StrategyBFS, true
	}

	if res, ok := dijkstra.Search(g, start, goal, dijkstra.WithMinSimilarity(minSim)); ok {
		return res, StrategyDijkstra, true
	}

	return nil, StrategyNone, false
}
