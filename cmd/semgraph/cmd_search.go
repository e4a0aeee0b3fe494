package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/astar"
	"github.com/katalvlaran/semgraph/bfs"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/dfs"
	"github.com/katalvlaran/semgraph/dijkstra"
	"github.com/katalvlaran/semgraph/hybrid"
	"github.com/katalvlaran/semgraph/matrix"
)

// Algorithm names accepted by --algo.
const (
	algoDijkstra = "dijkstra"
	algoAStar    = "astar"
	algoBFS      = "bfs"
	algoDFS      = "dfs"
	algoFloyd    = "floyd"
	algoHybrid   = "hybrid"
)

var algorithms = []string{algoDijkstra, algoAStar, algoBFS, algoDFS, algoFloyd, algoHybrid}

// searchParams are the resolved inputs of one search.
type searchParams struct {
	from, to   string
	minSim     float64
	hasMinSim  bool
	maxDepth   int
	depthLimit int
	maxNodes   int
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <graph-file>",
		Short: "Find a path between two concepts",
		Long: `Find a path between two concepts of a stored graph.

Algorithms:
  dijkstra  most similar path (minimum -ln(similarity) cost)
  astar     same objective, zero heuristic
  bfs       fewest hops, strongest neighbours first
  dfs       first path found depth-first
  floyd     all-pairs Floyd–Warshall, gated by floyd_warshall_max_nodes
  hybrid    bfs when its path has at most --depth nodes, else dijkstra

Without --min-sim the config's min_similarity is used, falling back to the
graph's own threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, _ := cmd.Flags().GetString("algo")
			p := searchParams{maxNodes: a.cfg.FloydWarshallMaxNodes}
			p.from, _ = cmd.Flags().GetString("from")
			p.to, _ = cmd.Flags().GetString("to")

			switch {
			case cmd.Flags().Changed("min-sim"):
				p.minSim, _ = cmd.Flags().GetFloat64("min-sim")
				p.hasMinSim = true
			case a.cfg.MinSimilarity != nil:
				p.minSim, p.hasMinSim = *a.cfg.MinSimilarity, true
			}
			p.depthLimit = a.cfg.BFSDepthLimit
			if cmd.Flags().Changed("depth") {
				p.depthLimit, _ = cmd.Flags().GetInt("depth")
			}
			p.maxDepth = a.cfg.MaxDepth
			if cmd.Flags().Changed("max-depth") {
				p.maxDepth, _ = cmd.Flags().GetInt("max-depth")
			}
			if math.IsNaN(p.minSim) {
				return fmt.Errorf("--min-sim must be a number")
			}
			if p.depthLimit < 0 {
				return fmt.Errorf("--depth must be >= 0, got %d", p.depthLimit)
			}

			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("searching", "algo", algo, "from", p.from, "to", p.to,
				"nodes", g.NodeCount(), "edges", g.EdgeCount())

			out, err := runSearch(g, algo, p)
			if err != nil {
				return err
			}
			return a.out.Search(out)
		},
	}

	cmd.Flags().String("from", "", "Start concept (required)")
	cmd.Flags().String("to", "", "Goal concept (required)")
	cmd.Flags().String("algo", algoDijkstra, "Algorithm: "+strings.Join(algorithms, ", "))
	cmd.Flags().Float64("min-sim", 0, "Only follow edges with at least this similarity")
	cmd.Flags().Int("depth", 0, "Hybrid BFS acceptance bound, in nodes (default from config)")
	cmd.Flags().Int("max-depth", -1, "BFS/DFS expansion depth limit (-1 = none)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// runSearch dispatches to one algorithm and reports its outcome.
func runSearch(g *core.Graph, algo string, p searchParams) (searchOutput, error) {
	out := searchOutput{Algorithm: algo, From: p.from, To: p.to}
	var (
		res *core.SearchResult
		ok  bool
	)

	switch algo {
	case algoDijkstra:
		var opts []dijkstra.Option
		if p.hasMinSim {
			opts = append(opts, dijkstra.WithMinSimilarity(p.minSim))
		}
		res, ok = dijkstra.Search(g, p.from, p.to, opts...)

	case algoAStar:
		var opts []astar.Option
		if p.hasMinSim {
			opts = append(opts, astar.WithMinSimilarity(p.minSim))
		}
		res, ok = astar.Search(g, p.from, p.to, opts...)

	case algoBFS:
		var opts []bfs.Option
		if p.hasMinSim {
			opts = append(opts, bfs.WithMinSimilarity(p.minSim))
		}
		if p.maxDepth >= 0 {
			opts = append(opts, bfs.WithMaxDepth(p.maxDepth))
		}
		res, ok = bfs.Search(g, p.from, p.to, opts...)

	case algoDFS:
		var opts []dfs.Option
		if p.hasMinSim {
			opts = append(opts, dfs.WithMinSimilarity(p.minSim))
		}
		if p.maxDepth >= 0 {
			opts = append(opts, dfs.WithMaxDepth(p.maxDepth))
		}
		if g.HasNode(p.to) {
			walk := dfs.DFS(g, p.from, opts...)
			var path []string
			if path, ok = walk.PathTo(p.to); ok {
				res = g.NewSearchResult(path, len(walk.Order), len(walk.Order))
			}
		}

	case algoFloyd:
		opts := []matrix.Option{matrix.WithMaxNodes(p.maxNodes)}
		if p.hasMinSim {
			opts = append(opts, matrix.WithMinSimilarity(p.minSim))
		}
		fw, err := matrix.FloydWarshall(g, opts...)
		if err != nil {
			return out, fmt.Errorf("%w (raise floyd_warshall_max_nodes or pick another --algo)", err)
		}
		res, ok = fw.Search(p.from, p.to)

	case algoHybrid:
		opts := []hybrid.Option{hybrid.WithDepthLimit(p.depthLimit)}
		if p.hasMinSim {
			opts = append(opts, hybrid.WithMinSimilarity(p.minSim))
		}
		var strategy hybrid.Strategy
		res, strategy, ok = hybrid.Search(g, p.from, p.to, opts...)
		out.Strategy = string(strategy)

	default:
		return out, fmt.Errorf("unknown algorithm %q (want one of %s)", algo, strings.Join(algorithms, ", "))
	}

	if !ok {
		return out, nil
	}
	out.Found = true
	out.Result = res
	if cost, finite := g.PathCost(res.Path); finite {
		out.Cost = &cost
	}

	return out, nil
}
