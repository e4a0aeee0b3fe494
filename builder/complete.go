package builder

import (
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

const minCompleteNodes = 1

// Complete builds K_n: n nodes labelled by the ID scheme and every pair
// joined in both directions with the WithEdgeSimilarity value. If that value
// is below the threshold the result has nodes but no edges.
func Complete(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(core.WithThreshold(cfg.threshold))

	ids := make([]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			g.AddBidirectionalEdge(ids[i], ids[j], cfg.edgeSim)
		}
	}

	return g, nil
}
