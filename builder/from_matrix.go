package builder

import (
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

// FromMatrix builds a graph over concepts from a precomputed similarity
// matrix. Only the upper triangle is read: for i < j, m[i][j] >= threshold
// adds a bidirectional edge. The matrix must be len(concepts) square.
func FromMatrix(concepts []string, m [][]float64, opts ...BuilderOption) (*core.Graph, error) {
	n := len(concepts)
	if len(m) != n {
		return nil, fmt.Errorf("%w: %d rows for %d concepts", ErrMatrixShape, len(m), n)
	}
	var i, j int
	for i = range m {
		if len(m[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixShape, i, len(m[i]), n)
		}
	}

	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(core.WithThreshold(cfg.threshold))
	for _, c := range concepts {
		g.AddNode(c)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] >= cfg.threshold {
				g.AddBidirectionalEdge(concepts[i], concepts[j], m[i][j])
			}
		}
	}

	return g, nil
}
