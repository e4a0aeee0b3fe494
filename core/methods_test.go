package core_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/semgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, core.DefaultThreshold, g.Threshold())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.AllNodes())
	assert.Empty(t, g.AllEdges())
}

func TestAddEdge_BelowThresholdNeverStored(t *testing.T) {
	for _, th := range []float64{0, 0.1, 0.3, 0.5, 0.9} {
		t.Run(fmt.Sprintf("threshold=%.1f", th), func(t *testing.T) {
			g := core.NewGraph(core.WithThreshold(th))
			for _, s := range []float64{0, 0.05, 0.2, 0.3, 0.49, 0.5, 0.8, 1} {
				g.AddBidirectionalEdge("A", fmt.Sprintf("B%.2f", s), s)
			}
			for _, e := range g.AllEdges() {
				assert.GreaterOrEqual(t, e.Similarity, th, "edge %s→%s stored below threshold", e.Source, e.Target)
			}
		})
	}
}

func TestAddEdge_RejectedDoesNotCreateNodes(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0.1)
	assert.False(t, g.HasNode("A"))
	assert.False(t, g.HasNode("B"))
}

func TestAddEdge_MaxMerge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0.5)
	g.AddEdge("A", "B", 0.9)
	g.AddEdge("A", "B", 0.4)

	require.Len(t, g.Neighbors("A"), 1)
	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 0.9, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddBidirectionalEdge_DirectionsMergeIndependently(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0.9)
	g.AddBidirectionalEdge("A", "B", 0.5)

	ab, _ := g.EdgeWeight("A", "B")
	ba, _ := g.EdgeWeight("B", "A")
	assert.Equal(t, 0.9, ab)
	assert.Equal(t, 0.5, ba)
}

func TestAddEdge_AutoCreatesEndpointsAndKeepsOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("Z")
	g.AddEdge("A", "B", 0.8)
	g.AddEdge("A", "C", 0.4)
	g.AddNode("A")

	assert.Equal(t, []string{"Z", "A", "B", "C"}, g.AllNodes())
	assert.Equal(t, []core.Edge{{Target: "B", Similarity: 0.8}, {Target: "C", Similarity: 0.4}}, g.Neighbors("A"))
	assert.Nil(t, g.Neighbors("missing"))
}

func TestAddEdge_NoValidation(t *testing.T) {
	g := core.NewGraph(core.WithThreshold(0))
	g.AddEdge("A", "A", 0.5) // self-loop
	g.AddEdge("A", "B", 1.7) // out of range
	assert.True(t, g.HasEdge("A", "A"))
	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.7, w)
}

func TestEdgeWeight_Missing(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0.8)
	_, ok := g.EdgeWeight("B", "A")
	assert.False(t, ok)
	assert.False(t, g.HasEdge("X", "Y"))
}

func TestStats(t *testing.T) {
	g := core.NewGraph()
	g.AddBidirectionalEdge("A", "B", 0.8)
	g.AddBidirectionalEdge("B", "C", 0.9)
	g.AddNode("E")

	s := g.Stats()
	assert.Equal(t, 4, s.NumNodes)
	assert.Equal(t, 4, s.NumEdges)
	assert.InDelta(t, 1.0, s.AverageDegree, 1e-12)
	assert.Equal(t, 0.3, s.Threshold)

	assert.Zero(t, core.NewGraph().Stats().AverageDegree)

	var nilGraph *core.Graph
	assert.NotPanics(t, func() {
		s := nilGraph.Stats()
		assert.Zero(t, s.NumNodes)
		assert.Equal(t, core.DefaultThreshold, s.Threshold)
	})
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0.8)
	c := g.Clone()
	c.AddEdge("A", "C", 0.9)
	c.AddEdge("A", "B", 0.95)

	assert.False(t, g.HasEdge("A", "C"))
	w, _ := g.EdgeWeight("A", "B")
	assert.Equal(t, 0.8, w)
	assert.Equal(t, 2, c.EdgeCount())
}

func TestCost(t *testing.T) {
	c, ok := core.Cost(1)
	require.True(t, ok)
	assert.Zero(t, c)

	c, ok = core.Cost(0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.6931471805599453, c, 1e-12)

	_, ok = core.Cost(0)
	assert.False(t, ok)
	_, ok = core.Cost(-0.2)
	assert.False(t, ok)
}

func TestPathSimilarity(t *testing.T) {
	g := core.NewGraph()
	g.AddBidirectionalEdge("A", "B", 0.8)
	g.AddBidirectionalEdge("B", "C", 0.9)

	assert.InDelta(t, 0.72, g.PathSimilarity([]string{"A", "B", "C"}), 1e-12)
	assert.Equal(t, 1.0, g.PathSimilarity([]string{"A"}))
	assert.Equal(t, 1.0, g.PathSimilarity(nil))

	r := g.NewSearchResult([]string{"A", "B"}, 3, 2)
	assert.Equal(t, 2, r.PathLength)
	assert.InDelta(t, 0.8, r.TotalSimilarity, 1e-12)
	assert.Contains(t, r.String(), "path_length=2")
}

func TestPathCost(t *testing.T) {
	g := core.NewGraph(core.WithThreshold(0))
	g.AddBidirectionalEdge("A", "B", 0.8)
	g.AddBidirectionalEdge("B", "C", 0.9)
	g.AddEdge("C", "Z", 0)

	c, ok := g.PathCost([]string{"A", "B", "C"})
	require.True(t, ok)
	assert.InDelta(t, -math.Log(0.72), c, 1e-12)

	c, ok = g.PathCost([]string{"A"})
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = g.PathCost([]string{"A", "C"})
	assert.False(t, ok)
	_, ok = g.PathCost([]string{"C", "Z"})
	assert.False(t, ok)
}
