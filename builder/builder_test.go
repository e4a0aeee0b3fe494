package builder_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/semgraph/builder"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/dijkstra"
	"github.com/katalvlaran/semgraph/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = builder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

var hardware = []string{"CPU", "processor", "hardware", "RAM", "memory"}

func TestFromMatrix(t *testing.T) {
	concepts := []string{"a", "b", "c", "d"}
	m := [][]float64{
		{1, 0.8, 0.2, 0},
		{0.8, 1, 0.5, 0},
		{0.2, 0.5, 1, 0},
		{0, 0, 0, 1},
	}
	g, err := builder.FromMatrix(concepts, m)
	require.NoError(t, err)

	assert.Equal(t, concepts, g.AllNodes())
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("c", "b"))
	assert.False(t, g.HasEdge("a", "c"))
	assert.Empty(t, g.Neighbors("d"))
	assert.Equal(t, 4, g.EdgeCount())

	g, err = builder.FromMatrix(concepts, m, builder.WithThreshold(0.1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "c"))
	assert.Equal(t, 0.1, g.Threshold())
}

func TestFromMatrix_Shape(t *testing.T) {
	_, err := builder.FromMatrix([]string{"a", "b"}, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, builder.ErrMatrixShape)

	_, err = builder.FromMatrix([]string{"a", "b"}, [][]float64{{1, 0}, {0}})
	assert.ErrorIs(t, err, builder.ErrMatrixShape)

	g, err := builder.FromMatrix(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(20, builder.WithThreshold(0.1), builder.WithEdgeSimilarity(0.5))
	require.NoError(t, err)
	assert.Equal(t, 20, g.NodeCount())
	assert.Equal(t, 20*19, g.EdgeCount())

	_, path, ok := dijkstra.ShortestPath(g, "N0", "N19")
	require.True(t, ok)
	assert.NotEmpty(t, path)

	g, err = builder.Complete(3, builder.WithIDScheme(builder.PrefixIDFn("topic-")))
	require.NoError(t, err)
	assert.Equal(t, []string{"topic-0", "topic-1", "topic-2"}, g.AllNodes())

	// Below the threshold: nodes only.
	g, err = builder.Complete(3, builder.WithEdgeSimilarity(0.1))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFromTexts_AllPairs(t *testing.T) {
	g, err := builder.FromTexts(context.Background(), hardware, similarity.DefaultDomainTable(), quiet)
	require.NoError(t, err)

	assert.Equal(t, hardware, g.AllNodes())
	assert.Equal(t, 10, g.EdgeCount())
	w, ok := g.EdgeWeight("hardware", "RAM")
	require.True(t, ok)
	assert.Equal(t, 0.7, w)
	assert.False(t, g.HasEdge("CPU", "memory"))
}

func TestFromTexts_TopK(t *testing.T) {
	g, err := builder.FromTexts(context.Background(), hardware, similarity.DefaultDomainTable(),
		builder.WithTopK(1), quiet)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("CPU", "processor"))
	assert.True(t, g.HasEdge("hardware", "processor"))
	assert.True(t, g.HasEdge("RAM", "memory"))
	assert.False(t, g.HasEdge("CPU", "hardware"))
	assert.Equal(t, 6, g.EdgeCount())
}

func TestFromTexts_ConcurrencyDoesNotChangeResult(t *testing.T) {
	words := []string{"graph", "search", "graph search", "path", "shortest path", "search path", "tree"}
	sim := similarity.WordOverlap{}

	serial, err := builder.FromTexts(context.Background(), words, sim,
		builder.WithConcurrency(1), builder.WithBatchSize(1), builder.WithThreshold(0.2), quiet)
	require.NoError(t, err)
	parallel, err := builder.FromTexts(context.Background(), words, sim,
		builder.WithConcurrency(8), builder.WithBatchSize(2), builder.WithThreshold(0.2), quiet)
	require.NoError(t, err)

	assert.Equal(t, serial.Record(), parallel.Record())
	assert.Positive(t, serial.EdgeCount())
}

func TestFromTexts_DuplicateLabelsNotPaired(t *testing.T) {
	var calls atomic.Int32
	sim := similarity.Func(func(a, b string) float64 {
		calls.Add(1)
		return 1
	})
	g, err := builder.FromTexts(context.Background(), []string{"x", "x", "y"}, sim, quiet)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.False(t, g.HasEdge("x", "x"))
	assert.Equal(t, int32(2), calls.Load())
}

type brokenBackend struct{}

func (brokenBackend) Similarity(context.Context, string, string) (float64, error) {
	return 0, errors.New("connection refused")
}

func TestFromTexts_BackendErrorAborts(t *testing.T) {
	g, err := builder.FromTexts(context.Background(), hardware, brokenBackend{}, quiet)
	assert.Nil(t, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = builder.FromTexts(context.Background(), hardware, nil, quiet)
	assert.ErrorIs(t, err, similarity.ErrNoBackend)
}

func TestFromTexts_LogsOnlyAtDebug(t *testing.T) {
	var info, debug bytes.Buffer
	infoLog := slog.New(slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}))
	debugLog := slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := builder.FromTexts(context.Background(), hardware, similarity.DefaultDomainTable(), builder.WithLogger(infoLog))
	require.NoError(t, err)
	assert.Empty(t, info.String())

	_, err = builder.FromTexts(context.Background(), hardware, similarity.DefaultDomainTable(), builder.WithLogger(debugLog))
	require.NoError(t, err)
	assert.Contains(t, debug.String(), "graph built")
}

// shortBatcher scores only the first pair of every batch.
type shortBatcher struct{}

func (shortBatcher) Similarity(context.Context, string, string) (float64, error) {
	return 0.9, nil
}

func (shortBatcher) SimilarityBatch(context.Context, []string, []string) ([]float64, error) {
	return []float64{0.9}, nil
}

func TestFromTexts_BatchLengthMismatchAborts(t *testing.T) {
	g, err := builder.FromTexts(context.Background(), []string{"a", "b", "c"}, shortBatcher{}, quiet)
	assert.ErrorIs(t, err, similarity.ErrBatchLength)
	assert.Nil(t, g)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithTopK(-1) })
	assert.Panics(t, func() { builder.WithConcurrency(0) })
	assert.Panics(t, func() { builder.WithBatchSize(0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "N7", builder.DefaultIDFn(7))
	assert.Equal(t, "c12", builder.PrefixIDFn("c")(12))
	assert.Equal(t, "3", builder.PrefixIDFn("")(3))
}

func TestFromTexts_ProducesSearchableGraph(t *testing.T) {
	g, err := builder.FromTexts(context.Background(), hardware, similarity.DefaultDomainTable(), quiet)
	require.NoError(t, err)
	_, path, ok := dijkstra.ShortestPath(g, "CPU", "memory")
	require.True(t, ok)
	assert.Equal(t, []string{"CPU", "processor", "hardware", "RAM", "memory"}, path)
	assert.IsType(t, &core.Graph{}, g)
}
