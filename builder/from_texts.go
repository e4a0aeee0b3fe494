package builder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/similarity"
)

// pair indexes two labels of the input slice.
type pair struct{ i, j int }

// FromTexts scores label pairs with sim and builds a graph of the pairs
// that reach the threshold.
//
// Without WithTopK every unordered pair is scored once and admitted pairs
// are joined in both directions. With WithTopK(k) every ordered pair is
// scored (backends may be asymmetric) and each label keeps its k strongest
// admitted neighbours, ties broken by input order; an edge kept by either
// endpoint is joined in both directions.
//
// Scoring runs in batches of WithBatchSize pairs on at most WithConcurrency
// goroutines. The first backend error cancels the remaining work and is
// returned; no partial graph is produced. A nil sim yields
// similarity.ErrNoBackend.
func FromTexts(ctx context.Context, texts []string, sim similarity.Similarity, opts ...BuilderOption) (*core.Graph, error) {
	if sim == nil {
		return nil, similarity.ErrNoBackend
	}
	cfg := newBuilderConfig(opts...)
	start := time.Now()

	pairs := candidatePairs(texts, cfg.topK > 0)
	ctx, span := startBuildSpan(ctx, len(texts), len(pairs))
	defer span.End()

	cfg.logger.Debug("scoring concept pairs",
		"concepts", len(texts), "pairs", len(pairs),
		"concurrency", cfg.concurrency, "batch_size", cfg.batchSize)

	scores, err := scorePairs(ctx, texts, pairs, sim, cfg)
	recordBuildMetrics(ctx, time.Since(start), len(pairs), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pair scoring failed")
		cfg.logger.Error("graph build failed", "concepts", len(texts), "error", err)
		return nil, err
	}

	g := core.NewGraph(core.WithThreshold(cfg.threshold))
	for _, t := range texts {
		g.AddNode(t)
	}
	if cfg.topK > 0 {
		addTopK(g, texts, pairs, scores, cfg)
	} else {
		for p, pr := range pairs {
			if scores[p] >= cfg.threshold {
				g.AddBidirectionalEdge(texts[pr.i], texts[pr.j], scores[p])
			}
		}
	}

	setBuildSpanResult(span, g.NodeCount(), g.EdgeCount())
	cfg.logger.Debug("graph built",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"threshold", cfg.threshold, "elapsed", time.Since(start))

	return g, nil
}

// candidatePairs lists the pairs to score in i-major order. Identical
// labels are never paired.
func candidatePairs(texts []string, ordered bool) []pair {
	n := len(texts)
	out := make([]pair, 0, n*n/2)
	var i, j int
	for i = 0; i < n; i++ {
		j = i + 1
		if ordered {
			j = 0
		}
		for ; j < n; j++ {
			if i == j || texts[i] == texts[j] {
				continue
			}
			out = append(out, pair{i, j})
		}
	}

	return out
}

// scorePairs fills one score per pair. Each goroutine writes a disjoint
// slice range, so no locking is needed.
func scorePairs(ctx context.Context, texts []string, pairs []pair, sim similarity.Similarity, cfg builderConfig) ([]float64, error) {
	scores := make([]float64, len(pairs))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)

	for lo := 0; lo < len(pairs); lo += cfg.batchSize {
		lo := lo
		hi := min(lo+cfg.batchSize, len(pairs))
		eg.Go(func() error {
			as := make([]string, 0, hi-lo)
			bs := make([]string, 0, hi-lo)
			for _, pr := range pairs[lo:hi] {
				as = append(as, texts[pr.i])
				bs = append(bs, texts[pr.j])
			}
			out, err := similarity.Batch(egctx, sim, as, bs)
			if err != nil {
				return fmt.Errorf("builder: scoring pairs %d..%d: %w", lo, hi-1, err)
			}
			if len(out) != hi-lo {
				return fmt.Errorf("builder: scoring pairs %d..%d: %w: got %d scores", lo, hi-1, similarity.ErrBatchLength, len(out))
			}
			copy(scores[lo:hi], out)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// addTopK keeps each label's k strongest admitted neighbours.
func addTopK(g *core.Graph, texts []string, pairs []pair, scores []float64, cfg builderConfig) {
	type candidate struct {
		j   int
		sim float64
	}
	var cands []candidate
	flush := func(i int) {
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].sim > cands[b].sim })
		for _, c := range cands[:min(cfg.topK, len(cands))] {
			g.AddBidirectionalEdge(texts[i], texts[c.j], c.sim)
		}
		cands = cands[:0]
	}

	cur := -1
	for p, pr := range pairs {
		if pr.i != cur {
			if cur >= 0 {
				flush(cur)
			}
			cur = pr.i
		}
		if scores[p] >= cfg.threshold {
			cands = append(cands, candidate{j: pr.j, sim: scores[p]})
		}
	}
	if cur >= 0 {
		flush(cur)
	}
}
