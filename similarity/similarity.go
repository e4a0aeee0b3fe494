package similarity

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrBatchLength indicates that Batch received slices of different length.
	ErrBatchLength = errors.New("similarity: batch inputs differ in length")

	// ErrNoBackend indicates that no Similarity was configured.
	ErrNoBackend = errors.New("similarity: no backend configured")

	// ErrBackend indicates that a remote backend could not produce a score.
	ErrBackend = errors.New("similarity: backend failure")
)

// Similarity scores a pair of labels. Implementations return a value in
// [0, 1] or an error when the backend is unreachable or misconfigured.
type Similarity interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Batcher is implemented by backends that score many pairs more cheaply
// than one at a time.
type Batcher interface {
	SimilarityBatch(ctx context.Context, as, bs []string) ([]float64, error)
}

// Func adapts a plain scoring function to Similarity.
type Func func(a, b string) float64

// Similarity implements Similarity. It never fails.
func (f Func) Similarity(_ context.Context, a, b string) (float64, error) {
	return f(a, b), nil
}

// Batch scores as[i] against bs[i] for every i. Backends implementing
// Batcher are used directly; a Batcher answering with the wrong number of
// scores is reported as ErrBatchLength.
func Batch(ctx context.Context, s Similarity, as, bs []string) ([]float64, error) {
	if s == nil {
		return nil, ErrNoBackend
	}
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrBatchLength, len(as), len(bs))
	}
	if b, ok := s.(Batcher); ok {
		out, err := b.SimilarityBatch(ctx, as, bs)
		if err != nil {
			return nil, err
		}
		if len(out) != len(as) {
			return nil, fmt.Errorf("%w: backend returned %d scores for %d pairs", ErrBatchLength, len(out), len(as))
		}

		return out, nil
	}

	out := make([]float64, len(as))
	var (
		i   int
		err error
	)
	for i = range as {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if out[i], err = s.Similarity(ctx, as[i], bs[i]); err != nil {
			return nil, fmt.Errorf("similarity: pair %d (%q, %q): %w", i, as[i], bs[i], err)
		}
	}

	return out, nil
}
