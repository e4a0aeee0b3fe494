package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/semgraph/similarity"
)

// NewBackend builds the similarity backend described by b.
func NewBackend(b Backend, logger *slog.Logger) (similarity.Similarity, error) {
	switch b.Kind {
	case KindTable:
		return similarity.DefaultDomainTable(), nil
	case KindWord:
		return similarity.WordOverlap{}, nil
	case KindChar:
		return similarity.CharOverlap{}, nil
	case KindEmbedding:
		opts := []similarity.EmbeddingOption{
			similarity.WithAPIKey(b.APIKey),
			similarity.WithLogger(logger),
		}
		if b.RatePerSecond > 0 {
			opts = append(opts, similarity.WithRateLimit(b.RatePerSecond, max(b.Burst, 1)))
		}
		return similarity.NewEmbedding(b.BaseURL, b.Model, opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend kind %q", ErrInvalid, b.Kind)
	}
}
