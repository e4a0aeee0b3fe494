package similarity

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for backend calls.
var (
	tracer = otel.Tracer("semgraph.similarity")
	meter  = otel.Meter("semgraph.similarity")
)

var (
	embedRequests metric.Int64Counter
	embedTexts    metric.Int64Counter
	cacheHits     metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		embedRequests, err = meter.Int64Counter(
			"similarity_embedding_requests_total",
			metric.WithDescription("Embedding requests sent to the backend"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		embedTexts, err = meter.Int64Counter(
			"similarity_embedding_texts_total",
			metric.WithDescription("Labels embedded by the backend"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheHits, err = meter.Int64Counter(
			"similarity_embedding_cache_hits_total",
			metric.WithDescription("Labels served from the embedding cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordEmbedMetrics records one backend round trip.
func recordEmbedMetrics(ctx context.Context, model string, texts, hits int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.Bool("success", success),
	)
	if texts > 0 {
		embedRequests.Add(ctx, 1, attrs)
		embedTexts.Add(ctx, int64(texts), attrs)
	}
	if hits > 0 {
		cacheHits.Add(ctx, int64(hits), metric.WithAttributes(attribute.String("model", model)))
	}
}

// startEmbedSpan creates a span for an embedding lookup.
func startEmbedSpan(ctx context.Context, model string, labels int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Embedding.embed",
		trace.WithAttributes(
			attribute.String("similarity.model", model),
			attribute.Int("similarity.labels", labels),
		),
	)
}
