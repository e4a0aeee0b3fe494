package builder

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for graph construction.
var (
	tracer = otel.Tracer("semgraph.builder")
	meter  = otel.Meter("semgraph.builder")
)

var (
	buildLatency metric.Float64Histogram
	pairsScored  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"builder_build_duration_seconds",
			metric.WithDescription("Duration of FromTexts builds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pairsScored, err = meter.Int64Counter(
			"builder_pairs_scored_total",
			metric.WithDescription("Concept pairs scored by the similarity backend"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordBuildMetrics records metrics for one FromTexts call.
func recordBuildMetrics(ctx context.Context, duration time.Duration, pairs int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	buildLatency.Record(ctx, duration.Seconds(), attrs)
	pairsScored.Add(ctx, int64(pairs), attrs)
}

// startBuildSpan creates a span for a FromTexts call.
func startBuildSpan(ctx context.Context, concepts, pairs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "builder.FromTexts",
		trace.WithAttributes(
			attribute.Int("builder.concepts", concepts),
			attribute.Int("builder.pairs", pairs),
		),
	)
}

// setBuildSpanResult sets the result attributes on a build span.
func setBuildSpanResult(span trace.Span, nodes, edges int) {
	span.SetAttributes(
		attribute.Int("graph.node_count", nodes),
		attribute.Int("graph.edge_count", edges),
	)
}
