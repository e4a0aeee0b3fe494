package builder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/internal/logging"
)

// Defaults applied by newBuilderConfig.
const (
	DefaultConcurrency = 4
	DefaultBatchSize   = 32
	DefaultEdgeSim     = 1.0
)

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved option set shared by all constructors.
type builderConfig struct {
	threshold   float64
	topK        int
	concurrency int
	batchSize   int
	edgeSim     float64
	idFn        IDFn
	logger      *slog.Logger
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		threshold:   core.DefaultThreshold,
		concurrency: DefaultConcurrency,
		batchSize:   DefaultBatchSize,
		edgeSim:     DefaultEdgeSim,
		idFn:        DefaultIDFn,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreshold sets the graph's admission threshold. Panics on NaN.
func WithThreshold(t float64) BuilderOption {
	if math.IsNaN(t) {
		panic("builder: WithThreshold(NaN)")
	}
	return func(c *builderConfig) { c.threshold = t }
}

// WithTopK keeps at most k strongest neighbours per concept in FromTexts.
// 0 disables pruning. Panics if k < 0.
func WithTopK(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithTopK(%d): k cannot be negative", k))
	}
	return func(c *builderConfig) { c.topK = k }
}

// WithConcurrency bounds parallel backend calls in FromTexts. Panics if n < 1.
func WithConcurrency(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithConcurrency(%d): need at least 1", n))
	}
	return func(c *builderConfig) { c.concurrency = n }
}

// WithBatchSize sets how many pairs go to the backend per call. Panics if n < 1.
func WithBatchSize(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithBatchSize(%d): need at least 1", n))
	}
	return func(c *builderConfig) { c.batchSize = n }
}

// WithEdgeSimilarity sets the constant similarity used by Complete.
// Panics on NaN.
func WithEdgeSimilarity(s float64) BuilderOption {
	if math.IsNaN(s) {
		panic("builder: WithEdgeSimilarity(NaN)")
	}
	return func(c *builderConfig) { c.edgeSim = s }
}

// WithIDScheme sets the label generator used by Complete. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithLogger sets the logger used for progress messages. The default
// drops everything. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
