package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/semgraph/internal/logging"
)

const (
	// DefaultBaseURL is LM Studio's local OpenAI-compatible endpoint.
	DefaultBaseURL = "http://localhost:1234/v1"

	// DefaultModel lets LM Studio answer with whichever model is loaded.
	DefaultModel = "local-model"
)

// EmbeddingOption configures an Embedding backend.
type EmbeddingOption func(*Embedding)

// WithAPIKey sets the bearer token. Local servers usually ignore it.
func WithAPIKey(key string) EmbeddingOption {
	return func(e *Embedding) { e.apiKey = key }
}

// WithRateLimit caps backend requests at perSecond with the given burst.
// Panics if perSecond <= 0 or burst < 1.
func WithRateLimit(perSecond float64, burst int) EmbeddingOption {
	if perSecond <= 0 || burst < 1 {
		panic(fmt.Sprintf("similarity: WithRateLimit(%v, %d): need perSecond > 0 and burst >= 1", perSecond, burst))
	}
	return func(e *Embedding) { e.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// WithLogger sets the logger. The default drops everything.
func WithLogger(l *slog.Logger) EmbeddingOption {
	return func(e *Embedding) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHTTPClient overrides the transport used by the OpenAI client.
func WithHTTPClient(c *http.Client) EmbeddingOption {
	return func(e *Embedding) { e.httpClient = c }
}

// Embedding scores labels by the cosine similarity of their embedding
// vectors, mapped to [0, 1] as (cos + 1) / 2. Zero-length or mismatched
// vectors score 0.
//
// Vectors are cached per label for the lifetime of the backend. The client
// is created on first use. Embedding is safe for concurrent use.
type Embedding struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger

	once   sync.Once
	client *openai.Client

	mu    sync.Mutex
	cache map[string][]float32
}

// NewEmbedding returns a backend talking to baseURL with model. Empty
// values fall back to DefaultBaseURL and DefaultModel.
func NewEmbedding(baseURL, model string, opts ...EmbeddingOption) *Embedding {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	e := &Embedding{
		baseURL: baseURL,
		model:   model,
		logger:  logging.Discard(),
		cache:   make(map[string][]float32),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Embedding) lazyClient() *openai.Client {
	e.once.Do(func() {
		cfg := openai.DefaultConfig(e.apiKey)
		cfg.BaseURL = e.baseURL
		if e.httpClient != nil {
			cfg.HTTPClient = e.httpClient
		}
		e.client = openai.NewClientWithConfig(cfg)
		e.logger.Debug("embedding client initialized", "base_url", e.baseURL, "model", e.model)
	})

	return e.client
}

// Similarity implements Similarity.
func (e *Embedding) Similarity(ctx context.Context, a, b string) (float64, error) {
	vecs, err := e.embed(ctx, []string{a, b})
	if err != nil {
		return 0, err
	}

	return Cosine01(vecs[a], vecs[b]), nil
}

// SimilarityBatch implements Batcher. All distinct labels are embedded in
// one request.
func (e *Embedding) SimilarityBatch(ctx context.Context, as, bs []string) ([]float64, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrBatchLength, len(as), len(bs))
	}
	all := make([]string, 0, len(as)+len(bs))
	all = append(all, as...)
	all = append(all, bs...)
	vecs, err := e.embed(ctx, all)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(as))
	for i := range as {
		out[i] = Cosine01(vecs[as[i]], vecs[bs[i]])
	}

	return out, nil
}

// embed returns a vector for every label, fetching uncached ones in a
// single request.
func (e *Embedding) embed(ctx context.Context, labels []string) (map[string][]float32, error) {
	ctx, span := startEmbedSpan(ctx, e.model, len(labels))
	defer span.End()

	out := make(map[string][]float32, len(labels))
	var missing []string
	e.mu.Lock()
	for _, l := range labels {
		if _, done := out[l]; done {
			continue
		}
		if v, ok := e.cache[l]; ok {
			out[l] = v
			continue
		}
		out[l] = nil
		missing = append(missing, l)
	}
	e.mu.Unlock()
	hits := len(out) - len(missing)

	if len(missing) == 0 {
		recordEmbedMetrics(ctx, e.model, 0, hits, true)
		return out, nil
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate limiter")
			return nil, err
		}
	}

	resp, err := e.lazyClient().CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: missing,
		Model: openai.EmbeddingModel(e.model),
	})
	if err == nil && len(resp.Data) != len(missing) {
		err = fmt.Errorf("got %d embeddings for %d labels", len(resp.Data), len(missing))
	}
	if err != nil {
		recordEmbedMetrics(ctx, e.model, len(missing), hits, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "embeddings request failed")
		e.logger.Error("embeddings request failed", "base_url", e.baseURL, "model", e.model, "error", err)
		return nil, fmt.Errorf("%w: embeddings from %s: %w", ErrBackend, e.baseURL, err)
	}
	recordEmbedMetrics(ctx, e.model, len(missing), hits, true)
	span.SetAttributes(attribute.Int("similarity.fetched", len(missing)))

	e.mu.Lock()
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(missing) {
			continue
		}
		e.cache[missing[d.Index]] = d.Embedding
		out[missing[d.Index]] = d.Embedding
	}
	e.mu.Unlock()
	e.logger.Debug("embedded labels", "count", len(missing), "cached", hits)

	return out, nil
}

// Cosine01 returns the cosine similarity of a and b mapped to [0, 1].
// Vectors of different length or zero norm score 0.
func Cosine01(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	c := dot / (math.Sqrt(na) * math.Sqrt(nb))

	return (c + 1) / 2
}
