// Package config loads the semgraph YAML configuration.
//
// A missing file is not an error: Default() is used as is. Values present in
// the file override the defaults field by field. The SEMGRAPH_API_KEY
// environment variable overrides backend.api_key so secrets can stay out of
// the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/hybrid"
)

// EnvAPIKey names the environment variable that overrides backend.api_key.
const EnvAPIKey = "SEMGRAPH_API_KEY"

// ErrInvalid wraps every validation or decoding failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Backend kinds accepted by Backend.Kind.
const (
	KindTable     = "table"
	KindWord      = "word"
	KindChar      = "char"
	KindEmbedding = "embedding"
)

// Config is the root of the YAML document.
type Config struct {
	SimilarityThreshold   float64  `yaml:"similarity_threshold" validate:"gte=0,lte=1"`
	MinSimilarity         *float64 `yaml:"min_similarity" validate:"omitempty,gte=0,lte=1"`
	BFSDepthLimit         int      `yaml:"bfs_depth_limit" validate:"gte=0"`
	MaxDepth              int      `yaml:"max_depth" validate:"gte=-1"`
	FloydWarshallMaxNodes int      `yaml:"floyd_warshall_max_nodes" validate:"gte=0"`
	TopK                  int      `yaml:"top_k" validate:"gte=0"`
	Log                   Log      `yaml:"log"`
	Backend               Backend  `yaml:"backend"`
}

// Log configures internal/logging.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Backend selects and tunes the similarity backend used by `semgraph build`.
type Backend struct {
	Kind          string  `yaml:"kind" validate:"oneof=table word char embedding"`
	BaseURL       string  `yaml:"base_url" validate:"omitempty,url"`
	Model         string  `yaml:"model"`
	APIKey        string  `yaml:"api_key"`
	Concurrency   int     `yaml:"concurrency" validate:"gte=1,lte=64"`
	BatchSize     int     `yaml:"batch_size" validate:"gte=1"`
	RatePerSecond float64 `yaml:"rate_per_second" validate:"gte=0"`
	Burst         int     `yaml:"burst" validate:"gte=1"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SimilarityThreshold:   core.DefaultThreshold,
		BFSDepthLimit:         hybrid.DefaultDepthLimit,
		MaxDepth:              -1,
		FloydWarshallMaxNodes: 200,
		Log:                   Log{Level: "info", Format: "text"},
		Backend: Backend{
			Kind:        KindWord,
			Concurrency: 4,
			BatchSize:   32,
			Burst:       1,
		},
	}
}

var validate = validator.New()

// Load reads path over Default(), applies the environment override and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.Backend.APIKey = key
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// EffectiveMinSimilarity is MinSimilarity when set, otherwise the
// admission threshold.
func (c Config) EffectiveMinSimilarity() float64 {
	if c.MinSimilarity != nil {
		return *c.MinSimilarity
	}

	return c.SimilarityThreshold
}
