package core

import "errors"

// DefaultThreshold is the admission threshold used when none is configured.
const DefaultThreshold = 0.3

// ErrBadRecord indicates a persisted graph record that cannot be restored.
var ErrBadRecord = errors.New("core: malformed graph record")

// Edge is one outgoing adjacency entry: the edge source is the node whose
// adjacency holds it.
type Edge struct {
	// Target is the destination node label.
	Target string

	// Similarity is the edge weight, nominally in [0,1].
	Similarity float64
}

// WeightedEdge is a fully-qualified directed edge, as returned by AllEdges.
type WeightedEdge struct {
	Source     string
	Target     string
	Similarity float64
}

// Stats is the read-only summary returned by Graph.Stats.
type Stats struct {
	NumNodes      int     `json:"num_nodes" yaml:"num_nodes"`
	NumEdges      int     `json:"num_edges" yaml:"num_edges"` // directed entries
	AverageDegree float64 `json:"average_degree" yaml:"average_degree"`
	Threshold     float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithThreshold sets the admission threshold for AddEdge.
func WithThreshold(t float64) GraphOption {
	return func(g *Graph) { g.threshold = t }
}

// Graph is the semantic graph store.
//
// nodes is the membership set, order keeps first-insertion order so that
// AllNodes (and everything built on it) is deterministic.
type Graph struct {
	threshold float64

	nodes     map[string]struct{}
	order     []string
	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph creates an empty Graph. By default the threshold is DefaultThreshold.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		threshold: DefaultThreshold,
		nodes:     make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	return g
}
