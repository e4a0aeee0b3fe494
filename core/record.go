package core

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// EdgeRecord is the persisted form of one directed edge.
type EdgeRecord struct {
	Source     string  `json:"source" yaml:"source"`
	Target     string  `json:"target" yaml:"target"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// Record is the structured document a Graph serializes to.
// A nil SimilarityThreshold restores with DefaultThreshold.
type Record struct {
	Nodes               []string     `json:"nodes" yaml:"nodes"`
	Edges               []EdgeRecord `json:"edges" yaml:"edges"`
	SimilarityThreshold *float64     `json:"similarity_threshold,omitempty" yaml:"similarity_threshold,omitempty"`
}

// Record captures every node, every admitted edge and the threshold.
// Complexity: O(V+E)
func (g *Graph) Record() Record {
	t := g.threshold
	rec := Record{
		Nodes:               g.AllNodes(),
		Edges:               make([]EdgeRecord, 0, g.edgeCount),
		SimilarityThreshold: &t,
	}
	var e WeightedEdge
	for _, e = range g.AllEdges() {
		rec.Edges = append(rec.Edges, EdgeRecord(e))
	}

	return rec
}

// Validate reports ErrBadRecord when the threshold or any similarity is
// NaN or infinite, or when an edge has an empty endpoint. AddEdge accepts
// such values unchecked, so a graph holding them cannot be persisted.
func (rec Record) Validate() error {
	if t := rec.SimilarityThreshold; t != nil && !finite(*t) {
		return fmt.Errorf("%w: threshold %v is not finite", ErrBadRecord, *t)
	}
	var i int
	var e EdgeRecord
	for i, e = range rec.Edges {
		if e.Source == "" || e.Target == "" {
			return fmt.Errorf("%w: edge %d has an empty endpoint", ErrBadRecord, i)
		}
		if !finite(e.Similarity) {
			return fmt.Errorf("%w: edge %d (%s→%s) similarity %v is not finite",
				ErrBadRecord, i, e.Source, e.Target, e.Similarity)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FromRecord restores a Graph. Nodes are added first so isolated nodes
// survive; edges then pass through AddEdge, so the admission and max-merge
// rules apply exactly as on first insertion.
//
// Errors:
//   - ErrBadRecord if Validate fails.
func FromRecord(rec Record) (*Graph, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	t := DefaultThreshold
	if rec.SimilarityThreshold != nil {
		t = *rec.SimilarityThreshold
	}

	g := NewGraph(WithThreshold(t))
	var id string
	for _, id = range rec.Nodes {
		g.AddNode(id)
	}
	var e EdgeRecord
	for _, e = range rec.Edges {
		g.AddEdge(e.Source, e.Target, e.Similarity)
	}

	return g, nil
}

// WriteJSON encodes the graph record as indented JSON. Nothing is written
// when the record fails Validate.
func (g *Graph) WriteJSON(w io.Writer) error {
	rec := g.Record()
	if err := rec.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("core: encode json: %w", err)
	}

	return nil
}

// ReadJSON decodes a JSON graph record and restores it.
func ReadJSON(r io.Reader) (*Graph, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrBadRecord, err)
	}

	return FromRecord(rec)
}

// WriteYAML encodes the graph record as YAML. Nothing is written when the
// record fails Validate.
func (g *Graph) WriteYAML(w io.Writer) error {
	rec := g.Record()
	if err := rec.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("core: encode yaml: %w", err)
	}

	return enc.Close()
}

// ReadYAML decodes a YAML graph record and restores it.
func ReadYAML(r io.Reader) (*Graph, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrBadRecord, err)
	}

	return FromRecord(rec)
}
