package similarity

import "context"

// Table is a hand-written concept → related-concept → score mapping. A
// label always scores 1 against itself. Other pairs take the larger of the
// two directional entries, or 0 when neither exists.
type Table map[string]map[string]float64

// Similarity implements Similarity.
func (t Table) Similarity(_ context.Context, a, b string) (float64, error) {
	return t.Score(a, b), nil
}

// Score is Similarity without the context.
func (t Table) Score(a, b string) float64 {
	if a == b {
		return 1
	}

	return max(t[a][b], t[b][a])
}

// Concepts lists every label that appears in the table, as key or value,
// in no particular order.
func (t Table) Concepts() []string {
	seen := make(map[string]struct{}, len(t))
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for a, row := range t {
		add(a)
		for b := range row {
			add(b)
		}
	}

	return out
}

// DefaultDomainTable returns a small computer-hardware vocabulary, handy
// for demos and tests.
func DefaultDomainTable() Table {
	return Table{
		"CPU":       {"processor": 0.9, "hardware": 0.7, "silicon": 0.5},
		"processor": {"CPU": 0.9, "hardware": 0.8, "logic gate": 0.4},
		"hardware":  {"CPU": 0.7, "processor": 0.8, "RAM": 0.6, "monitor": 0.4},
		"RAM":       {"memory": 0.9, "hardware": 0.7},
		"memory":    {"RAM": 0.9, "storage": 0.7},
		"storage":   {"SSD": 0.9, "HDD": 0.8, "memory": 0.7},
		"SSD":       {"storage": 0.9, "hardware": 0.6},
		"monitor":   {"display": 0.9, "hardware": 0.5},
		"display":   {"monitor": 0.9, "pixels": 0.7},
		"GPU":       {"graphics": 0.9, "hardware": 0.7, "processor": 0.6},
	}
}
