package builder_test

import (
	"fmt"

	"github.com/katalvlaran/semgraph/builder"
)

// ExampleFromMatrix builds a graph from a precomputed similarity matrix.
func ExampleFromMatrix() {
	concepts := []string{"dog", "puppy", "car"}
	m := [][]float64{
		{1.0, 0.9, 0.1},
		{0.9, 1.0, 0.2},
		{0.1, 0.2, 1.0},
	}
	g, err := builder.FromMatrix(concepts, m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Stats().NumEdges, g.HasEdge("puppy", "dog"), g.HasEdge("dog", "car"))
	// Output:
	// 2 true false
}
