// Package matrix provides a row-major Dense matrix and the all-pairs
// Floyd–Warshall search built on it.
//
// FloydWarshall maps every node of a core.Graph to a row/column index (in
// graph insertion order), seeds the distance matrix with -ln(similarity)
// costs of admitted edges, and relaxes through every intermediate node in a
// fixed k → i → j order. A parallel next-hop table records the first node to
// move to from i en route to j, which Result.Path walks to rebuild a path.
//
// The routine is O(V³) time and O(V²) memory. It is meant for small graphs:
// WithMaxNodes lets callers refuse larger inputs with ErrTooManyNodes.
package matrix
