// Package dfs implements depth-first traversal on core.Graph using an
// explicit stack, so pathological graphs cannot exhaust the goroutine stack.
//
// Neighbors are pushed in reverse adjacency order, which makes the pop order
// match adjacency (first-inserted-first-visited) order. A node already
// visited is never re-expanded.
//
// Options mirror package bfs:
//
//   - WithMaxDepth(d)        record nodes at depth d but do not expand them.
//   - WithMinSimilarity(s)   follow only edges with similarity >= s; defaults
//     to the graph's admission threshold.
//
// Complexity: Time O(V + E), Memory O(V + E) for the stack (a node may be
// pushed once per incoming edge before it is first popped).
package dfs
