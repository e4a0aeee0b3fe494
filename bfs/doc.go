// Package bfs provides breadth-first exploration over a core.Graph.
//
// BFS returns the level-order visitation from a start node, together with
// depth and parent links. Search is the path-seeking variant: it carries an
// explicit path and running similarity product per queue entry and stops as
// soon as the goal is dequeued.
//
// Edge filtering
//
//	An edge is followed only if similarity >= MinSimilarity. When the caller
//	does not set WithMinSimilarity the graph's own admission threshold is
//	used. The filter never removes stored edges; it only limits which are
//	considered for this call. BFS does not apply the cost transform, so an
//	edge of similarity 0 is still traversable when the filter admits it.
//
// Depth limit
//
//	WithMaxDepth(d): a node at depth d is recorded but its outgoing edges are
//	not expanded. d == 0 visits only the start node. Default: no limit.
//
// Determinism
//
//	BFS expands neighbors in adjacency (insertion) order. Search expands each
//	node's neighbors by descending similarity, ties kept in insertion order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:    Time O(V + E), Memory O(V)
//   - Search: Time O(V + E log d) for the per-node sort, Memory O(V * L) for
//     the per-entry path copies (L = path length)
//
// Absent start (or goal, for Search) is a "no path" outcome, not an error.
package bfs
