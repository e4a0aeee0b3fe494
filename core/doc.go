// Package core provides the semantic Graph store: a set of string node
// labels plus, for every node, an ordered sequence of outgoing weighted
// edges whose weight is a similarity score.
//
// The Graph G = (V,E) carries a single configuration scalar, the admission
// threshold (WithThreshold, default 0.3):
//
//   - AddEdge stores an edge only if similarity >= threshold.
//   - Re-adding an existing (from,to) pair never duplicates it; the stored
//     similarity becomes max(existing, new).
//   - AddBidirectionalEdge inserts both directions independently, so the two
//     directions may end up with different weights.
//   - Adding an edge auto-creates both endpoints.
//
// Nothing here validates similarity values: self-loops and values outside
// [0,1] are accepted verbatim and are the caller's responsibility.
//
// Search algorithms (packages bfs, dfs, dijkstra, astar, matrix, hybrid)
// borrow a *Graph read-only. The Graph performs no locking; concurrent
// mutation while an algorithm iterates adjacency is undefined. Serialize
// access externally or hand each goroutine its own Clone.
//
// Complexity:
//
//	AddNode, AddEdge*        O(1) amortized (*O(deg) duplicate scan)
//	Neighbors                O(1)
//	EdgeWeight, HasEdge      O(deg(source))
//	AllNodes, AllEdges       O(V+E)
//
// Persistence: Record/FromRecord convert to and from the structured record
// {nodes, edges, similarity_threshold}; WriteJSON/ReadJSON and
// WriteYAML/ReadYAML encode it.
package core
