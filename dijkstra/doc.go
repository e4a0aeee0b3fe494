// Package dijkstra finds the most-similar path between two concepts of a
// core.Graph.
//
// Similarity is a multiplicative reward, so every admitted edge is turned
// into an additive cost with core.Cost (-ln(similarity)): a perfect match
// costs 0 and weaker links cost more. Minimizing the summed cost maximizes
// the product of similarities along the path. Edges with similarity <= 0
// have no finite cost and are skipped, even when the min-similarity filter
// would admit them.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one heap push per successful relaxation.
//   - Space: O(V + E) for distances, predecessors and the lazy heap.
//
// Implementation notes:
//
//   - Lazy decrease-key: improved distances are pushed again and stale
//     entries (popped distance != best known distance) are discarded.
//   - The search stops as soon as the goal is popped.
//   - An absent start or goal, or a goal that no admitted edge reaches, is
//     reported as ok == false. None of these are errors.
package dijkstra
