// Package astar implements A* search on core.Graph.
//
// A* uses the same -ln(similarity) cost transform and the same rule that
// edges with similarity <= 0 are impassable. A caller-supplied Heuristic
// estimates the remaining cost from a node to the goal; without one the
// zero heuristic is used and A* expands exactly like Dijkstra.
//
// Open-set entries are ordered lexicographically by (f = g + h, g, node).
// Ties on estimated total cost go to the entry with the smaller cost so far,
// and remaining ties to the smaller node identifier, so results never depend
// on map iteration or insertion order.
//
// Admissibility (h never overestimates) is the caller's responsibility. An
// inadmissible heuristic may return a suboptimal path with no error. A
// heuristic that returns NaN or -Inf is treated as +Inf for that node.
package astar
