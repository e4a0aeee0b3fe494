// Package hybrid trades optimality for latency: it tries a cheap
// path-seeking BFS first and only falls back to Dijkstra when BFS finds no
// path, or finds one longer than the depth limit.
//
// The limit is compared against the BFS path's node count (PathLength), not
// its edge count, so WithDepthLimit(3) accepts paths of at most three nodes.
// A BFS path under the limit is returned as is, even when a longer path has
// a higher similarity product.
package hybrid
