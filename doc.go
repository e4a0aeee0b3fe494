// Package semgraph finds the most semantically coherent chain of concepts
// between two labels in a similarity graph.
//
// What is semgraph?
//
//	Concepts are nodes. A directed edge A→B carries a similarity in [0,1]
//	and exists only when that similarity reaches the graph threshold.
//	Path quality is the product of edge similarities; cost-based searches
//	minimise Σ −ln(sim), which is the same ordering.
//
// Under the hood, everything is organized into small packages:
//
//	core/       — Graph, Edge, SearchResult, cost transform & JSON/YAML persistence
//	similarity/ — scoring backends: vocabulary table, word/char overlap, embeddings
//	builder/    — graph constructors: FromMatrix, FromTexts, Complete
//	bfs/ dfs/   — unweighted traversal; bfs.Search returns the fewest-hop path
//	dijkstra/   — single-pair most-similar path with early exit
//	astar/      — Dijkstra plus a caller-supplied heuristic
//	matrix/     — Floyd–Warshall all-pairs with next-hop reconstruction
//	hybrid/     — BFS when the answer is short, Dijkstra otherwise
//	cmd/semgraph — the command-line front end
//
// Quick ASCII example:
//
//	CPU ──0.9── processor ──0.8── hardware ──0.7── RAM ──0.9── memory
//	 └─────────────0.7─────────────┘
//
//	BFS prefers CPU→hardware (fewer hops); Dijkstra goes through processor
//	because 0.9·0.8 > 0.7.
//
// Graphs carry no locks. Callers that mutate while searching should search
// a Clone.
package semgraph
