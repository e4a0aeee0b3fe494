// Package builder constructs semantic graphs.
//
// Three constructors cover the usual sources of similarity:
//
//   - FromMatrix   a precomputed n×n similarity matrix over n concepts.
//   - FromTexts    a similarity.Similarity backend scored over every pair of
//     labels, in parallel, with optional top-k pruning per concept.
//   - Complete     K_n with a constant similarity, for benchmarks and tests.
//
// Every constructor adds all nodes first, in input order, so isolated
// concepts are kept and node order is deterministic. Edges are added in both
// directions. The graph's admission threshold (WithThreshold, default
// core.DefaultThreshold) decides which pairs become edges.
//
// Option constructors validate their arguments and panic on meaningless
// input. Constructors themselves return sentinel errors and never panic.
package builder
