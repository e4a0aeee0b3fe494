package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/semgraph/bfs"
	"github.com/katalvlaran/semgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0.9)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.BFS(g, "v0")
	}
}

// BenchmarkSearch_BinaryTree seeks the deepest leaf of a complete binary tree.
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10 // 1023 nodes
	nodeCount := (1 << depth) - 1

	g := core.NewGraph()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		g.AddEdge(p, fmt.Sprintf("%d", 2*i), 0.8)
		g.AddEdge(p, fmt.Sprintf("%d", 2*i+1), 0.6)
	}
	goal := fmt.Sprintf("%d", nodeCount)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, "1", goal)
	}
}
