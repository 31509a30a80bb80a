package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/meshseg/bfs"
)

// BenchmarkSearch_Chain measures BFS on a linear chain of N vertices.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	edges := make([][2]int, 0, N-1)
	for i := 0; i+1 < N; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := undirected(N, edges)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0)
	}
}

// BenchmarkSearch_RandomSparse runs BFS on a random graph with average degree 6.
func BenchmarkSearch_RandomSparse(b *testing.B) {
	const N = 5000
	rng := rand.New(rand.NewSource(42))
	edges := make([][2]int, 0, 3*N)
	for i := 0; i < 3*N; i++ {
		edges = append(edges, [2]int{rng.Intn(N), rng.Intn(N)})
	}
	g := undirected(N, edges)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0, bfs.WithTarget(N-1))
	}
}
