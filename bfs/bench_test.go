package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/internal/testproblem"
)

// BenchmarkSearch_Chain measures BFS on a linear chain of N+1 vertices.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	g := testproblem.New("v0", fmt.Sprintf("v%d", N))
	for i := 0; i < N; i++ {
		g.Edge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search[string, string](g)
	}
}

// BenchmarkSearch_EightPuzzle measures BFS on a seven-move 8-puzzle.
func BenchmarkSearch_EightPuzzle(b *testing.B) {
	p, err := eightpuzzle.New(eightpuzzle.State{4, 1, 3, 7, 2, 5, 8, 0, 6})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search[eightpuzzle.State, eightpuzzle.Move](p)
	}
}
