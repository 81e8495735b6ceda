package bestfirst_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
)

// benchPuzzle needs 31 moves, the most any 8-puzzle instance needs.
var benchPuzzle = eightpuzzle.State{8, 6, 7, 2, 5, 4, 3, 0, 1}

func BenchmarkAStar_Manhattan(b *testing.B) {
	p, err := eightpuzzle.New(benchPuzzle)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.AStar[eightpuzzle.State, eightpuzzle.Move](p, eightpuzzle.Manhattan)
	}
}

func BenchmarkAStar_MisplacedTiles(b *testing.B) {
	p, err := eightpuzzle.New(benchPuzzle)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.AStar[eightpuzzle.State, eightpuzzle.Move](p, eightpuzzle.MisplacedTiles)
	}
}
