package bestfirst_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
)

// ExampleSearch compares uniform-cost search with both A* heuristics on a
// seven-move 8-puzzle: same cost, far fewer expansions.
func ExampleSearch() {
	p, _ := eightpuzzle.New(eightpuzzle.State{4, 1, 3, 7, 2, 5, 8, 0, 6})

	for _, v := range []core.Variant{core.ZeroHeuristic, eightpuzzle.MisplacedTiles, eightpuzzle.Manhattan} {
		res, err := bestfirst.Search[eightpuzzle.State, eightpuzzle.Move](p, v)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: cost %v, expanded %d\n", v, res.Cost(), res.Metrics.NodesExpanded)
	}
	// Output:
	// h0: cost 7, expanded 153
	// h1: cost 7, expanded 8
	// h2: cost 7, expanded 8
}
