package ids_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/ids"
)

// ExampleSearch reports every pass of iterative deepening on a one-move
// 8-puzzle.
func ExampleSearch() {
	p, _ := eightpuzzle.New(eightpuzzle.State{1, 2, 3, 4, 5, 0, 7, 8, 6})

	res, err := ids.Search[eightpuzzle.State, eightpuzzle.Move](p,
		ids.WithOnPass(func(limit int, m core.Metrics) {
			fmt.Printf("limit %d: generated %d, expanded %d\n", limit, m.NodesGenerated, m.NodesExpanded)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solution.Actions())
	// Output:
	// limit 0: generated 1, expanded 1
	// limit 1: generated 4, expanded 3
	// [Move Down]
}
