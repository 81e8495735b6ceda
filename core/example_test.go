package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/wgc"
)

// ExampleNode_Path builds a two-step chain by hand and reconstructs it.
func ExampleNode_Path() {
	p := wgc.New()
	root := core.NewRoot[wgc.State, wgc.Action](p.InitialState())

	node := root
	for _, a := range []wgc.Action{wgc.MoveGoat, wgc.MoveAlone} {
		next, ok := p.Result(node.State, a)
		if !ok {
			fmt.Println("rejected:", a)
			return
		}
		node = core.NewChild[wgc.State, wgc.Action](p, node, a, next)
	}

	for _, st := range node.Path() {
		fmt.Println(st.From, st.Action, st.To)
	}
	fmt.Println("cost:", node.PathCost, "depth:", node.Depth)
	// Output:
	// (0,0,0,0) Move Goat (1,0,1,0)
	// (1,0,1,0) Move Alone (0,0,1,0)
	// cost: 2 depth: 2
}
