package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/testproblem"
	"github.com/katalvlaran/lvsearch/wgc"
)

// TestNode_PathCostAndDepth builds S→A→G by hand and checks the derived fields.
func TestNode_PathCostAndDepth(t *testing.T) {
	g := testproblem.New("S", "G").Edge("S", "A", 2).Edge("A", "G", 3)

	root := core.NewRoot[string, string]("S")
	a := core.NewChild[string, string](g, root, "A", "A")
	goal := core.NewChild[string, string](g, a, "G", "G")

	require.True(t, root.IsRoot())
	require.False(t, goal.IsRoot())
	assert.Equal(t, 0.0, root.PathCost)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 2.0, a.PathCost)
	assert.Equal(t, 5.0, goal.PathCost)
	assert.Equal(t, 2, goal.Depth)
	assert.Same(t, a, goal.Parent)

	assert.Equal(t, []core.Step[string, string]{
		{From: "S", Action: "A", To: "A"},
		{From: "A", Action: "G", To: "G"},
	}, goal.Path())
	assert.Equal(t, []string{"S", "A", "G"}, goal.States())
	assert.Equal(t, []string{"A", "G"}, goal.Actions())
}

// TestNode_RootPath checks that the root reconstructs to an empty path.
func TestNode_RootPath(t *testing.T) {
	root := core.NewRoot[string, string]("S")

	assert.Empty(t, root.Path())
	assert.Equal(t, []string{"S"}, root.States())
	assert.Empty(t, root.Actions())
}

// TestNode_SuccessorsSkipInvalid checks that rejected transitions are dropped
// while the remaining ones keep the order of Actions.
func TestNode_SuccessorsSkipInvalid(t *testing.T) {
	g := testproblem.New("S").Edge("S", "A", 1).Blocked("S", "B").Edge("S", "C", 4)
	root := core.NewRoot[string, string]("S")

	var got []string
	for a, next := range root.Successors(g) {
		require.Equal(t, a, next)
		got = append(got, next)
	}
	assert.Equal(t, []string{"A", "C"}, got)

	var children []*core.Node[string, string]
	for child := range root.Expand(g) {
		children = append(children, child)
	}
	require.Len(t, children, 2)
	assert.Equal(t, 1.0, children[0].PathCost)
	assert.Equal(t, 4.0, children[1].PathCost)
	for _, c := range children {
		assert.Equal(t, 1, c.Depth)
		assert.Same(t, root, c.Parent)
	}
}

// TestNode_ExpandStopsEarly checks that breaking out of the range stops
// asking the problem for more results.
func TestNode_ExpandStopsEarly(t *testing.T) {
	g := testproblem.New("S").Edge("S", "A", 1).Edge("S", "B", 1).Edge("S", "C", 1)
	root := core.NewRoot[string, string]("S")

	n := 0
	for range root.Expand(g) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestWithZeroHeuristic covers both adapter paths.
func TestWithZeroHeuristic(t *testing.T) {
	// a plain Problem gets only the zero heuristic
	hp := core.WithZeroHeuristic[wgc.State, wgc.Action](wgc.New())
	h, err := hp.Heuristic(wgc.Start, core.ZeroHeuristic)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	_, err = hp.Heuristic(wgc.Start, "h1")
	require.True(t, errors.Is(err, core.ErrUnknownHeuristic), "got %v", err)
	assert.Equal(t, wgc.Start, hp.InitialState())

	// a HeuristicProblem is passed through unchanged
	g := testproblem.New("S")
	assert.Same(t, g, core.WithZeroHeuristic[string, string](g))
}
