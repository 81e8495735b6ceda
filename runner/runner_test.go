package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/runner"
)

func TestRun_WGC(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "info", Format: "json", Output: &buf})

	results, err := runner.Run(context.Background(), plan(runner.DomainWGC, runner.Algorithms()...), logger)
	require.NoError(t, err)
	require.Len(t, results, 1)

	in := results[0]
	assert.Equal(t, "WGC", in.Domain)
	assert.Equal(t, "(0,0,0,0)", in.Start)

	// A* variants are skipped: wgc has no heuristics
	require.Len(t, in.Outcomes, 3)
	want := []struct {
		name    string
		metrics core.Metrics
	}{
		{"BFS", core.Metrics{NodesGenerated: 10, NodesExpanded: 9, MaxFrontierSize: 2}},
		{"IDS", core.Metrics{NodesGenerated: 46, NodesExpanded: 44, MaxFrontierSize: 3}},
		{"UCS", core.Metrics{NodesGenerated: 10, NodesExpanded: 10, MaxFrontierSize: 2}},
	}
	ids := make(map[string]bool)
	for i, o := range in.Outcomes {
		assert.Equal(t, want[i].name, o.Algorithm)
		assert.Equal(t, want[i].metrics, o.Metrics)
		assert.True(t, o.Found)
		assert.Equal(t, 7, o.Depth)
		assert.Equal(t, 7.0, o.Cost)
		require.Len(t, o.Path, 7)
		assert.Equal(t, "(0,0,0,0)", o.Path[0].From)
		assert.Equal(t, "(1,1,1,1)", o.Path[6].To)
		assert.Empty(t, o.Path[0].FromBoard)
		assert.NotEmpty(t, o.RunID)
		assert.False(t, ids[o.RunID], "run ids must be unique")
		ids[o.RunID] = true
	}
	assert.Equal(t, "Move Goat", in.Outcomes[0].Path[0].Action)

	logs := buf.String()
	assert.Contains(t, logs, "skipping heuristic algorithm")
	assert.Contains(t, logs, `"algorithm":"astar_h1"`)
	assert.Contains(t, logs, `"algorithm":"bfs"`)
	assert.Contains(t, logs, `"run_id":"`+in.Outcomes[0].RunID+`"`)
	assert.Contains(t, logs, "run finished")
}

func TestRun_EightPuzzleOrder(t *testing.T) {
	p := plan(runner.DomainEightPuzzle, runner.Algorithms()...)
	p.States = []string{"(4,1,3,7,2,5,8,0,6)", "1,2,3,4,5,0,7,8,6"}
	p.Parallelism = 2

	results, err := runner.Run(context.Background(), p, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, "(4,1,3,7,2,5,8,0,6)", results[0].Start)
	assert.Equal(t, 1, results[1].Index)
	assert.Equal(t, "(1,2,3,4,5,0,7,8,6)", results[1].Start)

	seven := results[0]
	require.Len(t, seven.Outcomes, 5)
	expanded := map[string]int{"BFS": 88, "IDS": 316, "UCS": 153, "A* (h1)": 8, "A* (h2)": 8}
	for i, o := range seven.Outcomes {
		assert.Equal(t, runner.Algorithms()[i].Name(), o.Algorithm)
		assert.True(t, o.Found, o.Algorithm)
		assert.Equal(t, 7, o.Depth, o.Algorithm)
		assert.Equal(t, expanded[o.Algorithm], o.Metrics.NodesExpanded, o.Algorithm)
	}
	bfs, _ := seven.Outcome("BFS")
	astar, _ := seven.Outcome("A* (h2)")
	assert.Less(t, astar.Metrics.NodesExpanded, bfs.Metrics.NodesExpanded)

	one := results[1]
	require.Len(t, one.Outcomes, 5)
	for _, o := range one.Outcomes {
		require.Len(t, o.Path, 1, o.Algorithm)
		assert.Equal(t, "Move Down", o.Path[0].Action)
		assert.Equal(t, eightpuzzle.Board(eightpuzzle.Goal), o.Path[0].ToBoard)
	}
}

func TestRun_RandomStart(t *testing.T) {
	p := plan(runner.DomainEightPuzzle, runner.AStarH2)
	p.RandomStart = true
	p.Instances = 3
	p.Shuffles = 12
	p.Seed = 5

	first, err := runner.Run(context.Background(), p, nil)
	require.NoError(t, err)
	require.Len(t, first, 3)

	starts := make(map[string]bool)
	for _, in := range first {
		starts[in.Start] = true
		require.Len(t, in.Outcomes, 1)
		assert.True(t, in.Outcomes[0].Found)
		assert.LessOrEqual(t, in.Outcomes[0].Depth, 12)
	}
	assert.Len(t, starts, 3)

	// same seed, same instances
	second, err := runner.Run(context.Background(), p, nil)
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].Start, second[i].Start)
		assert.Equal(t, first[i].Outcomes[0].Metrics, second[i].Outcomes[0].Metrics)
	}
}

// TestRun_NodeLimit records an aborted run instead of failing the plan.
func TestRun_NodeLimit(t *testing.T) {
	p := plan(runner.DomainEightPuzzle, runner.BFS, runner.AStarH2)
	p.States = []string{"4,1,3,7,2,5,8,0,6"}
	p.NodeLimit = 10

	results, err := runner.Run(context.Background(), p, nil)
	require.NoError(t, err)
	require.Len(t, results[0].Outcomes, 2)

	bfs := results[0].Outcomes[0]
	assert.False(t, bfs.Found)
	assert.Equal(t, -1, bfs.Depth)
	assert.NotEmpty(t, bfs.Aborted)
	assert.Equal(t, 10, bfs.Metrics.NodesExpanded)

	astar := results[0].Outcomes[1]
	assert.True(t, astar.Found)
	assert.Empty(t, astar.Aborted)
}

func TestRun_Errors(t *testing.T) {
	_, err := runner.Run(context.Background(), plan(runner.DomainWGC), nil)
	require.ErrorIs(t, err, runner.ErrInvalidPlan)

	bad := plan(runner.DomainEightPuzzle, runner.BFS)
	bad.States = []string{"1,2,3"}
	_, err = runner.Run(context.Background(), bad, nil)
	require.ErrorIs(t, err, eightpuzzle.ErrParseState)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx, plan(runner.DomainWGC, runner.BFS), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_ValidatesPlan(t *testing.T) {
	_, err := runner.New(runner.Plan{}, nil)
	require.ErrorIs(t, err, runner.ErrInvalidPlan)

	r, err := runner.New(plan(runner.DomainWGC, runner.BFS), nil)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
}
