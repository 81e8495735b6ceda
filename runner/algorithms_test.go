package runner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/runner"
)

func TestAlgorithm_Registry(t *testing.T) {
	names := make([]string, 0, 5)
	for _, a := range runner.Algorithms() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"BFS", "IDS", "UCS", "A* (h1)", "A* (h2)"}, names)

	assert.False(t, runner.BFS.Informed())
	assert.False(t, runner.UCS.Informed())
	assert.True(t, runner.AStarH1.Informed())
	assert.True(t, runner.AStarH2.Informed())
	assert.Equal(t, "dfs", runner.Algorithm("dfs").Name())
}

func TestParseAlgorithm(t *testing.T) {
	a, err := runner.ParseAlgorithm("astar", "h2")
	require.NoError(t, err)
	assert.Equal(t, runner.AStarH2, a)

	a, err = runner.ParseAlgorithm(" BFS ", "")
	require.NoError(t, err)
	assert.Equal(t, runner.BFS, a)

	a, err = runner.ParseAlgorithm("astar_h1", "")
	require.NoError(t, err)
	assert.Equal(t, runner.AStarH1, a)

	_, err = runner.ParseAlgorithm("astar", "")
	require.ErrorIs(t, err, runner.ErrUnknownAlgorithm)

	_, err = runner.ParseAlgorithm("astar", "h7")
	require.ErrorIs(t, err, runner.ErrUnknownAlgorithm)

	_, err = runner.ParseAlgorithm("dfs", "")
	require.ErrorIs(t, err, runner.ErrUnknownAlgorithm)
}

func TestParseAlgorithms(t *testing.T) {
	list, err := runner.ParseAlgorithms([]string{"bfs,ids", "ucs", ""})
	require.NoError(t, err)
	assert.Equal(t, []runner.Algorithm{runner.BFS, runner.IDS, runner.UCS}, list)

	_, err = runner.ParseAlgorithms([]string{"bfs,greedy"})
	require.ErrorIs(t, err, runner.ErrUnknownAlgorithm)
}

func TestDomain_DisplayName(t *testing.T) {
	assert.Equal(t, "WGC", runner.DomainWGC.DisplayName())
	assert.Equal(t, "8-Puzzle", runner.DomainEightPuzzle.DisplayName())
	assert.Equal(t, "hanoi", runner.Domain("hanoi").DisplayName())
}
