package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/runner"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestApp_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvsearch version dev")
}

func TestApp_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	for _, cmd := range []string{"solve", "compare", "plan", "version", "--log-level", "--depth-ceiling"} {
		assert.Contains(t, out, cmd)
	}
}

func TestApp_SolveWGC(t *testing.T) {
	out, _, err := run(t, "solve", "wgc", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Domain: WGC | Algorithm: BFS")
	assert.Contains(t, out, "Solution cost: 7 | Depth: 7")
	assert.Contains(t, out, "7) Move Goat")
	assert.NotContains(t, out, "Performance Comparison")
}

func TestApp_SolveEightPuzzle(t *testing.T) {
	out, _, err := run(t, "solve", "8puzzle", "astar", "1,2,3,4,5,0,7,8,6", "--heuristic", "h2", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm: A* (h2)")
	assert.Contains(t, out, "Step 1: Action: Move Down")
	assert.Contains(t, out, "From:")
	assert.Contains(t, out, "Performance Comparison for 8-Puzzle")
}

func TestApp_SolveErrors(t *testing.T) {
	_, _, err := run(t, "solve", "8puzzle", "astar", "1,2,3,4,5,0,7,8,6")
	require.ErrorIs(t, err, runner.ErrUnknownAlgorithm)

	_, _, err = run(t, "solve", "wgc", "bfs", "--random-start")
	require.ErrorIs(t, err, runner.ErrRandomStartDomain)

	_, _, err = run(t, "solve", "8puzzle", "bfs")
	require.ErrorIs(t, err, runner.ErrNoStates)

	_, _, err = run(t, "solve", "wgc")
	require.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "solve", "wgc", "bfs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}

func TestApp_CompareWGC(t *testing.T) {
	out, errOut, err := run(t, "--log-level", "warn", "--log-format", "json", "compare", "wgc")
	require.NoError(t, err)
	assert.Contains(t, out, "Performance Comparison for WGC")
	assert.Contains(t, out, "Start: (0,0,0,0)")
	assert.Contains(t, out, "UCS")
	assert.NotContains(t, out, "A* (h1)")
	assert.Contains(t, errOut, "skipping heuristic algorithm")
}

func TestApp_CompareEightPuzzle(t *testing.T) {
	out, _, err := run(t, "compare", "8puzzle",
		"--algos", "bfs,astar_h2",
		"--state", "4,1,3,7,2,5,8,0,6",
		"--state", "1,2,3,4,5,0,7,8,6",
		"--console",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Start: (4,1,3,7,2,5,8,0,6)")
	assert.Contains(t, out, "Start: (1,2,3,4,5,0,7,8,6)")
	assert.Contains(t, out, "Algorithm: A* (h2)")
	assert.NotContains(t, out, "IDS")
}

func TestApp_CompareRandomStart(t *testing.T) {
	out, _, err := run(t, "compare", "8puzzle", "--algos", "astar_h2",
		"--random-start", "--instances", "2", "--shuffles", "8", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("Performance Comparison")))
}

func TestApp_NodeLimit(t *testing.T) {
	out, _, err := run(t, "--node-limit", "3", "solve", "8puzzle", "bfs", "4,1,3,7,2,5,8,0,6")
	require.NoError(t, err)
	assert.Contains(t, out, "Search aborted")
	assert.Contains(t, out, "No solution found.")
}

func TestApp_Plan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	content := `
domain: 8puzzle
algorithms: [ucs, astar_h1]
states:
  - "1,2,3,4,5,0,7,8,6"
depth_ceiling: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := run(t, "plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Performance Comparison for 8-Puzzle")
	assert.Contains(t, out, "A* (h1)")

	_, _, err = run(t, "plan", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_PlanKeepsFileLimits(t *testing.T) {
	app := New()
	p := runner.DefaultPlan()
	p.DepthCeiling = 20
	p.NodeLimit = 50

	cmd, _, err := app.root.Find([]string{"plan"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--node-limit", "7"}))
	app.applyGlobals(cmd, &p, true)

	assert.Equal(t, 20, p.DepthCeiling)
	assert.Equal(t, 7, p.NodeLimit)
}
