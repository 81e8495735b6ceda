package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/runner"
)

// startOptions selects the 8-puzzle start states.
type startOptions struct {
	states      []string
	randomStart bool
	instances   int
	shuffles    int
	seed        int64
}

func (o *startOptions) register(cmd *cobra.Command, withStates bool) {
	defaults := runner.DefaultPlan()
	if withStates {
		cmd.Flags().StringArrayVar(&o.states, "state", nil, "8-puzzle start state, e.g. \"1,2,3,4,5,0,7,8,6\" (repeatable)")
	}
	cmd.Flags().BoolVar(&o.randomStart, "random-start", false, "Generate 8-puzzle start states by random moves from the goal")
	cmd.Flags().IntVar(&o.instances, "instances", defaults.Instances, "Number of random start states (with --random-start)")
	cmd.Flags().IntVar(&o.shuffles, "shuffles", defaults.Shuffles, "Random moves per generated start state")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Seed for start state generation")
}

func (o *startOptions) apply(p *runner.Plan) {
	p.States = o.states
	p.RandomStart = o.randomStart
	p.Instances = o.instances
	p.Shuffles = o.shuffles
	p.Seed = o.seed
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	var (
		start     startOptions
		heuristic string
		table     bool
	)

	cmd := &cobra.Command{
		Use:   "solve <domain> <algorithm> [state]",
		Short: "Solve one problem with one algorithm and print the path",
		Long: `Solve a problem with a single algorithm and print the solution path and
search metrics.

Domains:    wgc, 8puzzle
Algorithms: bfs, ids, ucs, astar (with --heuristic h1 or h2),
            or the explicit keys astar_h1 and astar_h2

Examples:
  lvsearch solve wgc bfs
  lvsearch solve 8puzzle astar "1,2,3,4,5,0,7,8,6" --heuristic h2
  lvsearch solve 8puzzle ids --random-start --shuffles 20 --seed 3`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := runner.ParseAlgorithm(args[1], core.Variant(heuristic))
			if err != nil {
				return err
			}
			if len(args) == 3 {
				start.states = append(start.states, args[2])
			}

			p := runner.DefaultPlan()
			p.Domain = runner.Domain(args[0])
			p.Algorithms = []runner.Algorithm{alg}
			start.apply(&p)
			a.applyGlobals(cmd, &p, false)
			if err := p.Validate(); err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			return a.execute(cmd.Context(), p, true, table)
		},
	}

	start.register(cmd, false)
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "Heuristic for astar: h1 (misplaced tiles) or h2 (Manhattan distance)")
	cmd.Flags().BoolVar(&table, "table", false, "Also print the metrics table")

	return cmd
}
