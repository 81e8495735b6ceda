package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/runner"
)

// newCompareCmd creates the compare command.
func (a *App) newCompareCmd() *cobra.Command {
	var (
		start   startOptions
		algos   []string
		console bool
	)

	cmd := &cobra.Command{
		Use:   "compare <domain>",
		Short: "Run several algorithms on the same start states and tabulate them",
		Long: `Run several algorithms on each start state and print one comparison table
per state: solution cost, solution depth, nodes generated, nodes expanded and
max frontier size, one column per algorithm.

A* variants are skipped on wgc, which defines no heuristics.

Examples:
  lvsearch compare wgc --algos bfs,ids,ucs
  lvsearch compare 8puzzle --state "4,1,3,7,2,5,8,0,6"
  lvsearch compare 8puzzle --random-start --instances 5 --shuffles 30 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := runner.ParseAlgorithms(algos)
			if err != nil {
				return err
			}

			p := runner.DefaultPlan()
			p.Domain = runner.Domain(args[0])
			p.Algorithms = list
			start.apply(&p)
			a.applyGlobals(cmd, &p, false)
			if err := p.Validate(); err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			return a.execute(cmd.Context(), p, console, true)
		},
	}

	all := make([]string, 0, len(runner.Algorithms()))
	for _, alg := range runner.Algorithms() {
		all = append(all, string(alg))
	}
	start.register(cmd, true)
	cmd.Flags().StringSliceVar(&algos, "algos", all, "Algorithms to compare")
	cmd.Flags().BoolVar(&console, "console", false, "Also print the per-run console reports")

	return cmd
}
