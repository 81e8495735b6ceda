package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/runner"
)

// newPlanCmd creates the plan command.
func (a *App) newPlanCmd() *cobra.Command {
	var console bool

	cmd := &cobra.Command{
		Use:   "plan <file.yaml>",
		Short: "Run a YAML plan of domains, algorithms and start states",
		Long: `Run the searches described by a YAML plan file.

Example plan:
  domain: 8puzzle
  algorithms: [bfs, ids, ucs, astar_h1, astar_h2]
  random_start: true
  instances: 3
  shuffles: 40
  seed: 7
  depth_ceiling: 100
  node_limit: 0
  parallelism: 4

Persistent flags given explicitly override the plan's limits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runner.LoadPlan(args[0])
			if err != nil {
				return err
			}
			a.applyGlobals(cmd, &p, true)
			if err := p.Validate(); err != nil {
				return fmt.Errorf("plan: %w", err)
			}

			return a.execute(cmd.Context(), p, console, true)
		},
	}

	cmd.Flags().BoolVar(&console, "console", false, "Also print the per-run console reports")

	return cmd
}
