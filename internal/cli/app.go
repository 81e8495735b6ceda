// Package cli provides the lvsearch command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/runner"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel     string
	logFormat    string
	depthCeiling int
	nodeLimit    int
	parallelism  int
}

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	opts   globalOptions
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	defaults := runner.DefaultPlan()

	app.root = &cobra.Command{
		Use:   "lvsearch",
		Short: "Classical state-space search on toy problems",
		Long: `lvsearch solves the Wolf-Goat-Cabbage river crossing and the 8-puzzle with
breadth-first search, iterative deepening, uniform-cost search and A*, and
compares the algorithms by solution cost, depth, nodes generated, nodes
expanded and peak frontier size.

Reports go to stdout; structured logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !logging.ValidLevel(app.opts.logLevel) {
				return fmt.Errorf("invalid --log-level %q (trace, debug, info, warn, error)", app.opts.logLevel)
			}
			if !logging.ValidFormat(app.opts.logFormat) {
				return fmt.Errorf("invalid --log-format %q (json, console, auto)", app.opts.logFormat)
			}
			return nil
		},
	}

	pf := app.root.PersistentFlags()
	pf.StringVar(&app.opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&app.opts.logFormat, "log-format", "auto", "Log format (json, console, auto)")
	pf.IntVar(&app.opts.depthCeiling, "depth-ceiling", defaults.DepthCeiling, "IDS depth ceiling: limits 0..N-1 are tried")
	pf.IntVar(&app.opts.nodeLimit, "node-limit", 0, "Abort a run after this many expansions (0 = unlimited)")
	pf.IntVar(&app.opts.parallelism, "parallelism", defaults.Parallelism, "Number of start states searched concurrently")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newCompareCmd(),
		app.newPlanCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// logger builds the logger selected by the persistent flags.
func (a *App) logger() *bolt.Logger {
	return logging.New(logging.Config{
		Level:  a.opts.logLevel,
		Format: a.opts.logFormat,
		Output: a.stderr,
	})
}

// applyGlobals copies the persistent search limits into p. With onlyChanged
// set, flags left at their defaults keep the plan's own values.
func (a *App) applyGlobals(cmd *cobra.Command, p *runner.Plan, onlyChanged bool) {
	set := func(name string) bool { return !onlyChanged || cmd.Flags().Changed(name) }
	if set("depth-ceiling") {
		p.DepthCeiling = a.opts.depthCeiling
	}
	if set("node-limit") {
		p.NodeLimit = a.opts.nodeLimit
	}
	if set("parallelism") {
		p.Parallelism = a.opts.parallelism
	}
}

// execute runs p and writes the console reports, the comparison tables,
// or both.
func (a *App) execute(ctx context.Context, p runner.Plan, console, tables bool) error {
	results, err := runner.Run(ctx, p, a.logger())
	if err != nil {
		return err
	}
	for _, in := range results {
		if console {
			if err := report.Console(a.stdout, in); err != nil {
				return err
			}
		}
		if tables {
			if err := report.Tables(a.stdout, []report.Instance{in}); err != nil {
				return err
			}
		}
	}

	return nil
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "lvsearch version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
