// Package report renders search outcomes: a per-run console report with the
// solution path, and a comparison table across algorithms for one start
// state.
//
// The package is domain agnostic. Callers convert typed results into
// Outcome values, rendering states and actions to text on the way.
package report

import (
	"time"

	"github.com/katalvlaran/lvsearch/core"
)

// Step is one transition of a solution path, already rendered.
type Step struct {
	Action string
	From   string
	To     string
	// FromBoard and ToBoard hold multi-line renderings, when the domain
	// has one. The console report prints them instead of From and To.
	FromBoard string
	ToBoard   string
}

// Outcome is the result of one algorithm on one start state.
type Outcome struct {
	RunID     string
	Algorithm string // display name, e.g. "A* (h2)"
	Found     bool
	Cost      float64
	Depth     int
	Metrics   core.Metrics
	Path      []Step
	Elapsed   time.Duration
	// Aborted holds the reason a run stopped early (node limit), if any.
	Aborted string
}

// Instance groups the outcomes of every algorithm on one start state.
type Instance struct {
	Index    int
	Domain   string // display name, e.g. "8-Puzzle"
	Start    string
	Outcomes []Outcome
}

// Outcome returns the outcome for algorithm name, if present.
func (in Instance) Outcome(name string) (Outcome, bool) {
	for _, o := range in.Outcomes {
		if o.Algorithm == name {
			return o, true
		}
	}

	return Outcome{}, false
}
