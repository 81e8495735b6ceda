package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console writes the per-run report of every outcome in in to w.
//
// For each outcome it prints a header with the domain and algorithm, then
// either the cost, depth, metrics and numbered path, or "No solution found."
// followed by the metrics.
func Console(w io.Writer, in Instance) error {
	for _, o := range in.Outcomes {
		if _, err := io.WriteString(w, consoleOutcome(in.Domain, o)); err != nil {
			return fmt.Errorf("report: write console report: %w", err)
		}
	}

	return nil
}

func consoleOutcome(domain string, o Outcome) string {
	var b strings.Builder
	header := fmt.Sprintf("Domain: %s | Algorithm: %s", domain, o.Algorithm)
	fmt.Fprintf(&b, "\n%s\n%s\n", header, strings.Repeat("-", len(header)))

	if !o.Found {
		if o.Aborted != "" {
			fmt.Fprintf(&b, "Search aborted: %s\n", o.Aborted)
		}
		b.WriteString("No solution found.\n")
		writeMetrics(&b, o)
		return b.String()
	}

	b.WriteString("Solution Found!\n")
	fmt.Fprintf(&b, "Solution cost: %s | Depth: %d\n", FormatCost(o.Cost), o.Depth)
	writeMetrics(&b, o)

	if len(o.Path) == 0 {
		b.WriteString("Start state is already the goal.\n")
		return b.String()
	}
	b.WriteString("Path:\n")
	for i, st := range o.Path {
		if st.FromBoard != "" || st.ToBoard != "" {
			fmt.Fprintf(&b, "\nStep %d: Action: %s\nFrom:\n%sTo:\n%s", i+1, st.Action, st.FromBoard, st.ToBoard)
			continue
		}
		fmt.Fprintf(&b, "  %d) %-14s %s -> %s\n", i+1, st.Action, st.From, st.To)
	}

	return b.String()
}

func writeMetrics(b *strings.Builder, o Outcome) {
	fmt.Fprintf(b, "Nodes generated: %d | Nodes expanded: %d | Max frontier: %d\n",
		o.Metrics.NodesGenerated, o.Metrics.NodesExpanded, o.Metrics.MaxFrontierSize)
}

// FormatCost prints unit costs as integers and everything else with the
// shortest exact representation.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
