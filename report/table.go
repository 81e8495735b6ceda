package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NA marks a metric with no value, e.g. the cost of an unsolved run.
const NA = "N/A"

// Metric rows of the comparison table, top to bottom.
var metricRows = []string{
	"Solution Cost",
	"Solution Depth",
	"Nodes Generated",
	"Nodes Expanded",
	"Max Frontier Size",
}

var (
	headerColor = lipgloss.Color("#4682B4")
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(headerColor).Padding(0, 1).Align(lipgloss.Center)
	labelStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
)

// Table renders the comparison table of in: one column per algorithm in
// outcome order, one row per metric, under a title naming the domain and
// the start state.
func Table(in Instance) string {
	headers := make([]string, 0, len(in.Outcomes)+1)
	headers = append(headers, "Metric")
	for _, o := range in.Outcomes {
		headers = append(headers, o.Algorithm)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(headerColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(Rows(in)...)

	title := titleStyle.Render(fmt.Sprintf("Performance Comparison for %s", in.Domain))

	return fmt.Sprintf("%s\nStart: %s\n%s\n", title, in.Start, t.String())
}

// Rows returns the table body of in without styling: the metric label
// followed by one cell per outcome.
func Rows(in Instance) [][]string {
	rows := make([][]string, len(metricRows))
	for i, label := range metricRows {
		row := make([]string, 0, len(in.Outcomes)+1)
		row = append(row, label)
		for _, o := range in.Outcomes {
			row = append(row, cell(i, o))
		}
		rows[i] = row
	}

	return rows
}

// cell formats metric i of o. Cost and depth need a solution; the
// counters are reported for every run.
func cell(i int, o Outcome) string {
	switch i {
	case 0:
		if !o.Found {
			return NA
		}
		return FormatCost(o.Cost)
	case 1:
		if !o.Found {
			return NA
		}
		return strconv.Itoa(o.Depth)
	case 2:
		return strconv.Itoa(o.Metrics.NodesGenerated)
	case 3:
		return strconv.Itoa(o.Metrics.NodesExpanded)
	default:
		return strconv.Itoa(o.Metrics.MaxFrontierSize)
	}
}

// Tables writes the comparison table of every instance to w, separated by
// blank lines. Instances without outcomes are skipped.
func Tables(w io.Writer, ins []Instance) error {
	for _, in := range ins {
		if len(in.Outcomes) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s", Table(in)); err != nil {
			return fmt.Errorf("report: write table: %w", err)
		}
	}

	return nil
}
