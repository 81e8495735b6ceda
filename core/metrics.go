package core

// Metrics counts the work done by one search run.
// All counters are non-decreasing while the run progresses.
type Metrics struct {
	// NodesGenerated counts every Node created, including the root.
	NodesGenerated int

	// NodesExpanded counts nodes removed from the frontier and examined.
	NodesExpanded int

	// MaxFrontierSize is the largest frontier size observed after an insertion.
	MaxFrontierSize int
}

// Observe records a frontier size sampled after an insertion.
func (m *Metrics) Observe(frontier int) {
	if frontier > m.MaxFrontierSize {
		m.MaxFrontierSize = frontier
	}
}

// Merge folds other into m: generated and expanded counts are summed,
// the peak frontier is the maximum of both.
func (m *Metrics) Merge(other Metrics) {
	m.NodesGenerated += other.NodesGenerated
	m.NodesExpanded += other.NodesExpanded
	m.Observe(other.MaxFrontierSize)
}

// Result is the outcome of a search: the terminal node or nil, and metrics.
// A nil Solution with a nil error is a valid negative answer.
type Result[S comparable, A any] struct {
	Solution *Node[S, A]
	Metrics  Metrics
}

// Found reports whether the search reached a goal.
func (r *Result[S, A]) Found() bool { return r != nil && r.Solution != nil }

// Cost returns the solution path cost, or 0 when nothing was found.
func (r *Result[S, A]) Cost() float64 {
	if !r.Found() {
		return 0
	}

	return r.Solution.PathCost
}

// Depth returns the solution depth, or -1 when nothing was found.
func (r *Result[S, A]) Depth() int {
	if !r.Found() {
		return -1
	}

	return r.Solution.Depth
}
