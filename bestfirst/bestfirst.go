// Package bestfirst implements best-first search ordered by f = g + h,
// where g is the path cost so far and h a heuristic variant evaluated by
// the problem.
//
// With the zero heuristic this is uniform-cost search, optimal whenever
// step costs are non-negative. With an admissible and consistent heuristic
// it is A*: still optimal, and usually far fewer expansions.
//
// Notes on implementation choices:
//
//   - The frontier is a container/heap min-heap. Ties on f are broken by a
//     sequence number assigned when the node is generated, local to one
//     invocation, so expansion order is reproducible.
//   - A best-cost map records the cheapest path cost seen per state. A
//     successor is pushed only if its state is new or strictly cheaper.
//   - "Lazy" decrease-key: superseded entries stay in the heap and are
//     discarded when popped, which is detected by comparing the entry's path
//     cost with the best-cost map. Discards are not expansions.
//   - The goal test happens on expansion; a root that is already a goal is
//     returned before the loop with zero expansions.
package bestfirst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Search runs best-first search on p with heuristic variant v.
//
// The heuristic is evaluated on the initial state before any search work,
// so an unknown variant fails immediately with an error wrapping
// core.ErrUnknownHeuristic. An exhausted frontier yields a Result with a nil
// Solution and a nil error.
//
// Complexity (lazy decrease-key, N = nodes generated):
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Search[S comparable, A any](p core.HeuristicProblem[S, A], v core.Variant, opts ...Option) (*core.Result[S, A], error) {
	// 1) Validate inputs and options
	if p == nil {
		return nil, core.ErrNilProblem
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &searcher[S, A]{
		problem: p,
		variant: v,
		options: cfg,
		best:    make(map[S]float64),
		res:     &core.Result[S, A]{},
	}

	// 2) Evaluate the root heuristic first: configuration errors surface
	//    before any node is counted
	root := core.NewRoot[S, A](p.InitialState())
	h, err := r.estimate(root.State)
	if err != nil {
		return nil, err
	}
	r.res.Metrics.NodesGenerated = 1
	r.res.Metrics.Observe(1)

	// 3) Root-is-goal: nothing to expand
	if p.IsGoal(root.State) {
		r.res.Solution = root
		return r.res, nil
	}

	// 4) Seed the frontier and run
	r.best[root.State] = 0
	heap.Push(&r.pq, r.wrap(root, h))

	return r.res, r.process()
}

// UniformCost runs best-first search with the zero heuristic. It accepts any
// core.Problem, heuristic-capable or not.
func UniformCost[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	return Search[S, A](core.WithZeroHeuristic[S, A](p), core.ZeroHeuristic, opts...)
}

// AStar runs best-first search with heuristic variant v, which must not be
// core.ZeroHeuristic (ErrZeroHeuristic).
func AStar[S comparable, A any](p core.HeuristicProblem[S, A], v core.Variant, opts ...Option) (*core.Result[S, A], error) {
	if v == core.ZeroHeuristic {
		return nil, ErrZeroHeuristic
	}

	return Search[S, A](p, v, opts...)
}

// searcher holds the mutable state for a single best-first execution.
type searcher[S comparable, A any] struct {
	problem core.HeuristicProblem[S, A]
	variant core.Variant
	options Options
	pq      frontier[S, A]
	best    map[S]float64 // cheapest path cost generated per state
	seq     uint64        // generation counter for tie-breaking
	res     *core.Result[S, A]
}

// wrap pairs n with its f value and the next sequence number.
func (r *searcher[S, A]) wrap(n *core.Node[S, A], h float64) entry[S, A] {
	r.seq++
	return entry[S, A]{node: n, f: n.PathCost + h, seq: r.seq}
}

// estimate evaluates the configured heuristic at s.
func (r *searcher[S, A]) estimate(s S) (float64, error) {
	h, err := r.problem.Heuristic(s, r.variant)
	if err != nil {
		return 0, fmt.Errorf("bestfirst: heuristic %q: %w", r.variant, err)
	}
	if h < 0 {
		return 0, fmt.Errorf("%w: %q gave %v", ErrNegativeEstimate, r.variant, h)
	}

	return h, nil
}

// process repeatedly pops the minimum-f entry until a goal is expanded, the
// frontier is empty, or the search is aborted.
func (r *searcher[S, A]) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}
		if cfg.NodeLimit > 0 && r.res.Metrics.NodesExpanded >= cfg.NodeLimit {
			return fmt.Errorf("%w: %d expansions", ErrNodeLimit, cfg.NodeLimit)
		}

		// 1) Pop; skip entries superseded by a cheaper path
		node := heap.Pop(&r.pq).(entry[S, A]).node
		if node.PathCost > r.best[node.State] {
			continue
		}

		// 2) Expand and goal-test
		r.res.Metrics.NodesExpanded++
		if cfg.OnExpand != nil {
			if err := cfg.OnExpand(node.Depth, node.PathCost); err != nil {
				return fmt.Errorf("bestfirst: OnExpand hook at depth %d: %w", node.Depth, err)
			}
		}
		if r.problem.IsGoal(node.State) {
			r.res.Solution = node
			return nil
		}

		// 3) Relax successors
		if err := r.relax(node); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes every successor of node whose state is unseen or reached now
// by a strictly cheaper path.
func (r *searcher[S, A]) relax(node *core.Node[S, A]) error {
	for a, next := range node.Successors(r.problem) {
		g := node.PathCost + r.problem.StepCost(node.State, a)
		if old, seen := r.best[next]; seen && g >= old {
			continue
		}
		h, err := r.estimate(next)
		if err != nil {
			return err
		}
		r.best[next] = g

		child := &core.Node[S, A]{
			State:    next,
			Parent:   node,
			Action:   a,
			PathCost: g,
			Depth:    node.Depth + 1,
		}
		r.res.Metrics.NodesGenerated++
		heap.Push(&r.pq, r.wrap(child, h))
		r.res.Metrics.Observe(r.pq.Len())
	}

	return nil
}
