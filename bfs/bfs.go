// Package bfs provides breadth-first search over a core.Problem,
// returning the shallowest goal node and the search metrics.
//
// BFS explores states in increasing depth from the initial state,
// testing each new child for the goal as soon as it is generated.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// walker encapsulates mutable BFS state.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	opts     Options
	queue    []*core.Node[S, A]
	explored map[S]struct{}
	res      *core.Result[S, A]
}

// Search runs breadth-first search on p, applying any number of functional
// Options. It returns a Result whose Solution is the goal node with the
// fewest actions, or nil if the reachable space holds no goal.
//
// Returns core.ErrNilProblem for a nil problem, ErrOptionViolation for bad
// options, ErrNodeLimit when the node limit is hit, ctx.Err() on
// cancellation, or any user-supplied hook error. On error the Result still
// carries the metrics gathered so far.
func Search[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	root := core.NewRoot[S, A](p.InitialState())
	w := &walker[S, A]{
		problem:  p,
		opts:     o,
		queue:    []*core.Node[S, A]{root},
		explored: map[S]struct{}{root.State: {}},
		res:      &core.Result[S, A]{},
	}
	w.res.Metrics.NodesGenerated = 1
	w.res.Metrics.Observe(1)

	// Early goal test on the root: no expansion needed
	if p.IsGoal(root.State) {
		w.res.Solution = root
		return w.res, nil
	}

	return w.res, w.loop()
}

// loop processes the queue until a goal is generated, the queue is empty,
// or the search is aborted.
func (w *walker[S, A]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.NodeLimit > 0 && w.res.Metrics.NodesExpanded >= w.opts.NodeLimit {
			return fmt.Errorf("%w: %d expansions", ErrNodeLimit, w.opts.NodeLimit)
		}

		node := w.dequeue()
		if err := w.opts.OnExpand(node.Depth, node.PathCost); err != nil {
			return fmt.Errorf("bfs: OnExpand error at depth %d: %w", node.Depth, err)
		}
		if w.expand(node) {
			return nil
		}
	}

	return nil
}

// dequeue pops the queue head and counts it as expanded.
func (w *walker[S, A]) dequeue() *core.Node[S, A] {
	node := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	w.res.Metrics.NodesExpanded++

	return node
}

// expand generates the unexplored children of node. It reports true once a
// child satisfies the goal test; that child is recorded as the solution and
// never enqueued.
func (w *walker[S, A]) expand(node *core.Node[S, A]) bool {
	for a, next := range node.Successors(w.problem) {
		if _, seen := w.explored[next]; seen {
			continue
		}

		child := core.NewChild(w.problem, node, a, next)
		w.res.Metrics.NodesGenerated++
		if w.problem.IsGoal(next) {
			w.res.Solution = child
			return true
		}

		w.explored[next] = struct{}{}
		w.queue = append(w.queue, child)
		w.res.Metrics.Observe(len(w.queue))
	}

	return false
}
