// Package ids implements iterative-deepening search on core.Problem:
// depth-limited passes with increasing limits, sharing no state between
// passes except the accumulated metrics.
//
// Key features:
//   - Search(p, opts...): passes with limits 0, 1, 2, ... up to the ceiling
//   - DLS(p, limit, opts...): a single depth-limited pass
//   - Depth-aware duplicate handling: within one pass a state is pushed
//     again only when reached at a strictly smaller depth than before
//   - Cancellation via context.Context, node budget, hooks
package ids

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// pass encapsulates the state of one depth-limited pass.
type pass[S comparable, A any] struct {
	problem core.Problem[S, A]
	opts    *Options
	limit   int
	// prior is the number of expansions made by earlier passes.
	prior   int
	stack   []*core.Node[S, A]
	depth   map[S]int
	metrics core.Metrics
}

// Search runs depth-limited passes with limits 0..DepthCeiling-1 and returns
// the first solution found. Metrics are summed across passes, and the peak
// frontier is the largest of any pass. With unit step costs the solution has
// minimum depth.
//
// A root that already satisfies the goal test is returned before any pass,
// with zero expansions. When the ceiling is exhausted the Result has a nil
// Solution and a nil error, just as for an unsolvable problem.
func Search[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &core.Result[S, A]{}
	root := core.NewRoot[S, A](p.InitialState())
	if p.IsGoal(root.State) {
		res.Solution = root
		res.Metrics = core.Metrics{NodesGenerated: 1, MaxFrontierSize: 1}
		return res, nil
	}

	for limit := 0; limit < o.DepthCeiling; limit++ {
		w := newPass(p, &o, limit, res.Metrics.NodesExpanded)
		sol, err := w.run()
		res.Metrics.Merge(w.metrics)
		if err != nil {
			return res, err
		}
		if o.OnPass != nil {
			o.OnPass(limit, w.metrics)
		}
		if sol != nil {
			res.Solution = sol
			return res, nil
		}
	}

	return res, nil
}

// DLS runs a single depth-limited pass with the given limit. Nodes at depth
// limit are goal-tested but not expanded. Unlike Search, the root is counted
// as an expansion even when it is the goal. DepthCeiling is ignored.
func DLS[S comparable, A any](p core.Problem[S, A], limit int, opts ...Option) (*core.Result[S, A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := newPass(p, &o, limit, 0)
	sol, err := w.run()

	return &core.Result[S, A]{Solution: sol, Metrics: w.metrics}, err
}

// newPass seeds a pass with the root node on the stack.
func newPass[S comparable, A any](p core.Problem[S, A], o *Options, limit, prior int) *pass[S, A] {
	root := core.NewRoot[S, A](p.InitialState())
	w := &pass[S, A]{
		problem: p,
		opts:    o,
		limit:   limit,
		prior:   prior,
		stack:   []*core.Node[S, A]{root},
		depth:   map[S]int{root.State: 0},
	}
	w.metrics.NodesGenerated = 1
	w.metrics.Observe(1)

	return w
}

// run pops the stack until a goal is popped, the stack is empty, or the
// pass is aborted.
func (w *pass[S, A]) run() (*core.Node[S, A], error) {
	for len(w.stack) > 0 {
		// 1. Cancellation and budget checks
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}
		if w.opts.NodeLimit > 0 && w.prior+w.metrics.NodesExpanded >= w.opts.NodeLimit {
			return nil, fmt.Errorf("%w: %d expansions", ErrNodeLimit, w.opts.NodeLimit)
		}

		// 2. Pop and count the expansion
		top := len(w.stack) - 1
		node := w.stack[top]
		w.stack[top] = nil
		w.stack = w.stack[:top]
		w.metrics.NodesExpanded++
		if w.opts.OnExpand != nil {
			if err := w.opts.OnExpand(node.Depth, node.PathCost); err != nil {
				return nil, fmt.Errorf("ids: OnExpand hook at depth %d: %w", node.Depth, err)
			}
		}

		// 3. Goal test on expansion
		if w.problem.IsGoal(node.State) {
			return node, nil
		}

		// 4. Cutoff leaf
		if node.Depth >= w.limit {
			continue
		}

		// 5. Push children not yet seen at this depth or shallower
		childDepth := node.Depth + 1
		for a, next := range node.Successors(w.problem) {
			if d, seen := w.depth[next]; seen && d <= childDepth {
				continue
			}
			w.depth[next] = childDepth
			w.stack = append(w.stack, core.NewChild(w.problem, node, a, next))
			w.metrics.NodesGenerated++
			w.metrics.Observe(len(w.stack))
		}
	}

	return nil, nil
}
