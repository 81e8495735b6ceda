// Package bfs provides breadth-first search over a core.Problem,
// returning the goal node with the fewest actions and the search metrics.
//
// What
//
//   - FIFO frontier seeded with the root node.
//   - Explored set of states, seeded with the root's state: a state is
//     generated at most once.
//   - Early goal test: the root is tested before the loop, and every child
//     is tested as soon as it is generated. A goal child is returned without
//     being enqueued.
//   - Returns a core.Result holding:
//   - Solution: the goal node, or nil when the frontier runs dry
//   - Metrics:  nodes generated / expanded, peak frontier size
//
// Why
//
//   - With unit step costs BFS returns a minimum-depth solution.
//   - The early goal test saves a full layer of expansions compared with
//     testing on expansion.
//
// Determinism
//
//	Children are generated in the order Problem.Actions lists them, so two
//	runs over the same problem produce the same node chain and metrics.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d) nodes generated.
//   - Memory: O(b^d) for the queue and the explored set.
//
// Usage
//
//	res, err := bfs.Search[eightpuzzle.State, eightpuzzle.Move](puzzle)
//	if err != nil {
//	    // ErrOptionViolation, ErrNodeLimit, ctx.Err(), or a hook error
//	}
//	if res.Found() {
//	    fmt.Println(res.Solution.Depth, res.Metrics.NodesExpanded)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no node limit, no-op hook.
//   - WithContext(ctx):   cancellation; checked once per expansion.
//   - WithNodeLimit(n):   abort with ErrNodeLimit after n expansions (n>0).
//   - WithOnExpand(fn):   hook on every expansion; returning error aborts.
//
// Errors
//
//   - core.ErrNilProblem  if the problem is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative NodeLimit).
//   - ErrNodeLimit        if NodeLimit expansions happened without a goal.
//   - Wrapped user-supplied hook errors from OnExpand.
//
// "No solution" is not an error: Search returns a Result with a nil Solution.
package bfs
