// Package core defines the abstractions shared by every search strategy:
// the Problem capability set, the immutable search Node, solution paths,
// and the Metrics record.
//
// What
//
//   - Problem[S, A]: initial state, goal test, ordered actions, transition
//     function (which may reject an action), and step cost.
//   - HeuristicProblem[S, A]: a Problem that also evaluates a heuristic
//     variant such as "h0", "h1" or "h2".
//   - Node[S, A]: one point on a path from the initial state. A child points
//     to its parent and never the other way around, so the nodes of a search
//     always form a tree rooted at the start node.
//   - Metrics: nodes generated, nodes expanded, peak frontier size.
//   - Result[S, A]: terminal node (nil when no solution exists) plus Metrics.
//
// States must be comparable: every strategy keys its explored bookkeeping by
// state. Actions are opaque and only travel along with the nodes.
//
// Determinism
//
//	Strategies enumerate successors in the order Problem.Actions returns
//	them. A Problem with a deterministic action order yields identical
//	solution chains and metrics on every run.
//
// Complexity
//
//   - NewChild: O(1).
//   - Path, States, Actions: O(depth).
//
// Errors
//
//   - ErrNilProblem        a strategy was handed a nil Problem.
//   - ErrUnknownHeuristic  a Problem does not recognise a heuristic variant.
//   - ErrNodeLimit         a strategy stopped at its configured node limit.
package core
