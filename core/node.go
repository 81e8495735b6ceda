package core

import "iter"

// Node is one point on a path from the initial state.
//
// Nodes are never mutated after construction. Parent is nil only for the
// root; the parent chain is shared by all descendants, never copied.
type Node[S comparable, A any] struct {
	// State reached by this node.
	State S

	// Parent is the node this one was generated from (nil for the root).
	Parent *Node[S, A]

	// Action produced this node from Parent (zero value for the root).
	Action A

	// PathCost is the sum of step costs from the root.
	PathCost float64

	// Depth is the number of edges from the root.
	Depth int
}

// Step is one transition of a solution path.
type Step[S comparable, A any] struct {
	From   S
	Action A
	To     S
}

// NewRoot returns the root node for state s: no parent, cost 0, depth 0.
func NewRoot[S comparable, A any](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// NewChild builds the node reached from parent by applying a, which led to s.
// The step cost is taken from p for the parent's state.
func NewChild[S comparable, A any](p Problem[S, A], parent *Node[S, A], a A, s S) *Node[S, A] {
	return &Node[S, A]{
		State:    s,
		Parent:   parent,
		Action:   a,
		PathCost: parent.PathCost + p.StepCost(parent.State, a),
		Depth:    parent.Depth + 1,
	}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Successors lazily yields every (action, resulting state) pair reachable
// from n. Actions rejected by p.Result are skipped, so there may be fewer
// pairs than actions.
func (n *Node[S, A]) Successors(p Problem[S, A]) iter.Seq2[A, S] {
	return func(yield func(A, S) bool) {
		for _, a := range p.Actions(n.State) {
			next, ok := p.Result(n.State, a)
			if !ok {
				continue
			}
			if !yield(a, next) {
				return
			}
		}
	}
}

// Expand lazily yields the child nodes of n, one per valid action.
func (n *Node[S, A]) Expand(p Problem[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		for a, next := range n.Successors(p) {
			if !yield(NewChild(p, n, a, next)) {
				return
			}
		}
	}
}

// Path reconstructs the transitions from the root to n, in root-to-n order.
// The root itself yields an empty path.
func (n *Node[S, A]) Path() []Step[S, A] {
	path := make([]Step[S, A], 0, n.Depth)
	// walk root-ward, then reverse
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		path = append(path, Step[S, A]{From: cur.Parent.State, Action: cur.Action, To: cur.State})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// States returns the states along the path, root first, n last.
func (n *Node[S, A]) States() []S {
	states := make([]S, n.Depth+1)
	i := n.Depth
	for cur := n; cur != nil; cur = cur.Parent {
		states[i] = cur.State
		i--
	}

	return states
}

// Actions returns the actions along the path, in order of application.
func (n *Node[S, A]) Actions() []A {
	actions := make([]A, n.Depth)
	i := n.Depth - 1
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions[i] = cur.Action
		i--
	}

	return actions
}
