package bestfirst

import "github.com/katalvlaran/lvsearch/core"

// entry is a frontier item: a node, its estimated total cost f = g + h,
// and the generation sequence number that breaks ties between equal f.
type entry[S comparable, A any] struct {
	node *core.Node[S, A]
	f    float64
	seq  uint64
}

// frontier is a min-heap of entries ordered by f, then by seq ascending.
// Entries superseded by a cheaper path stay in the heap and are discarded
// when popped.
type frontier[S comparable, A any] []entry[S, A]

// Len returns the number of items in the heap.
func (q frontier[S, A]) Len() int { return len(q) }

// Less orders by f, earlier generation first on ties.
func (q frontier[S, A]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q frontier[S, A]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (q *frontier[S, A]) Push(x any) { *q = append(*q, x.(entry[S, A])) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (q *frontier[S, A]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S, A]{}
	*q = old[:n-1]

	return item
}
