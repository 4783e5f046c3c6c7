package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a min-heap of tree nodes ordered by weight.  Equal weights
// are ordered by the sequence in which nodes were created, so leaves (created
// first, in byte order) come before the internal nodes that share their
// weight.  This makes every build deterministic.
type nodeQueue struct {
	arena *nodeArena
	list  []nodeIndex
}

func newNodeQueue(arena *nodeArena, capacity int) *nodeQueue {
	return &nodeQueue{arena: arena, list: make([]nodeIndex, 0, capacity)}
}

// Insert adds a node, preserving the heap invariant.
func (q *nodeQueue) Insert(index nodeIndex) {
	heap.Push(q, index)
}

// ExtractMin removes and returns the lightest node.
func (q *nodeQueue) ExtractMin() nodeIndex {
	assert.Assertf(len(q.list) != 0, "ExtractMin called on empty queue")
	return heap.Pop(q).(nodeIndex)
}

// Size returns the number of queued nodes.
func (q *nodeQueue) Size() int {
	return len(q.list)
}

// type nodeQueue heap.Interface {{{

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	aw, bw := q.arena.nodes[a].weight, q.arena.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(nodeIndex))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
