package scratch

import (
	"cmp"
	"container/heap"
)

// heapItem pairs a value with the priority it was pushed under.
type heapItem[T cmp.Ordered] struct {
	value    T
	priority int64
}

// itemPQ implements heap.Interface ordered by priority, then by value.
type itemPQ[T cmp.Ordered] []heapItem[T]

func (pq itemPQ[T]) Len() int { return len(pq) }

func (pq itemPQ[T]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].value < pq[j].value
}

func (pq itemPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ[T]) Push(x any) { *pq = append(*pq, x.(heapItem[T])) }

func (pq *itemPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// MinHeap is a binary min-heap of values keyed by an int64 priority.
// Equal priorities pop in ascending value order, which makes extraction
// deterministic. The same value may be pushed several times; MinHeap does
// not deduplicate (callers use lazy deletion and skip stale entries).
//
// The zero value is ready to use.
type MinHeap[T cmp.Ordered] struct {
	pq itemPQ[T]
}

// NewMinHeap returns an empty MinHeap with room for capacity entries.
func NewMinHeap[T cmp.Ordered](capacity int) *MinHeap[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap[T]{pq: make(itemPQ[T], 0, capacity)}
}

// Push inserts value with the given priority.
// Complexity: O(log n).
func (h *MinHeap[T]) Push(value T, priority int64) {
	heap.Push(&h.pq, heapItem[T]{value: value, priority: priority})
}

// Pop removes the entry with the smallest (priority, value) pair.
// ok is false when the heap is empty.
// Complexity: O(log n).
func (h *MinHeap[T]) Pop() (value T, priority int64, ok bool) {
	if len(h.pq) == 0 {
		return value, 0, false
	}
	item := heap.Pop(&h.pq).(heapItem[T])

	return item.value, item.priority, true
}

// Len returns the number of entries, stale ones included.
func (h *MinHeap[T]) Len() int { return len(h.pq) }

// Empty reports whether the heap holds no entries.
func (h *MinHeap[T]) Empty() bool { return len(h.pq) == 0 }

// Clear drops every entry, keeping the backing array for reuse.
func (h *MinHeap[T]) Clear() {
	h.pq = h.pq[:0]
}
