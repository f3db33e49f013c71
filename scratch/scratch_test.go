package scratch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/scratch"
)

func TestStack_LIFO(t *testing.T) {
	s := scratch.NewStack[int](2)
	assert.True(t, s.Empty())

	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 5, top)

	var got []int
	for !s.Empty() {
		v, ok := s.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)

	_, ok = s.Pop()
	assert.False(t, ok, "pop on empty stack")
	_, ok = s.Peek()
	assert.False(t, ok, "peek on empty stack")
}

func TestStack_ClearKeepsUsable(t *testing.T) {
	var s scratch.Stack[string]
	s.Push("a")
	s.Push("b")
	s.Clear()
	assert.Equal(t, 0, s.Len())

	s.Push("c")
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestQueue_FIFOAcrossGrowth(t *testing.T) {
	q := scratch.NewQueue[int](0)

	// Interleave to force the ring to wrap before it grows.
	for i := 0; i < 6; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	for i := 6; i < 40; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 36, q.Len())

	for want := 4; want < 40; want++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.Empty())

	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestQueue_Clear(t *testing.T) {
	var q scratch.Queue[int]
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	assert.True(t, q.Empty())

	q.Enqueue(3)
	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMinHeap_OrdersByPriorityThenValue(t *testing.T) {
	h := scratch.NewMinHeap[int](4)
	h.Push(7, 10)
	h.Push(3, 5)
	h.Push(9, 5)
	h.Push(1, 5)
	h.Push(0, 20)

	type entry struct {
		v int
		p int64
	}
	var got []entry
	for !h.Empty() {
		v, p, ok := h.Pop()
		require.True(t, ok)
		got = append(got, entry{v, p})
	}
	assert.Equal(t, []entry{{1, 5}, {3, 5}, {9, 5}, {7, 10}, {0, 20}}, got)

	_, _, ok := h.Pop()
	assert.False(t, ok)
}

func TestMinHeap_DuplicatesAndClear(t *testing.T) {
	var h scratch.MinHeap[string]
	h.Push("B", 4)
	h.Push("B", 2) // improved entry for the same value
	h.Push("A", 3)
	assert.Equal(t, 3, h.Len())

	v, p, _ := h.Pop()
	assert.Equal(t, "B", v)
	assert.Equal(t, int64(2), p)

	h.Clear()
	assert.True(t, h.Empty())
	h.Push("Z", 1)
	v, _, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "Z", v)
}
