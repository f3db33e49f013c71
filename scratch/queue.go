package scratch

// minQueueCap is the first ring allocation made by an empty Queue.
const minQueueCap = 8

// Queue is a FIFO container backed by a growable ring buffer.
// The zero value is ready to use.
type Queue[T any] struct {
	buf  []T
	head int // index of the front item
	n    int // number of queued items
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{buf: make([]T, capacity)}
}

// Enqueue appends v at the back of the queue.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// Dequeue removes and returns the front item. ok is false when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.n == 0 {
		return v, false
	}
	v = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	if q.n == 0 {
		q.head = 0
	}

	return v, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.n }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.n == 0 }

// Clear drops every item, keeping the ring for reuse.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head, q.n = 0, 0
}

// grow doubles the ring and unrolls the live window to the front.
func (q *Queue[T]) grow() {
	size := 2 * len(q.buf)
	if size < minQueueCap {
		size = minQueueCap
	}
	buf := make([]T, size)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf, q.head = buf, 0
}
