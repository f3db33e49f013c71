package scratch

// Stack is a slice-backed LIFO container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. ok is false when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Clear drops every item, keeping the backing array for reuse.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
