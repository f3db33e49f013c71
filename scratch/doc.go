// Package scratch provides the reusable working containers borrowed by the
// graph algorithms: a LIFO Stack, a FIFO Queue and a MinHeap keyed by an
// int64 priority.
//
// The containers know nothing about graphs. A driver allocates them once and
// passes them by pointer into every algorithm call; each algorithm clears the
// container on entry and leaves it empty on return, so the same instance can
// be reused across commands without reallocation.
//
// Complexity:
//
//   - Stack.Push/Pop, Queue.Enqueue/Dequeue: O(1) amortized.
//   - MinHeap.Push/Pop: O(log n).
//   - Clear: O(1); capacity is retained.
//
// None of the containers are safe for concurrent use.
package scratch
