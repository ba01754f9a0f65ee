// Package seq provides the sequential containers under benchmark behind one
// linear-access abstraction: a slice-backed vector, a doubly linked list and
// a ring-buffer deque.
package seq

import "iter"

// Sequence is the surface the benchmark policies drive. Scans are linear from
// the front; positional mutation is expressed through predicates so each
// container keeps its natural traversal.
type Sequence[T any] interface {
	Len() int

	// Reserve pre-allocates capacity for n elements where the container has
	// a capacity concept; otherwise it is a no-op.
	Reserve(n int)

	PushBack(v T)
	PushFront(v T)

	// InsertBefore inserts v before the first element matching pred, or at
	// the back when nothing matches.
	InsertBefore(pred func(T) bool, v T)

	// RemoveFirst erases the first element matching pred and reports whether
	// anything was erased.
	RemoveFirst(pred func(T) bool) bool

	// Find reports whether any element matches pred.
	Find(pred func(T) bool) bool

	Sort(less func(a, b T) bool)

	// Clear tears the container down, releasing element storage.
	Clear()

	// All yields the elements front to back.
	All() iter.Seq[T]
}

var (
	_ Sequence[int] = (*Vector[int])(nil)
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = (*Deque[int])(nil)
)
