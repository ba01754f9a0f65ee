package seq

import (
	"iter"
	"slices"
)

// Vector is the contiguous, slice-backed container.
type Vector[T any] struct {
	elems []T
}

func NewVector[T any]() *Vector[T] { return &Vector[T]{} }

func (v *Vector[T]) Len() int { return len(v.elems) }

func (v *Vector[T]) Reserve(n int) {
	if cap(v.elems) >= n {
		return
	}
	grown := make([]T, len(v.elems), n)
	copy(grown, v.elems)
	v.elems = grown
}

func (v *Vector[T]) PushBack(x T) { v.elems = append(v.elems, x) }

// PushFront shifts every element right by one. Filling through it is
// quadratic, which is exactly the asymmetry the front-fill scenario shows.
func (v *Vector[T]) PushFront(x T) { v.elems = slices.Insert(v.elems, 0, x) }

func (v *Vector[T]) InsertBefore(pred func(T) bool, x T) {
	i := slices.IndexFunc(v.elems, pred)
	if i < 0 {
		v.elems = append(v.elems, x)
		return
	}
	v.elems = slices.Insert(v.elems, i, x)
}

func (v *Vector[T]) RemoveFirst(pred func(T) bool) bool {
	i := slices.IndexFunc(v.elems, pred)
	if i < 0 {
		return false
	}
	v.elems = slices.Delete(v.elems, i, i+1)
	return true
}

func (v *Vector[T]) Find(pred func(T) bool) bool {
	return slices.IndexFunc(v.elems, pred) >= 0
}

func (v *Vector[T]) Sort(less func(a, b T) bool) {
	slices.SortFunc(v.elems, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

func (v *Vector[T]) Clear() { v.elems = nil }

func (v *Vector[T]) All() iter.Seq[T] { return slices.Values(v.elems) }
