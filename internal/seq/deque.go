package seq

import (
	"iter"
	"sort"

	"github.com/gammazero/deque"
)

// Deque adapts gammazero's ring-buffer deque to the Sequence surface.
type Deque[T any] struct {
	d deque.Deque[T]
}

func NewDeque[T any]() *Deque[T] { return &Deque[T]{} }

func (q *Deque[T]) Len() int      { return q.d.Len() }
func (q *Deque[T]) Reserve(n int) { q.d.Grow(n) }
func (q *Deque[T]) PushBack(v T)  { q.d.PushBack(v) }
func (q *Deque[T]) PushFront(v T) { q.d.PushFront(v) }

func (q *Deque[T]) InsertBefore(pred func(T) bool, v T) {
	if i := q.d.Index(pred); i >= 0 {
		q.d.Insert(i, v)
		return
	}
	q.d.PushBack(v)
}

func (q *Deque[T]) RemoveFirst(pred func(T) bool) bool {
	i := q.d.Index(pred)
	if i < 0 {
		return false
	}
	q.d.Remove(i)
	return true
}

func (q *Deque[T]) Find(pred func(T) bool) bool { return q.d.Index(pred) >= 0 }

// Sort orders elements in place through indexed access; the deque has no
// native sort primitive.
func (q *Deque[T]) Sort(less func(a, b T) bool) {
	sort.Sort(&dequeSorter[T]{d: &q.d, less: less})
}

type dequeSorter[T any] struct {
	d    *deque.Deque[T]
	less func(a, b T) bool
}

func (s *dequeSorter[T]) Len() int           { return s.d.Len() }
func (s *dequeSorter[T]) Less(i, j int) bool { return s.less(s.d.At(i), s.d.At(j)) }
func (s *dequeSorter[T]) Swap(i, j int) {
	a, b := s.d.At(i), s.d.At(j)
	s.d.Set(i, b)
	s.d.Set(j, a)
}

func (q *Deque[T]) Clear() { q.d.Clear() }

func (q *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.d.Len(); i++ {
			if !yield(q.d.At(i)) {
				return
			}
		}
	}
}
