package seq

import "iter"

type listNode[T any] struct {
	next, prev *listNode[T]
	val        T
}

// List is a doubly linked list with a sentinel root, in the shape of
// container/list but generic over the element type so elements are stored
// unboxed.
type List[T any] struct {
	root listNode[T]
	size int
}

func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *List[T]) Len() int { return l.size }

// Reserve is a no-op: a list has no capacity concept.
func (l *List[T]) Reserve(int) {}

func (l *List[T]) insertAfter(at *listNode[T], v T) {
	n := &listNode[T]{val: v, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.size++
}

func (l *List[T]) PushBack(v T)  { l.insertAfter(l.root.prev, v) }
func (l *List[T]) PushFront(v T) { l.insertAfter(&l.root, v) }

func (l *List[T]) InsertBefore(pred func(T) bool, v T) {
	for n := l.root.next; n != &l.root; n = n.next {
		if pred(n.val) {
			l.insertAfter(n.prev, v)
			return
		}
	}
	l.PushBack(v)
}

func (l *List[T]) RemoveFirst(pred func(T) bool) bool {
	for n := l.root.next; n != &l.root; n = n.next {
		if pred(n.val) {
			n.prev.next = n.next
			n.next.prev = n.prev
			n.next = nil
			n.prev = nil
			l.size--
			return true
		}
	}
	return false
}

func (l *List[T]) Find(pred func(T) bool) bool {
	for n := l.root.next; n != &l.root; n = n.next {
		if pred(n.val) {
			return true
		}
	}
	return false
}

// Sort relinks nodes with a merge sort, the native ordering primitive for a
// linked list: elements are never copied between nodes.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	head := l.root.next
	l.root.prev.next = nil // break the ring

	head = mergeSort(head, less)

	// restore prev links and the sentinel ring
	prev := &l.root
	for n := head; n != nil; n = n.next {
		n.prev = prev
		prev.next = n
		prev = n
	}
	prev.next = &l.root
	l.root.prev = prev
}

func mergeSort[T any](head *listNode[T], less func(a, b T) bool) *listNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	// split at the midpoint via slow/fast walkers
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return merge(mergeSort(head, less), mergeSort(second, less), less)
}

func merge[T any](a, b *listNode[T], less func(x, y T) bool) *listNode[T] {
	var head listNode[T]
	tail := &head
	for a != nil && b != nil {
		if less(b.val, a.val) {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

func (l *List[T]) Clear() {
	// unlink every node so each is individually collectable
	n := l.root.next
	for n != &l.root {
		next := n.next
		n.next = nil
		n.prev = nil
		var zero T
		n.val = zero
		n = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
