/*
Package list implements a counted doubly linked list of listentry nodes
with optional capacity overflow eviction.
*/
package list

import (
	"iter"

	"github.com/mgnsk/listentry"
)

// List is a doubly linked list anchored at a head sentinel node.
//
// The zero value is a ready to use empty list with unbounded capacity.
type List[V any] struct {
	head *listentry.Node[V]
	len  int
	cap  int
}

// New creates an empty list.
func New[V any](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[V]{cap: o.capacity}
}

func (l *List[V]) lazyInit() {
	if l.head == nil {
		var zero V
		l.head = listentry.New(zero)
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *listentry.Node[V] {
	if l.head == nil {
		return nil
	}
	return l.head.First()
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *listentry.Node[V] {
	if l.head == nil {
		return nil
	}
	return l.head.Last()
}

// PushBack inserts a detached element at the back of the list.
// If capacity is exceeded, the front element is removed and returned.
func (l *List[V]) PushBack(e *listentry.Node[V]) (front *listentry.Node[V]) {
	l.lazyInit()
	l.head.Append(e)
	l.len++

	if l.overflow() {
		return l.Remove(l.Front())
	}

	return nil
}

// PushFront inserts a detached element at the front of the list.
// If capacity is exceeded, the back element is removed and returned.
func (l *List[V]) PushFront(e *listentry.Node[V]) (back *listentry.Node[V]) {
	l.lazyInit()
	l.head.Insert(e)
	l.len++

	if l.overflow() {
		return l.Remove(l.Back())
	}

	return nil
}

// Remove an element from the list and return it.
func (l *List[V]) Remove(e *listentry.Node[V]) *listentry.Node[V] {
	e.Remove()
	l.len--
	return e
}

// Clear removes all elements from the list.
func (l *List[V]) Clear() {
	if l.head == nil {
		return
	}

	for !l.head.IsEmpty() {
		l.head.PopFirst()
	}

	l.len = 0
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *listentry.Node[V]) bool) {
	if l.head == nil {
		return
	}
	l.head.Do(f)
}

// All returns an iterator over the elements in forward order.
func (l *List[V]) All() iter.Seq[*listentry.Node[V]] {
	l.lazyInit()
	return l.head.All()
}

// Backward returns an iterator over the elements in backward order.
func (l *List[V]) Backward() iter.Seq[*listentry.Node[V]] {
	l.lazyInit()
	return l.head.Backward()
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *listentry.Node[V]) {
	if e == mark {
		return
	}

	e.Remove()
	mark.Insert(e)
}

// MoveBefore moves an element to its new position before mark.
// If mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *listentry.Node[V]) {
	if e == mark {
		return
	}

	e.Remove()
	mark.Append(e)
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *listentry.Node[V]) {
	l.MoveBefore(e, l.Front())
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *listentry.Node[V]) {
	l.MoveAfter(e, l.Back())
}

// Move moves element e forward or backwards by at most delta positions
// or until the element becomes the front or back element in the list.
func (l *List[V]) Move(e *listentry.Node[V], delta int) {
	if l.len == 0 {
		panic("list: invalid element")
	}

	if l.len == 1 && e != l.Front() {
		panic("list: invalid element")
	}

	mark := e

	switch {
	case delta == 0:
		return

	case delta > 0:
		back := l.Back()
		for i := 0; i < delta && mark != back; i++ {
			mark = mark.Next()
		}

		l.MoveAfter(e, mark)

	case delta < 0:
		front := l.Front()
		for i := 0; i > delta && mark != front; i-- {
			mark = mark.Prev()
		}

		l.MoveBefore(e, mark)
	}
}

func (l *List[V]) overflow() bool {
	return l.cap > 0 && l.len > l.cap
}
