package listentry

import "iter"

// Direction is a traversal direction.
type Direction int

// Traversal directions.
const (
	// Forward follows successor links starting from the first element.
	Forward Direction = iota
	// Backward follows predecessor links starting from the last element.
	Backward
)

// Cursor walks the list anchored at a head node.
// The walk is undefined if the list is modified while in progress.
type Cursor[T any] struct {
	head    *Node[T]
	current *Node[T]
	dir     Direction
}

// NewCursor creates a cursor positioned before the first element in direction dir.
func NewCursor[T any](head *Node[T], dir Direction) *Cursor[T] {
	c := &Cursor[T]{
		head: head,
		dir:  dir,
	}
	c.Reset()
	return c
}

// Reset restarts the walk.
func (c *Cursor[T]) Reset() {
	c.current = c.step(c.head)
}

// Next returns the next node of the walk.
// It returns false when the walk arrives back at the head.
func (c *Cursor[T]) Next() (*Node[T], bool) {
	if c.current == c.head {
		return nil, false
	}
	e := c.current
	c.current = c.step(e)
	return e, true
}

func (c *Cursor[T]) step(n *Node[T]) *Node[T] {
	if c.dir == Backward {
		return n.prev
	}
	return n.next
}

// All returns an iterator over the elements in forward order.
// The yielded node may be removed by the loop body.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for p := n.next; p != n; {
			next := p.next
			if !yield(p) {
				return
			}
			p = next
		}
	}
}

// Backward returns an iterator over the elements in backward order.
// The yielded node may be removed by the loop body.
func (n *Node[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for p := n.prev; p != n; {
			prev := p.prev
			if !yield(p) {
				return
			}
			p = prev
		}
	}
}

// Payloads returns an iterator over the element payloads in forward order.
func (n *Node[T]) Payloads() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range n.All() {
			if !yield(p.Payload) {
				return
			}
		}
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
func (n *Node[T]) Do(f func(e *Node[T]) bool) {
	for e := range n.All() {
		if !f(e) {
			return
		}
	}
}
