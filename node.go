/*
Package listentry implements an intrusive circular doubly linked list.

Every node is a valid empty list on its own. A node used as the anchor of a list
is called the head; the head's successor is the first element and its predecessor is the last.
*/
package listentry

import "fmt"

// Node is a list node carrying a payload.
//
// A node must be created with New or initialized with Init before use
// and must always be referenced by pointer.
type Node[T any] struct {
	next, prev *Node[T]
	Payload    T
}

// New creates a detached node.
func New[T any](payload T) *Node[T] {
	n := &Node[T]{}
	return n.Init(payload)
}

// Init sets the payload and resets n to a detached node.
// n must not be linked to other nodes.
func (n *Node[T]) Init(payload T) *Node[T] {
	n.Payload = payload
	n.next = n
	n.prev = n
	return n
}

// Next returns the successor of n. A detached node returns itself.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor of n. A detached node returns itself.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Insert links item right after n.
// item must be detached.
func (n *Node[T]) Insert(item *Node[T]) {
	s := n.next
	n.next = item
	item.prev = n
	s.prev = item
	item.next = s
}

// Append links item right before n, making it the last element when n is a head.
// item must be detached.
func (n *Node[T]) Append(item *Node[T]) {
	n.prev.Insert(item)
}

// Remove unlinks n from its list. Removing a detached node is a no-op.
func (n *Node[T]) Remove() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
}

// IsEmpty reports whether n is detached.
func (n *Node[T]) IsEmpty() bool {
	return n.next == n
}

// Count returns the number of other nodes in the list by walking it.
func (n *Node[T]) Count() int {
	count := 0
	for p := n.next; p != n; p = p.next {
		count++
	}
	return count
}

// First returns the first element of the list or nil.
func (n *Node[T]) First() *Node[T] {
	if n.IsEmpty() {
		return nil
	}
	return n.next
}

// Last returns the last element of the list or nil.
func (n *Node[T]) Last() *Node[T] {
	if n.IsEmpty() {
		return nil
	}
	return n.prev
}

// RemoveFirst unlinks and returns the first element.
// It returns ErrOutOfRange if the list is empty.
func (n *Node[T]) RemoveFirst() (*Node[T], error) {
	if e := n.PopFirst(); e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("RemoveFirst: %w", ErrOutOfRange)
}

// RemoveLast unlinks and returns the last element.
// It returns ErrOutOfRange if the list is empty.
func (n *Node[T]) RemoveLast() (*Node[T], error) {
	if e := n.PopLast(); e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("RemoveLast: %w", ErrOutOfRange)
}

// PopFirst unlinks and returns the first element or nil if the list is empty.
func (n *Node[T]) PopFirst() *Node[T] {
	if n.IsEmpty() {
		return nil
	}
	e := n.next
	e.Remove()
	return e
}

// PopLast unlinks and returns the last element or nil if the list is empty.
func (n *Node[T]) PopLast() *Node[T] {
	if n.IsEmpty() {
		return nil
	}
	e := n.prev
	e.Remove()
	return e
}
