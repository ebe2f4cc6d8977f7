/*
Package pool recycles listentry node storage.
*/
package pool

import (
	"sync"

	"github.com/mgnsk/listentry"
)

// Pool is a set of reusable detached nodes.
//
// The zero value is ready to use.
type Pool[T any] struct {
	pool sync.Pool
}

// Get returns a detached node holding payload.
func (p *Pool[T]) Get(payload T) *listentry.Node[T] {
	n, ok := p.pool.Get().(*listentry.Node[T])
	if !ok {
		return listentry.New(payload)
	}

	return n.Init(payload)
}

// Put unlinks n from its list and releases it to the pool.
// n must not be used after Put.
func (p *Pool[T]) Put(n *listentry.Node[T]) {
	n.Remove()

	var zero T
	n.Payload = zero

	p.pool.Put(n)
}

// Drain unlinks every element of the list anchored at head and releases it to the pool.
func (p *Pool[T]) Drain(head *listentry.Node[T]) {
	for e := head.PopFirst(); e != nil; e = head.PopFirst() {
		p.Put(e)
	}
}
