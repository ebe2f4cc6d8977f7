package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/listentry"
	. "github.com/onsi/gomega"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertSame asserts that two nodes are the same node.
func AssertSame[T any](t testing.TB, a, b *listentry.Node[T]) {
	t.Helper()

	if a != b {
		t.Fatalf("expected node %p to be node %p", a, b)
	}
}

// AssertNil asserts that a node is nil.
func AssertNil[T any](t testing.TB, n *listentry.Node[T]) {
	t.Helper()

	if n != nil {
		t.Fatalf("expected nil node, got '%v'", n.Payload)
	}
}

// AssertDetached asserts that n is a self-loop.
func AssertDetached[T any](t testing.TB, n *listentry.Node[T]) {
	t.Helper()

	if n.Next() != n || n.Prev() != n {
		t.Fatalf("expected node '%v' to be detached", n.Payload)
	}
}

// Payloads collects the payloads of the list anchored at head in forward order.
func Payloads[T any](head *listentry.Node[T]) []T {
	var payloads []T
	for p := range head.Payloads() {
		payloads = append(payloads, p)
	}
	return payloads
}

// ExpectValidRing asserts that every link in the list anchored at head is mirrored
// by its neighbor and that walking either direction returns to head after Count steps.
func ExpectValidRing[T any](g *WithT, head *listentry.Node[T]) {
	n := head.Count()

	{
		p := head
		for i := 0; i <= n; i++ {
			g.Expect(p.Next().Prev()).To(BeIdenticalTo(p))
			p = p.Next()
		}
		g.Expect(p).To(BeIdenticalTo(head))
	}

	{
		p := head
		for i := 0; i <= n; i++ {
			g.Expect(p.Prev().Next()).To(BeIdenticalTo(p))
			p = p.Prev()
		}
		g.Expect(p).To(BeIdenticalTo(head))
	}

	g.Expect(head.IsEmpty()).To(Equal(n == 0))
}
