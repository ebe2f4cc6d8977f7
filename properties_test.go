package listentry_test

import (
	"github.com/mgnsk/listentry"
	. "github.com/mgnsk/listentry/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func expectLinked[T any](head *listentry.Node[T]) {
	for e := range head.All() {
		Expect(e.Next().Prev()).To(BeIdenticalTo(e))
		Expect(e.Prev().Next()).To(BeIdenticalTo(e))
	}
	Expect(head.Next().Prev()).To(BeIdenticalTo(head))
	Expect(head.Prev().Next()).To(BeIdenticalTo(head))
}

var _ = Describe("a new node", func() {
	DescribeTable("is its own empty list",
		func(payload interface{}) {
			n := listentry.New(payload)

			Expect(n.IsEmpty()).To(BeTrue())
			Expect(n.Next()).To(BeIdenticalTo(n))
			Expect(n.Prev()).To(BeIdenticalTo(n))
		},
		Entry("int payload", 1),
		Entry("string payload", "value"),
		Entry("struct payload", struct{ id int }{id: 7}),
	)

	Specify("has no elements", func() {
		head := listentry.New(0)

		Expect(head.First()).To(BeNil())
		Expect(head.Last()).To(BeNil())
		Expect(head.PopFirst()).To(BeNil())
		Expect(head.PopLast()).To(BeNil())
		Expect(head.Count()).To(BeZero())
	})
})

var _ = Describe("splicing", func() {
	var head *listentry.Node[string]

	BeforeEach(func() {
		head = listentry.New("head")
	})

	AfterEach(func() {
		expectLinked(head)
	})

	When("nodes are inserted", func() {
		Specify("the latest is first", func() {
			head.Insert(listentry.New("a"))
			head.Insert(listentry.New("b"))

			Expect(Payloads(head)).To(Equal([]string{"b", "a"}))
		})
	})

	When("nodes are appended", func() {
		Specify("they keep their order", func() {
			head.Append(listentry.New("a"))
			head.Append(listentry.New("b"))

			Expect(Payloads(head)).To(Equal([]string{"a", "b"}))
		})
	})

	When("an inserted node is removed", func() {
		Specify("both nodes return to their previous state", func() {
			head.Append(listentry.New("a"))
			next, prev, empty := head.Next(), head.Prev(), head.IsEmpty()

			x := listentry.New("x")
			head.Insert(x)
			x.Remove()

			Expect(head.Next()).To(BeIdenticalTo(next))
			Expect(head.Prev()).To(BeIdenticalTo(prev))
			Expect(head.IsEmpty()).To(Equal(empty))
			Expect(x.Next()).To(BeIdenticalTo(x))
			Expect(x.Prev()).To(BeIdenticalTo(x))
		})
	})
})

var _ = Describe("counting", func() {
	DescribeTable("matches the traversal length",
		func(inserts, appends int) {
			head := listentry.New(0)
			for i := 0; i < inserts; i++ {
				head.Insert(listentry.New(i))
			}
			for i := 0; i < appends; i++ {
				head.Append(listentry.New(i))
			}

			n := 0
			for range head.All() {
				n++
			}

			Expect(head.Count()).To(Equal(inserts + appends))
			Expect(head.Count()).To(Equal(n))
		},
		Entry("empty", 0, 0),
		Entry("inserts only", 5, 0),
		Entry("appends only", 0, 5),
		Entry("mixed", 3, 4),
	)
})

var _ = Describe("exhausting a list", func() {
	var head *listentry.Node[int]

	BeforeEach(func() {
		head = listentry.New(0)
		for i := 1; i <= 5; i++ {
			head.Append(listentry.New(i))
		}
	})

	AfterEach(func() {
		Expect(head.IsEmpty()).To(BeTrue())
	})

	Specify("popFirst yields payloads in order", func() {
		var result []int
		for e := head.PopFirst(); e != nil; e = head.PopFirst() {
			result = append(result, e.Payload)
		}

		Expect(result).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(head.PopFirst()).To(BeNil())
	})

	Specify("popLast yields payloads in reverse order", func() {
		var result []int
		for e := head.PopLast(); e != nil; e = head.PopLast() {
			result = append(result, e.Payload)
		}

		Expect(result).To(Equal([]int{5, 4, 3, 2, 1}))
		Expect(head.PopLast()).To(BeNil())
	})
})

var _ = Describe("first and last", func() {
	Specify("are symmetric", func() {
		head := listentry.New(0)
		for i := 1; i <= 3; i++ {
			head.Append(listentry.New(i))
		}

		Expect(head.First().Payload).To(Equal(1))
		Expect(head.Last().Payload).To(Equal(3))

		first, err := head.RemoveFirst()
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Payload).To(Equal(1))

		last, err := head.RemoveLast()
		Expect(err).NotTo(HaveOccurred())
		Expect(last.Payload).To(Equal(3))

		Expect(Payloads(head)).To(Equal([]int{2}))
		Expect(head.Count()).To(Equal(1))
		expectLinked(head)
	})

	Specify("removing from an empty list fails", func() {
		head := listentry.New(0)

		_, err := head.RemoveFirst()
		Expect(err).To(MatchError(listentry.ErrOutOfRange))

		_, err = head.RemoveLast()
		Expect(err).To(MatchError(listentry.ErrOutOfRange))
	})
})
