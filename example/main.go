package main

import (
	"github.com/mgnsk/listentry"
	"github.com/mgnsk/listentry/list"
)

type job struct {
	name  string
	entry listentry.Node[*job]
}

func newJob(name string) *job {
	j := &job{name: name}
	j.entry.Init(j)
	return j
}

func main() {
	// The head sentinel carries no job.
	pending := listentry.New[*job](nil)

	for _, name := range []string{"fetch", "parse", "store"} {
		pending.Append(&newJob(name).entry)
	}

	// Urgent work goes to the front.
	pending.Insert(&newJob("auth").entry)

	println("pending:", pending.Count())

	for e := pending.PopFirst(); e != nil; e = pending.PopFirst() {
		println("running", e.Payload.name)
	}

	// A bounded history keeps the most recent jobs.
	history := list.New[*job](list.WithCapacity(2))

	for _, name := range []string{"one", "two", "three"} {
		if evicted := history.PushBack(&newJob(name).entry); evicted != nil {
			println("forgetting", evicted.Payload.name)
		}
	}

	for e := range history.All() {
		println("history", e.Payload.name)
	}
}
