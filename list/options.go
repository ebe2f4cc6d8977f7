package list

import "strconv"

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity int
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity: 0,
	}
}

// WithCapacity option configures the list with specified capacity.
// When exceeded, pushing an element evicts one from the opposite end.
//
// The zero values configures unbounded capacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("list: invalid capacity '" + strconv.Itoa(capacity) + "'")
		}
		opts.capacity = capacity
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
