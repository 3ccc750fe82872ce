package priority

import "github.com/davidvella/dsa/array"

// options defines the construction options shared by all backends.
type options struct {
	capacity int // Initial storage capacity
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity sets the initial storage capacity. Array backed queues
// allocate it up front; the ordered queue uses it as a sizing hint and the
// list queue ignores it.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: array.DefaultCapacity,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
