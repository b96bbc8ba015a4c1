package kernel

// Counter is the tight-loop kernel: a fixed-trip-count scalar increment
// loop with no early exit. It isolates bare loop overhead, so timing
// differences between ports reflect interpreter or compiler loop cost
// rather than algorithmic complexity.
type Counter struct {
	count int64
	limit int64
}

// NewCounter creates a Counter with count and limit at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// SetLimit stores the iteration target. No validation is performed: any
// representable value is accepted. A negative limit yields zero iterations
// on the next Run, which is the defined behavior rather than an error.
func (c *Counter) SetLimit(v int64) {
	c.limit = v
}

// Run increments the accumulator once per iteration, looping a counter
// from 0 up to limit (exclusive), and returns the resulting accumulator.
//
// The accumulator is cumulative: it is never reset between calls, so two
// consecutive runs with the same limit leave it at twice the limit. The
// returned value keeps the work observable on every call path.
func (c *Counter) Run() int64 {
	for i := int64(0); i < c.limit; i++ {
		c.count++
	}
	return c.count
}

// Count returns the current accumulator value. Pure read, no side effects.
func (c *Counter) Count() int64 {
	return c.count
}
