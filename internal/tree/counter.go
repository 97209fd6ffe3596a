package tree

import "sync/atomic"

// Counter hands out instance numbers for tree ids. One counter is shared by
// every tree on a page; tests create their own or call Reset.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current value and advances the counter.
func (c *Counter) Next() int {
	return int(c.n.Add(1) - 1)
}

// Peek returns the value the next call to Next will hand out.
func (c *Counter) Peek() int {
	return int(c.n.Load())
}

// Reset rewinds the counter to zero.
func (c *Counter) Reset() {
	c.n.Store(0)
}
