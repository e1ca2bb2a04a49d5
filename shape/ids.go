package shape

import "sync/atomic"

// Allocator hands out unique integer ids to shapes constructed without an
// explicit id. The counter is owned by the Allocator rather than kept as
// package state so that independent collections (and tests) can run their
// own sequences.
type Allocator struct {
	counter atomic.Int64
}

// NewAllocator creates an Allocator whose first issued id is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NextID increments the counter and returns its new value. Safe for
// concurrent use; ids within one Allocator are distinct and strictly
// increasing.
func (a *Allocator) NextID() int {
	return int(a.counter.Add(1))
}
