// Package lazy provides a write-once value cell.
//
// Unlike sync.Once, a Value is only marked done when its initializer
// returns normally. If the initializer panics, the panic reaches the caller
// that triggered it and the next Get runs the initializer again.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Value holds a T computed on first use. The zero value is ready to use.
// A Value must not be copied after first use.
type Value[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	v    T
}

// Get returns the cached value, calling init to compute it if no call has
// completed yet. Concurrent callers block until the winner publishes.
// init must not call Get on the same Value.
func (c *Value[T]) Get(init func() T) T {
	if c.done.Load() {
		return c.v
	}
	return c.slow(init)
}

func (c *Value[T]) slow(init func() T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done.Load() {
		// Store only after init returns so a panic leaves the cell empty.
		v := init()
		c.v = v
		c.done.Store(true)
	}
	return c.v
}

// Loaded reports whether a value has been published.
func (c *Value[T]) Loaded() bool {
	return c.done.Load()
}
