// File: fake/ring.go
// Author: momentics <momentics@gmail.com>
//
// Test double for api.Ring: an unbounded FIFO that never overwrites, so
// harness tests can assert exactly what was written. Full is advisory
// only, computed against the declared capacity.

package fake

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a slice-backed api.Ring for tests. Unlike the real rings it
// grows without bound; Write never drops an element.
type Ring[T any] struct {
	mu       sync.Mutex
	vals     []T
	capacity int
}

// NewRing creates a fake ring reporting the given nominal capacity.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{capacity: capacity}
}

// Write appends v. The fake never discards elements.
func (r *Ring[T]) Write(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = append(r.vals, v)
}

// Read pops the oldest element; ok is false when empty.
func (r *Ring[T]) Read() (v T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.vals) == 0 {
		return v, false
	}
	v = r.vals[0]
	r.vals = r.vals[1:]
	return v, true
}

// Clear drops all pending elements.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = nil
}

// Full reports Len() >= Cap(); writes still succeed past capacity.
func (r *Ring[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vals) >= r.capacity
}

// Empty reports whether no elements are pending.
func (r *Ring[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vals) == 0
}

// Len returns the number of pending elements.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vals)
}

// Cap returns the declared nominal capacity.
func (r *Ring[T]) Cap() int {
	return r.capacity
}

// Pending returns a copy of the not-yet-read elements in write order.
func (r *Ring[T]) Pending() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.vals))
	copy(out, r.vals)
	return out
}
