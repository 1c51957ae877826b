// File: ring/flag.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Full-flag ring buffer: exact-capacity storage plus an explicit full
// marker, since head == tail is otherwise ambiguous between empty and
// full.

package ring

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]    = (*FlagRing[any])(nil)
	_ api.Instrumented = (*FlagRing[any])(nil)
)

// FlagRing is a mutex-guarded ring buffer storing exactly Cap()
// elements. The full marker must be kept consistent with every mutation
// of the cursors.
type FlagRing[T any] struct {
	mu    sync.Mutex
	data  []T // exactly the nominal capacity
	head  int // next write index
	tail  int // next read index
	full  bool
	stats api.RingStats
}

// NewFlagRing allocates a full-flag ring with the given nominal
// capacity. Capacity below one panics.
func NewFlagRing[T any](capacity int) *FlagRing[T] {
	if capacity < 1 {
		panic("ringio: capacity must be positive")
	}
	return &FlagRing[T]{data: make([]T, capacity)}
}

// next advances an index one slot, wrapping at capacity.
// Callers must hold mu.
func (r *FlagRing[T]) next(i int) int {
	return (i + 1) % len(r.data)
}

// Write stores v at head, dropping the oldest element first when the
// ring is full. After the cursors move, head and tail can only coincide
// when the ring has become exactly full, so the marker is recomputed
// from that equality.
func (r *FlagRing[T]) Write(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.head] = v
	if r.full {
		r.tail = r.next(r.tail)
		r.stats.Overwrites++
	}
	r.head = r.next(r.head)
	r.full = r.head == r.tail
	r.stats.Writes++
}

// Read returns the oldest unread element; ok is false when empty.
// A successful read can never leave the ring full.
func (r *FlagRing[T]) Read() (v T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.head == r.tail && !r.full {
		return v, false
	}
	v = r.data[r.tail]
	r.tail = r.next(r.tail)
	r.full = false
	r.stats.Reads++
	return v, true
}

// Clear discards all unread elements in one step.
func (r *FlagRing[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tail = r.head
	r.full = false
	r.stats.Clears++
}

// Full returns the marker directly.
func (r *FlagRing[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.full
}

// Empty reports whether no unread elements remain.
func (r *FlagRing[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.head == r.tail && !r.full
}

// Len returns the number of unconsumed writes.
func (r *FlagRing[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.data)
	}
	if r.head >= r.tail {
		return r.head - r.tail
	}
	// head has wrapped past the physical end but not yet caught tail
	return len(r.data) + r.head - r.tail
}

// Cap returns the nominal capacity. The storage length is fixed at
// construction, so no lock is needed here.
func (r *FlagRing[T]) Cap() int {
	return len(r.data)
}

// Stats returns a snapshot of the operation counters.
func (r *FlagRing[T]) Stats() api.RingStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
