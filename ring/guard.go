// File: ring/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Guard-slot ring buffer: one spare storage slot keeps head from ever
// catching tail, so fullness needs no auxiliary flag.

package ring

import (
	"sync"

	"github.com/momentics/ringio/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]    = (*GuardRing[any])(nil)
	_ api.Instrumented = (*GuardRing[any])(nil)
)

// GuardRing is a mutex-guarded ring buffer holding Cap()+1 physical
// slots. head == tail always means empty; next(head) == tail always
// means full. The two conditions cannot coincide because the spare slot
// forces the overwrite path before head could lap tail.
type GuardRing[T any] struct {
	mu    sync.Mutex
	data  []T // nominal capacity plus one guard slot
	head  int // next write index
	tail  int // next read index
	stats api.RingStats
}

// NewGuardRing allocates a guard-slot ring with the given nominal
// capacity. Capacity below one panics.
func NewGuardRing[T any](capacity int) *GuardRing[T] {
	if capacity < 1 {
		panic("ringio: capacity must be positive")
	}
	return &GuardRing[T]{data: make([]T, capacity+1)}
}

// next advances an index one slot, wrapping at the physical end.
// Callers must hold mu.
func (r *GuardRing[T]) next(i int) int {
	return (i + 1) % len(r.data)
}

// full derives fullness from the raw cursors. Callers must hold mu;
// the public Full acquires the non-reentrant mutex itself.
func (r *GuardRing[T]) full() bool {
	return r.next(r.head) == r.tail
}

// Write stores v at head. A write into a full ring first advances tail
// so it keeps naming the oldest surviving element.
func (r *GuardRing[T]) Write(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.head] = v
	if r.full() {
		r.tail = r.next(r.tail)
		r.stats.Overwrites++
	}
	r.head = r.next(r.head)
	r.stats.Writes++
}

// Read returns the oldest unread element; ok is false when empty.
func (r *GuardRing[T]) Read() (v T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.head == r.tail {
		return v, false
	}
	v = r.data[r.tail]
	r.tail = r.next(r.tail)
	r.stats.Reads++
	return v, true
}

// Clear discards all unread elements in one step.
func (r *GuardRing[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tail = r.head
	r.stats.Clears++
}

// Full reports whether the next Write would drop an element.
func (r *GuardRing[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.full()
}

// Empty reports whether no unread elements remain.
func (r *GuardRing[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.head == r.tail
}

// Len returns the number of unconsumed writes.
func (r *GuardRing[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full() {
		return r.Cap()
	}
	if r.head >= r.tail {
		return r.head - r.tail
	}
	// head has wrapped past the physical end but not yet caught tail
	return len(r.data) + r.head - r.tail
}

// Cap returns the nominal capacity. The slice holds one extra guard
// slot that is never reported to callers. The storage length is fixed
// at construction, so no lock is needed here.
func (r *GuardRing[T]) Cap() int {
	return len(r.data) - 1
}

// Stats returns a snapshot of the operation counters.
func (r *GuardRing[T]) Stats() api.RingStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
