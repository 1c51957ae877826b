// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for fixed-capacity ring buffers with overwrite-on-full
// semantics. Implementations serialize every operation behind a single
// mutex, so any mix of producers and consumers observes a strict
// linearization of reads and writes.

package api

// Ring is a bounded circular buffer. The capacity is fixed at
// construction; writing into a full ring silently drops the oldest
// unread element. No operation blocks waiting for buffer state to
// change, so backpressure is the caller's concern.
type Ring[T any] interface {
	// Write inserts v unconditionally. When the ring is already full
	// the oldest unread element is discarded to make room. Write never
	// fails; overwrite is normal operation, not an error.
	Write(v T)

	// Read removes and returns the oldest unread element. ok is false
	// when the ring is empty; Read never blocks waiting for data.
	Read() (v T, ok bool)

	// Clear resets the ring to empty in one atomic step. Stored values
	// are only logically discarded, not erased.
	Clear()

	// Full reports whether the next Write would drop an element.
	Full() bool

	// Empty reports whether the ring holds no unread elements.
	Empty() bool

	// Len returns the number of writes not yet consumed,
	// always in [0, Cap()].
	Len() int

	// Cap returns the nominal capacity fixed at construction,
	// regardless of internal storage size.
	Cap() int
}

// Instrumented is implemented by rings that count their own operations.
type Instrumented interface {
	// Stats returns a snapshot of the operation counters.
	Stats() RingStats
}

// RingStats aggregates per-ring operation counters.
type RingStats struct {
	Writes     uint64
	Reads      uint64
	Overwrites uint64
	Clears     uint64
}
