// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Strategy selection for ring buffer construction.

package ring

import (
	"fmt"

	"github.com/momentics/ringio/api"
)

// Strategy selects the bookkeeping scheme used to tell a full ring from
// an empty one. The strategy is fixed per instance for its whole life.
type Strategy int

const (
	// GuardSlot allocates one spare slot so head can never lap tail.
	GuardSlot Strategy = iota
	// FullFlag uses exactly Cap slots plus a boolean full marker.
	FullFlag
)

// String returns the strategy name for logs and metrics keys.
func (s Strategy) String() string {
	switch s {
	case GuardSlot:
		return "guard-slot"
	case FullFlag:
		return "full-flag"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// New builds a ring of the requested strategy and nominal capacity.
// Capacity below one or an unknown strategy panics.
func New[T any](capacity int, s Strategy) api.Ring[T] {
	switch s {
	case GuardSlot:
		return NewGuardRing[T](capacity)
	case FullFlag:
		return NewFlagRing[T](capacity)
	default:
		panic("ringio: unknown strategy")
	}
}
