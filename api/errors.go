// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNilRing      = fmt.Errorf("ring is nil")
	ErrNotSupported = fmt.Errorf("operation not supported")
)
