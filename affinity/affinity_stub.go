//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import (
	"fmt"

	"github.com/momentics/ringio/api"
)

// setAffinityPlatform is a stub for platforms without thread affinity.
func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: cpu pinning: %w", api.ErrNotSupported)
}
