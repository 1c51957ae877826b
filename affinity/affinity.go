// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations live in separate files guarded by build tags.

package affinity

import "runtime"

// SetAffinity pins the calling goroutine to a single OS thread and that
// thread to the given logical CPU on supported platforms. The goroutine
// stays locked so the pin follows it for the rest of its life.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}
