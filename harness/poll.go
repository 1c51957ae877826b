// File: harness/poll.go
// Author: momentics <momentics@gmail.com>
//
// Shared cancellation-aware sleep for the polling roles.

package harness

import (
	"context"
	"time"
)

// sleepCtx pauses for d, returning false once ctx is done. A
// non-positive d only checks for cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
