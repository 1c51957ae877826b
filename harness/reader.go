// File: harness/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consumer role: drains a ring with sleep-and-retry polling and an
// external done signal, collecting every observed value in arrival
// order.

package harness

import (
	"context"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/momentics/ringio/affinity"
	"github.com/momentics/ringio/api"
)

// ReaderConfig tunes polling for a Reader.
type ReaderConfig struct {
	// PollInterval is the sleep between Read attempts on an empty ring.
	PollInterval time.Duration

	// CPU pins the reader's OS thread when non-negative.
	CPU int
}

// DefaultReaderConfig returns the polling used by the demo binaries.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		PollInterval: time.Millisecond,
		CPU:          -1,
	}
}

// Reader drains a ring and collects every observed value in arrival
// order. A Reader drives one goroutine; run Drain to completion before
// inspecting Values.
type Reader struct {
	id   uuid.UUID
	ring api.Ring[int]
	cfg  ReaderConfig
	log  zerolog.Logger
	read *queue.Queue
}

// NewReader builds a reader over r. A nil ring is refused.
func NewReader(r api.Ring[int], cfg ReaderConfig, log zerolog.Logger) (*Reader, error) {
	if r == nil {
		return nil, api.ErrNilRing
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Millisecond
	}
	id := uuid.New()
	return &Reader{
		id:   id,
		ring: r,
		cfg:  cfg,
		log:  log.With().Str("reader", id.String()).Logger(),
		read: queue.New(),
	}, nil
}

// ID returns the reader's correlation ID.
func (r *Reader) ID() uuid.UUID {
	return r.id
}

// Drain consumes the ring until ctx is done and the ring reports
// empty; ctx is the external "producer finished" signal the contract
// leaves to callers. Values arriving between cancellation and the
// final empty check are still collected. Returns the number read.
func (r *Reader) Drain(ctx context.Context) int {
	r.pin()
	n := 0
	for {
		v, ok := r.ring.Read()
		if ok {
			r.read.Add(v)
			n++
			continue
		}
		if ctx.Err() != nil && r.ring.Empty() {
			r.log.Debug().Int("count", n).Msg("drain done")
			return n
		}
		time.Sleep(r.cfg.PollInterval)
	}
}

// Values returns the collected values in the order they were read.
func (r *Reader) Values() []int {
	out := make([]int, r.read.Length())
	for i := range out {
		out[i] = r.read.Get(i).(int)
	}
	return out
}

// pin applies the configured CPU affinity; failure is logged, not fatal.
func (r *Reader) pin() {
	if r.cfg.CPU < 0 {
		return
	}
	if err := affinity.SetAffinity(r.cfg.CPU); err != nil {
		r.log.Warn().Err(err).Msgf("cpu affinity warning for cpu %d", r.cfg.CPU)
	}
}
