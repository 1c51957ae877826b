// File: harness/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer role: feeds a ring at its own pace, either with a
// consecutive pattern or with uniform random values, optionally
// polling Full for backpressure instead of overwriting.

package harness

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/momentics/ringio/affinity"
	"github.com/momentics/ringio/api"
)

// WriterConfig tunes pacing and backpressure for a Writer.
type WriterConfig struct {
	// Interval is the pause after each write. Zero writes flat out.
	Interval time.Duration

	// Backpressure makes the writer wait for free space instead of
	// overwriting unread elements.
	Backpressure bool

	// PollInterval is the sleep between Full checks while waiting.
	PollInterval time.Duration

	// Min and Max bound the values produced by RandomWrite.
	Min, Max int

	// CPU pins the writer's OS thread when non-negative.
	CPU int
}

// DefaultWriterConfig returns the pacing used by the demo binaries.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		Interval:     time.Millisecond,
		PollInterval: time.Millisecond,
		Min:          1,
		Max:          1000,
		CPU:          -1,
	}
}

// Writer feeds a ring at its own pace. A Writer drives one goroutine;
// concurrency safety of the underlying ring is the ring's concern.
type Writer struct {
	id   uuid.UUID
	ring api.Ring[int]
	cfg  WriterConfig
	rng  *rand.Rand
	log  zerolog.Logger
}

// NewWriter builds a writer over r. A nil ring is refused.
func NewWriter(r api.Ring[int], cfg WriterConfig, log zerolog.Logger) (*Writer, error) {
	if r == nil {
		return nil, api.ErrNilRing
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Millisecond
	}
	if cfg.Max < cfg.Min {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	id := uuid.New()
	return &Writer{
		id:   id,
		ring: r,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:  log.With().Str("writer", id.String()).Logger(),
	}, nil
}

// ID returns the writer's correlation ID.
func (w *Writer) ID() uuid.UUID {
	return w.id
}

// PatternWrite emits n consecutive values starting at seed, honoring
// pacing and backpressure. Returns the count written, which is n
// unless ctx ended early.
func (w *Writer) PatternWrite(ctx context.Context, seed, n int) int {
	w.pin()
	count := 0
	for i := 0; i < n; i++ {
		if !w.write(ctx, seed+i) {
			break
		}
		count++
		if !sleepCtx(ctx, w.cfg.Interval) {
			break
		}
	}
	w.log.Debug().Int("seed", seed).Int("count", count).Msg("pattern write done")
	return count
}

// RandomWrite emits uniform values in [Min, Max] until ctx ends.
// Returns the count written.
func (w *Writer) RandomWrite(ctx context.Context) int {
	w.pin()
	count := 0
	for {
		v := w.cfg.Min + w.rng.Intn(w.cfg.Max-w.cfg.Min+1)
		if !w.write(ctx, v) {
			break
		}
		count++
		if !sleepCtx(ctx, w.cfg.Interval) {
			break
		}
	}
	w.log.Debug().Int("count", count).Msg("random write done")
	return count
}

// write applies backpressure when configured, then writes v. It
// returns false when ctx ended before the value could be written.
func (w *Writer) write(ctx context.Context, v int) bool {
	if w.cfg.Backpressure {
		for w.ring.Full() {
			if !sleepCtx(ctx, w.cfg.PollInterval) {
				return false
			}
		}
	} else if ctx.Err() != nil {
		return false
	}
	w.ring.Write(v)
	return true
}

// pin applies the configured CPU affinity; failure is logged, not fatal.
func (w *Writer) pin() {
	if w.cfg.CPU < 0 {
		return
	}
	if err := affinity.SetAffinity(w.cfg.CPU); err != nil {
		w.log.Warn().Err(err).Msgf("cpu affinity warning for cpu %d", w.cfg.CPU)
	}
}
