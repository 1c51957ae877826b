// File: harness/harness_test.go
// Author: momentics <momentics@gmail.com>
//
// Role tests over the fake ring (exact emission checks) and over the
// real rings (end-to-end producer/consumer coordination).

package harness

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/ringio/api"
	"github.com/momentics/ringio/fake"
	"github.com/momentics/ringio/ring"
)

func quietWriterConfig() WriterConfig {
	cfg := DefaultWriterConfig()
	cfg.Interval = 0
	return cfg
}

func quietReaderConfig() ReaderConfig {
	cfg := DefaultReaderConfig()
	cfg.PollInterval = 100 * time.Microsecond
	return cfg
}

func TestNewWriterNilRing(t *testing.T) {
	if _, err := NewWriter(nil, DefaultWriterConfig(), zerolog.Nop()); err != api.ErrNilRing {
		t.Errorf("NewWriter(nil) err = %v, want ErrNilRing", err)
	}
	if _, err := NewReader(nil, DefaultReaderConfig(), zerolog.Nop()); err != api.ErrNilRing {
		t.Errorf("NewReader(nil) err = %v, want ErrNilRing", err)
	}
}

func TestPatternWriteEmission(t *testing.T) {
	fr := fake.NewRing[int](100)
	w, err := NewWriter(fr, quietWriterConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if n := w.PatternWrite(context.Background(), 20, 10); n != 10 {
		t.Fatalf("PatternWrite wrote %d values, want 10", n)
	}
	got := fr.Pending()
	if len(got) != 10 {
		t.Fatalf("fake holds %d values, want 10", len(got))
	}
	for i, v := range got {
		if want := 20 + i; v != want {
			t.Errorf("pending[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestRandomWriteBounds(t *testing.T) {
	fr := fake.NewRing[int](1000)
	cfg := quietWriterConfig()
	cfg.Interval = 100 * time.Microsecond
	cfg.Min, cfg.Max = 5, 9
	w, err := NewWriter(fr, cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	n := w.RandomWrite(ctx)
	if n == 0 {
		t.Fatal("RandomWrite emitted nothing before the deadline")
	}
	for i, v := range fr.Pending() {
		if v < 5 || v > 9 {
			t.Errorf("value[%d] = %d outside [5, 9]", i, v)
		}
	}
}

func TestWriterCancelledBeforeStart(t *testing.T) {
	fr := fake.NewRing[int](10)
	w, err := NewWriter(fr, quietWriterConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if n := w.PatternWrite(ctx, 0, 5); n != 0 {
		t.Errorf("cancelled PatternWrite wrote %d values, want 0", n)
	}
}

func TestWriterIDsDistinct(t *testing.T) {
	fr := fake.NewRing[int](10)
	w1, _ := NewWriter(fr, quietWriterConfig(), zerolog.Nop())
	w2, _ := NewWriter(fr, quietWriterConfig(), zerolog.Nop())
	if w1.ID() == w2.ID() {
		t.Error("two writers share a correlation ID")
	}
}

func TestReaderDrainCollectsInOrder(t *testing.T) {
	r := ring.NewGuardRing[int](4)
	rd, err := NewReader(r, quietReaderConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		r.Write(i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already done: Drain must still empty the ring first
	if n := rd.Drain(ctx); n != 3 {
		t.Fatalf("Drain read %d values, want 3", n)
	}
	got := rd.Values()
	for i, v := range got {
		if v != i {
			t.Errorf("Values()[%d] = %d, want %d", i, v, i)
		}
	}
	if !r.Empty() {
		t.Error("ring not empty after Drain")
	}
}

// TestProducerConsumerEndToEnd pairs a backpressure writer with a
// draining reader over a small real ring. Every value must arrive
// exactly once, in order.
func TestProducerConsumerEndToEnd(t *testing.T) {
	for _, s := range []ring.Strategy{ring.GuardSlot, ring.FullFlag} {
		t.Run(s.String(), func(t *testing.T) {
			const total = 500
			buf := ring.New[int](8, s)

			wcfg := quietWriterConfig()
			wcfg.Backpressure = true
			wcfg.PollInterval = 100 * time.Microsecond
			w, err := NewWriter(buf, wcfg, zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			rd, err := NewReader(buf, quietReaderConfig(), zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}

			ctx, done := context.WithCancel(context.Background())
			drained := make(chan int, 1)
			go func() {
				drained <- rd.Drain(ctx)
			}()

			if n := w.PatternWrite(context.Background(), 0, total); n != total {
				t.Fatalf("writer emitted %d values, want %d", n, total)
			}
			done()

			select {
			case n := <-drained:
				if n != total {
					t.Fatalf("reader drained %d values, want %d", n, total)
				}
			case <-time.After(10 * time.Second):
				t.Fatal("timeout waiting for reader")
			}

			got := rd.Values()
			for i, v := range got {
				if v != i {
					t.Fatalf("Values()[%d] = %d, want %d: order or duplication broken", i, v, i)
				}
			}
		})
	}
}
