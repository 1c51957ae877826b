// File: ring/property_test.go
// Author: momentics <momentics@gmail.com>
//
// Randomized operation sequences checked against a plain slice model.
// Both strategies must agree with the model after every step.

package ring

import (
	"math/rand"
	"testing"
)

func TestRingPropertyBased(t *testing.T) {
	const capacity = 7
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				rng := rand.New(rand.NewSource(seed))
				r := s.mk(capacity)
				model := make([]int, 0, capacity)

				for i := 0; i < 5000; i++ {
					switch op := rng.Intn(100); {
					case op < 45: // write
						v := rng.Intn(100000)
						r.Write(v)
						model = append(model, v)
						if len(model) > capacity {
							model = model[1:]
						}
					case op < 90: // read
						v, ok := r.Read()
						if ok != (len(model) > 0) {
							t.Fatalf("seed %d step %d: Read ok = %v, model holds %d", seed, i, ok, len(model))
						}
						if ok {
							if v != model[0] {
								t.Fatalf("seed %d step %d: Read = %d, model head %d", seed, i, v, model[0])
							}
							model = model[1:]
						}
					default: // clear
						r.Clear()
						model = model[:0]
					}

					if got, want := r.Len(), len(model); got != want {
						t.Fatalf("seed %d step %d: Len = %d, model %d", seed, i, got, want)
					}
					if got, want := r.Empty(), len(model) == 0; got != want {
						t.Fatalf("seed %d step %d: Empty = %v, model %v", seed, i, got, want)
					}
					if got, want := r.Full(), len(model) == capacity; got != want {
						t.Fatalf("seed %d step %d: Full = %v, model %v", seed, i, got, want)
					}
				}
			}
		})
	}
}

// TestStrategiesAgree feeds the same operation stream to both
// strategies and requires identical observable behavior.
func TestStrategiesAgree(t *testing.T) {
	const capacity = 5
	guard := NewGuardRing[int](capacity)
	flag := NewFlagRing[int](capacity)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		switch op := rng.Intn(100); {
		case op < 50:
			v := rng.Intn(1 << 20)
			guard.Write(v)
			flag.Write(v)
		case op < 95:
			gv, gok := guard.Read()
			fv, fok := flag.Read()
			if gok != fok || gv != fv {
				t.Fatalf("step %d: guard Read = (%d, %v), flag Read = (%d, %v)", i, gv, gok, fv, fok)
			}
		default:
			guard.Clear()
			flag.Clear()
		}
		if guard.Len() != flag.Len() || guard.Full() != flag.Full() || guard.Empty() != flag.Empty() {
			t.Fatalf("step %d: observers diverged: guard (%d,%v,%v) flag (%d,%v,%v)",
				i, guard.Len(), guard.Full(), guard.Empty(), flag.Len(), flag.Full(), flag.Empty())
		}
	}
}
