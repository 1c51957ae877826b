// Package ring
// Author: momentics <momentics@gmail.com>
//
// Mutex-guarded, fixed-capacity circular buffers with overwrite-on-full
// semantics, in two interchangeable strategies:
//
//   - GuardRing reserves one spare storage slot beyond the nominal
//     capacity, so head == tail always means empty and the cursors can
//     never collide ambiguously.
//   - FlagRing stores exactly the nominal capacity and keeps an explicit
//     full marker to disambiguate the head == tail case.
//
// Both satisfy api.Ring and behave identically under every sequence of
// operations; the guard-slot variant wastes one slot for simpler
// fullness logic, the flag variant pays an extra field kept in sync on
// every mutation. See guard.go and flag.go for implementation details.
package ring
