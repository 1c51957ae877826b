// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics telemetry with atomic snapshot reads
//   - Debug hooks and probe registration
//
// Rings publish their operation counters here so demo binaries and
// long-running harnesses can dump a consistent view on demand.
package control
