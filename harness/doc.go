// Package harness
// Author: momentics <momentics@gmail.com>
//
// Producer and consumer roles for exercising rings outside the core.
//
// The core never blocks; writers and readers here implement the
// caller-side coordination the contract leaves open: sleep-and-retry
// backpressure against Full, drain loops polling Empty, and an external
// done signal to terminate a drain. Each role carries a UUID for log
// correlation and can optionally pin itself to a CPU.
package harness
