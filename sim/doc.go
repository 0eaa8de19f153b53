// Package sim provides the core tick-driven simulation of a pacing controller
// exercised against a synthetic heart.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - pacing.go: PacingEngine, the AOO and VVT pulse decisions
//   - heart.go: HeartSimulator, intrinsic beats racing the pacer
//   - rng.go: PseudoRandomSource, the table-backed stimulus stream
//   - simulator.go: the tick loop that merges both sources and owns all counters
//
// # Collaborators
//
// The core only talks to the outside world through small interfaces:
//   - Clock: advances wall time by about one tick (busy, sleep, no-op, virtual)
//   - EventSink: receives pulse and intrinsic-beat notifications
//
// Implementations of EventSink that leave the process live in sub-packages
// (sim/mqtt). Decision traces are recorded with sim/trace.
//
// # Determinism
//
// A run is fully determined by its SimConfig. Replaying with the same mode,
// parameters and seed produces the same decisions tick for tick.
package sim
