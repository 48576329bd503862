// Package rng centralizes deterministic random generation for the
// procedural layout and massing generators (§4.5, §4.8).
//
// Goals, carried over from the teacher's tsp/rng.go:
//   - Determinism: same seed => identical output sequence, platform-independent.
//   - Encapsulation: a single RNG type; no time-based sources hidden anywhere.
//   - Safety: no panics; construction always succeeds.
//
// The spec requires Mulberry32, a specific small 32-bit generator (not
// Go's math/rand), because its output sequence must be bit-identical to
// any other Mulberry32 implementation seeded the same way — cityfab's
// bit-stability property (§8) depends on the generator's exact algorithm,
// not just "a seeded PRNG". DeriveSeed below reuses the teacher's
// SplitMix64-style avalanche mix to turn a parcel id (+ level offset) into
// an independent Mulberry32 stream for per-parcel massing (§4.8).
package rng
