// Package gen builds deterministic synthetic basket datasets for tests,
// examples and benchmarks.
//
// Two generators are provided:
//
//   - Random — baskets of uniform random size over a synthetic vocabulary;
//     same seed ⇒ identical dataset on every platform.
//   - Planted — Random plus a known itemset injected into a chosen fraction
//     of baskets, so mining tests can assert exact recovery of a pattern
//     with a known support floor.
//
// Design contract (strict):
//   - Determinism: no time-based randomness; seed==0 falls back to a fixed
//     default stream.
//   - Safety: never panic; sentinel errors on invalid parameters.
//   - Output obeys the dataset invariants: unique ascending ids per basket,
//     one transaction per (member, date).
package gen
