// Package sample provides the named closed intervals every simulation
// attribute is drawn from, and a deterministic, injectable sampler.
//
// What:
//
//   - Interval is a closed [Lo, Hi] range with containment checks.
//   - Bounds names one Interval per sampled attribute class (crossing
//     length, signal duration, sidewalk length, velocity, patience,
//     grid extent) and validates the crossability precondition.
//   - Source draws uniformly from those intervals. It is constructed from
//     an explicit seed and passed into every entity constructor — there is
//     no ambient global generator anywhere in the module.
//
// Why:
//
//   - Determinism: same seed ⇒ identical trials across platforms.
//   - Parallel fan-out: Derive creates independent per-trial streams, so
//     workers never contend on (or correlate through) a shared generator.
//   - Testability: every draw can be bypassed by an explicit override at
//     entity construction; the sampler only fills the gaps.
//
// Errors:
//
//   - ErrInvalidInterval: an interval has Lo > Hi or a non-finite bound.
//   - ErrUncrossableBounds: the bounds admit a signal phase too short to
//     cross at the slowest admissible velocity.
//
// Concurrency:
//
//   - A Source is NOT goroutine-safe. Use Derive to create an independent
//     stream per worker or per trial.
package sample
