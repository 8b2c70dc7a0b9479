// Package montecarlo runs batches of independent crosswalk walks and
// aggregates the per-trial outputs.
//
// What:
//
//   - Run executes N trials, each on its own derived sample stream, fanned
//     out over a bounded worker pool.
//   - Summarize reduces the trials to means and the Pearson correlation
//     between walker patience and mean wait per signal.
//
// Determinism:
//
//   - Trial k draws from base.Derive(k), so a given (seed, bounds) pair
//     yields byte-identical results for any worker count. Trials share no
//     mutable state; aborting mid-trial is not supported — only whole-trial
//     boundaries are observable.
//
// Errors:
//
//   - ErrNoTrials: a non-positive trial count.
//   - Bounds validation errors surface from package sample.
package montecarlo
