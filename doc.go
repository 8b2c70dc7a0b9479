// Package crosswalk estimates, via repeated stochastic trials, how a
// pedestrian's wait-tolerance at signalized crosswalks affects total delay
// while traversing a randomly generated city grid.
//
// 🚶 What is crosswalk?
//
//	A small, deterministic-by-seed simulation library that brings together:
//		• sample     — named closed intervals and an injected, seedable sampler
//		• sim        — the engine: Signal phase machine, Block, Walker,
//		               lazily materialized Grid, and the Walk step loop
//		• montecarlo — N independent trials on parallel workers + summary stats
//		• cmd/crosswalk — CLI: YAML bounds, CSV export, scatter plot
//
// ✨ Why choose crosswalk?
//
//   - Deterministic – every sampled attribute is overridable, every random
//     draw flows through an explicit Source; same seed ⇒ same trials
//   - Honest invariants – phase always in [0,2), adjacent segments always
//     share edge lengths, walks always terminate
//   - Parallel-safe – trials share no mutable state; per-trial RNG streams
//
// A walk starts at the upper-left corner of the first cell and ends once the
// grid's extent has been exhausted along both axes. At each corner the walker
// either waits for a signal (when the wait fits its patience) or detours
// across a sidewalk block. The trial output is the walker's patience paired
// with the mean wait per signal actually waited at.
//
//	go get github.com/katalvlaran/crosswalk
package crosswalk
