// Package sim implements the crosswalk simulation engine: the traffic-light
// phase state machine, the lazily materialized city grid, and the step-by-step
// walk that decides, at each grid corner, whether to wait for a signal or
// detour via sidewalk.
//
// What:
//
//   - Signal owns one intersection's alternating x/y crossing cycle. Its phase
//     is a pure function of absolute time, encoded in [0,2): [0,1) means the
//     x axis is crossable, [1,2) the y axis.
//   - Block is a static sidewalk segment with independent x and y lengths.
//   - Walker carries a velocity and a patience (the longest wait it tolerates
//     before preferring a detour).
//   - Grid is a conceptually infinite rectangular grid of corners, walked one
//     cell at a time. Blocks and Signals materialize only as visited; adjacent
//     segments always share matching edge lengths.
//   - Walk advances one decision step at a time until the grid's extent is
//     exhausted along both axes, accumulating wait statistics.
//
// Why:
//
//   - Monte Carlo estimation of how wait-tolerance affects total delay: run
//     many independent walks, correlate patience with mean wait per signal.
//
// Invariants:
//
//   - Signal phase lies in [0,2) for every non-negative time.
//   - Signals at corners of one cell share equal length on their common edge.
//   - A block created by advancing along an axis matches its predecessor's
//     length on the perpendicular axis (sidewalk cross-width continuity).
//   - The walker's corner is always one of the four cell corners, and every
//     walk over positive finite extents terminates.
//
// Errors:
//
//   - ErrNilSource: an entity constructor received a nil sampler.
//   - ErrInvalidAxis: a directional operation received an axis outside {X,Y}.
//   - ErrNonPositiveLength / ErrNonPositiveDuration / ErrNonPositiveVelocity /
//     ErrNonPositiveExtent / ErrNegativePatience: an explicit override broke
//     a positivity requirement of the data model.
//   - ErrPhaseRange: an explicit initial phase outside [0,2).
//   - ErrWalkDone: Step was called on a terminated walk.
//
// Concurrency:
//
//   - A Walk is advanced by a strictly sequential, single-threaded step loop.
//     Different Walk instances share no mutable state and may run on
//     independent workers, each with its own derived sample.Source.
package sim
