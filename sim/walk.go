package sim

import (
	"github.com/katalvlaran/crosswalk/sample"
)

// Walk simulates one pedestrian traversing a city grid from the upper-left
// corner of the first cell until the grid's extent is exhausted along both
// axes. The clock is monotonically non-decreasing; waits accumulate only
// where a signal wait is actually accrued.
type Walk struct {
	src    *sample.Source
	walker *Walker
	grid   *Grid

	clock     float64
	totalWait float64
	waits     int
}

// Result is the terminal output of one walk: the walker's patience echoed
// for correlation, the wait statistics, and the total travel time. MeanWait
// is meaningful only when MeanValid is true (Waits > 0) — the ratio is never
// formed from a zero count.
type Result struct {
	Patience  float64
	TotalWait float64
	Waits     int
	MeanWait  float64
	MeanValid bool
	Clock     float64
}

type walkConfig struct {
	walker *Walker
	grid   *Grid
}

// WalkOption injects an explicit collaborator at construction.
type WalkOption func(*walkConfig)

// WalkWalker overrides the sampled walker.
func WalkWalker(w *Walker) WalkOption { return func(c *walkConfig) { c.walker = w } }

// WalkGrid overrides the sampled grid.
func WalkGrid(g *Grid) WalkOption { return func(c *walkConfig) { c.grid = g } }

// NewWalk constructs a walk, sampling a walker and a grid unless injected.
// Returns ErrNilSource or a constructor error from the sampled collaborators.
// Complexity: O(len(opts)).
func NewWalk(src *sample.Source, opts ...WalkOption) (*Walk, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	var c walkConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.walker == nil {
		w, err := NewWalker(src)
		if err != nil {
			return nil, err
		}
		c.walker = w
	}
	if c.grid == nil {
		g, err := NewGrid(src)
		if err != nil {
			return nil, err
		}
		c.grid = g
	}
	return &Walk{src: src, walker: c.walker, grid: c.grid}, nil
}

// Done reports whether the walk has terminated (extent reached on both axes).
func (w *Walk) Done() bool {
	return w.grid.boundary == BoundaryBoth
}

// Step performs exactly one decision step, dispatched on the current corner:
//
//   - upper_left: cross the block along a random axis (or the unfinished one
//     once a boundary is reached); no signal decision is possible here.
//   - lower_left / upper_right: when the guarded axis (y resp. x) is still
//     open, offer the walker the signal wait; if accepted, accrue the wait
//     and cross the signal. Otherwise detour across the block to lower_right.
//   - lower_right: a signal crossing is mandatory; pick the open axis, or the
//     smaller wait (x wins ties), and accrue that wait unconditionally.
//
// Returns ErrWalkDone when called after termination.
// Complexity: O(1).
func (w *Walk) Step() error {
	if w.Done() {
		return ErrWalkDone
	}

	switch w.grid.corner {
	case UpperLeft:
		var axis Axis
		switch w.grid.boundary {
		case BoundaryX:
			axis = AxisY
		case BoundaryY:
			axis = AxisX
		default:
			axis = AxisY
			if w.src.Bool() {
				axis = AxisX
			}
		}
		if axis == AxisX {
			w.crossBlock(AxisX, UpperRight)
		} else {
			w.crossBlock(AxisY, LowerLeft)
		}

	case LowerLeft:
		if w.grid.boundary != BoundaryY {
			wait := w.grid.CurrentSignal().TimeUntilCanCross(w.clock, AxisY, w.walker.velocity)
			if w.walker.WouldWait(wait) {
				w.crossSignal(AxisY, wait)
				return nil
			}
		}
		w.crossBlock(AxisX, LowerRight)

	case UpperRight:
		if w.grid.boundary != BoundaryX {
			wait := w.grid.CurrentSignal().TimeUntilCanCross(w.clock, AxisX, w.walker.velocity)
			if w.walker.WouldWait(wait) {
				w.crossSignal(AxisX, wait)
				return nil
			}
		}
		w.crossBlock(AxisY, LowerRight)

	default: // lower_right: both directions lead off-grid, so no detour option
		sig := w.grid.CurrentSignal()
		waitX := sig.TimeUntilCanCross(w.clock, AxisX, w.walker.velocity)
		waitY := sig.TimeUntilCanCross(w.clock, AxisY, w.walker.velocity)

		axis := AxisX
		switch w.grid.boundary {
		case BoundaryX:
			axis = AxisY
		case BoundaryY:
			axis = AxisX
		default:
			if waitY < waitX {
				axis = AxisY
			}
		}
		wait := waitX
		if axis == AxisY {
			wait = waitY
		}
		w.crossSignal(axis, wait)
	}

	return nil
}

// crossBlock walks the current block along axis and lands on dest. The grid
// does not advance; the walker stays within the same cell. No wait accrues.
func (w *Walk) crossBlock(axis Axis, dest Corner) {
	w.clock += w.grid.block.CrossingTime(axis, w.walker.velocity)
	w.grid.corner = dest
}

// crossSignal accrues the given wait, advances the grid along axis, then adds
// the crossing time of the signal at the post-advance corner. Slot
// propagation guarantees that signal is the one just crossed, so the charge
// matches the geometry the walker actually traversed.
func (w *Walk) crossSignal(axis Axis, wait float64) {
	w.clock += wait
	w.totalWait += wait
	w.waits++
	_ = w.grid.Advance(axis) // axis is a validated enum here
	w.clock += w.grid.CurrentSignal().CrossingTime(axis, w.walker.velocity)
}

// Run advances the walk until termination. Guaranteed to finish for positive
// finite extents: every signal crossing strictly increases progress along
// one axis, and block crossings strictly approach the mandatory lower_right
// corner within a cell.
func (w *Walk) Run() error {
	for !w.Done() {
		if err := w.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Clock returns the simulated time elapsed since the walk began.
func (w *Walk) Clock() float64 { return w.clock }

// CumulativeWait returns the total time spent waiting at signals.
func (w *Walk) CumulativeWait() float64 { return w.totalWait }

// WaitCount returns the number of signal crossings at which a wait was
// accrued (including zero-length waits at mandatory crossings).
func (w *Walk) WaitCount() int { return w.waits }

// Walker returns the walk's pedestrian.
func (w *Walk) Walker() *Walker { return w.walker }

// Grid returns the walk's city map.
func (w *Walk) Grid() *Grid { return w.grid }

// MeanWait returns the mean wait per signal waited at, and whether the value
// is defined (false when no wait was ever accrued).
func (w *Walk) MeanWait() (float64, bool) {
	if w.waits == 0 {
		return 0, false
	}
	return w.totalWait / float64(w.waits), true
}

// Result snapshots the trial output contract for a (typically terminated)
// walk.
func (w *Walk) Result() Result {
	mean, ok := w.MeanWait()
	return Result{
		Patience:  w.walker.patience,
		TotalWait: w.totalWait,
		Waits:     w.waits,
		MeanWait:  mean,
		MeanValid: ok,
		Clock:     w.clock,
	}
}
