package sim

import (
	"math"
	"testing"

	"github.com/katalvlaran/crosswalk/sample"
)

// walkFixture assembles the reference scenario shared by the step tests:
// velocity 2, 3×5 extents, a 7×13 initial block, and a signal with 11s/17s
// phases and 19m/23m crossings parked at the given corner with the given
// initial phase. The walk's clock starts at 28s, matching the reference
// suite's mid-walk snapshots.
func walkFixture(t *testing.T, corner Corner, boundary Boundary, patience, phase float64) *Walk {
	t.Helper()
	src := sample.New(77)

	blk, err := NewBlock(src, BlockXLength(7), BlockYLength(13))
	if err != nil {
		t.Fatalf("NewBlock error: %v", err)
	}
	g, err := NewGrid(src, GridXExtent(3), GridYExtent(5), GridBlock(blk))
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	g.corner = corner
	g.boundary = boundary
	if corner != UpperLeft {
		sig, serr := NewSignal(src,
			SignalXLength(19), SignalYLength(23),
			SignalXDuration(11), SignalYDuration(17),
			SignalPhase(phase))
		if serr != nil {
			t.Fatalf("NewSignal error: %v", serr)
		}
		g.signals[corner] = sig
	}

	wkr, err := NewWalker(src, WalkerVelocity(2), WalkerPatience(patience))
	if err != nil {
		t.Fatalf("NewWalker error: %v", err)
	}
	w, err := NewWalk(src, WalkWalker(wkr), WalkGrid(g))
	if err != nil {
		t.Fatalf("NewWalk error: %v", err)
	}
	w.clock = 28
	return w
}

func stepOK(t *testing.T, w *Walk) {
	t.Helper()
	if err := w.Step(); err != nil {
		t.Fatalf("Step error: %v", err)
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// TestWalk_Step_UpperLeft covers the block-only corner: the finished axis is
// avoided, no wait accrues, and the block is not replaced.
func TestWalk_Step_UpperLeft(t *testing.T) {
	w := walkFixture(t, UpperLeft, BoundaryY, 99, 0)
	blk := w.grid.CurrentBlock()
	stepOK(t, w)
	if w.grid.Corner() != UpperRight {
		t.Errorf("corner = %v; want upper_right (y is finished)", w.grid.Corner())
	}
	if !approx(w.clock, 31.5) { // 28 + 7/2
		t.Errorf("clock = %v; want 31.5", w.clock)
	}
	if w.waits != 0 || w.totalWait != 0 {
		t.Error("block crossings must not accrue waits")
	}
	if w.grid.CurrentBlock() != blk {
		t.Error("block crossings must not replace the block")
	}

	w = walkFixture(t, UpperLeft, BoundaryX, 99, 0)
	stepOK(t, w)
	if w.grid.Corner() != LowerLeft {
		t.Errorf("corner = %v; want lower_left (x is finished)", w.grid.Corner())
	}
	if !approx(w.clock, 34.5) { // 28 + 13/2
		t.Errorf("clock = %v; want 34.5", w.clock)
	}

	// No boundary yet: the axis is random but the destination must be one of
	// the two block exits and the block must survive.
	w = walkFixture(t, UpperLeft, BoundaryNone, 99, 0)
	blk = w.grid.CurrentBlock()
	stepOK(t, w)
	if c := w.grid.Corner(); c != UpperRight && c != LowerLeft {
		t.Errorf("corner = %v; want upper_right or lower_left", c)
	}
	if w.grid.CurrentBlock() != blk {
		t.Error("block crossings must not replace the block")
	}
}

// TestWalk_Step_LowerLeft_Waits: phase 0 puts the signal mid x-phase, so the
// y crossing costs the remaining 11s; a patient walker waits and crosses.
func TestWalk_Step_LowerLeft_Waits(t *testing.T) {
	w := walkFixture(t, LowerLeft, BoundaryNone, 99, 0)
	blk := w.grid.CurrentBlock()
	stepOK(t, w)
	if w.grid.Corner() != UpperLeft {
		t.Errorf("corner = %v; want upper_left after crossing along y", w.grid.Corner())
	}
	if !approx(w.clock, 50.5) { // 28 + 11 wait + 23/2 crossing
		t.Errorf("clock = %v; want 50.5", w.clock)
	}
	if !approx(w.totalWait, 11) || w.waits != 1 {
		t.Errorf("wait stats = (%v, %d); want (11, 1)", w.totalWait, w.waits)
	}
	if w.grid.CurrentBlock() == blk {
		t.Error("signal crossings must advance into a fresh block")
	}
	if w.grid.Progress(AxisY) != 2 {
		t.Errorf("progress y = %d; want 2", w.grid.Progress(AxisY))
	}
}

// TestWalk_Step_LowerLeft_Declines: an impatient walker detours across the
// block to lower_right instead.
func TestWalk_Step_LowerLeft_Declines(t *testing.T) {
	w := walkFixture(t, LowerLeft, BoundaryNone, 0, 0)
	blk := w.grid.CurrentBlock()
	stepOK(t, w)
	if w.grid.Corner() != LowerRight {
		t.Errorf("corner = %v; want lower_right", w.grid.Corner())
	}
	if !approx(w.clock, 31.5) { // 28 + 7/2
		t.Errorf("clock = %v; want 31.5", w.clock)
	}
	if w.waits != 0 || w.totalWait != 0 {
		t.Error("a declined wait must not accrue")
	}
	if w.grid.CurrentBlock() != blk {
		t.Error("detour must stay on the same block")
	}
}

// TestWalk_Step_LowerLeft_YFinished: with y done the signal is never
// consulted; the walker crosses the block to lower_right.
func TestWalk_Step_LowerLeft_YFinished(t *testing.T) {
	w := walkFixture(t, LowerLeft, BoundaryY, 99, 1) // phase 1: y crossable now
	stepOK(t, w)
	if w.grid.Corner() != LowerRight {
		t.Errorf("corner = %v; want lower_right", w.grid.Corner())
	}
	if !approx(w.clock, 31.5) {
		t.Errorf("clock = %v; want 31.5", w.clock)
	}
	if w.waits != 0 {
		t.Error("no signal decision may happen once y is finished")
	}
}

// TestWalk_Step_UpperRight mirrors lower_left with the axes swapped.
func TestWalk_Step_UpperRight(t *testing.T) {
	// x finished: block crossing along y to lower_right.
	w := walkFixture(t, UpperRight, BoundaryX, 99, 0)
	stepOK(t, w)
	if w.grid.Corner() != LowerRight {
		t.Errorf("corner = %v; want lower_right", w.grid.Corner())
	}
	if !approx(w.clock, 34.5) { // 28 + 13/2
		t.Errorf("clock = %v; want 34.5", w.clock)
	}

	// Impatient walker facing a 17s wait (phase 1 ⇒ y phase just started).
	w = walkFixture(t, UpperRight, BoundaryNone, 0, 1)
	stepOK(t, w)
	if w.grid.Corner() != LowerRight {
		t.Errorf("corner = %v; want lower_right", w.grid.Corner())
	}
	if !approx(w.clock, 34.5) {
		t.Errorf("clock = %v; want 34.5", w.clock)
	}
	if w.waits != 0 {
		t.Error("a declined wait must not accrue")
	}

	// Patient walker: waits 17s, crosses 19m along x, lands upper_left.
	w = walkFixture(t, UpperRight, BoundaryNone, 99, 1)
	stepOK(t, w)
	if w.grid.Corner() != UpperLeft {
		t.Errorf("corner = %v; want upper_left", w.grid.Corner())
	}
	if !approx(w.clock, 54.5) { // 28 + 17 + 19/2
		t.Errorf("clock = %v; want 54.5", w.clock)
	}
	if !approx(w.totalWait, 17) || w.waits != 1 {
		t.Errorf("wait stats = (%v, %d); want (17, 1)", w.totalWait, w.waits)
	}
	if w.grid.Progress(AxisX) != 2 {
		t.Errorf("progress x = %d; want 2", w.grid.Progress(AxisX))
	}
}

// TestWalk_Step_LowerRight covers the mandatory crossing: finished axes force
// the other direction; otherwise the smaller wait wins with x on ties, and
// the wait is accrued even when it is zero.
func TestWalk_Step_LowerRight(t *testing.T) {
	// x finished, phase 0 ⇒ wait the 11s x phase out, cross y, land upper_right.
	w := walkFixture(t, LowerRight, BoundaryX, 99, 0)
	stepOK(t, w)
	if w.grid.Corner() != UpperRight {
		t.Errorf("corner = %v; want upper_right", w.grid.Corner())
	}
	if !approx(w.clock, 50.5) { // 28 + 11 + 23/2
		t.Errorf("clock = %v; want 50.5", w.clock)
	}
	if !approx(w.totalWait, 11) || w.waits != 1 {
		t.Errorf("wait stats = (%v, %d); want (11, 1)", w.totalWait, w.waits)
	}

	// y finished, phase 1 ⇒ wait the 17s y phase out, cross x, land lower_left.
	w = walkFixture(t, LowerRight, BoundaryY, 99, 1)
	stepOK(t, w)
	if w.grid.Corner() != LowerLeft {
		t.Errorf("corner = %v; want lower_left", w.grid.Corner())
	}
	if !approx(w.clock, 54.5) { // 28 + 17 + 19/2
		t.Errorf("clock = %v; want 54.5", w.clock)
	}

	// No boundary, phase 0 ⇒ x is crossable immediately: zero wait, but the
	// crossing still counts.
	w = walkFixture(t, LowerRight, BoundaryNone, 0, 0)
	stepOK(t, w)
	if w.grid.Corner() != LowerLeft {
		t.Errorf("corner = %v; want lower_left", w.grid.Corner())
	}
	if !approx(w.clock, 37.5) { // 28 + 0 + 19/2
		t.Errorf("clock = %v; want 37.5", w.clock)
	}
	if w.waits != 1 || w.totalWait != 0 {
		t.Errorf("wait stats = (%v, %d); want (0, 1)", w.totalWait, w.waits)
	}

	// No boundary, phase 1 ⇒ y crossable immediately.
	w = walkFixture(t, LowerRight, BoundaryNone, 0, 1)
	stepOK(t, w)
	if w.grid.Corner() != UpperRight {
		t.Errorf("corner = %v; want upper_right", w.grid.Corner())
	}
	if !approx(w.clock, 39.5) { // 28 + 0 + 23/2
		t.Errorf("clock = %v; want 39.5", w.clock)
	}

	// Phase 1.9 ⇒ waits are 1.7 (x) vs 12.7 (y): x wins, lands lower_left.
	w = walkFixture(t, LowerRight, BoundaryNone, 0, 1.9)
	stepOK(t, w)
	if w.grid.Corner() != LowerLeft {
		t.Errorf("corner = %v; want lower_left", w.grid.Corner())
	}
	if !approx(w.totalWait, 1.7) {
		t.Errorf("totalWait = %v; want 1.7", w.totalWait)
	}
	if !approx(w.clock, 39.2) { // 28 + 1.7 + 19/2
		t.Errorf("clock = %v; want 39.2", w.clock)
	}

	// Phase 0.9 ⇒ x needs 1.1+17, y opens in 1.1: y wins, lands upper_right.
	w = walkFixture(t, LowerRight, BoundaryNone, 0, 0.9)
	stepOK(t, w)
	if w.grid.Corner() != UpperRight {
		t.Errorf("corner = %v; want upper_right", w.grid.Corner())
	}
	if !approx(w.totalWait, 1.1) {
		t.Errorf("totalWait = %v; want 1.1", w.totalWait)
	}
	if !approx(w.clock, 40.6) { // 28 + 1.1 + 23/2
		t.Errorf("clock = %v; want 40.6", w.clock)
	}
}

// TestWalk_Run_Terminates runs full walks and checks the terminal contract:
// boundary both, progress at the extents, monotone statistics.
func TestWalk_Run_Terminates(t *testing.T) {
	src := sample.New(123)
	g, err := NewGrid(src, GridXExtent(3), GridYExtent(5))
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	w, err := NewWalk(src, WalkGrid(g))
	if err != nil {
		t.Fatalf("NewWalk error: %v", err)
	}
	if err = w.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !w.Done() {
		t.Fatal("walk must be done after Run")
	}
	if g.Progress(AxisX) != 3 || g.Progress(AxisY) != 5 {
		t.Errorf("progress = {%d,%d}; want {3,5}", g.Progress(AxisX), g.Progress(AxisY))
	}
	if w.CumulativeWait() < 0 {
		t.Error("cumulative wait must be non-negative")
	}
	if err = w.Step(); err != ErrWalkDone {
		t.Errorf("Step after termination = %v; want ErrWalkDone", err)
	}
}

// TestWalk_Run_TerminationProperty: random configurations always terminate
// within 4·extentX·extentY steps, and the clock never decreases.
func TestWalk_Run_TerminationProperty(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		src := sample.New(seed)
		w, err := NewWalk(src)
		if err != nil {
			t.Fatalf("seed %d: NewWalk error: %v", seed, err)
		}
		limit := int(4 * w.grid.Extent(AxisX) * w.grid.Extent(AxisY))
		prevClock := 0.0
		steps := 0
		for !w.Done() {
			if steps > limit {
				t.Fatalf("seed %d: walk exceeded %d steps", seed, limit)
			}
			if err = w.Step(); err != nil {
				t.Fatalf("seed %d: Step error: %v", seed, err)
			}
			if w.clock < prevClock {
				t.Fatalf("seed %d: clock decreased %v -> %v", seed, prevClock, w.clock)
			}
			prevClock = w.clock
			steps++
		}
		if w.waits == 0 {
			t.Errorf("seed %d: a full walk must cross at least one signal", seed)
		}
	}
}

// TestWalk_MeanWait covers the undefined-ratio contract.
func TestWalk_MeanWait(t *testing.T) {
	w := walkFixture(t, LowerRight, BoundaryNone, 99, 0)
	if _, ok := w.MeanWait(); ok {
		t.Error("mean wait must be undefined before any crossing")
	}
	stepOK(t, w)
	mean, ok := w.MeanWait()
	if !ok {
		t.Fatal("mean wait must be defined after a signal crossing")
	}
	if !approx(mean, w.totalWait/float64(w.waits)) {
		t.Errorf("mean = %v; want %v", mean, w.totalWait/float64(w.waits))
	}

	res := w.Result()
	if !res.MeanValid || !approx(res.MeanWait, mean) || res.Waits != w.waits {
		t.Errorf("Result %+v inconsistent with accessors", res)
	}
	if res.Patience != w.walker.patience {
		t.Errorf("Result.Patience = %v; want %v", res.Patience, w.walker.patience)
	}
}

// TestNewWalk_Validation covers nil source handling.
func TestNewWalk_Validation(t *testing.T) {
	if _, err := NewWalk(nil); err != ErrNilSource {
		t.Errorf("got %v; want ErrNilSource", err)
	}
}
