package sim

import (
	"math"

	"github.com/katalvlaran/crosswalk/sample"
)

// Signal is one intersection's traffic light. Geometry and durations are
// immutable after construction; the phase is never stored — it is recomputed
// from absolute elapsed time on every query, so it cannot drift.
type Signal struct {
	xLength, yLength     float64 // crossing distances
	xDuration, yDuration float64 // seconds each phase lasts
	offset               float64 // seconds into the cycle at time zero
}

// signalConfig collects overrides before sampling fills the gaps.
// NaN marks "not overridden"; zero would be ambiguous for the phase.
type signalConfig struct {
	xLength, yLength     float64
	xDuration, yDuration float64
	phase                float64
}

// SignalOption overrides one sampled attribute at construction.
type SignalOption func(*signalConfig)

// SignalXLength overrides the x crossing distance.
func SignalXLength(v float64) SignalOption { return func(c *signalConfig) { c.xLength = v } }

// SignalYLength overrides the y crossing distance.
func SignalYLength(v float64) SignalOption { return func(c *signalConfig) { c.yLength = v } }

// SignalXDuration overrides the x phase duration.
func SignalXDuration(v float64) SignalOption { return func(c *signalConfig) { c.xDuration = v } }

// SignalYDuration overrides the y phase duration.
func SignalYDuration(v float64) SignalOption { return func(c *signalConfig) { c.yDuration = v } }

// SignalPhase overrides the phase at time zero; must lie in [0,2).
func SignalPhase(p float64) SignalOption { return func(c *signalConfig) { c.phase = p } }

// NewSignal constructs a Signal, sampling every attribute not overridden by
// an option. Returns ErrNilSource, ErrNonPositiveLength,
// ErrNonPositiveDuration, or ErrPhaseRange.
// Complexity: O(len(opts)).
func NewSignal(src *sample.Source, opts ...SignalOption) (*Signal, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	nan := math.NaN()
	c := signalConfig{xLength: nan, yLength: nan, xDuration: nan, yDuration: nan, phase: nan}
	for _, opt := range opts {
		opt(&c)
	}
	if math.IsNaN(c.xLength) {
		c.xLength = src.CrossingLength()
	}
	if math.IsNaN(c.yLength) {
		c.yLength = src.CrossingLength()
	}
	if math.IsNaN(c.xDuration) {
		c.xDuration = src.SignalDuration()
	}
	if math.IsNaN(c.yDuration) {
		c.yDuration = src.SignalDuration()
	}
	if math.IsNaN(c.phase) {
		c.phase = src.SignalPhase()
	}
	if !(c.xLength > 0) || !(c.yLength > 0) {
		return nil, ErrNonPositiveLength
	}
	if !(c.xDuration > 0) || !(c.yDuration > 0) {
		return nil, ErrNonPositiveDuration
	}
	if !(c.phase >= 0 && c.phase < 2) {
		return nil, ErrPhaseRange
	}
	return &Signal{
		xLength:   c.xLength,
		yLength:   c.yLength,
		xDuration: c.xDuration,
		yDuration: c.yDuration,
		offset:    phaseOffset(c.phase, c.xDuration, c.yDuration),
	}, nil
}

// phaseOffset converts an initial phase in [0,2) into seconds elapsed within
// the cycle at time zero.
func phaseOffset(phase, xDuration, yDuration float64) float64 {
	if phase < 1 {
		return xDuration * phase
	}
	return xDuration + yDuration*(phase-1)
}

// Length returns the crossing distance along a.
func (s *Signal) Length(a Axis) float64 {
	switch a {
	case AxisX:
		return s.xLength
	case AxisY:
		return s.yLength
	}
	panic("sim: invalid axis")
}

// Duration returns the phase duration for a.
func (s *Signal) Duration(a Axis) float64 {
	switch a {
	case AxisX:
		return s.xDuration
	case AxisY:
		return s.yDuration
	}
	panic("sim: invalid axis")
}

// cycle is the full two-phase period.
func (s *Signal) cycle() float64 {
	return s.xDuration + s.yDuration
}

// PhaseAt returns the phase at absolute time t >= 0: position within the
// current phase mapped into [0,1) while x is crossable, [1,2) while y is.
// Pure function of t; result invariant: 0 <= phase < 2.
// Complexity: O(1).
func (s *Signal) PhaseAt(t float64) float64 {
	m := math.Mod(t+s.offset, s.cycle())
	if m < s.xDuration {
		return m / s.xDuration
	}
	return 1 + (m-s.xDuration)/s.yDuration
}

// DirectionAt returns the axis crossable at time t.
func (s *Signal) DirectionAt(t float64) Axis {
	if s.PhaseAt(t) < 1 {
		return AxisX
	}
	return AxisY
}

// CrossingTime returns the time to cross along a at the given velocity.
func (s *Signal) CrossingTime(a Axis, velocity float64) float64 {
	return s.Length(a) / velocity
}

// TimeUntilSwitch returns the remaining fraction of the current phase's
// duration at time t.
// Complexity: O(1).
func (s *Signal) TimeUntilSwitch(t float64) float64 {
	remaining := 1 - math.Mod(s.PhaseAt(t), 1)
	return remaining * s.Duration(s.DirectionAt(t))
}

// TimeUntilSwitchTwice returns the time until the signal has switched
// direction twice: the remaining current phase plus the full other phase.
func (s *Signal) TimeUntilSwitchTwice(t float64) float64 {
	return s.TimeUntilSwitch(t) + s.Duration(s.DirectionAt(t).Other())
}

// CanCross reports whether a crossing along a, started at time t with the
// given velocity, fits entirely within the current phase.
func (s *Signal) CanCross(t float64, a Axis, velocity float64) bool {
	return s.DirectionAt(t) == a && s.CrossingTime(a, velocity) <= s.TimeUntilSwitch(t)
}

// TimeUntilCanCross returns the wait before a crossing along a can start:
// zero when the crossing fits the current phase; the remaining phase plus the
// full other phase when the direction matches but the window is too short;
// otherwise the remainder of the non-matching phase. A crossing attempted at
// a phase start is assumed to fit — the sampling bounds guarantee the
// shortest phase exceeds the longest crossing (sample.Bounds.Validate).
// Complexity: O(1).
func (s *Signal) TimeUntilCanCross(t float64, a Axis, velocity float64) float64 {
	if s.DirectionAt(t) == a {
		if s.CrossingTime(a, velocity) <= s.TimeUntilSwitch(t) {
			return 0
		}
		return s.TimeUntilSwitchTwice(t)
	}
	return s.TimeUntilSwitch(t)
}
