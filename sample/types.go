// Package sample types: intervals and the named bounds table.
package sample

import "math"

// Interval is a closed range [Lo, Hi] of real values.
type Interval struct {
	Lo, Hi float64
}

// Valid reports whether the interval is well-formed: both endpoints finite
// and Lo <= Hi.
// Complexity: O(1).
func (iv Interval) Valid() bool {
	if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
		return false
	}
	if math.IsInf(iv.Lo, 0) || math.IsInf(iv.Hi, 0) {
		return false
	}
	return iv.Lo <= iv.Hi
}

// Contains reports whether v lies within the closed interval.
// Complexity: O(1).
func (iv Interval) Contains(v float64) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Bounds names the sampling interval for each attribute class the simulation
// defaults from. All units follow the simulation's abstract distance/time.
type Bounds struct {
	// CrossingLength bounds a Signal's x/y crossing distance.
	CrossingLength Interval
	// SignalDuration bounds each phase's duration in seconds.
	SignalDuration Interval
	// SidewalkLength bounds a Block's x/y traversal distance.
	SidewalkLength Interval
	// WalkerVelocity bounds a Walker's speed (distance/time).
	WalkerVelocity Interval
	// WalkerPatience bounds the wait a Walker tolerates before detouring.
	WalkerPatience Interval
	// GridExtent bounds the grid's target cell count per axis.
	GridExtent Interval
}

// DefaultBounds returns the canonical bounds table. The lower bound on
// SignalDuration is deliberately above CrossingLength.Hi / WalkerVelocity.Lo
// so that every phase is individually crossable.
func DefaultBounds() Bounds {
	return Bounds{
		CrossingLength: Interval{Lo: 5, Hi: 30},
		SignalDuration: Interval{Lo: 61, Hi: 200},
		SidewalkLength: Interval{Lo: 50, Hi: 150},
		WalkerVelocity: Interval{Lo: 0.5, Hi: 5},
		WalkerPatience: Interval{Lo: 0, Hi: 250},
		GridExtent:     Interval{Lo: 5, Hi: 20},
	}
}

// signalPhase is the fixed initial-phase interval: [0,1) means the x axis is
// crossable, [1,2) the y axis. Not part of Bounds — it is a property of the
// phase encoding, not a tunable.
var signalPhase = Interval{Lo: 0, Hi: 2}

// Validate checks every interval for well-formedness, requires strictly
// positive lower bounds where the data model does (lengths, durations,
// velocity, extents), and enforces the crossability precondition:
//
//	SignalDuration.Lo >= CrossingLength.Hi / WalkerVelocity.Lo
//
// Returns ErrInvalidInterval or ErrUncrossableBounds.
// Complexity: O(1).
func (b Bounds) Validate() error {
	positive := []Interval{b.CrossingLength, b.SignalDuration, b.SidewalkLength, b.WalkerVelocity, b.GridExtent}
	for _, iv := range positive {
		if !iv.Valid() || iv.Lo <= 0 {
			return ErrInvalidInterval
		}
	}
	if !b.WalkerPatience.Valid() || b.WalkerPatience.Lo < 0 {
		return ErrInvalidInterval
	}
	if b.SignalDuration.Lo < b.CrossingLength.Hi/b.WalkerVelocity.Lo {
		return ErrUncrossableBounds
	}
	return nil
}
