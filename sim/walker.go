package sim

import (
	"math"

	"github.com/katalvlaran/crosswalk/sample"
)

// Walker is one pedestrian: a velocity and a patience threshold. Immutable
// for the duration of a walk.
type Walker struct {
	velocity float64 // distance per unit time
	patience float64 // longest wait tolerated before preferring a detour
}

type walkerConfig struct {
	velocity, patience float64
}

// WalkerOption overrides one sampled attribute at construction.
type WalkerOption func(*walkerConfig)

// WalkerVelocity overrides the walking speed.
func WalkerVelocity(v float64) WalkerOption { return func(c *walkerConfig) { c.velocity = v } }

// WalkerPatience overrides the wait tolerance; zero is a valid override
// (a pedestrian who never waits by choice).
func WalkerPatience(p float64) WalkerOption { return func(c *walkerConfig) { c.patience = p } }

// NewWalker constructs a Walker, sampling every attribute not overridden.
// Returns ErrNilSource, ErrNonPositiveVelocity, or ErrNegativePatience.
// Complexity: O(len(opts)).
func NewWalker(src *sample.Source, opts ...WalkerOption) (*Walker, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := walkerConfig{velocity: math.NaN(), patience: math.NaN()}
	for _, opt := range opts {
		opt(&c)
	}
	if math.IsNaN(c.velocity) {
		c.velocity = src.WalkerVelocity()
	}
	if math.IsNaN(c.patience) {
		c.patience = src.WalkerPatience()
	}
	if !(c.velocity > 0) {
		return nil, ErrNonPositiveVelocity
	}
	if !(c.patience >= 0) {
		return nil, ErrNegativePatience
	}
	return &Walker{velocity: c.velocity, patience: c.patience}, nil
}

// Velocity returns the walking speed.
func (w *Walker) Velocity() float64 { return w.velocity }

// Patience returns the wait tolerance.
func (w *Walker) Patience() float64 { return w.patience }

// WouldWait reports whether the walker accepts the required wait. Pure
// predicate; equality is accepted (a wait exactly at the threshold is taken).
func (w *Walker) WouldWait(requiredWait float64) bool {
	return requiredWait <= w.patience
}
