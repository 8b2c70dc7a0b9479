package sim

import (
	"math"

	"github.com/katalvlaran/crosswalk/sample"
)

// Block is one static sidewalk segment with independent x and y traversal
// lengths. Immutable once created; no state transitions.
type Block struct {
	xLength, yLength float64
}

type blockConfig struct {
	xLength, yLength float64
}

// BlockOption overrides one sampled attribute at construction.
type BlockOption func(*blockConfig)

// BlockXLength overrides the x traversal length.
func BlockXLength(v float64) BlockOption { return func(c *blockConfig) { c.xLength = v } }

// BlockYLength overrides the y traversal length.
func BlockYLength(v float64) BlockOption { return func(c *blockConfig) { c.yLength = v } }

// NewBlock constructs a Block, sampling every length not overridden.
// Returns ErrNilSource or ErrNonPositiveLength.
// Complexity: O(len(opts)).
func NewBlock(src *sample.Source, opts ...BlockOption) (*Block, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := blockConfig{xLength: math.NaN(), yLength: math.NaN()}
	for _, opt := range opts {
		opt(&c)
	}
	if math.IsNaN(c.xLength) {
		c.xLength = src.SidewalkLength()
	}
	if math.IsNaN(c.yLength) {
		c.yLength = src.SidewalkLength()
	}
	if !(c.xLength > 0) || !(c.yLength > 0) {
		return nil, ErrNonPositiveLength
	}
	return &Block{xLength: c.xLength, yLength: c.yLength}, nil
}

// Length returns the traversal length along a.
func (b *Block) Length(a Axis) float64 {
	switch a {
	case AxisX:
		return b.xLength
	case AxisY:
		return b.yLength
	}
	panic("sim: invalid axis")
}

// CrossingTime returns the time to traverse the block along a at the given
// velocity.
func (b *Block) CrossingTime(a Axis, velocity float64) float64 {
	return b.Length(a) / velocity
}
