package sim

import (
	"math"

	"github.com/katalvlaran/crosswalk/sample"
)

// Grid is the city map: a conceptually infinite rectangular grid of corners,
// walked one cell at a time. Only the current cell is materialized — one
// Block plus up to four Signals at its corners. Advancing discards the two
// signals left behind and keeps the two still physically adjacent.
//
// Extents are positive reals (sampled like every other attribute); progress
// is an integer cell count starting at 1 for the initial cell. The extent
// along an axis is reached once progress >= extent.
type Grid struct {
	src              *sample.Source
	extentX, extentY float64
	progressX        int
	progressY        int
	corner           Corner
	boundary         Boundary
	block            *Block
	signals          [cornerCount]*Signal
}

type gridConfig struct {
	extentX, extentY float64
	block            *Block
}

// GridOption overrides one sampled attribute at construction.
type GridOption func(*gridConfig)

// GridXExtent overrides the target cell count along x.
func GridXExtent(v float64) GridOption { return func(c *gridConfig) { c.extentX = v } }

// GridYExtent overrides the target cell count along y.
func GridYExtent(v float64) GridOption { return func(c *gridConfig) { c.extentY = v } }

// GridBlock overrides the initial cell's block.
func GridBlock(b *Block) GridOption { return func(c *gridConfig) { c.block = b } }

// NewGrid constructs a Grid positioned at the upper-left corner of its
// initial cell, sampling extents and the initial block unless overridden.
// Returns ErrNilSource or ErrNonPositiveExtent.
// Complexity: O(len(opts)).
func NewGrid(src *sample.Source, opts ...GridOption) (*Grid, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := gridConfig{extentX: math.NaN(), extentY: math.NaN()}
	for _, opt := range opts {
		opt(&c)
	}
	if math.IsNaN(c.extentX) {
		c.extentX = src.GridExtent()
	}
	if math.IsNaN(c.extentY) {
		c.extentY = src.GridExtent()
	}
	if !(c.extentX > 0) || !(c.extentY > 0) {
		return nil, ErrNonPositiveExtent
	}
	if c.block == nil {
		blk, err := NewBlock(src)
		if err != nil {
			return nil, err
		}
		c.block = blk
	}
	return &Grid{
		src:       src,
		extentX:   c.extentX,
		extentY:   c.extentY,
		progressX: 1,
		progressY: 1,
		corner:    UpperLeft,
		boundary:  BoundaryNone,
		block:     c.block,
	}, nil
}

// Edge-sharing map between the four corners of one cell: the horizontal
// neighbor shares the y-edge (equal y lengths), the vertical neighbor shares
// the x-edge (equal x lengths).
var (
	yEdgePartner = [cornerCount]Corner{
		UpperLeft:  UpperRight,
		UpperRight: UpperLeft,
		LowerLeft:  LowerRight,
		LowerRight: LowerLeft,
	}
	xEdgePartner = [cornerCount]Corner{
		UpperLeft:  LowerLeft,
		LowerLeft:  UpperLeft,
		UpperRight: LowerRight,
		LowerRight: UpperRight,
	}
)

// CurrentSignal returns the Signal at the current corner, materializing it on
// first visit. A new signal copies each axis length from the already
// materialized neighbor sharing that physical edge, falling back to a fresh
// sampled length where no neighbor exists yet. The result is cached in the
// corner's slot.
// Complexity: O(1).
func (g *Grid) CurrentSignal() *Signal {
	if sig := g.signals[g.corner]; sig != nil {
		return sig
	}
	opts := make([]SignalOption, 0, 2)
	if n := g.signals[yEdgePartner[g.corner]]; n != nil {
		opts = append(opts, SignalYLength(n.Length(AxisY)))
	}
	if n := g.signals[xEdgePartner[g.corner]]; n != nil {
		opts = append(opts, SignalXLength(n.Length(AxisX)))
	}
	// Neighbor lengths come from validated signals and the source is
	// non-nil by construction, so this cannot fail.
	sig, _ := NewSignal(g.src, opts...)
	g.signals[g.corner] = sig
	return sig
}

// Advance moves the walk into the next cell along axis. It is the grid's
// sole mutator:
//
//  1. Creates the new cell's block, copying the just-left block's length on
//     the axis perpendicular to the move (sidewalk cross-width continuity);
//     the length along the move axis is freshly sampled.
//  2. Increments progress along axis and updates the boundary state.
//  3. Rotates the corner: upper_right and lower_left become upper_left;
//     lower_right becomes lower_left (x move) or upper_right (y move).
//     A signal crossing never originates at upper_left.
//  4. Shifts the signal slots so the two signals still adjacent to the new
//     cell are retained and the two behind the walker are discarded.
//
// Returns ErrInvalidAxis before mutating any state.
// Complexity: O(1).
func (g *Grid) Advance(axis Axis) error {
	if !axis.Valid() {
		return ErrInvalidAxis
	}

	var opt BlockOption
	if axis == AxisX {
		opt = BlockYLength(g.block.Length(AxisY))
	} else {
		opt = BlockXLength(g.block.Length(AxisX))
	}
	blk, _ := NewBlock(g.src, opt) // predecessor lengths are positive; cannot fail
	g.block = blk

	if axis == AxisX {
		g.progressX++
		if float64(g.progressX) >= g.extentX {
			g.boundary = g.boundary.reach(AxisX)
		}
	} else {
		g.progressY++
		if float64(g.progressY) >= g.extentY {
			g.boundary = g.boundary.reach(AxisY)
		}
	}

	switch g.corner {
	case UpperRight, LowerLeft:
		g.corner = UpperLeft
	default: // lower_right
		if axis == AxisX {
			g.corner = LowerLeft
		} else {
			g.corner = UpperRight
		}
	}

	if axis == AxisX {
		g.signals[UpperLeft] = g.signals[UpperRight]
		g.signals[LowerLeft] = g.signals[LowerRight]
		g.signals[UpperRight] = nil
	} else {
		g.signals[UpperLeft] = g.signals[LowerLeft]
		g.signals[UpperRight] = g.signals[LowerRight]
		g.signals[LowerLeft] = nil
	}
	g.signals[LowerRight] = nil

	return nil
}

// Corner returns the walker's position within the current cell.
func (g *Grid) Corner() Corner { return g.corner }

// Boundary returns the current boundary state.
func (g *Grid) Boundary() Boundary { return g.boundary }

// CurrentBlock returns the current cell's block.
func (g *Grid) CurrentBlock() *Block { return g.block }

// Progress returns the cell count walked along a (the initial cell counts).
func (g *Grid) Progress(a Axis) int {
	if a == AxisX {
		return g.progressX
	}
	return g.progressY
}

// Extent returns the configured extent along a.
func (g *Grid) Extent(a Axis) float64 {
	if a == AxisX {
		return g.extentX
	}
	return g.extentY
}

// SignalAt returns the signal cached at c, or nil when none has been
// materialized there. It never materializes.
func (g *Grid) SignalAt(c Corner) *Signal {
	if !c.Valid() {
		return nil
	}
	return g.signals[c]
}
