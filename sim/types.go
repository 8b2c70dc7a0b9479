// Package sim core enumerations: axes, corners, and the boundary flag.
// All three are small closed sets dispatched exhaustively; no string tags.
package sim

// Axis selects one of the two grid directions.
type Axis int

const (
	// AxisX is the horizontal grid direction.
	AxisX Axis = iota
	// AxisY is the vertical grid direction.
	AxisY
)

// Valid reports whether a is one of the two defined axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY
}

// Other returns the perpendicular axis.
// Panics on an out-of-range value: axis arguments are validated at every
// mutating entry point, so an invalid value here is a programmer defect.
func (a Axis) Other() Axis {
	switch a {
	case AxisX:
		return AxisY
	case AxisY:
		return AxisX
	}
	panic("sim: invalid axis")
}

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "axis(?)"
}

// Corner is the walker's sub-position within the current cell's 2×2 signal
// cluster.
type Corner int

const (
	// UpperLeft is the cell's entry corner; a walk starts here.
	UpperLeft Corner = iota
	// UpperRight is reached by crossing the block along x.
	UpperRight
	// LowerLeft is reached by crossing the block along y.
	LowerLeft
	// LowerRight is the corner diagonally opposite the entry.
	LowerRight
)

// cornerCount sizes per-corner slot arrays.
const cornerCount = 4

// Valid reports whether c is one of the four defined corners.
func (c Corner) Valid() bool {
	return c >= UpperLeft && c <= LowerRight
}

// String implements fmt.Stringer.
func (c Corner) String() string {
	switch c {
	case UpperLeft:
		return "upper_left"
	case UpperRight:
		return "upper_right"
	case LowerLeft:
		return "lower_left"
	case LowerRight:
		return "lower_right"
	}
	return "corner(?)"
}

// Boundary tracks how much of the grid's configured extent has been reached:
// neither axis, exactly one, or both (the walk's terminal condition).
type Boundary int

const (
	// BoundaryNone: neither extent reached.
	BoundaryNone Boundary = iota
	// BoundaryX: the x extent has been reached.
	BoundaryX
	// BoundaryY: the y extent has been reached.
	BoundaryY
	// BoundaryBoth: both extents reached; the walk is terminal.
	BoundaryBoth
)

// axisBoundary maps an axis to its single-axis boundary value.
func axisBoundary(a Axis) Boundary {
	if a == AxisX {
		return BoundaryX
	}
	return BoundaryY
}

// Done reports whether the extent along a has been reached.
func (b Boundary) Done(a Axis) bool {
	return b == BoundaryBoth || b == axisBoundary(a)
}

// reach returns the boundary state after the extent along a is reached:
// from none (or the same axis) the single-axis state, otherwise both.
func (b Boundary) reach(a Axis) Boundary {
	ab := axisBoundary(a)
	if b == BoundaryNone || b == ab {
		return ab
	}
	return BoundaryBoth
}

// String implements fmt.Stringer.
func (b Boundary) String() string {
	switch b {
	case BoundaryNone:
		return "none"
	case BoundaryX:
		return "x_done"
	case BoundaryY:
		return "y_done"
	case BoundaryBoth:
		return "both_done"
	}
	return "boundary(?)"
}
