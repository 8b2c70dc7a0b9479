package sim

import "errors"

var (
	// ErrNilSource indicates an entity constructor received a nil sampler.
	ErrNilSource = errors.New("sim: sample source must not be nil")
	// ErrInvalidAxis indicates an axis value outside {AxisX, AxisY}.
	ErrInvalidAxis = errors.New("sim: axis must be AxisX or AxisY")
	// ErrNonPositiveLength indicates an explicit length override <= 0.
	ErrNonPositiveLength = errors.New("sim: lengths must be positive")
	// ErrNonPositiveDuration indicates an explicit phase duration override <= 0.
	ErrNonPositiveDuration = errors.New("sim: phase durations must be positive")
	// ErrNonPositiveVelocity indicates an explicit velocity override <= 0.
	ErrNonPositiveVelocity = errors.New("sim: velocity must be positive")
	// ErrNegativePatience indicates an explicit patience override < 0.
	ErrNegativePatience = errors.New("sim: patience must be non-negative")
	// ErrNonPositiveExtent indicates an explicit grid extent override <= 0.
	ErrNonPositiveExtent = errors.New("sim: grid extents must be positive")
	// ErrPhaseRange indicates an explicit initial phase outside [0,2).
	ErrPhaseRange = errors.New("sim: initial phase must lie in [0,2)")
	// ErrWalkDone indicates Step was called after the walk terminated.
	ErrWalkDone = errors.New("sim: walk already terminated")
)
