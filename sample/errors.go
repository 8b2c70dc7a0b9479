package sample

import "errors"

var (
	// ErrInvalidInterval indicates an interval with Lo > Hi or a non-finite bound.
	ErrInvalidInterval = errors.New("sample: interval bounds must be finite with Lo <= Hi")
	// ErrUncrossableBounds indicates bounds that violate the crossability
	// precondition: the shortest signal phase must exceed the longest crossing
	// at the slowest admissible velocity.
	ErrUncrossableBounds = errors.New("sample: bounds admit a signal phase shorter than the slowest crossing")
)
