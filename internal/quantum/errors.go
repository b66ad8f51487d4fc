package quantum

import "errors"

// Domain errors for operator accessors.
var (
	// ErrInsufficientDim indicates a qubit-manifold operator was requested
	// on a subsystem with fewer than two levels.
	ErrInsufficientDim = errors.New("quantum: operator requires dimension >= 2")

	// ErrLevelOutOfRange indicates a level index at or beyond the
	// subsystem dimension.
	ErrLevelOutOfRange = errors.New("quantum: level index out of range")

	// ErrBadDimension indicates a non-positive subsystem dimension.
	ErrBadDimension = errors.New("quantum: dimension must be positive")
)
