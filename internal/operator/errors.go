package operator

import "errors"

// Domain errors for operator algebra.
var (
	// ErrDimensionMismatch indicates operands of different sizes; there is
	// no silent broadcasting or truncation.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrNotUnitary indicates a frame transform whose unitary drifted
	// beyond tolerance, usually from a numerically extreme time*energy
	// product.
	ErrNotUnitary = errors.New("operator: frame transform lost unitarity")

	// ErrFrameNotComputed indicates a request for the interaction-frame
	// representation before any frame transform was performed.
	ErrFrameNotComputed = errors.New("operator: interaction frame not computed")

	// ErrUnknownInteraction indicates an unrecognized interaction kind.
	ErrUnknownInteraction = errors.New("operator: unknown interaction type")
)
