package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// ErrInvariantViolation is returned when a cube built from explicit data
	// does not contain each color exactly 9 times.
	ErrInvariantViolation = errors.New("cubesim: invariant violation")

	// ErrInvalidNotation is returned by ParseNotation for unknown moves.
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")
)
