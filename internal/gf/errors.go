package gf

import "errors"

var (
	// ErrBitsOutOfRange is returned when n is outside the supported [3,20] range.
	ErrBitsOutOfRange = errors.New("bits value is outside the supported [3,20] range")

	// ErrLogOutOfRange is returned when a value whose logarithm is needed
	// falls outside [0, 2^n), or is zero where a nonzero value is required
	// (an evaluation point, or the XOR of two evaluation points). It
	// structurally indicates a damaged share.
	ErrLogOutOfRange = errors.New("field value out of range, share is likely damaged")
)
