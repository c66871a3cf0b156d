package bwtrle

import "errors"

var (
	// ErrCapacityExceeded indicates the destination buffer cannot hold the result.
	ErrCapacityExceeded = errors.New("bwtrle: destination capacity exceeded")

	// ErrMalformedInput indicates a BWT or compressed block failed validation.
	ErrMalformedInput = errors.New("bwtrle: malformed input")

	// ErrBlockTooLarge indicates the input cannot be described by the
	// 32-bit header fields.
	ErrBlockTooLarge = errors.New("bwtrle: block too large")
)
