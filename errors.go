package ctfft

import "errors"

// Sentinel errors returned by Plan operations.
var (
	// ErrInvalidLength is returned when the plan size is not a positive power of 2.
	ErrInvalidLength = errors.New("ctfft: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("ctfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("ctfft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or doesn't align with data).
	ErrInvalidStride = errors.New("ctfft: invalid stride")
)
