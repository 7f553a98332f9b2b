package fft

import m "github.com/cwbudde/algo-ctfft/internal/math"

// PaddedLength returns the length PadToPowerOfTwo produces for n samples.
func PaddedLength(n int) int {
	return m.NextPowerOfTwo(n)
}

// PadToPowerOfTwo returns a new slice whose length is the smallest power of
// two >= len(src), with zero values prepended before the data. An empty input
// yields a single zero. src is never modified or aliased.
func PadToPowerOfTwo[T any](src []T) []T {
	n := PaddedLength(len(src))
	dst := make([]T, n)
	copy(dst[n-len(src):], src)

	return dst
}
