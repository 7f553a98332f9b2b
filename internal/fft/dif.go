package fft

import m "github.com/cwbudde/algo-ctfft/internal/math"

// IterativeDIF computes the radix-2 transform of src with the iterative,
// stack-free network: a bit-reversed base ordering followed by log2(n)
// butterfly levels with doubling group size. len(src) must be a power of two.
// The result is unnormalized and freshly allocated; src is not modified.
func IterativeDIF[T Complex](src []T, dir Direction) []T {
	dst := make([]T, len(src))
	iterativeDIF(dst, src, m.ComputeBitReversalIndices(len(src)), dir)

	return dst
}

// iterativeDIF writes the transform of src into dst using a precomputed
// bit-reversal table. dst and src must not overlap.
func iterativeDIF[T Complex](dst, src []T, bitrev []int, dir Direction) {
	n := len(src)

	for i := range n {
		dst[bitrev[i]] = src[i]
	}

	one := complexFromFloat64[T](1, 0)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		base := RootOfUnity[T](size, dir)

		for k := 0; k < n; k += size {
			w := one

			for j := range half {
				odd := w * dst[k+j+half]
				even := dst[k+j]
				dst[k+j] = even + odd
				dst[k+j+half] = even - odd
				w *= base
			}
		}
	}
}
