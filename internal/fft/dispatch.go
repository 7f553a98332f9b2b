package fft

import m "github.com/cwbudde/algo-ctfft/internal/math"

// Transform runs the butterfly network selected by strategy over src, whose
// length must be a power of two. The output is unnormalized.
func Transform[T Complex](src []T, strategy KernelStrategy, dir Direction) []T {
	if strategy.Resolve() == KernelDIT {
		return RecursiveDIT(src, dir)
	}

	return IterativeDIF(src, dir)
}

// TransformInto writes the unnormalized transform of src into dst.
// len(dst) == len(src) must be a power of two; dst and src must be either
// the same slice or disjoint.
// bitrev is the table from ComputeBitReversalIndices and is only read by the
// DIF kernel; nil computes it on demand.
func TransformInto[T Complex](dst, src []T, bitrev []int, strategy KernelStrategy, dir Direction) {
	if strategy.Resolve() == KernelDIT {
		copy(dst, RecursiveDIT(src, dir))
		return
	}

	if bitrev == nil {
		bitrev = m.ComputeBitReversalIndices(len(src))
	}

	if sameStart(dst, src) {
		tmp := make([]T, len(src))
		iterativeDIF(tmp, src, bitrev, dir)
		copy(dst, tmp)

		return
	}

	iterativeDIF(dst, src, bitrev, dir)
}

// sameStart reports whether a and b share their first element.
func sameStart[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// Scale multiplies every element of data by factor in place.
func Scale[T Complex](data []T, factor float64) {
	if factor == 1 {
		return
	}

	f := complexFromFloat64[T](factor, 0)
	for i := range data {
		data[i] *= f
	}
}
