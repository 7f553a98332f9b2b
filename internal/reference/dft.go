// Package reference provides slow, obviously-correct transforms used as test
// oracles for the radix-2 kernels.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes the forward DFT X[k] = sum x[n]*exp(-2*pi*i*k*n/N)
// directly in O(N^2).
func NaiveDFT[T ~complex64 | ~complex128](src []T) []T {
	return naive(src, -1, 1)
}

// NaiveIDFT computes the inverse DFT including the 1/N normalization.
func NaiveIDFT[T ~complex64 | ~complex128](src []T) []T {
	if len(src) == 0 {
		return nil
	}

	return naive(src, 1, 1/float64(len(src)))
}

func naive[T ~complex64 | ~complex128](src []T, sign, scale float64) []T {
	n := len(src)
	dst := make([]T, n)

	for k := range n {
		var sum complex128

		for j := range n {
			// Reduce k*j modulo n so the angle stays small for large n.
			angle := sign * 2 * math.Pi * float64((k*j)%n) / float64(n)
			sum += complex128(src[j]) * cmplx.Exp(complex(0, angle))
		}

		dst[k] = T(sum * complex(scale, 0))
	}

	return dst
}
