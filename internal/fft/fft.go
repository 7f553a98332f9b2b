// Package fft holds the radix-2 Cooley-Tukey kernels: leading-zero padding,
// the recursive decimation-in-time network and the iterative bit-reversed
// network, plus the conversions the public wrappers need.
package fft

import (
	"github.com/cwbudde/algo-ctfft/internal/fftypes"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type alias for the real sample constraint.
type Float = fftypes.Float

// Direction is a type alias for the twiddle sign selector.
type Direction = fftypes.Direction

// KernelStrategy is a type alias for the kernel selector.
type KernelStrategy = fftypes.KernelStrategy

const (
	Forward = fftypes.Forward
	Inverse = fftypes.Inverse

	KernelAuto = fftypes.KernelAuto
	KernelDIT  = fftypes.KernelDIT
	KernelDIF  = fftypes.KernelDIF
)

// complexFromFloat64 creates a complex number of type T from float64 components.
// Named types with a complex64 or complex128 underlying type are accepted.
func complexFromFloat64[T Complex](re, im float64) T {
	return T(complex(re, im))
}

// realPart returns the real component of val as a float64.
func realPart[T Complex](val T) float64 {
	return real(complex128(val))
}

// Lift converts real samples to complex samples with a zero imaginary part.
func Lift[F Float, C Complex](src []F) []C {
	dst := make([]C, len(src))
	for i, x := range src {
		dst[i] = complexFromFloat64[C](float64(x), 0)
	}

	return dst
}

// RealScaled returns re(src[i]) * scale for every element, discarding the
// imaginary components without inspecting them.
func RealScaled[C Complex, F Float](src []C, scale float64) []F {
	dst := make([]F, len(src))
	for i, v := range src {
		dst[i] = F(realPart(v) * scale)
	}

	return dst
}
