package ctfft

import "github.com/cwbudde/algo-ctfft/internal/fft"

// PaddedLength returns the sequence length every entry point transforms for
// an input of n samples: the smallest power of two >= n, and 1 for n <= 1.
func PaddedLength(n int) int {
	return fft.PaddedLength(n)
}

// ForwardReal pads samples with leading zeros, lifts them to complex values
// and returns their forward spectrum. The output length is PaddedLength(len(samples)).
func ForwardReal[F Float, C Complex](samples []F, strategy KernelStrategy) []C {
	padded := fft.PadToPowerOfTwo(samples)

	return fft.Transform(fft.Lift[F, C](padded), strategy, Forward)
}

// InverseReal pads spectrum with leading zeros, runs the inverse transform,
// and returns the real parts divided by the padded length. Imaginary parts
// are discarded without validation.
func InverseReal[C Complex, F Float](spectrum []C, strategy KernelStrategy) []F {
	padded := fft.PadToPowerOfTwo(spectrum)
	out := fft.Transform(padded, strategy, Inverse)

	return fft.RealScaled[C, F](out, 1/float64(len(out)))
}

// TransformComplex pads seq with leading zeros and returns its unnormalized
// transform in the given direction. seq is not modified.
func TransformComplex[T Complex](seq []T, strategy KernelStrategy, dir Direction) []T {
	return fft.Transform(fft.PadToPowerOfTwo(seq), strategy, dir)
}

// ForwardDIT computes the forward transform with the recursive DIT network.
func ForwardDIT(samples []float64) []complex128 {
	return ForwardReal[float64, complex128](samples, KernelDIT)
}

// ForwardDIF computes the forward transform with the iterative DIF network.
func ForwardDIF(samples []float64) []complex128 {
	return ForwardReal[float64, complex128](samples, KernelDIF)
}

// InverseDIT computes the inverse transform with the recursive DIT network.
func InverseDIT(spectrum []complex128) []float64 {
	return InverseReal[complex128, float64](spectrum, KernelDIT)
}

// InverseDIF computes the inverse transform with the iterative DIF network.
func InverseDIF(spectrum []complex128) []float64 {
	return InverseReal[complex128, float64](spectrum, KernelDIF)
}

// ForwardDIT32 is the single-precision form of ForwardDIT.
func ForwardDIT32(samples []float32) []complex64 {
	return ForwardReal[float32, complex64](samples, KernelDIT)
}

// ForwardDIF32 is the single-precision form of ForwardDIF.
func ForwardDIF32(samples []float32) []complex64 {
	return ForwardReal[float32, complex64](samples, KernelDIF)
}

// InverseDIT32 is the single-precision form of InverseDIT.
func InverseDIT32(spectrum []complex64) []float32 {
	return InverseReal[complex64, float32](spectrum, KernelDIT)
}

// InverseDIF32 is the single-precision form of InverseDIF.
func InverseDIF32(spectrum []complex64) []float32 {
	return InverseReal[complex64, float32](spectrum, KernelDIF)
}
