// Package ctfft implements the radix-2 Cooley-Tukey discrete Fourier transform
// in two factorizations: a recursive decimation-in-time network (DIT) and an
// iterative, bit-reversed decimation-in-frequency network (DIF).
//
// The free functions accept sequences of any length. Inputs are padded to the
// next power of two by prepending zeros, so the original samples keep their
// order at the tail of the padded sequence:
//
//	spectrum := ctfft.ForwardDIT([]float64{0, 2, 2, 0})
//	// [4+0i, -2-2i, 0+0i, -2+2i]
//	signal := ctfft.InverseDIF(spectrum)
//	// [0, 2, 2, 0]
//
// Inverse transforms divide by the padded length and return only the real
// component; callers must ensure the imaginary remainder is negligible.
//
// Plan provides a fixed-size complex-to-complex transform with explicit
// validation and sentinel errors for callers that manage their own buffers.
package ctfft
