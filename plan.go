package ctfft

import (
	"github.com/cwbudde/algo-ctfft/internal/fft"
	m "github.com/cwbudde/algo-ctfft/internal/math"
)

// Plan is a fixed-size complex-to-complex radix-2 transform.
//
// Unlike the free functions, a Plan never pads: its size must be a power of
// two and every call validates the slices it is given. The bit-reversal table
// is built once at creation; all other buffers are owned by the call, so a
// Plan may be shared between goroutines.
type Plan[T Complex] struct {
	n        int
	strategy KernelStrategy
	bitrev   []int
}

// NewPlanT creates a plan of size n using the default kernel.
// Returns ErrInvalidLength if n is not a positive power of 2.
func NewPlanT[T Complex](n int) (*Plan[T], error) {
	return NewPlanWithStrategy[T](n, KernelAuto)
}

// NewPlan32 creates a single-precision plan of size n.
func NewPlan32(n int) (*Plan[complex64], error) {
	return NewPlanT[complex64](n)
}

// NewPlan64 creates a double-precision plan of size n.
func NewPlan64(n int) (*Plan[complex128], error) {
	return NewPlanT[complex128](n)
}

// NewPlanWithStrategy creates a plan of size n bound to the given kernel.
// KernelAuto and unknown strategies resolve to KernelDIF.
func NewPlanWithStrategy[T Complex](n int, strategy KernelStrategy) (*Plan[T], error) {
	if !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	p := &Plan[T]{
		n:        n,
		strategy: strategy.Resolve(),
	}

	if p.strategy == KernelDIF {
		p.bitrev = m.ComputeBitReversalIndices(n)
	}

	return p, nil
}

// Len returns the FFT size.
func (p *Plan[T]) Len() int {
	return p.n
}

// KernelStrategy returns the resolved kernel the plan runs.
func (p *Plan[T]) KernelStrategy() KernelStrategy {
	return p.strategy
}

// Algorithm returns a human-readable description of the plan's kernel.
func (p *Plan[T]) Algorithm() string {
	if p.strategy == KernelDIT {
		return "radix-2 recursive decimation-in-time"
	}

	return "radix-2 iterative decimation-in-frequency"
}

// Forward computes the unnormalized forward transform of src into dst.
// dst and src may be the same slice.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrLengthMismatch if len(dst) or len(src) differs from Len().
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.Transform(dst, src, Forward)
}

// Inverse computes the inverse transform of src into dst, scaled by 1/Len().
// The result keeps its imaginary components.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.Transform(dst, src, Inverse)
}

// Transform computes the transform of src into dst in the given direction.
// Inverse results are scaled by 1/Len().
func (p *Plan[T]) Transform(dst, src []T, dir Direction) error {
	if err := p.validateSlices(dst, src); err != nil {
		return err
	}

	fft.TransformInto(dst, src, p.bitrev, p.strategy, dir)

	if dir == Inverse {
		fft.Scale(dst, 1/float64(p.n))
	}

	return nil
}

func (p *Plan[T]) validateSlices(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	return nil
}
