// Package testutil holds assertion and signal helpers shared by tests.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// RequireComplexSliceNearlyEqual fails t if got and want differ in length or
// if any element pair is further apart than eps in absolute value.
func RequireComplexSliceNearlyEqual[T ~complex64 | ~complex128](t *testing.T, got, want []T, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := cmplx.Abs(complex128(got[i]) - complex128(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F ~float32 | ~float64](t *testing.T, got, want []F, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]| over two complex slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T ~complex64 | ~complex128](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0

	for i := range a {
		d := cmplx.Abs(complex128(a[i]) - complex128(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// RandomComplex128 returns n deterministic pseudo-random values in [-1, 1).
func RandomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)

	for i := range out {
		out[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return out
}

// RandomComplex64 is the single-precision counterpart of RandomComplex128.
func RandomComplex64(n int, seed int64) []complex64 {
	src := RandomComplex128(n, seed)
	out := make([]complex64, n)

	for i, v := range src {
		out[i] = complex64(v)
	}

	return out
}

// RandomReal returns n deterministic pseudo-random samples in [-1, 1).
func RandomReal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}

	return out
}
