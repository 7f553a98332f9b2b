package ctfft

import (
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

const defaultTol128 = 1e-9

func assertApproxComplex64f(t *testing.T, got, want complex64, tol float64, format string, args ...any) {
	t.Helper()

	diff := cmplx.Abs(complex128(got - want))
	if diff > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

func assertApproxComplex128f(t *testing.T, got, want complex128, format string, args ...any) {
	t.Helper()

	assertApproxComplex128Tolf(t, got, want, defaultTol128, format, args...)
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}
