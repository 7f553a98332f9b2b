package ctfft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ctfft/internal/testutil"
)

const knownTol = 1e-4

type forwardFunc func([]float64) []complex128

type inverseFunc func([]complex128) []float64

var (
	forwardFuncs = map[string]forwardFunc{"dit": ForwardDIT, "dif": ForwardDIF}
	inverseFuncs = map[string]inverseFunc{"dit": InverseDIT, "dif": InverseDIF}
)

func requireComplexInDelta(t *testing.T, want, got []complex128, delta float64) {
	t.Helper()

	require.Len(t, got, len(want))

	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), delta, "re[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), delta, "im[%d]", i)
	}
}

func TestPaddedLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 16, PaddedLength(16))
	assert.Equal(t, 32, PaddedLength(17))
	assert.Equal(t, 1, PaddedLength(1))
	assert.Equal(t, 1, PaddedLength(0))

	for n := 1; n <= 2048; n++ {
		p := PaddedLength(n)
		require.GreaterOrEqual(t, p, n)
		require.Zero(t, p&(p-1), "PaddedLength(%d) = %d is not a power of two", n, p)
		require.Less(t, p/2, n, "PaddedLength(%d) = %d is not minimal", n, p)
	}
}

func TestForwardKnownSmallTransform(t *testing.T) {
	t.Parallel()

	want := []complex128{4, -2 - 2i, 0, -2 + 2i}

	for name, forward := range forwardFuncs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireComplexInDelta(t, want, forward([]float64{0, 2, 2, 0}), knownTol)
		})
	}
}

func TestForwardImpulse(t *testing.T) {
	t.Parallel()

	want := make([]complex128, 8)
	for i := range want {
		want[i] = 1
	}

	for name, forward := range forwardFuncs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireComplexInDelta(t, want, forward([]float64{1, 0, 0, 0, 0, 0, 0, 0}), knownTol)
		})
	}
}

func TestForwardShiftedImpulse(t *testing.T) {
	t.Parallel()

	want := []complex128{
		1,
		0.7071 - 0.7071i,
		-1i,
		-0.7071 - 0.7071i,
		-1,
		-0.7071 + 0.7071i,
		1i,
		0.7071 + 0.7071i,
	}

	for name, forward := range forwardFuncs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireComplexInDelta(t, want, forward([]float64{0, 1, 0, 0, 0, 0, 0, 0}), knownTol)
		})
	}
}

func TestInverseKnownSmallTransform(t *testing.T) {
	t.Parallel()

	spectrum := []complex128{4, -2 - 2i, 0, -2 + 2i}

	for name, inverse := range inverseFuncs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.InDeltaSlice(t, []float64{0, 2, 2, 0}, inverse(spectrum), knownTol)
		})
	}
}

func TestEmptyAndSingleton(t *testing.T) {
	t.Parallel()

	for name, forward := range forwardFuncs {
		assert.Equal(t, []complex128{0}, forward(nil), name)
		assert.Equal(t, []complex128{0}, forward([]float64{}), name)
		assert.Equal(t, []complex128{complex(-3.5, 0)}, forward([]float64{-3.5}), name)
	}

	for name, inverse := range inverseFuncs {
		assert.Equal(t, []float64{0}, inverse(nil), name)
		assert.Equal(t, []float64{2.25}, inverse([]complex128{2.25 + 7i}), name)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 16, 128, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := testutil.RandomReal(n, int64(n)+7)

			for name := range forwardFuncs {
				got := inverseFuncs[name](forwardFuncs[name](x))
				assert.InDeltaSlice(t, x, got, 1e-9, name)
			}

			// Mixing the two networks still round-trips.
			assert.InDeltaSlice(t, x, InverseDIF(ForwardDIT(x)), 1e-9)
			assert.InDeltaSlice(t, x, InverseDIT(ForwardDIF(x)), 1e-9)
		})
	}
}

func TestDITDIFAgreement(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 8, 64, 512} {
		seq := testutil.RandomComplex128(n, 2024)

		for _, dir := range []Direction{Forward, Inverse} {
			dit := TransformComplex(seq, KernelDIT, dir)
			dif := TransformComplex(seq, KernelDIF, dir)
			requireComplexInDelta(t, dit, dif, knownTol)
		}
	}
}

// Non power-of-two inputs are padded with leading zeros, so the data sits
// at the tail of the padded sequence.
func TestLeadingZeroPadding(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	padded := []float64{0, 1, 2, 3}

	for name, forward := range forwardFuncs {
		got := forward(x)
		require.Len(t, got, 4, name)
		requireComplexInDelta(t, forward(padded), got, 1e-12)
		assert.InDeltaSlice(t, padded, inverseFuncs[name](got), 1e-12, name)
	}

	// A trailing-zero layout gives a different spectrum.
	trailing := ForwardDIT([]float64{1, 2, 3, 0})
	assert.NotEqual(t, ForwardDIT(x), trailing)
}

func TestInverseDiscardsImaginary(t *testing.T) {
	t.Parallel()

	// The spectrum of the complex signal [i, 0] is [i, i].
	got := InverseDIT([]complex128{1i, 1i})
	assert.InDeltaSlice(t, []float64{0, 0}, got, 1e-12)
}

func TestInverseLeadingZeroPadding(t *testing.T) {
	t.Parallel()

	spectrum := []complex128{3 - 1i, -2 + 4i, 0.5}
	padded := []complex128{0, 3 - 1i, -2 + 4i, 0.5}

	for _, inverse := range []func([]complex128) []float64{InverseDIT, InverseDIF} {
		got := inverse(spectrum)
		require.Len(t, got, 4)
		assert.InDeltaSlice(t, inverse(padded), got, 1e-12)
	}

	// Known values for the zero-led spectrum [0, 4, 0, 4].
	assert.InDeltaSlice(t, []float64{2, 0, -2, 0}, InverseDIF([]complex128{4, 0, 4}), knownTol)
	assert.InDeltaSlice(t, []float64{2, 0, -2, 0}, InverseDIT([]complex128{4, 0, 4}), knownTol)
}

func TestInputsAreNotModified(t *testing.T) {
	t.Parallel()

	x := []float64{5, 1, -2}
	xCopy := append([]float64(nil), x...)
	_ = ForwardDIT(x)
	_ = ForwardDIF(x)
	assert.Equal(t, xCopy, x)

	s := []complex128{1, 2i, -3}
	sCopy := append([]complex128(nil), s...)
	_ = InverseDIT(s)
	_ = InverseDIF(s)
	_ = TransformComplex(s, KernelAuto, Forward)
	assert.Equal(t, sCopy, s)
}

func TestSinglePrecisionEntryPoints(t *testing.T) {
	t.Parallel()

	want := []complex64{4, -2 - 2i, 0, -2 + 2i}
	src := []float32{0, 2, 2, 0}

	for name, got := range map[string][]complex64{"dit": ForwardDIT32(src), "dif": ForwardDIF32(src)} {
		require.Len(t, got, 4, name)

		for i := range want {
			assertApproxComplex64f(t, got[i], want[i], knownTol, "%s[%d]", name, i)
		}
	}

	assert.InDeltaSlice(t, []float32{0, 2, 2, 0}, InverseDIT32(want), knownTol)
	assert.InDeltaSlice(t, []float32{0, 2, 2, 0}, InverseDIF32(want), knownTol)
}

func TestGenericEntryPoints(t *testing.T) {
	t.Parallel()

	// Mixed precisions are allowed: samples are widened or narrowed on lift.
	got := ForwardReal[float32, complex128]([]float32{0, 2, 2, 0}, KernelAuto)
	requireComplexInDelta(t, []complex128{4, -2 - 2i, 0, -2 + 2i}, got, knownTol)

	back := InverseReal[complex128, float32](got, KernelDIT)
	assert.InDeltaSlice(t, []float32{0, 2, 2, 0}, back, knownTol)
}

type namedSample float64

type namedComplex complex128

type namedComplex64 complex64

func TestNamedTypeArguments(t *testing.T) {
	t.Parallel()

	got := ForwardReal[namedSample, namedComplex]([]namedSample{0, 2, 2, 0}, KernelDIT)
	want := []namedComplex{4, -2 - 2i, 0, -2 + 2i}
	require.Len(t, got, len(want))

	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), knownTol, "re[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), knownTol, "im[%d]", i)
	}

	back := InverseReal[namedComplex, namedSample](got, KernelDIF)
	require.Len(t, back, 4)

	for i, x := range []float64{0, 2, 2, 0} {
		assert.InDelta(t, x, float64(back[i]), knownTol, "inverse[%d]", i)
	}

	plan, err := NewPlanT[namedComplex64](4)
	require.NoError(t, err)

	dst := make([]namedComplex64, 4)
	require.NoError(t, plan.Forward(dst, []namedComplex64{0, 2, 2, 0}))

	for i := range want {
		assert.InDelta(t, real(want[i]), float64(real(dst[i])), knownTol, "plan re[%d]", i)
		assert.InDelta(t, imag(want[i]), float64(imag(dst[i])), knownTol, "plan im[%d]", i)
	}

	require.NoError(t, plan.Inverse(dst, dst))

	for i, x := range []float64{0, 2, 2, 0} {
		assert.InDelta(t, x, float64(real(dst[i])), knownTol, "plan inverse[%d]", i)
	}
}
