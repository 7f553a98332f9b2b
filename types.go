package ctfft

import "github.com/cwbudde/algo-ctfft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the FFT.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point types used in real FFT operations.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Direction selects the sign of the twiddle exponent.
type Direction = fftypes.Direction

const (
	// Forward uses the negative exponent convention e^(-2*pi*i*k/N).
	Forward = fftypes.Forward
	// Inverse uses the positive exponent convention e^(+2*pi*i*k/N).
	Inverse = fftypes.Inverse
)

// KernelStrategy selects the butterfly network used by a transform.
type KernelStrategy = fftypes.KernelStrategy

const (
	KernelAuto = fftypes.KernelAuto // resolves to KernelDIF
	KernelDIT  = fftypes.KernelDIT
	KernelDIF  = fftypes.KernelDIF
)
