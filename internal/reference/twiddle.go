package reference

import (
	"math"

	"github.com/cwbudde/algo-ctfft/internal/fftypes"
)

// DirectTwiddles returns W^k for k = 0..n-1 with W = exp(sign*2*pi*i/n),
// each power evaluated from its own angle rather than accumulated.
func DirectTwiddles[T ~complex64 | ~complex128](n int, dir fftypes.Direction) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := dir.Sign() * 2 * math.Pi * float64(k) / float64(n)
		sin, cos := math.Sincos(angle)
		twiddle[k] = T(complex(cos, sin))
	}

	return twiddle
}
