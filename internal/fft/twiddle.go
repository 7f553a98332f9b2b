package fft

import (
	"math"

	m "github.com/cwbudde/algo-ctfft/internal/math"
)

// RootOfUnity returns the principal m-th root of unity exp(sign*2*pi*i/m)
// where sign is taken from dir. The angle is evaluated in float64 and then
// narrowed to T.
func RootOfUnity[T Complex](size int, dir Direction) T {
	angle := dir.Sign() * m.TwoPi / float64(size)
	sin, cos := math.Sincos(angle)

	return complexFromFloat64[T](cos, sin)
}
