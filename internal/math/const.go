package math

import "math"

// TwoPi is 2*pi with full float64 precision.
const TwoPi = 2.0 * math.Pi
