package fftypes

// Direction selects the sign of the twiddle exponent.
type Direction uint8

const (
	Forward Direction = iota // e^(-2*pi*i*k/N)
	Inverse                  // e^(+2*pi*i*k/N)
)

// Sign returns the exponent sign for the direction: -1 forward, +1 inverse.
func (d Direction) Sign() float64 {
	if d == Inverse {
		return 1
	}

	return -1
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}
