package fftypes

// KernelStrategy selects which butterfly network computes a transform.
type KernelStrategy uint32

const (
	KernelAuto KernelStrategy = iota
	KernelDIT                 // Recursive radix-2 decimation in time
	KernelDIF                 // Iterative bit-reversed radix-2 network
)

// Resolve maps KernelAuto and unknown values to a concrete kernel.
func (s KernelStrategy) Resolve() KernelStrategy {
	switch s {
	case KernelDIT, KernelDIF:
		return s
	default:
		return KernelDIF
	}
}

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelDIT:
		return "dit"
	case KernelDIF:
		return "dif"
	default:
		return "unknown"
	}
}
