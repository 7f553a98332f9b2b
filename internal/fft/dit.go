package fft

// RecursiveDIT computes the radix-2 decimation-in-time transform of src,
// whose length must be a power of two. The result is unnormalized and freshly
// allocated; src is not modified.
//
// Each level splits the input by even/odd index, transforms both halves and
// combines them with Y[j] = E[j] + W^j*O[j], Y[j+n/2] = E[j] - W^j*O[j],
// where W = exp(sign*2*pi*i/n) and W^j is accumulated multiplicatively.
func RecursiveDIT[T Complex](src []T, dir Direction) []T {
	n := len(src)
	if n <= 1 {
		dst := make([]T, n)
		copy(dst, src)

		return dst
	}

	half := n / 2
	even := make([]T, half)
	odd := make([]T, half)

	for j := range half {
		even[j] = src[2*j]
		odd[j] = src[2*j+1]
	}

	evenOut := RecursiveDIT(even, dir)
	oddOut := RecursiveDIT(odd, dir)

	base := RootOfUnity[T](n, dir)
	w := complexFromFloat64[T](1, 0)
	dst := make([]T, n)

	for j := range half {
		t := w * oddOut[j]
		dst[j] = evenOut[j] + t
		dst[j+half] = evenOut[j] - t
		w *= base
	}

	return dst
}
