package ctfft

// ForwardStrided computes the forward FFT on strided input/output data.
//
// The stride parameter specifies the distance between consecutive elements.
// For example, stride=numCols transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int) error {
	return p.TransformStrided(dst, src, stride, Forward)
}

// InverseStrided computes the inverse FFT on strided input/output data.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) InverseStrided(dst, src []T, stride int) error {
	return p.TransformStrided(dst, src, stride, Inverse)
}

// TransformStrided computes the transform in the given direction on strided data.
// Elements outside the indices i*stride are left untouched in dst.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int, dir Direction) error {
	err := p.validateStridedSlices(dst, src, stride)
	if err != nil {
		return err
	}

	if stride == 1 {
		return p.Transform(dst[:p.n], src[:p.n], dir)
	}

	buffer := make([]T, p.n)
	for i := range p.n {
		buffer[i] = src[i*stride]
	}

	if err := p.Transform(buffer, buffer, dir); err != nil {
		return err
	}

	for i := range p.n {
		dst[i*stride] = buffer[i]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	if stride == 1 {
		if len(dst) < p.n || len(src) < p.n {
			return ErrLengthMismatch
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1
	if maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return ErrLengthMismatch
	}

	return nil
}
