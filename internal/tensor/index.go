package tensor

import "fmt"

// linearOffset applies the row-major formula
//
//	offset = i1*(d2*...*dk) + i2*(d3*...*dk) + ... + i(k-1)*dk + ik
//
// using a precomputed stride table. Callers guarantee len(coords) == len(strides).
// No range check is performed.
func linearOffset(strides, coords []int) int {
	offset := 0
	for j, i := range coords {
		offset += i * strides[j]
	}
	return offset
}

// checkArity verifies a coordinate tuple has exactly rank entries.
func checkArity(shape Shape, coords []int) error {
	if len(coords) != len(shape) {
		return fmt.Errorf("%w: rank %d tensor indexed with %d coordinates", ErrArityMismatch, len(shape), len(coords))
	}
	return nil
}

// checkCoords verifies every coordinate lies in [0, extent).
func checkCoords(shape Shape, coords []int) error {
	for j, i := range coords {
		if i < 0 || i >= shape[j] {
			return fmt.Errorf("%w: index %d for dimension %d (extent %d)", ErrIndexOutOfRange, i, j, shape[j])
		}
	}
	return nil
}

// Offset converts a coordinate tuple into its row-major linear offset.
// Both arity and per-coordinate range are always checked, independent of
// BoundsChecked.
//
// Example:
//
//	off, _ := Shape{2, 3, 4}.Offset(1, 2, 3) // 1*12 + 2*4 + 3 = 23
func (s Shape) Offset(coords ...int) (int, error) {
	if err := checkArity(s, coords); err != nil {
		return 0, err
	}
	if err := checkCoords(s, coords); err != nil {
		return 0, err
	}
	// Right to left: each step multiplies by the extents already passed.
	offset, stride := 0, 1
	for j := len(s) - 1; j >= 0; j-- {
		offset += coords[j] * stride
		stride *= s[j]
	}
	return offset, nil
}

// Unravel converts a linear offset back into its coordinate tuple.
func (s Shape) Unravel(offset int) ([]int, error) {
	n := s.NumElements()
	if offset < 0 || offset >= n {
		return nil, fmt.Errorf("%w: offset %d for %d elements", ErrIndexOutOfRange, offset, n)
	}
	coords := make([]int, len(s))
	for j := len(s) - 1; j >= 0; j-- {
		coords[j] = offset % s[j]
		offset /= s[j]
	}
	return coords, nil
}
