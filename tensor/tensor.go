// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Shape represents the extents of a tensor, outermost dimension first.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a fixed-shape, multi-dimensional array that owns its storage.
//
// Example:
//
//	t, _ := tensor.New[float32](tensor.Shape{3, 4})
//	t.Set(1.5, 2, 3)
//	x := t.At(2, 3) // 1.5
type Tensor[T any] = tensor.Tensor[T]

// View is a non-owning, rank-reduced handle over a Tensor's storage.
//
// Example:
//
//	t, _ := tensor.New[int](tensor.Shape{2, 3, 4})
//	plane := t.Index(1)       // View of shape (3, 4)
//	row := plane.Index(2)     // View of shape (4)
//	*row.Elem(3) = 7          // same element as t.Ref(1, 2, 3)
type View[T any] = tensor.View[T]

// ParallelConfig controls how bulk operations split work across goroutines.
type ParallelConfig = parallel.Config

// Errors returned (or raised by panics) from this package.
var (
	ErrBadShape        = tensor.ErrBadShape
	ErrSizeMismatch    = tensor.ErrSizeMismatch
	ErrArityMismatch   = tensor.ErrArityMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrEmptyContainer  = tensor.ErrEmptyContainer
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrReleased        = tensor.ErrReleased
)

// BoundsChecked reports whether hot-path accessors verify coordinate ranges.
// It is false when built with the ndarray_unchecked tag.
const BoundsChecked = tensor.BoundsChecked

// Creation functions

// New creates a tensor with every element set to the zero value of T.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.Shape{2, 3})
func New[T any](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied; its length must equal shape.NumElements().
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(tensor.Shape{2, 3}, data)
func FromSlice[T any](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.FromSlice(shape, data)
}

// Of creates a tensor from a literal element list.
//
// Example:
//
//	x, err := tensor.Of(tensor.Shape{2, 2}, 1, 2, 3, 4)
func Of[T any](shape Shape, elems ...T) (*Tensor[T], error) {
	return tensor.Of(shape, elems...)
}

// Full creates a tensor with every element set to value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Must returns t or panics with err.
//
// Example:
//
//	x := tensor.Must(tensor.Of(tensor.Shape{2}, 1, 2))
func Must[T any](t *Tensor[T], err error) *Tensor[T] {
	return tensor.Must(t, err)
}

// Comparison functions

// Equal reports whether a and b have the same shape and equal elements.
// Tensors of different shape are never equal.
func Equal[T comparable](a, b *Tensor[T]) bool {
	return tensor.Equal(a, b)
}

// EqualViews reports whether two views have the same shape and equal elements.
func EqualViews[T comparable](a, b View[T]) bool {
	return tensor.EqualViews(a, b)
}

// EqualFunc is like EqualViews but compares elements with eq.
func EqualFunc[T any](a, b View[T], eq func(x, y T) bool) bool {
	return tensor.EqualFunc(a, b, eq)
}

// Configuration

// DefaultParallelConfig returns the configuration derived from the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the configuration used by Fill, FillFunc and Swap.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}

// CurrentParallelConfig returns the configuration used by bulk operations.
func CurrentParallelConfig() ParallelConfig {
	return tensor.ParallelConfig()
}
