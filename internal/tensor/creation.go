package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

var bulkConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	bulkConfig.Store(&cfg)
}

// SetParallelConfig replaces the configuration bulk operations (Fill,
// FillFunc, Swap) use to split work across goroutines.
func SetParallelConfig(cfg parallel.Config) {
	bulkConfig.Store(&cfg)
}

// ParallelConfig returns the configuration currently used by bulk operations.
func ParallelConfig() parallel.Config {
	return *bulkConfig.Load()
}

func parallelChunks(n int, f func(start, end int)) {
	parallel.ForChunks(n, f, *bulkConfig.Load())
}

func parallelFor(n int, f func(i int)) {
	parallel.For(n, f, *bulkConfig.Load())
}

// fill assigns value to every element of data.
func fill[T any](data []T, value T) {
	parallelChunks(len(data), func(s, e int) {
		for i := s; i < e; i++ {
			data[i] = value
		}
	})
}

// New creates a tensor of the given shape with every element set to the zero
// value of T.
//
// Example:
//
//	t, err := tensor.New[float32](Shape{3, 4})
func New[T any](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor[T](shape.Clone()), nil
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied into the tensor's memory; len(data) must equal
// shape.NumElements() exactly.
func FromSlice[T any](shape Shape, data []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	switch {
	case len(data) < n:
		return nil, fmt.Errorf("%w: too few elements, shape %v requires %d, got %d", ErrSizeMismatch, shape, n, len(data))
	case len(data) > n:
		return nil, fmt.Errorf("%w: too many elements, shape %v requires %d, got %d", ErrSizeMismatch, shape, n, len(data))
	}

	t := newTensor[T](shape.Clone())
	copy(t.buf.data, data)
	return t, nil
}

// Of creates a tensor from a literal element list.
//
// Example:
//
//	t, err := tensor.Of(Shape{2, 2}, 1, 2, 3, 4)
func Of[T any](shape Shape, elems ...T) (*Tensor[T], error) {
	return FromSlice(shape, elems)
}

// Full creates a tensor with every element set to value.
func Full[T any](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	t.Fill(value)
	return t, nil
}

// Must returns t or panics with err. It is intended for shapes and literals
// known to be valid, e.g. package-level tables.
//
// Example:
//
//	identity := tensor.Must(tensor.Of(Shape{2, 2}, 1, 0, 0, 1))
func Must[T any](t *Tensor[T], err error) *Tensor[T] {
	if err != nil {
		panic(err)
	}
	return t
}
