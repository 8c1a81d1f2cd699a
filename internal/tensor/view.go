package tensor

import (
	"fmt"
	"iter"
)

// View is a non-owning handle over part of a Tensor's buffer.
//
// A View of rank r addresses the trailing r dimensions of its Tensor, starting
// at a base linear offset. shape and strides are suffixes of the Tensor's own
// tables, so deriving a View never allocates. Copying a View copies the handle,
// never element data; every write through a View is visible through the
// Tensor and through every other View over the same elements.
//
// A View is valid only while its Tensor is: after Tensor.Release every access
// panics with ErrReleased. The zero View is invalid.
type View[T any] struct {
	buf     *buffer[T]
	shape   Shape
	strides []int
	offset  int
}

// size returns the number of addressed elements in O(1) using the stride table.
func (v View[T]) size() int {
	if len(v.shape) == 0 {
		return 1
	}
	return v.shape[0] * v.strides[0]
}

// Rank returns the number of dimensions left to index.
func (v View[T]) Rank() int {
	return len(v.shape)
}

// Shape returns a copy of the view's extents.
func (v View[T]) Shape() Shape {
	return v.shape.Clone()
}

// Size returns the number of elements the view addresses (1 for rank 0).
func (v View[T]) Size() int {
	return v.size()
}

// Offset returns the linear offset in the owning buffer at which the view starts.
func (v View[T]) Offset() int {
	return v.offset
}

// Valid reports whether the owning Tensor still holds its storage.
func (v View[T]) Valid() bool {
	return v.buf.alive()
}

// Index drops the leading dimension: it returns the rank r-1 view over
// sub-range pos of the leading extent. On a rank 1 view the result is a rank 0
// (scalar) view. Indexing a rank 0 view panics with ErrArityMismatch.
//
// Complexity: O(1), no allocation.
func (v View[T]) Index(pos int) View[T] {
	v.buf.mustAlive()
	if len(v.shape) == 0 {
		panic(fmt.Errorf("%w: cannot index a rank 0 view", ErrArityMismatch))
	}
	if BoundsChecked && (pos < 0 || pos >= v.shape[0]) {
		panic(fmt.Errorf("%w: index %d for dimension 0 (extent %d)", ErrIndexOutOfRange, pos, v.shape[0]))
	}
	return View[T]{
		buf:     v.buf,
		shape:   v.shape[1:],
		strides: v.strides[1:],
		offset:  v.offset + pos*v.strides[0],
	}
}

// Elem is the terminal step of the index chain: on a rank 1 view it returns a
// pointer to element pos. Any other rank panics with ErrArityMismatch.
// Elem(p) and Ref(p) return the same pointer.
func (v View[T]) Elem(pos int) *T {
	v.buf.mustAlive()
	if len(v.shape) != 1 {
		panic(fmt.Errorf("%w: Elem needs a rank 1 view, got rank %d", ErrArityMismatch, len(v.shape)))
	}
	if BoundsChecked && (pos < 0 || pos >= v.shape[0]) {
		panic(fmt.Errorf("%w: index %d for dimension 0 (extent %d)", ErrIndexOutOfRange, pos, v.shape[0]))
	}
	return &v.buf.data[v.offset+pos]
}

// Ref returns a pointer to the element at coords, one coordinate per
// remaining dimension. The linear offset is computed in one pass; no
// intermediate views are built.
//
// Panics with ErrArityMismatch when len(coords) != Rank(), and with
// ErrIndexOutOfRange for a coordinate outside its extent when BoundsChecked.
func (v View[T]) Ref(coords ...int) *T {
	v.buf.mustAlive()
	if err := checkArity(v.shape, coords); err != nil {
		panic(err)
	}
	if BoundsChecked {
		if err := checkCoords(v.shape, coords); err != nil {
			panic(err)
		}
	}
	return &v.buf.data[v.offset+linearOffset(v.strides, coords)]
}

// At returns the element at coords. See Ref for the failure modes.
func (v View[T]) At(coords ...int) T {
	return *v.Ref(coords...)
}

// Set assigns value to the element at coords. See Ref for the failure modes.
func (v View[T]) Set(value T, coords ...int) {
	*v.Ref(coords...) = value
}

// Lookup is the always-checked form of Ref: it returns an error wrapping
// ErrReleased, ErrArityMismatch or ErrIndexOutOfRange instead of panicking,
// whatever the build mode.
func (v View[T]) Lookup(coords ...int) (*T, error) {
	if !v.buf.alive() {
		return nil, ErrReleased
	}
	if err := checkArity(v.shape, coords); err != nil {
		return nil, err
	}
	if err := checkCoords(v.shape, coords); err != nil {
		return nil, err
	}
	return &v.buf.data[v.offset+linearOffset(v.strides, coords)], nil
}

// Value returns the element of a rank 0 view.
func (v View[T]) Value() T {
	return *v.Ref()
}

// Store assigns the element of a rank 0 view.
func (v View[T]) Store(value T) {
	*v.Ref() = value
}

// Ptr returns a pointer to the element of a rank 0 view.
func (v View[T]) Ptr() *T {
	return v.Ref()
}

// Data returns the contiguous range of the owning buffer the view addresses.
// The slice shares storage with the tensor; its capacity is capped so an
// append never writes past the view.
func (v View[T]) Data() []T {
	v.buf.mustAlive()
	end := v.offset + v.size()
	return v.buf.data[v.offset:end:end]
}

// Fill assigns value to every element of the view.
func (v View[T]) Fill(value T) {
	fill(v.Data(), value)
}

// All iterates the view's elements in row-major order, yielding each
// element's position within the view and its value.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Data() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Rows iterates Index(0), Index(1), ... over the leading dimension.
// A rank 0 view yields nothing.
func (v View[T]) Rows() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		if len(v.shape) == 0 {
			return
		}
		for i := 0; i < v.shape[0]; i++ {
			if !yield(i, v.Index(i)) {
				return
			}
		}
	}
}

// Clone copies the view's elements into a new Tensor of the same shape.
// A rank 0 view becomes a tensor of shape (1).
func (v View[T]) Clone() *Tensor[T] {
	shape := v.shape.Clone()
	if len(shape) == 0 {
		shape = Shape{1}
	}
	t := newTensor[T](shape)
	copy(t.buf.data, v.Data())
	return t
}

// String returns a short description, e.g. "View(3, 4)@12".
func (v View[T]) String() string {
	return fmt.Sprintf("View%v@%d", v.shape, v.offset)
}
