package tensor

import (
	"fmt"
	"iter"
	"math"
	"unsafe"
)

// Tensor is a fixed-shape, multi-dimensional array of T.
//
// It owns a single contiguous buffer of exactly Shape().NumElements()
// elements in row-major order; the shape is fixed at construction. A Tensor is
// the only owner of storage: every View obtained from it borrows the same
// buffer and is valid until Release.
//
// Example:
//
//	t, _ := tensor.FromSlice(Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	row := t.Index(1)   // View over [4 5 6]
//	*row.Elem(2) = 60   // writes through to t
//	x := t.At(1, 2)     // 60
type Tensor[T any] struct {
	buf     *buffer[T]
	shape   Shape // validated, never mutated
	strides []int // row-major stride table, shared with views
}

// newTensor allocates a zero-valued tensor for an already validated shape.
func newTensor[T any](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		buf:     newBuffer[T](shape.NumElements()),
		shape:   shape,
		strides: shape.ComputeStrides(),
	}
}

// View returns the full-rank view over the whole tensor.
func (t *Tensor[T]) View() View[T] {
	return View[T]{buf: t.buf, shape: t.shape, strides: t.strides}
}

// Shape returns a copy of the tensor's extents.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the row-major stride table.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.strides...)
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Size returns the number of elements, the product of the extents.
func (t *Tensor[T]) Size() int {
	return t.shape[0] * t.strides[0]
}

// Empty reports whether the tensor holds no elements, which is only the case
// after Release.
func (t *Tensor[T]) Empty() bool {
	return !t.buf.alive() || len(t.buf.data) == 0
}

// MaxSize returns the largest element count a buffer of T could hold.
func (t *Tensor[T]) MaxSize() int {
	var zero T
	if sz := int(unsafe.Sizeof(zero)); sz > 0 {
		return math.MaxInt / sz
	}
	return math.MaxInt
}

// Data returns the tensor's buffer in row-major order.
//
// WARNING: the slice aliases the tensor's storage.
func (t *Tensor[T]) Data() []T {
	return t.View().Data()
}

// Index returns the view of rank Rank()-1 over sub-range pos of the leading
// dimension. See View.Index.
func (t *Tensor[T]) Index(pos int) View[T] {
	return t.View().Index(pos)
}

// Elem returns a pointer to element pos of a rank 1 tensor. See View.Elem.
func (t *Tensor[T]) Elem(pos int) *T {
	return t.View().Elem(pos)
}

// Ref returns a pointer to the element at coords. See View.Ref.
func (t *Tensor[T]) Ref(coords ...int) *T {
	return t.View().Ref(coords...)
}

// At returns the element at the given coordinates.
// Panics on a wrong number of coordinates, and on an out-of-range coordinate
// when BoundsChecked.
//
// Example:
//
//	t := tensor.Must(tensor.New[float32](Shape{3, 4}))
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(coords ...int) T {
	return t.View().At(coords...)
}

// Set sets the element at the given coordinates. Panics like At.
func (t *Tensor[T]) Set(value T, coords ...int) {
	t.View().Set(value, coords...)
}

// Lookup returns a pointer to the element at coords or a checked error.
// See View.Lookup.
func (t *Tensor[T]) Lookup(coords ...int) (*T, error) {
	return t.View().Lookup(coords...)
}

// Offset converts coords into a linear offset. See Shape.Offset.
func (t *Tensor[T]) Offset(coords ...int) (int, error) {
	return t.shape.Offset(coords...)
}

// Unravel converts a linear offset into coordinates. See Shape.Unravel.
func (t *Tensor[T]) Unravel(offset int) ([]int, error) {
	return t.shape.Unravel(offset)
}

// FlatRef returns a pointer to the element at linear offset i.
func (t *Tensor[T]) FlatRef(i int) *T {
	t.buf.mustAlive()
	if BoundsChecked && (i < 0 || i >= len(t.buf.data)) {
		panic(fmt.Errorf("%w: offset %d for %d elements", ErrIndexOutOfRange, i, len(t.buf.data)))
	}
	return &t.buf.data[i]
}

// Flat returns the element at linear offset i.
func (t *Tensor[T]) Flat(i int) T {
	return *t.FlatRef(i)
}

// SetFlat assigns the element at linear offset i.
func (t *Tensor[T]) SetFlat(i int, value T) {
	*t.FlatRef(i) = value
}

// Front returns the element at linear offset 0.
func (t *Tensor[T]) Front() T {
	t.buf.mustAlive()
	if len(t.buf.data) == 0 {
		panic(ErrEmptyContainer)
	}
	return t.buf.data[0]
}

// Back returns the element at linear offset Size()-1.
func (t *Tensor[T]) Back() T {
	t.buf.mustAlive()
	if len(t.buf.data) == 0 {
		panic(ErrEmptyContainer)
	}
	return t.buf.data[len(t.buf.data)-1]
}

// Fill assigns value to every element.
// Complexity: O(Size()), split across workers for large tensors.
func (t *Tensor[T]) Fill(value T) {
	fill(t.Data(), value)
}

// FillFunc assigns f(offset) to the element at every linear offset.
// f may be called concurrently from several goroutines for large tensors.
func (t *Tensor[T]) FillFunc(f func(offset int) T) {
	data := t.Data()
	parallelFor(len(data), func(i int) {
		data[i] = f(i)
	})
}

// Swap exchanges the contents of t and other element by element.
// Returns ErrShapeMismatch, without touching either tensor, when the shapes
// differ.
func (t *Tensor[T]) Swap(other *Tensor[T]) error {
	if !t.buf.alive() || !other.buf.alive() {
		return ErrReleased
	}
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%w: swap %v with %v", ErrShapeMismatch, t.shape, other.shape)
	}
	if t.buf == other.buf {
		return nil
	}
	a, b := t.buf.data, other.buf.data
	parallelChunks(len(a), func(s, e int) {
		for i := s; i < e; i++ {
			a[i], b[i] = b[i], a[i]
		}
	})
	return nil
}

// Clone returns a deep copy with its own storage.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return t.View().Clone()
}

// Release drops the tensor's storage. Every View derived from t becomes
// invalid and panics with ErrReleased on access. Calling Release again is a
// no-op.
func (t *Tensor[T]) Release() {
	t.buf.release()
}

// All iterates every element in row-major order with its linear offset.
func (t *Tensor[T]) All() iter.Seq2[int, T] {
	return t.View().All()
}

// Rows iterates the views of rank Rank()-1 over the leading dimension.
func (t *Tensor[T]) Rows() iter.Seq2[int, View[T]] {
	return t.View().Rows()
}

// String returns a human-readable description of the tensor.
func (t *Tensor[T]) String() string {
	var zero T
	return fmt.Sprintf("Tensor[%T]%v", zero, t.shape)
}
