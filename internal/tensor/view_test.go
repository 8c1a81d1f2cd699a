package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arange returns a tensor whose element at every linear offset equals the offset.
func arange(t *testing.T, shape Shape) *Tensor[int] {
	t.Helper()
	x, err := New[int](shape)
	require.NoError(t, err)
	x.FillFunc(func(off int) int { return off })
	return x
}

func TestViewIndex_RankReduction(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})

	v := x.Index(1)
	assert.Equal(t, 2, v.Rank())
	assert.Equal(t, Shape{3, 4}, v.Shape())
	assert.Equal(t, 12, v.Offset())
	assert.Equal(t, 12, v.Size())

	w := v.Index(2)
	assert.Equal(t, 1, w.Rank())
	assert.Equal(t, Shape{4}, w.Shape())
	assert.Equal(t, 20, w.Offset())

	s := w.Index(3)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 23, s.Value())
	assert.Equal(t, 23, *w.Elem(3))
}

// Full-tuple addressing and the view chain reach the same element.
func TestViewChainMatchesDirectAddressing(t *testing.T) {
	for _, shape := range []Shape{{6}, {3, 4}, {2, 3, 4}, {2, 2, 3, 2}} {
		x := arange(t, shape)
		for off := 0; off < x.Size(); off++ {
			coords, err := shape.Unravel(off)
			require.NoError(t, err)

			v := x.View()
			for _, c := range coords[:len(coords)-1] {
				v = v.Index(c)
			}
			chained := v.Elem(coords[len(coords)-1])
			direct := x.Ref(coords...)

			assert.Same(t, direct, chained, "shape %v coords %v", shape, coords)
			assert.Equal(t, off, *direct)
		}
	}
}

func TestViewElemAndRefAgreeOnRankOne(t *testing.T) {
	x := arange(t, Shape{3, 5})
	row := x.Index(2)

	for i := 0; i < 5; i++ {
		assert.Same(t, row.Elem(i), row.Ref(i))
		assert.Same(t, row.Elem(i), row.Index(i).Ptr())
	}
}

func TestViewSharesStorage(t *testing.T) {
	x, err := New[int](Shape{2, 3})
	require.NoError(t, err)

	view := x.Index(1)
	x.Fill(9)
	for _, v := range view.All() {
		assert.Equal(t, 9, v)
	}

	view.Set(4, 2)
	assert.Equal(t, 4, x.At(1, 2))

	*view.Elem(0) = 7
	assert.Equal(t, 7, x.Flat(3))

	view.Index(1).Store(5)
	assert.Equal(t, []int{9, 9, 9, 7, 5, 4}, x.Data())

	copied := view
	copied.Fill(1)
	assert.Equal(t, []int{9, 9, 9, 1, 1, 1}, x.Data(), "copying a view copies the handle only")
}

func TestViewData(t *testing.T) {
	x := arange(t, Shape{3, 4})
	row := x.Index(1).Data()

	assert.Equal(t, []int{4, 5, 6, 7}, row)
	assert.Equal(t, 4, cap(row))

	_ = append(row, 100)
	assert.Equal(t, 8, x.At(2, 0), "append must not write past the view")
}

func TestViewIndex_Panics(t *testing.T) {
	x := arange(t, Shape{2, 3})

	requirePanicIs(t, ErrArityMismatch, func() { x.Index(0).Index(1).Index(0) })
	requirePanicIs(t, ErrArityMismatch, func() { x.Elem(0) })
	requirePanicIs(t, ErrArityMismatch, func() { x.Index(0).Index(0).Elem(0) })
	requirePanicIs(t, ErrArityMismatch, func() { x.Index(0).Value() })
	requirePanicIs(t, ErrArityMismatch, func() { x.Index(1).Ref(0, 0) })
	requirePanicIs(t, ErrReleased, func() { View[int]{}.Index(0) })
}

func TestViewIndex_OutOfRange(t *testing.T) {
	if !BoundsChecked {
		t.Skip("range checks are compiled out")
	}
	x := arange(t, Shape{2, 3})

	requirePanicIs(t, ErrIndexOutOfRange, func() { x.Index(2) })
	requirePanicIs(t, ErrIndexOutOfRange, func() { x.Index(-1) })
	requirePanicIs(t, ErrIndexOutOfRange, func() { x.Index(1).Elem(3) })
	requirePanicIs(t, ErrIndexOutOfRange, func() { x.Index(0).Ref(3) })
}

func TestViewLookup(t *testing.T) {
	x := arange(t, Shape{2, 3})
	row := x.Index(1)

	p, err := row.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, 5, *p)

	_, err = row.Lookup(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = row.Lookup(0, 0)
	assert.ErrorIs(t, err, ErrArityMismatch)

	x.Release()
	_, err = row.Lookup(0)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestViewLifetime(t *testing.T) {
	x := arange(t, Shape{2, 3})
	row := x.Index(0)
	scalar := row.Index(1)
	require.True(t, row.Valid())

	x.Release()
	x.Release()

	assert.False(t, row.Valid())
	assert.False(t, scalar.Valid())
	assert.True(t, x.Empty())
	requirePanicIs(t, ErrReleased, func() { row.At(0) })
	requirePanicIs(t, ErrReleased, func() { scalar.Value() })
	requirePanicIs(t, ErrReleased, func() { row.Index(0) })
	requirePanicIs(t, ErrReleased, func() { x.Front() })
	requirePanicIs(t, ErrReleased, func() { x.Fill(1) })
}

func TestViewRows(t *testing.T) {
	x := arange(t, Shape{3, 2})

	var got [][]int
	for i, row := range x.Rows() {
		assert.Equal(t, i*2, row.Offset())
		got = append(got, append([]int(nil), row.Data()...))
	}
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}}, got)

	count := 0
	for range x.Index(0).Index(0).Rows() {
		count++
	}
	assert.Zero(t, count, "a scalar view has no rows")

	// Early exit stops the iteration.
	count = 0
	for range x.Rows() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestViewClone(t *testing.T) {
	x := arange(t, Shape{2, 3})

	c := x.Index(1).Clone()
	assert.Equal(t, Shape{3}, c.Shape())
	assert.Equal(t, []int{3, 4, 5}, c.Data())

	c.Fill(0)
	assert.Equal(t, 3, x.At(1, 0), "clone owns its storage")

	s := x.Index(1).Index(2).Clone()
	assert.Equal(t, Shape{1}, s.Shape())
	assert.Equal(t, 5, s.Front())
}

func TestViewString(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})
	assert.Equal(t, "View(3, 4)@12", x.Index(1).String())
	assert.Equal(t, "View()@23", x.Index(1).Index(2).Index(3).String())
}
