package tensor

// Equal reports whether a and b have the same shape and equal elements at
// every linear offset. Tensors of different shape (including different rank)
// are never equal. Stops at the first mismatch.
func Equal[T comparable](a, b *Tensor[T]) bool {
	return EqualViews(a.View(), b.View())
}

// EqualViews is Equal for views. Only the shapes of the views matter, not
// their offsets or owning tensors.
func EqualViews[T comparable](a, b View[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like EqualViews but compares elements with eq, for element
// types that are not comparable or need a tolerance.
func EqualFunc[T any](a, b View[T], eq func(x, y T) bool) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	da, db := a.Data(), b.Data()
	for i := range da {
		if !eq(da[i], db[i]) {
			return false
		}
	}
	return true
}
