package tensor

import "sync/atomic"

// buffer is the storage a Tensor owns and every View derived from it borrows.
// Views keep a pointer to the buffer, never a copy of its slice header, so a
// release is observed by all of them.
type buffer[T any] struct {
	data     []T
	released atomic.Bool
}

// newBuffer allocates n zero-valued elements.
func newBuffer[T any](n int) *buffer[T] {
	return &buffer[T]{data: make([]T, n)}
}

// alive reports whether the storage has not been released.
func (b *buffer[T]) alive() bool {
	return b != nil && !b.released.Load()
}

// mustAlive panics with ErrReleased once the owner released the storage.
// A zero View has no buffer and is treated the same way.
func (b *buffer[T]) mustAlive() {
	if b == nil || b.released.Load() {
		panic(ErrReleased)
	}
}

// release drops the storage. Safe to call more than once.
func (b *buffer[T]) release() {
	if b.released.Swap(true) {
		return
	}
	b.data = nil
}
