package tensor

import "errors"

// Sentinel errors. Constructors and checked lookups return them wrapped with
// context via fmt.Errorf("...: %w", ErrX); hot-path accessors panic with the
// same wrapped values. Match with errors.Is.
var (
	// ErrBadShape is returned when a shape has rank 0, a non-positive extent,
	// or an element count that overflows int.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch is returned when a literal element list does not hold
	// exactly Shape.NumElements() values.
	ErrSizeMismatch = errors.New("tensor: element count does not match shape")

	// ErrArityMismatch signals a coordinate tuple whose length differs from the
	// rank it addresses.
	ErrArityMismatch = errors.New("tensor: wrong number of coordinates")

	// ErrIndexOutOfRange signals a coordinate (or linear offset) outside its extent.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")

	// ErrEmptyContainer is returned by Front/Back on a tensor without elements.
	ErrEmptyContainer = errors.New("tensor: empty container")

	// ErrShapeMismatch signals two operands of different shape (Swap).
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrReleased signals access through a tensor or view whose storage was released.
	ErrReleased = errors.New("tensor: storage released")
)
