//go:build !ndarray_unchecked

package tensor

// BoundsChecked reports whether hot-path accessors verify that every
// coordinate lies inside its extent. Build with -tags ndarray_unchecked to
// turn the per-coordinate checks off.
const BoundsChecked = true
