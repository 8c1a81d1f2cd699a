//go:build ndarray_unchecked

package tensor

// BoundsChecked reports whether hot-path accessors verify that every
// coordinate lies inside its extent.
//
// In this build the checks are off: a coordinate outside its extent silently
// addresses another element of the same buffer. Go slice bounds still stop
// any access past the end of the buffer.
const BoundsChecked = false
