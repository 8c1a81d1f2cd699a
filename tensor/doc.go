// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-shape, multi-dimensional arrays.
//
// # Overview
//
// A Tensor owns one contiguous buffer of d1*d2*...*dk elements in row-major
// order. Its shape is fixed when it is created. This package provides:
//   - Generic tensors over any element type (Tensor[T])
//   - Direct addressing by a full coordinate tuple (At, Set, Ref)
//   - Rank-reducing views that share the tensor's storage (Index, View)
//   - Linear addressing and conversion both ways (Flat, Offset, Unravel)
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    t, err := tensor.Of(tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    v := t.At(1, 2)      // 6, offset 1*3 + 2
//	    row := t.Index(1)    // View over [4 5 6]
//	    *row.Elem(0) = 40    // visible through t
//	    t.Fill(0)            // visible through row
//	}
//
// # Views
//
// Indexing a rank k tensor or view by one coordinate yields a View of rank
// k-1 over the same buffer; indexing a rank 1 view yields a rank 0 view of a
// single element, and Elem returns a pointer to it directly. Views are small
// values and never copy elements. A View must not be used after its Tensor is
// released; accesses then panic with ErrReleased.
//
// The full-tuple accessors (At, Set, Ref) compute the final offset in one
// pass and are the preferred form on hot paths.
//
// # Errors and bounds checking
//
// Constructors and the Lookup, Offset, Unravel and Swap methods return errors
// that wrap the package's sentinel errors; match them with errors.Is.
// Hot-path accessors panic with the same errors.
//
// The number of coordinates is always checked. Per-coordinate range checks
// are on by default and can be compiled out with the ndarray_unchecked build
// tag (see BoundsChecked); Lookup always checks.
//
// # Concurrency
//
// Tensors do not synchronize element access. Concurrent reads are safe;
// concurrent writes to the same elements, through the tensor or any views,
// must be serialized by the caller.
package tensor
