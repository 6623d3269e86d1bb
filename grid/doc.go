// SPDX-License-Identifier: MIT

// Package grid holds the shared data model for regulon field analysis:
// scalar fields on a rectangular lattice, ordered stacks of named fields,
// and per-point P×P tensor fields.
//
// What:
//
//   - Field is an ny×nx row-major float64 array (immutable by convention once
//     returned from an engine).
//   - Stack is an ordered, validated collection of equal-shaped named fields.
//     Name order defines tensor axis order everywhere downstream.
//   - Tensor stores a P×P matrix at every grid point, shape (ny, nx, P, P).
//   - ParallelRows fans a per-row callback out to a bounded worker group.
//   - Regions labels connected areas at or above a threshold.
//
// Why:
//
//   - Every engine in this module reads the same shapes; validation happens
//     once, in NewStack, before any numeric pass runs.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: bad 2D input.
//   - ErrEmptyNames, ErrUnknownName, ErrDuplicateName: bad name list.
//   - ErrShapeMismatch: fields of differing shapes (message names the field).
//   - ErrNonFinite: NaN or ±Inf values in an input field.
//   - ErrOutOfRange: index outside the lattice.
package grid
