// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Callers MUST branch with errors.Is; context is attached with %w at the call site.

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: field must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrEmptyNames indicates an empty ordered name list.
	ErrEmptyNames = errors.New("grid: name list is empty")

	// ErrUnknownName indicates a name that has no field in the mapping.
	ErrUnknownName = errors.New("grid: unknown field name")

	// ErrDuplicateName indicates the same name appears twice in the name list.
	ErrDuplicateName = errors.New("grid: duplicate field name")

	// ErrShapeMismatch indicates fields (or tensors) of incompatible shapes.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrNonFinite indicates NaN or ±Inf in an input field.
	ErrNonFinite = errors.New("grid: NaN or Inf encountered")

	// ErrOutOfRange indicates an index outside the lattice or tensor axes.
	ErrOutOfRange = errors.New("grid: index out of range")
)
