// SPDX-License-Identifier: MIT

// Package analysis runs the full per-point tensor analysis over a stack of
// regulon activity fields.
//
// Run executes two independent branches concurrently:
//
//	fields → coupling tensor → {strength, effective dimensionality}
//	                        → phase boundaries
//	fields → Jacobians      → {sigma1, RSI}
//
// and returns every artifact with a distribution Summary for each scalar
// field. Configuration is an explicit Config value; DefaultConfig carries
// the conventional 20 µm grid, 100 µm coupling radius and 2 px boundary
// smoothing.
package analysis

import "errors"

// ErrBadConfig indicates an invalid Config value.
var ErrBadConfig = errors.New("analysis: invalid config")

// ErrNilInput indicates a nil stack or field.
var ErrNilInput = errors.New("analysis: nil input")
