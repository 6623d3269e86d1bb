// SPDX-License-Identifier: MIT

// Package filter is the shared smoothing and differentiation primitive used
// by the coupling and stability engines.
//
// What:
//
//   - Gaussian: separable Gaussian smoothing with a half-sample symmetric
//     ("reflect") border and a kernel truncated at 4 standard deviations.
//     Rows are filtered along y first, then along x.
//   - Gradient: central differences in the interior and one-sided first-order
//     differences on the border, divided by the physical grid spacing.
//   - SmoothedGradient: Gaussian followed by Gradient, plus |∇f|.
//   - Laplacian: ∂²f/∂x² + ∂²f/∂y² by differentiating twice.
//
// Conventions:
//
//   - sigma is always in pixels; spacing is physical units per grid step.
//   - sigma == 0 disables smoothing (the input is copied unchanged).
//
// Errors:
//
//   - ErrBadSigma: sigma negative or non-finite.
//   - ErrBadSpacing: spacing not strictly positive and finite.
//   - ErrTooSmall: differentiation needs at least two samples per axis.
package filter

import "errors"

var (
	// ErrBadSigma indicates a negative or non-finite smoothing scale.
	ErrBadSigma = errors.New("filter: sigma must be finite and ≥ 0")

	// ErrBadSpacing indicates a non-positive or non-finite grid spacing.
	ErrBadSpacing = errors.New("filter: spacing must be finite and > 0")

	// ErrTooSmall indicates an axis with fewer than two samples.
	ErrTooSmall = errors.New("filter: gradient requires at least 2 samples per axis")
)
