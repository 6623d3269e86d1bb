// SPDX-License-Identifier: MIT

// Package coupling builds the local covariance ("coupling") tensor between
// P co-registered activity fields and detects phase boundaries where that
// tensor changes rapidly in space.
//
// What:
//
//   - ComputeTensor: C(s) = G_σ * [(f_i − G_σ*f_i)(f_j − G_σ*f_j)] at every
//     grid point s, with σ = delta/resolution pixels, plus the Frobenius norm
//     ‖C(s)‖_F (coupling strength) and exp(−Σ p log p) over the clipped,
//     normalized eigenvalue spectrum (effective dimensionality).
//   - PhaseBoundaries: sqrt(Σ_ij |∇(G_s*C_ij)|²) over every tensor
//     component, with physical-space gradients.
//
// Guarantees:
//
//   - C is exactly symmetric: each pair (i, j), i ≤ j, is computed once and
//     stored into both slots.
//   - Strength ≥ 0, EffectiveDim ∈ [0, P], boundary field ≥ 0.
//   - Near-zero local variance yields EffectiveDim = 0, not an error.
//
// Determinism:
//
//   - Smoothing passes run concurrently per field/pair but each writes its
//     own buffer; the per-point pass writes disjoint rows. Results do not
//     depend on the worker count.
//
// Errors:
//
//   - ErrBadRadius, ErrBadResolution, ErrBadSigma: invalid physical parameters.
//   - ErrNilInput: nil stack or tensor.
//   - grid/filter/linalg sentinels are propagated wrapped.
package coupling

import "errors"

var (
	// ErrBadRadius indicates a non-positive or non-finite averaging radius.
	ErrBadRadius = errors.New("coupling: delta must be finite and > 0")

	// ErrBadResolution indicates a non-positive or non-finite grid spacing.
	ErrBadResolution = errors.New("coupling: resolution must be finite and > 0")

	// ErrBadSigma indicates a negative or non-finite boundary smoothing scale.
	ErrBadSigma = errors.New("coupling: smoothing sigma must be finite and ≥ 0")

	// ErrNilInput indicates a nil stack or tensor argument.
	ErrNilInput = errors.New("coupling: nil input")
)
