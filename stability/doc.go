// SPDX-License-Identifier: MIT

// Package stability measures how each grid point's multi-field response to
// spatial displacement is shaped.
//
// At every point s the P×2 Jacobian J(s) stacks the physical-space gradients
// [∂f_i/∂x, ∂f_i/∂y] of the P smoothed activity fields. Its singular values
// σ1 ≥ σ2 ≥ 0 give:
//
//   - Sigma1: maximal local stretch, the strongest directional sensitivity.
//   - RSI = σ2/σ1 ∈ [0, 1]: near 1 the response is isotropic; near 0 it is
//     dominated by one direction (fold or boundary-like).
//
// RSI is 0 wherever σ1 ≤ epsilon, and everywhere when P < 2 (a single field
// has no second singular value).
//
// Errors:
//
//   - ErrNilInput: nil stack.
//   - ErrBadResolution: non-positive or non-finite grid spacing.
//   - filter.ErrTooSmall (wrapped): fewer than 2 samples along an axis.
package stability

import "errors"

var (
	// ErrNilInput indicates a nil stack.
	ErrNilInput = errors.New("stability: nil input")

	// ErrBadResolution indicates a non-positive or non-finite grid spacing.
	ErrBadResolution = errors.New("stability: resolution must be finite and > 0")
)
