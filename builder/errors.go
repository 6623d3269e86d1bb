// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method tag + parameters).
//   • Constructors never panic at runtime; option constructors (WithX) may
//     panic on meaningless values.

package builder

import "errors"

// ErrBadShape indicates non-positive grid dimensions.
var ErrBadShape = errors.New("builder: grid dimensions must be > 0")

// ErrBadParameter indicates a non-finite or out-of-range constructor argument
// (e.g., a negative blob radius or a step index outside the grid).
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrNeedSeed indicates a stochastic constructor ran without WithSeed.
var ErrNeedSeed = errors.New("builder: seed is required")

// ErrNilConstructor indicates a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
