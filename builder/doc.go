// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic activity fields.
//
// What:
//
//   - Constructors (Constant, RampX, RampY, Blob, Step, Noise, Scaled, Sum)
//     fill a pre-allocated grid.Field from a resolved builderConfig.
//   - BuildField runs one Constructor; BuildStack runs several named
//     Constructors on a shared shape and returns a validated grid.Stack.
//
// Why:
//
//   - Fixtures for tests, examples and benchmarks of the coupling and
//     stability engines: orthogonal ramps, identical or scaled copies,
//     sharp regime changes, and smooth fractal tissue-like textures.
//
// Determinism:
//
//   - No hidden randomness. Noise requires WithSeed and is a pure function
//     of (seed, octaves, frequency, persistence, y, x).
//
// Errors:
//
//   - ErrBadShape: non-positive grid dimensions.
//   - ErrBadParameter: non-finite or out-of-range constructor arguments.
//   - ErrNeedSeed: Noise without WithSeed.
//   - ErrNilConstructor: nil Constructor passed to BuildField/BuildStack.
package builder
