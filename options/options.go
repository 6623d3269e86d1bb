// SPDX-License-Identifier: MIT

// Package options: explicit numeric and execution configuration shared by
// the coupling and stability engines. This file defines:
//   - Option / Options (functional options, resolved once per call),
//   - documented defaults (single source of truth),
//   - WithX constructors that panic on nonsensical values (programmer error).
//
// Design goals:
//   - No global state: every engine call receives its configuration explicitly.
//   - Deterministic: results depend only on inputs and the resolved Options;
//     worker count changes scheduling, never values.
package options

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/regulon/linalg"
)

// Physical and numeric defaults.
const (
	// DefaultResolution is the grid spacing in microns per step.
	DefaultResolution = 20.0

	// DefaultDelta is the coupling window radius in microns.
	DefaultDelta = 100.0

	// DefaultBoundarySigma is the pixel-space smoothing applied to each tensor
	// component before differentiation in the phase boundary detector.
	DefaultBoundarySigma = 2.0

	// DefaultGradientSigma is the pixel-space smoothing applied to activity
	// fields before the stability engine differentiates them.
	DefaultGradientSigma = 1.5

	// DefaultEpsilon is the degeneracy threshold for eigenvalue sums,
	// individual eigenvalues and the leading singular value.
	DefaultEpsilon = 1e-12

	// DefaultWorkers ≤ 0 means one worker per GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultSolver selects closed forms where available.
	DefaultSolver = linalg.SolverAuto

	// DefaultUniquePairs keeps the full P² accumulation in the boundary detector.
	DefaultUniquePairs = false
)

// Option mutates Options. Constructors validate eagerly and panic on
// meaningless values; applying an Option never fails.
type Option func(*Options)

// Options is the resolved configuration. Fields are read-only for engines.
type Options struct {
	Epsilon       float64
	GradientSigma float64
	Workers       int
	Solver        linalg.Solver
	UniquePairs   bool
	Logger        *slog.Logger
}

// WithEpsilon sets the degeneracy threshold. Panics unless eps is finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("options: WithEpsilon(%g): eps must be finite, non-negative", eps))
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithGradientSigma sets the pre-differentiation smoothing (pixels) used by
// the stability engine. Panics unless sigma is finite and ≥ 0.
func WithGradientSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(fmt.Sprintf("options: WithGradientSigma(%g): sigma must be finite, non-negative", sigma))
	}

	return func(o *Options) { o.GradientSigma = sigma }
}

// WithWorkers bounds the number of goroutines per pass. n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSolver selects the eigen/SVD backend. Panics on an unknown solver.
func WithSolver(s linalg.Solver) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("options: WithSolver(%d): unknown solver", s))
	}

	return func(o *Options) { o.Solver = s }
}

// WithUniquePairs makes the phase boundary detector accumulate gradient
// energy over the upper triangle i ≤ j only, instead of all P² components.
func WithUniquePairs() Option {
	return func(o *Options) { o.UniquePairs = true }
}

// WithLogger routes engine debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("options: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// New resolves opts against the defaults; last writer wins.
func New(opts ...Option) Options {
	o := Options{
		Epsilon:       DefaultEpsilon,
		GradientSigma: DefaultGradientSigma,
		Workers:       DefaultWorkers,
		Solver:        DefaultSolver,
		UniquePairs:   DefaultUniquePairs,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
