// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// options.go - functional options for the builder package.
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import (
	"fmt"
	"math"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: %s(%g): value must be finite", name, v))
	}
}

// WithAmplitude multiplies every generated value by a.
func WithAmplitude(a float64) BuilderOption {
	mustFinite("WithAmplitude", a)
	return func(c *builderConfig) { c.amplitude = a }
}

// WithOffset adds b to every generated value (after amplitude).
func WithOffset(b float64) BuilderOption {
	mustFinite("WithOffset", b)
	return func(c *builderConfig) { c.offset = b }
}

// WithSeed enables stochastic constructors with a fixed seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithOctaves sets the number of noise octaves. Panics if n < 1.
func WithOctaves(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithOctaves(%d): need ≥ 1", n))
	}
	return func(c *builderConfig) { c.octaves = n }
}

// WithFrequency sets the first-octave noise frequency (cycles per grid step).
// Panics unless f is finite and > 0.
func WithFrequency(f float64) BuilderOption {
	mustFinite("WithFrequency", f)
	if f <= 0 {
		panic(fmt.Sprintf("builder: WithFrequency(%g): need > 0", f))
	}
	return func(c *builderConfig) { c.frequency = f }
}

// WithPersistence sets the per-octave amplitude decay. Panics unless 0 < p ≤ 1.
func WithPersistence(p float64) BuilderOption {
	mustFinite("WithPersistence", p)
	if p <= 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithPersistence(%g): need 0 < p ≤ 1", p))
	}
	return func(c *builderConfig) { c.persistence = p }
}
