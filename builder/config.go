// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • amplitude   = 1.0
//   • offset      = 0.0
//   • seeded      = false (Noise fails with ErrNeedSeed)
//   • octaves     = 4
//   • frequency   = 0.1   (cycles per grid step at the first octave)
//   • persistence = 0.5

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	amplitude float64 // multiplies every constructor's shape
	offset    float64 // added after amplitude

	seed   int64
	seeded bool

	octaves     int
	frequency   float64
	persistence float64
}

const (
	defaultAmplitude   = 1.0
	defaultOffset      = 0.0
	defaultOctaves     = 4
	defaultFrequency   = 0.1
	defaultPersistence = 0.5
)

// newBuilderConfig applies opts over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:   defaultAmplitude,
		offset:      defaultOffset,
		octaves:     defaultOctaves,
		frequency:   defaultFrequency,
		persistence: defaultPersistence,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emit applies the affine amplitude/offset policy to a raw shape value.
func (c builderConfig) emit(v float64) float64 {
	return c.amplitude*v + c.offset
}
