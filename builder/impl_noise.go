// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// impl_noise.go - fractal simplex noise, a stand-in for smooth tissue texture.

package builder

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/regulon/grid"
)

const methodNoise = "Noise"

// Noise fills the field with multi-octave simplex noise normalized to [0, 1].
// stream distinguishes independent fields built from the same seed.
// Requires WithSeed.
func Noise(stream int64) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if !cfg.seeded {
			return fmt.Errorf("%s(stream=%d): %w", methodNoise, stream, ErrNeedSeed)
		}
		n := opensimplex.NewNormalized(cfg.seed + stream)
		fill(f, cfg, func(y, x int) float64 {
			return octaveNoise(n, float64(x), float64(y), cfg.octaves, cfg.frequency, cfg.persistence)
		})
		return nil
	}
}

// octaveNoise layers octaves of doubling frequency and decaying amplitude.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
