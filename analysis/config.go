// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regulon/grid"
	"github.com/katalvlaran/regulon/options"
)

const (
	// DefaultRegionQuantile selects boundary cells at or above the 95th percentile.
	DefaultRegionQuantile = 95.0

	// DefaultRegionConn joins diagonal neighbors when labelling boundary regions.
	DefaultRegionConn = grid.Conn8
)

// Config holds the physical scales of a run plus engine options.
type Config struct {
	Resolution    float64          // grid spacing, microns per step
	Delta         float64          // coupling window radius, microns
	BoundarySigma float64          // tensor smoothing before differentiation, pixels
	Options       []options.Option // forwarded to every engine

	// RegionQuantile (0, 100] sets the boundary level, as a percentile of
	// the boundary map, above which cells are grouped into regions.
	RegionQuantile float64
	RegionConn     grid.Connectivity
}

// DefaultConfig returns the conventional scales with default engine options.
func DefaultConfig() Config {
	return Config{
		Resolution:    options.DefaultResolution,
		Delta:         options.DefaultDelta,
		BoundarySigma: options.DefaultBoundarySigma,

		RegionQuantile: DefaultRegionQuantile,
		RegionConn:     DefaultRegionConn,
	}
}

// Validate reports the first invalid scale wrapped in ErrBadConfig.
func (c Config) Validate() error {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	switch {
	case bad(c.Resolution) || c.Resolution <= 0:
		return fmt.Errorf("resolution=%g: %w", c.Resolution, ErrBadConfig)
	case bad(c.Delta) || c.Delta <= 0:
		return fmt.Errorf("delta=%g: %w", c.Delta, ErrBadConfig)
	case bad(c.BoundarySigma) || c.BoundarySigma < 0:
		return fmt.Errorf("boundary sigma=%g: %w", c.BoundarySigma, ErrBadConfig)
	case bad(c.RegionQuantile) || c.RegionQuantile <= 0 || c.RegionQuantile > 100:
		return fmt.Errorf("region quantile=%g: %w", c.RegionQuantile, ErrBadConfig)
	case c.RegionConn != grid.Conn4 && c.RegionConn != grid.Conn8:
		return fmt.Errorf("region connectivity=%d: %w", c.RegionConn, ErrBadConfig)
	}

	return nil
}
