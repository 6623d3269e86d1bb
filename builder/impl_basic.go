// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// impl_basic.go - closed-form constructors: Constant, RampX, RampY, Blob, Step.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regulon/grid"
)

const (
	methodConstant = "Constant"
	methodRamp     = "Ramp"
	methodBlob     = "Blob"
	methodStep     = "Step"
)

// fill writes cfg.emit(fn(y, x)) into every cell of f.
func fill(f *grid.Field, cfg builderConfig, fn func(y, x int) float64) {
	ny, nx := f.Shape()
	d := f.Data()
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			d[y*nx+x] = cfg.emit(fn(y, x))
		}
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Constant fills the field with v.
func Constant(v float64) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if !finite(v) {
			return fmt.Errorf("%s(%g): %w", methodConstant, v, ErrBadParameter)
		}
		fill(f, cfg, func(int, int) float64 { return v })
		return nil
	}
}

// RampX returns slope·x: a linear ramp along columns.
func RampX(slope float64) Constructor {
	return ramp(slope, 0)
}

// RampY returns slope·y: a linear ramp along rows.
func RampY(slope float64) Constructor {
	return ramp(0, slope)
}

// Ramp returns sx·x + sy·y.
func Ramp(sx, sy float64) Constructor {
	return ramp(sx, sy)
}

func ramp(sx, sy float64) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if !finite(sx, sy) {
			return fmt.Errorf("%s(%g,%g): %w", methodRamp, sx, sy, ErrBadParameter)
		}
		fill(f, cfg, func(y, x int) float64 { return sx*float64(x) + sy*float64(y) })
		return nil
	}
}

// Blob returns an isotropic Gaussian bump exp(−r²/(2·radius²)) centred at
// (cy, cx) in grid coordinates. radius must be > 0.
func Blob(cy, cx, radius float64) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if !finite(cy, cx, radius) || radius <= 0 {
			return fmt.Errorf("%s(cy=%g,cx=%g,r=%g): %w", methodBlob, cy, cx, radius, ErrBadParameter)
		}
		inv := -0.5 / (radius * radius)
		fill(f, cfg, func(y, x int) float64 {
			dy, dx := float64(y)-cy, float64(x)-cx
			return math.Exp(inv * (dx*dx + dy*dy))
		})
		return nil
	}
}

// Axis selects the direction of a Step.
type Axis int

const (
	// AxisX steps along columns: cells with x ≥ at take hi.
	AxisX Axis = iota
	// AxisY steps along rows: cells with y ≥ at take hi.
	AxisY
)

// Step returns lo before index at and hi from at onwards along axis.
// at must lie in [1, n-1] so both regimes are present.
func Step(axis Axis, at int, lo, hi float64) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		n := f.Cols()
		if axis == AxisY {
			n = f.Rows()
		}
		if axis != AxisX && axis != AxisY {
			return fmt.Errorf("%s(axis=%d): %w", methodStep, axis, ErrBadParameter)
		}
		if at < 1 || at > n-1 || !finite(lo, hi) {
			return fmt.Errorf("%s(at=%d, n=%d, lo=%g, hi=%g): %w", methodStep, at, n, lo, hi, ErrBadParameter)
		}
		fill(f, cfg, func(y, x int) float64 {
			i := x
			if axis == AxisY {
				i = y
			}
			if i >= at {
				return hi
			}
			return lo
		})
		return nil
	}
}
