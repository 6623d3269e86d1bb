// SPDX-License-Identifier: MIT

package fields

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Layout is a regular lattice in physical coordinates (microns).
// X[i] and Y[j] are the lower-left corners of column i and row j.
type Layout struct {
	X, Y       []float64
	Resolution float64
	// Extent is (xmin, xmax, ymin, ymax) of the covered area.
	Extent [4]float64
}

// Shape returns (rows, cols) = (len(Y), len(X)).
func (l Layout) Shape() (ny, nx int) { return len(l.Y), len(l.X) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// arange returns start, start+step, ... while < stop; length ceil((stop-start)/step).
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// MakeGrid returns a Layout spanning [min−padding, max+padding) on both
// axes with the given spacing.
func MakeGrid(xs, ys []float64, resolution, padding float64) (Layout, error) {
	if len(xs) == 0 {
		return Layout{}, fmt.Errorf("MakeGrid: %w", ErrNoTranscripts)
	}
	if len(xs) != len(ys) {
		return Layout{}, fmt.Errorf("MakeGrid: len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if !finite(resolution) || resolution <= 0 {
		return Layout{}, fmt.Errorf("MakeGrid(resolution=%g): %w", resolution, ErrBadResolution)
	}
	if !finite(padding) || padding < 0 {
		return Layout{}, fmt.Errorf("MakeGrid(padding=%g): %w", padding, ErrBadPadding)
	}
	if err := checkCoords(xs, ys); err != nil {
		return Layout{}, fmt.Errorf("MakeGrid: %w", err)
	}

	gx := arange(floats.Min(xs)-padding, floats.Max(xs)+padding, resolution)
	gy := arange(floats.Min(ys)-padding, floats.Max(ys)+padding, resolution)
	if len(gx) == 0 || len(gy) == 0 {
		return Layout{}, fmt.Errorf("MakeGrid: %w", ErrEmptyLayout)
	}

	return Layout{
		X:          gx,
		Y:          gy,
		Resolution: resolution,
		Extent:     [4]float64{gx[0], gx[len(gx)-1] + resolution, gy[0], gy[len(gy)-1] + resolution},
	}, nil
}
