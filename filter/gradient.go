// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regulon/grid"
)

// GradientResult holds the partial derivatives of a scalar field and their
// pointwise magnitude, all in physical units (value per unit length).
type GradientResult struct {
	X         *grid.Field // ∂f/∂x (along columns)
	Y         *grid.Field // ∂f/∂y (along rows)
	Magnitude *grid.Field // sqrt(X² + Y²)
}

func checkSpacing(op string, spacing float64) error {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing <= 0 {
		return fmt.Errorf("%s(spacing=%g): %w", op, spacing, ErrBadSpacing)
	}

	return nil
}

// diffAxis differentiates src along one axis. n is the axis length, stride
// the distance between neighbours along it, and lines/lineStride walk the
// orthogonal axis. Interior: central difference; border: one-sided.
func diffAxis(src, dst []float64, n, stride, lines, lineStride int, h float64) {
	inv2h := 1 / (2 * h)
	invh := 1 / h
	for l := 0; l < lines; l++ {
		base := l * lineStride
		dst[base] = (src[base+stride] - src[base]) * invh
		last := base + (n-1)*stride
		dst[last] = (src[last] - src[last-stride]) * invh
		for i := 1; i < n-1; i++ {
			at := base + i*stride
			dst[at] = (src[at+stride] - src[at-stride]) * inv2h
		}
	}
}

// DiffX returns ∂f/∂x with grid spacing h.
func DiffX(f *grid.Field, h float64) (*grid.Field, error) {
	if err := checkSpacing("DiffX", h); err != nil {
		return nil, err
	}
	ny, nx := f.Shape()
	if nx < 2 {
		return nil, fmt.Errorf("DiffX: nx=%d: %w", nx, ErrTooSmall)
	}
	out := make([]float64, ny*nx)
	diffAxis(f.Data(), out, nx, 1, ny, nx, h)

	return grid.FieldFromData(ny, nx, out)
}

// DiffY returns ∂f/∂y with grid spacing h.
func DiffY(f *grid.Field, h float64) (*grid.Field, error) {
	if err := checkSpacing("DiffY", h); err != nil {
		return nil, err
	}
	ny, nx := f.Shape()
	if ny < 2 {
		return nil, fmt.Errorf("DiffY: ny=%d: %w", ny, ErrTooSmall)
	}
	out := make([]float64, ny*nx)
	diffAxis(f.Data(), out, ny, nx, nx, 1, h)

	return grid.FieldFromData(ny, nx, out)
}

// Gradient returns (∂f/∂x, ∂f/∂y) with isotropic grid spacing.
func Gradient(f *grid.Field, spacing float64) (gx, gy *grid.Field, err error) {
	if gx, err = DiffX(f, spacing); err != nil {
		return nil, nil, fmt.Errorf("Gradient: %w", err)
	}
	if gy, err = DiffY(f, spacing); err != nil {
		return nil, nil, fmt.Errorf("Gradient: %w", err)
	}

	return gx, gy, nil
}

// SmoothedGradient smooths f with Gaussian(sigma) and differentiates the
// result. sigma == 0 differentiates f directly.
func SmoothedGradient(f *grid.Field, spacing, sigma float64) (*GradientResult, error) {
	if err := checkSpacing("SmoothedGradient", spacing); err != nil {
		return nil, err
	}
	s, err := Gaussian(f, sigma)
	if err != nil {
		return nil, fmt.Errorf("SmoothedGradient: %w", err)
	}
	gx, gy, err := Gradient(s, spacing)
	if err != nil {
		return nil, fmt.Errorf("SmoothedGradient: %w", err)
	}

	ny, nx := f.Shape()
	mag := make([]float64, ny*nx)
	for i, x := range gx.Data() {
		mag[i] = math.Hypot(x, gy.Data()[i])
	}
	m, _ := grid.FieldFromData(ny, nx, mag)

	return &GradientResult{X: gx, Y: gy, Magnitude: m}, nil
}

// Laplacian returns ∂²f/∂x² + ∂²f/∂y² of the Gaussian(sigma)-smoothed field,
// each second derivative taken as two successive first differences.
func Laplacian(f *grid.Field, spacing, sigma float64) (*grid.Field, error) {
	s, err := Gaussian(f, sigma)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	dx, err := DiffX(s, spacing)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	d2x, err := DiffX(dx, spacing)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	dy, err := DiffY(s, spacing)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	d2y, err := DiffY(dy, spacing)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	return d2x.Add(d2y)
}
