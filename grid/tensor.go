// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Tensor is a field of P×P matrices with shape (ny, nx, P, P).
// Element (y, x, i, j) lives at ((y*nx+x)*P+i)*P+j.
type Tensor struct {
	ny, nx, p int
	data      []float64
}

// NewTensor allocates a zero tensor of shape (ny, nx, p, p).
func NewTensor(ny, nx, p int) (*Tensor, error) {
	if ny <= 0 || nx <= 0 {
		return nil, fmt.Errorf("NewTensor(%d,%d,%d): %w", ny, nx, p, ErrEmptyGrid)
	}
	if p <= 0 {
		return nil, fmt.Errorf("NewTensor(%d,%d,%d): %w", ny, nx, p, ErrEmptyNames)
	}

	return &Tensor{ny: ny, nx: nx, p: p, data: make([]float64, ny*nx*p*p)}, nil
}

// Shape returns (ny, nx, P).
func (t *Tensor) Shape() (ny, nx, p int) { return t.ny, t.nx, t.p }

// Data exposes the flat backing slice.
func (t *Tensor) Data() []float64 { return t.data }

// At returns element (y, x, i, j) or ErrOutOfRange.
func (t *Tensor) At(y, x, i, j int) (float64, error) {
	if y < 0 || y >= t.ny || x < 0 || x >= t.nx || i < 0 || i >= t.p || j < 0 || j >= t.p {
		return 0, fmt.Errorf("Tensor.At(%d,%d,%d,%d): %w", y, x, i, j, ErrOutOfRange)
	}

	return t.data[((y*t.nx+x)*t.p+i)*t.p+j], nil
}

// Point returns a view of the row-major P×P slice at (y, x). No bounds check.
func (t *Tensor) Point(y, x int) []float64 {
	off := (y*t.nx + x) * t.p * t.p

	return t.data[off : off+t.p*t.p]
}

// SetComponent writes field f into component (i, j) at every grid point.
func (t *Tensor) SetComponent(i, j int, f *Field) error {
	if i < 0 || i >= t.p || j < 0 || j >= t.p {
		return fmt.Errorf("Tensor.SetComponent(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if f.ny != t.ny || f.nx != t.nx {
		return fmt.Errorf("Tensor.SetComponent(%d,%d): field %dx%d, tensor %dx%d: %w",
			i, j, f.ny, f.nx, t.ny, t.nx, ErrShapeMismatch)
	}
	pp := t.p * t.p
	off := i*t.p + j
	for k, v := range f.data {
		t.data[k*pp+off] = v
	}

	return nil
}

// Component extracts component (i, j) as a new Field.
func (t *Tensor) Component(i, j int) (*Field, error) {
	if i < 0 || i >= t.p || j < 0 || j >= t.p {
		return nil, fmt.Errorf("Tensor.Component(%d,%d): %w", i, j, ErrOutOfRange)
	}
	out := &Field{ny: t.ny, nx: t.nx, data: make([]float64, t.ny*t.nx)}
	pp := t.p * t.p
	off := i*t.p + j
	for k := range out.data {
		out.data[k] = t.data[k*pp+off]
	}

	return out, nil
}

// IsSymmetric reports whether |C[i,j]-C[j,i]| ≤ tol at every point.
func (t *Tensor) IsSymmetric(tol float64) bool {
	pp := t.p * t.p
	for k := 0; k < t.ny*t.nx; k++ {
		c := t.data[k*pp : (k+1)*pp]
		for i := 0; i < t.p; i++ {
			for j := i + 1; j < t.p; j++ {
				if math.Abs(c[i*t.p+j]-c[j*t.p+i]) > tol {
					return false
				}
			}
		}
	}

	return true
}
