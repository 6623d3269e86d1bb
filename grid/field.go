// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field is a row-major ny×nx array of float64 values.
// data holds ny*nx elements; element (y, x) lives at y*nx + x.
type Field struct {
	ny, nx int
	data   []float64
}

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, y, x int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, y, x, err)
}

// NewField creates an ny×nx Field initialized to zeros.
// Returns ErrEmptyGrid if either dimension is non-positive.
// Complexity: O(ny*nx) time and memory.
func NewField(ny, nx int) (*Field, error) {
	if ny <= 0 || nx <= 0 {
		return nil, fmt.Errorf("NewField(%d,%d): %w", ny, nx, ErrEmptyGrid)
	}

	return &Field{ny: ny, nx: nx, data: make([]float64, ny*nx)}, nil
}

// FieldFromRows constructs a Field from a non-empty, rectangular 2D slice,
// indexed rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(ny*nx) time and memory.
func FieldFromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	ny, nx := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
	}
	f := &Field{ny: ny, nx: nx, data: make([]float64, ny*nx)}
	for y := 0; y < ny; y++ {
		copy(f.data[y*nx:(y+1)*nx], rows[y])
	}

	return f, nil
}

// FieldFromData wraps data (length ny*nx, row-major) without copying.
// Ownership of data passes to the returned Field.
func FieldFromData(ny, nx int, data []float64) (*Field, error) {
	if ny <= 0 || nx <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != ny*nx {
		return nil, fmt.Errorf("FieldFromData: len=%d, want %d×%d: %w", len(data), ny, nx, ErrShapeMismatch)
	}

	return &Field{ny: ny, nx: nx, data: data}, nil
}

// Rows returns ny, the number of lattice rows.
func (f *Field) Rows() int { return f.ny }

// Cols returns nx, the number of lattice columns.
func (f *Field) Cols() int { return f.nx }

// Shape returns (ny, nx).
func (f *Field) Shape() (ny, nx int) { return f.ny, f.nx }

// Len returns ny*nx.
func (f *Field) Len() int { return len(f.data) }

// SameShape reports whether f and g have identical dimensions.
func (f *Field) SameShape(g *Field) bool {
	return f.ny == g.ny && f.nx == g.nx
}

// InBounds reports whether (y, x) lies within the lattice.
// Complexity: O(1).
func (f *Field) InBounds(y, x int) bool {
	return y >= 0 && y < f.ny && x >= 0 && x < f.nx
}

// Index maps (y, x) to the row-major offset y*nx + x. No bounds check.
func (f *Field) Index(y, x int) int {
	return y*f.nx + x
}

// Coordinate converts a row-major offset back to (y, x).
func (f *Field) Coordinate(idx int) (y, x int) {
	return idx / f.nx, idx % f.nx
}

// At returns the value at (y, x) or ErrOutOfRange.
func (f *Field) At(y, x int) (float64, error) {
	if !f.InBounds(y, x) {
		return 0, fieldErrorf("At", y, x, ErrOutOfRange)
	}

	return f.data[y*f.nx+x], nil
}

// Set assigns v at (y, x) or returns ErrOutOfRange.
func (f *Field) Set(y, x int, v float64) error {
	if !f.InBounds(y, x) {
		return fieldErrorf("Set", y, x, ErrOutOfRange)
	}
	f.data[y*f.nx+x] = v

	return nil
}

// Data exposes the flat row-major backing slice. Engines use it for
// tight loops; callers must treat engine outputs as read-only.
func (f *Field) Data() []float64 { return f.data }

// Row returns a view of row y.
func (f *Field) Row(y int) []float64 {
	return f.data[y*f.nx : (y+1)*f.nx]
}

// Clone returns a deep copy.
// Complexity: O(ny*nx).
func (f *Field) Clone() *Field {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)

	return &Field{ny: f.ny, nx: f.nx, data: cp}
}

// Rows2D returns a freshly allocated [][]float64 copy indexed [y][x].
func (f *Field) Rows2D() [][]float64 {
	out := make([][]float64, f.ny)
	for y := range out {
		out[y] = make([]float64, f.nx)
		copy(out[y], f.Row(y))
	}

	return out
}

// Scale returns a new Field equal to alpha*f.
func (f *Field) Scale(alpha float64) *Field {
	g := f.Clone()
	floats.Scale(alpha, g.data)

	return g
}

// Add returns a new Field equal to f + g, or ErrShapeMismatch.
func (f *Field) Add(g *Field) (*Field, error) {
	if !f.SameShape(g) {
		return nil, fmt.Errorf("Field.Add: %dx%d vs %dx%d: %w", f.ny, f.nx, g.ny, g.nx, ErrShapeMismatch)
	}
	out := &Field{ny: f.ny, nx: f.nx, data: make([]float64, len(f.data))}
	floats.AddTo(out.data, f.data, g.data)

	return out, nil
}

// Sum returns the sum of all elements.
func (f *Field) Sum() float64 { return floats.Sum(f.data) }

// Min returns the smallest element.
func (f *Field) Min() float64 { return floats.Min(f.data) }

// Max returns the largest element.
func (f *Field) Max() float64 { return floats.Max(f.data) }

// CheckFinite returns ErrNonFinite with the first offending coordinate.
func (f *Field) CheckFinite() error {
	for i, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			y, x := f.Coordinate(i)
			return fieldErrorf("CheckFinite", y, x, ErrNonFinite)
		}
	}

	return nil
}

// String implements fmt.Stringer for debugging small fields.
func (f *Field) String() string {
	var s string
	for y := 0; y < f.ny; y++ {
		s += "["
		for x := 0; x < f.nx; x++ {
			s += fmt.Sprintf("%g", f.data[y*f.nx+x])
			if x < f.nx-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
