// SPDX-License-Identifier: MIT

package fields

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/regulon/grid"
)

const (
	// LibrarySize is the per-point count target of Normalize.
	LibrarySize = 1e4

	// floor guards divisions by totals and standard deviations.
	floor = 1e-12
)

// Normalize returns log(f/total·LibrarySize + 1) for every field, where
// total is the pointwise sum over all fields floored at 1e-12, together
// with that total.
func Normalize(s *grid.Stack) (*grid.Stack, *grid.Field, error) {
	ny, nx := s.Shape()
	total, err := grid.NewField(ny, nx)
	if err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}
	td := total.Data()
	for i := 0; i < s.Len(); i++ {
		floats.Add(td, s.Field(i).Data())
	}
	for k, v := range td {
		td[k] = math.Max(v, floor)
	}

	names := s.Names()
	out := make(map[string]*grid.Field, len(names))
	for i, name := range names {
		f := s.Field(i).Clone()
		d := f.Data()
		for k, v := range d {
			d[k] = math.Log(v/td[k]*LibrarySize + 1)
		}
		out[name] = f
	}
	ns, err := grid.NewStack(out, names)
	if err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}

	return ns, total, nil
}

// ZScore returns (f − mean)/max(std, 1e-12) per field, using the
// population standard deviation.
func ZScore(s *grid.Stack) (*grid.Stack, error) {
	names := s.Names()
	out := make(map[string]*grid.Field, len(names))
	for i, name := range names {
		f := s.Field(i).Clone()
		d := f.Data()
		mean, std := stat.PopMeanStdDev(d, nil)
		std = math.Max(std, floor)
		for k, v := range d {
			d[k] = (v - mean) / std
		}
		out[name] = f
	}
	zs, err := grid.NewStack(out, names)
	if err != nil {
		return nil, fmt.Errorf("ZScore: %w", err)
	}

	return zs, nil
}
