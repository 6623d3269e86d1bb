// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// impl_compose.go - constructors built from other constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regulon/grid"
	"gonum.org/v1/gonum/floats"
)

const (
	methodScaled = "Scaled"
	methodSum    = "Sum"
)

// Scaled runs inner and multiplies its output by k. Used to build fields
// identical up to a uniform scale factor.
func Scaled(k float64, inner Constructor) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if inner == nil {
			return fmt.Errorf("%s: %w", methodScaled, ErrNilConstructor)
		}
		if !finite(k) {
			return fmt.Errorf("%s(%g): %w", methodScaled, k, ErrBadParameter)
		}
		if err := inner(f, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodScaled, err)
		}
		floats.Scale(k, f.Data())
		return nil
	}
}

// Sum runs every part on its own buffer and adds the results.
func Sum(parts ...Constructor) Constructor {
	return func(f *grid.Field, cfg builderConfig) error {
		if len(parts) == 0 {
			return fmt.Errorf("%s: no parts: %w", methodSum, ErrBadParameter)
		}
		ny, nx := f.Shape()
		for i, part := range parts {
			if part == nil {
				return fmt.Errorf("%s: part %d: %w", methodSum, i, ErrNilConstructor)
			}
			buf, err := grid.NewField(ny, nx)
			if err != nil {
				return fmt.Errorf("%s: %w", methodSum, err)
			}
			if err = part(buf, cfg); err != nil {
				return fmt.Errorf("%s: part %d: %w", methodSum, i, err)
			}
			floats.Add(f.Data(), buf.Data())
		}
		return nil
	}
}
