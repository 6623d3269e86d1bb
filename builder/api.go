// SPDX-License-Identifier: MIT
// Package: regulon/builder
//
// api.go - Constructor contract and build entry points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regulon/grid"
)

// Constructor fills f (already allocated, zeroed) using the resolved config.
// Constructors MUST validate their own parameters, return sentinel errors
// wrapped with a method tag, and write every cell exactly once.
type Constructor func(f *grid.Field, cfg builderConfig) error

// Named pairs a field name with its Constructor for BuildStack.
type Named struct {
	Name string
	Cons Constructor
}

// Entry is shorthand for Named{name, cons}.
func Entry(name string, cons Constructor) Named {
	return Named{Name: name, Cons: cons}
}

// BuildField allocates an ny×nx field and runs cons on it.
func BuildField(ny, nx int, bopts []BuilderOption, cons Constructor) (*grid.Field, error) {
	if ny <= 0 || nx <= 0 {
		return nil, fmt.Errorf("BuildField(%d,%d): %w", ny, nx, ErrBadShape)
	}
	if cons == nil {
		return nil, fmt.Errorf("BuildField: %w", ErrNilConstructor)
	}
	f, err := grid.NewField(ny, nx)
	if err != nil {
		return nil, fmt.Errorf("BuildField: %w", err)
	}
	if err = cons(f, newBuilderConfig(bopts...)); err != nil {
		return nil, err
	}

	return f, nil
}

// BuildStack builds every entry on an ny×nx grid with the shared options and
// returns a validated grid.Stack in entry order.
func BuildStack(ny, nx int, bopts []BuilderOption, entries ...Named) (*grid.Stack, error) {
	fields := make(map[string]*grid.Field, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		f, err := BuildField(ny, nx, bopts, e.Cons)
		if err != nil {
			return nil, fmt.Errorf("BuildStack(%q): %w", e.Name, err)
		}
		fields[e.Name] = f
		names = append(names, e.Name)
	}

	return grid.NewStack(fields, names)
}
