// SPDX-License-Identifier: MIT

package fields

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/regulon/grid"
)

// Regulon is a named set of target genes with optional per-target weights.
// Nil Weights means unit weight for every target.
type Regulon struct {
	Name    string
	Targets []string
	Weights []float64
}

// RegulonField combines the z-scored fields of the available targets:
// Σ w_g·z_g / max(‖w‖₂, 1e-12), where w is restricted to targets present
// in z. Missing targets are skipped.
func RegulonField(z *grid.Stack, targets []string, weights []float64) (*grid.Field, error) {
	if weights != nil && len(weights) != len(targets) {
		return nil, fmt.Errorf("RegulonField: %d weights for %d targets: %w", len(weights), len(targets), ErrBadWeights)
	}
	ny, nx := z.Shape()
	out, err := grid.NewField(ny, nx)
	if err != nil {
		return nil, fmt.Errorf("RegulonField: %w", err)
	}

	used := make([]float64, 0, len(targets))
	for i, g := range targets {
		f, ok := z.Lookup(g)
		if !ok {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if !finite(w) {
			return nil, fmt.Errorf("RegulonField: weight %q=%g: %w", g, w, grid.ErrNonFinite)
		}
		floats.AddScaled(out.Data(), w, f.Data())
		used = append(used, w)
	}
	if len(used) == 0 {
		return nil, fmt.Errorf("RegulonField(%v): %w", targets, ErrNoTargets)
	}

	return out.Scale(1 / math.Max(floats.Norm(used, 2), floor)), nil
}

// Regulons builds one field per definition. Regulons without any available
// target are skipped; if none remain the error is ErrNoTargets.
func Regulons(z *grid.Stack, defs []Regulon) (*grid.Stack, error) {
	out := make(map[string]*grid.Field, len(defs))
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		f, err := RegulonField(z, d.Targets, d.Weights)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoTargets):
			continue
		default:
			return nil, fmt.Errorf("Regulons(%q): %w", d.Name, err)
		}
		if _, dup := out[d.Name]; dup {
			return nil, fmt.Errorf("Regulons: %q: %w", d.Name, grid.ErrDuplicateName)
		}
		out[d.Name] = f
		names = append(names, d.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("Regulons: %w", ErrNoTargets)
	}

	return grid.NewStack(out, names)
}
