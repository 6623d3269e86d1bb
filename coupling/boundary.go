// SPDX-License-Identifier: MIT

package coupling

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/regulon/filter"
	"github.com/katalvlaran/regulon/grid"
	"github.com/katalvlaran/regulon/options"
)

// PhaseBoundaries is PhaseBoundariesContext with context.Background().
func PhaseBoundaries(t *grid.Tensor, resolution, smoothSigma float64, opts ...options.Option) (*grid.Field, error) {
	return PhaseBoundariesContext(context.Background(), t, resolution, smoothSigma, opts...)
}

// PhaseBoundariesContext returns sqrt(Σ (∂x C_ij)² + (∂y C_ij)²) where each
// component C_ij is first smoothed with a Gaussian of smoothSigma pixels and
// differentiated with physical spacing resolution.
//
// By default the sum runs over all P² components: the diagonal once and
// every off-diagonal pair twice, as (i,j) and (j,i). With
// options.WithUniquePairs only components with i ≤ j contribute.
//
// Per-component energies are accumulated in fixed (i, j) order, so the
// result is independent of the worker count.
func PhaseBoundariesContext(ctx context.Context, t *grid.Tensor, resolution, smoothSigma float64, opts ...options.Option) (*grid.Field, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: tensor: %w", opPhaseBoundaries, ErrNilInput)
	}
	if !finitePositive(resolution) {
		return nil, fmt.Errorf("%s(resolution=%g): %w", opPhaseBoundaries, resolution, ErrBadResolution)
	}
	if math.IsNaN(smoothSigma) || math.IsInf(smoothSigma, 0) || smoothSigma < 0 {
		return nil, fmt.Errorf("%s(sigma=%g): %w", opPhaseBoundaries, smoothSigma, ErrBadSigma)
	}
	o := options.New(opts...)
	start := time.Now()

	ny, nx, p := t.Shape()
	var comps [][2]int
	if o.UniquePairs {
		comps = upperPairs(p)
	} else {
		comps = make([][2]int, 0, p*p)
		for i := 0; i < p; i++ {
			for j := 0; j < p; j++ {
				comps = append(comps, [2]int{i, j})
			}
		}
	}

	energies := make([][]float64, len(comps))
	err := grid.ParallelEach(ctx, len(comps), o.Workers, func(k int) error {
		c, err := t.Component(comps[k][0], comps[k][1])
		if err != nil {
			return err
		}
		g, err := filter.SmoothedGradient(c, resolution, smoothSigma)
		if err != nil {
			return err
		}
		e := g.X.Data() // reused as the energy buffer
		gy := g.Y.Data()
		for n, gx := range e {
			e[n] = gx*gx + gy[n]*gy[n]
		}
		energies[k] = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPhaseBoundaries, err)
	}

	out, err := grid.NewField(ny, nx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPhaseBoundaries, err)
	}
	acc := out.Data()
	for _, e := range energies {
		for n, v := range e {
			acc[n] += v
		}
	}
	for n, v := range acc {
		acc[n] = math.Sqrt(v)
	}

	o.Logger.Debug("phase boundaries computed",
		"grid", fmt.Sprintf("%dx%d", ny, nx),
		"components", len(comps),
		"unique_pairs", o.UniquePairs,
		"sigma", smoothSigma,
		"elapsed", time.Since(start),
	)

	return out, nil
}
