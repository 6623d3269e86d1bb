// SPDX-License-Identifier: MIT

package stability

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/regulon/filter"
	"github.com/katalvlaran/regulon/grid"
	"github.com/katalvlaran/regulon/linalg"
	"github.com/katalvlaran/regulon/options"
)

const opCompute = "stability.Compute"

// Result holds the per-point stretch and stability index fields.
type Result struct {
	Sigma1 *grid.Field // largest singular value of J, ≥ 0
	RSI    *grid.Field // σ2/σ1 in [0, 1]
}

// Compute is ComputeContext with context.Background().
func Compute(stack *grid.Stack, resolution float64, opts ...options.Option) (*Result, error) {
	return ComputeContext(context.Background(), stack, resolution, opts...)
}

// ComputeContext evaluates Sigma1 and RSI for every grid point of stack.
// Stage 1 (Validate): stack non-nil, resolution finite and > 0.
// Stage 2 (Gradients): per field, Gaussian smoothing with the configured
// gradient sigma, then central differences with spacing resolution.
// Stage 3 (Per point): singular values of the P×2 Jacobian.
//
// Complexity: O(P·ny·nx·k) smoothing plus O(P·ny·nx) for the closed-form
// singular values.
func ComputeContext(ctx context.Context, stack *grid.Stack, resolution float64, opts ...options.Option) (*Result, error) {
	if stack == nil {
		return nil, fmt.Errorf("%s: %w", opCompute, ErrNilInput)
	}
	if math.IsNaN(resolution) || math.IsInf(resolution, 0) || resolution <= 0 {
		return nil, fmt.Errorf("%s(resolution=%g): %w", opCompute, resolution, ErrBadResolution)
	}
	o := options.New(opts...)
	start := time.Now()

	p := stack.Len()
	ny, nx := stack.Shape()

	grads := make([]*filter.GradientResult, p)
	err := grid.ParallelEach(ctx, p, o.Workers, func(i int) error {
		g, err := filter.SmoothedGradient(stack.Field(i), resolution, o.GradientSigma)
		if err != nil {
			return fmt.Errorf("field %q: %w", stack.Names()[i], err)
		}
		grads[i] = g
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: gradients: %w", opCompute, err)
	}

	sigma1, _ := grid.NewField(ny, nx)
	rsi, _ := grid.NewField(ny, nx)
	err = grid.ParallelRows(ctx, ny, o.Workers, func(y int) error {
		svd, err := linalg.NewSVD2(p, o.Solver)
		if err != nil {
			return err
		}
		jac := make([]float64, 2*p)
		sRow, rRow := sigma1.Row(y), rsi.Row(y)
		for x := 0; x < nx; x++ {
			k := y*nx + x
			for i, g := range grads {
				jac[2*i] = g.X.Data()[k]
				jac[2*i+1] = g.Y.Data()[k]
			}
			s1, s2, err := svd.Values(jac)
			if err != nil {
				return fmt.Errorf("point (%d,%d): %w", y, x, err)
			}
			sRow[x] = s1
			rRow[x] = Index(s1, s2, p, o.Epsilon)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	o.Logger.Debug("stability computed",
		"grid", fmt.Sprintf("%dx%d", ny, nx),
		"fields", p,
		"gradient_sigma", o.GradientSigma,
		"solver", o.Solver.String(),
		"elapsed", time.Since(start),
	)

	return &Result{Sigma1: sigma1, RSI: rsi}, nil
}

// Index returns the stability ratio s2/s1 for a Jacobian with p rows.
// It is 0 when p < 2 or s1 ≤ eps, and clamped to [0, 1] otherwise.
func Index(s1, s2 float64, p int, eps float64) float64 {
	if p < 2 || s1 <= eps {
		return 0
	}

	return math.Max(0, math.Min(s2/s1, 1))
}
