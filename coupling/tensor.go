// SPDX-License-Identifier: MIT

package coupling

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

const (
	opComputeTensor   = "ComputeTensor"
	opPhaseBoundaries = "PhaseBoundaries"
)

// TensorResult bundles the coupling tensor field and its scalar summaries.
type TensorResult struct {
	Tensor       *grid.Tensor // (ny, nx, P, P) local covariance
	Strength     *grid.Field  // ‖C‖_F per point
	EffectiveDim *grid.Field  // exp(entropy of clipped eigen spectrum)
	Sigma        float64      // pixel-space smoothing used, delta/resolution
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ComputeTensor is ComputeTensorContext with context.Background().
func ComputeTensor(stack *grid.Stack, delta, resolution float64, opts ...options.Option) (*TensorResult, error) {
	return ComputeTensorContext(context.Background(), stack, delta, resolution, opts...)
}

// ComputeTensorContext builds the coupling tensor for stack.
// Stage 1 (Validate): stack non-nil, delta and resolution finite and > 0.
// Stage 2 (Local means): per field, m_i = G_σ*f_i and residual r_i = f_i − m_i.
// Stage 3 (Covariances): per pair i ≤ j, G_σ*(r_i·r_j) into (i,j) and (j,i).
// Stage 4 (Per point): Frobenius norm and effective dimensionality.
// Smoothing passes complete before the per-point pass reads their output.
//
// Complexity: O(P²·ny·nx·k) smoothing with k = kernel length, plus
// O(ny·nx·P³) eigen work (closed form for P ≤ 3).
func ComputeTensorContext(ctx context.Context, stack *grid.Stack, delta, resolution float64, opts ...options.Option) (*TensorResult, error) {
	if stack == nil {
		return nil, fmt.Errorf("%s: stack: %w", opComputeTensor, ErrNilInput)
	}
	if !finitePositive(delta) {
		return nil, fmt.Errorf("%s(delta=%g): %w", opComputeTensor, delta, ErrBadRadius)
	}
	if !finitePositive(resolution) {
		return nil, fmt.Errorf("%s(resolution=%g): %w", opComputeTensor, resolution, ErrBadResolution)
	}
	o := options.New(opts...)
	start := time.Now()

	p := stack.Len()
	ny, nx := stack.Shape()
	sigma := delta / resolution

	// Stage 2: residuals about the local Gaussian mean.
	residuals := make([]*grid.Field, p)
	err := grid.ParallelEach(ctx, p, o.Workers, func(i int) error {
		f := stack.Field(i)
		mean, err := filter.Gaussian(f, sigma)
		if err != nil {
			return err
		}
		r := mean.Data()
		for k, v := range f.Data() {
			r[k] = v - r[k]
		}
		residuals[i] = mean
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: local means: %w", opComputeTensor, err)
	}

	// Stage 3: smoothed residual products, upper triangle only.
	tensor, err := grid.NewTensor(ny, nx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComputeTensor, err)
	}
	pairs := upperPairs(p)
	err = grid.ParallelEach(ctx, len(pairs), o.Workers, func(k int) error {
		i, j := pairs[k][0], pairs[k][1]
		prod, err := grid.NewField(ny, nx)
		if err != nil {
			return err
		}
		pd, ri, rj := prod.Data(), residuals[i].Data(), residuals[j].Data()
		for n := range pd {
			pd[n] = ri[n] * rj[n]
		}
		cov, err := filter.Gaussian(prod, sigma)
		if err != nil {
			return err
		}
		if err = tensor.SetComponent(i, j, cov); err != nil {
			return err
		}
		if i != j {
			return tensor.SetComponent(j, i, cov)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: covariances: %w", opComputeTensor, err)
	}

	// Stage 4: per-point summaries.
	strength, _ := grid.NewField(ny, nx)
	effDim, _ := grid.NewField(ny, nx)
	err = grid.ParallelRows(ctx, ny, o.Workers, func(y int) error {
		solver, err := linalg.NewSymEigen(p, o.Solver)
		if err != nil {
			return err
		}
		eigs := make([]float64, p)
		sRow, eRow := strength.Row(y), effDim.Row(y)
		for x := 0; x < nx; x++ {
			c := tensor.Point(y, x)
			sRow[x] = frobenius(c)
			if err = solver.Values(c, eigs); err != nil {
				return fmt.Errorf("point (%d,%d): %w", y, x, err)
			}
			eRow[x] = EffectiveDimension(eigs, o.Epsilon)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: spectra: %w", opComputeTensor, err)
	}

	o.Logger.Debug("coupling tensor computed",
		"grid", fmt.Sprintf("%dx%d", ny, nx),
		"fields", p,
		"sigma", sigma,
		"solver", o.Solver.String(),
		"elapsed", time.Since(start),
	)

	return &TensorResult{Tensor: tensor, Strength: strength, EffectiveDim: effDim, Sigma: sigma}, nil
}

// upperPairs lists (i, j) with i ≤ j in row-major order.
func upperPairs(p int) [][2]int {
	out := make([][2]int, 0, p*(p+1)/2)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

func frobenius(c []float64) float64 {
	s := 0.0
	for _, v := range c {
		s += v * v
	}

	return math.Sqrt(s)
}

// EffectiveDimension returns exp(−Σ p_k log p_k) for the eigenvalue
// spectrum eigs after clipping negatives to zero. p_k = λ_k/Σλ over the
// eigenvalues above eps. A spectrum whose clipped sum is ≤ eps has
// dimensionality 0. The result is bounded by the number of retained
// eigenvalues, hence by len(eigs).
func EffectiveDimension(eigs []float64, eps float64) float64 {
	total := 0.0
	for _, v := range eigs {
		if v > 0 {
			total += v
		}
	}
	if total <= eps {
		return 0
	}

	entropy := 0.0
	kept := 0
	for _, v := range eigs {
		if v > eps {
			q := v / total
			entropy -= q * math.Log(q)
			kept++
		}
	}

	return math.Min(math.Exp(entropy), float64(max(kept, 1)))
}
