// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SVD2 computes the two leading singular values of P×2 matrices stored
// row-major as [j00, j01, j10, j11, ...].
type SVD2 struct {
	p      int
	solver Solver
	dense  *mat.Dense
	svd    mat.SVD
	vals   []float64
}

// NewSVD2 allocates a workspace for P×2 problems.
func NewSVD2(p int, solver Solver) (*SVD2, error) {
	if p <= 0 {
		return nil, fmt.Errorf("NewSVD2(p=%d): %w", p, ErrDimension)
	}
	if !solver.Valid() {
		return nil, fmt.Errorf("NewSVD2(solver=%d): %w", solver, ErrUnknownSolver)
	}
	w := &SVD2{p: p, solver: solver}
	if solver == SolverGonum {
		w.dense = mat.NewDense(p, 2, nil)
		w.vals = make([]float64, min(p, 2))
	}

	return w, nil
}

// Values returns sigma1 ≥ sigma2 ≥ 0 for the P×2 matrix j.
// When P < 2 there is no second singular value and sigma2 is 0.
func (w *SVD2) Values(j []float64) (sigma1, sigma2 float64, err error) {
	if len(j) != 2*w.p {
		return 0, 0, fmt.Errorf("SVD2.Values: len=%d, want %d: %w", len(j), 2*w.p, ErrDimension)
	}
	if w.solver == SolverGonum {
		return w.gonumValues(j)
	}

	// Gram matrix JᵀJ = [[a, b], [b, c]]; its eigenvalues are the squared singular values.
	var a, b, c float64
	for i := 0; i < w.p; i++ {
		gx, gy := j[2*i], j[2*i+1]
		a += gx * gx
		b += gx * gy
		c += gy * gy
	}
	lo, hi := eig2(a, b, c)
	sigma1 = math.Sqrt(math.Max(hi, 0))
	if w.p < 2 || lo <= 0 {
		return sigma1, 0, nil
	}

	return sigma1, math.Min(math.Sqrt(lo), sigma1), nil
}

func (w *SVD2) gonumValues(j []float64) (float64, float64, error) {
	copy(w.dense.RawMatrix().Data, j)
	if ok := w.svd.Factorize(w.dense, mat.SVDNone); !ok {
		return 0, 0, fmt.Errorf("SVD2.Values: gonum: %w", ErrSVDFailed)
	}
	vals := w.svd.Values(w.vals)
	if len(vals) < 2 {
		return vals[0], 0, nil
	}

	return vals[0], vals[1], nil
}
