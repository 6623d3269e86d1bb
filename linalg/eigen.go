// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Jacobi defaults.
const (
	// jacobiRelTol stops rotations once max|A[p,q]| ≤ jacobiRelTol·‖A‖_F.
	jacobiRelTol = 1e-15
	// jacobiRotationsPerEntry caps rotations at this many per off-diagonal pair.
	jacobiRotationsPerEntry = 64
)

// SymEigen computes eigenvalues of n×n symmetric matrices stored row-major.
type SymEigen struct {
	n      int
	solver Solver
	work   []float64     // Jacobi working copy, n*n
	sym    *mat.SymDense // gonum input, n×n
	es     mat.EigenSym
}

// NewSymEigen allocates a workspace for order-n problems.
func NewSymEigen(n int, solver Solver) (*SymEigen, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSymEigen(n=%d): %w", n, ErrDimension)
	}
	if !solver.Valid() {
		return nil, fmt.Errorf("NewSymEigen(solver=%d): %w", solver, ErrUnknownSolver)
	}
	w := &SymEigen{n: n, solver: solver}
	switch {
	case solver == SolverGonum:
		w.sym = mat.NewSymDense(n, nil)
	case solver == SolverJacobi || n > 3:
		w.work = make([]float64, n*n)
	}

	return w, nil
}

// Values writes the n eigenvalues of a (row-major, symmetric, len n*n) into
// out in ascending order. Only the upper triangle of a is read by the gonum
// backend; closed forms and Jacobi read the upper triangle as well.
func (w *SymEigen) Values(a, out []float64) error {
	n := w.n
	if len(a) != n*n || len(out) != n {
		return fmt.Errorf("SymEigen.Values: len(a)=%d len(out)=%d n=%d: %w", len(a), len(out), n, ErrDimension)
	}

	switch {
	case w.solver == SolverGonum:
		return w.gonumValues(a, out)
	case w.solver == SolverJacobi || n > 3:
		return w.jacobiValues(a, out)
	case n == 1:
		out[0] = a[0]
	case n == 2:
		out[0], out[1] = eig2(a[0], a[1], a[3])
	default:
		eig3(a, out)
	}

	return nil
}

// eig2 returns the ascending eigenvalues of [[a, b], [b, c]].
func eig2(a, b, c float64) (lo, hi float64) {
	m := 0.5 * (a + c)
	d := math.Hypot(0.5*(a-c), b)

	return m - d, m + d
}

// eig3 writes the ascending eigenvalues of a 3×3 symmetric matrix using the
// trigonometric solution of the characteristic cubic.
func eig3(a, out []float64) {
	a00, a01, a02 := a[0], a[1], a[2]
	a11, a12 := a[4], a[5]
	a22 := a[8]

	off := a01*a01 + a02*a02 + a12*a12
	if off == 0 {
		out[0], out[1], out[2] = a00, a11, a22
		slices.Sort(out)
		return
	}

	q := (a00 + a11 + a22) / 3
	b00, b11, b22 := a00-q, a11-q, a22-q
	p := math.Sqrt((b00*b00 + b11*b11 + b22*b22 + 2*off) / 6)
	inv := 1 / p
	b00, b11, b22 = b00*inv, b11*inv, b22*inv
	b01, b02, b12 := a01*inv, a02*inv, a12*inv

	// r = det(B)/2, clamped against rounding outside [-1, 1]
	r := 0.5 * (b00*(b11*b22-b12*b12) - b01*(b01*b22-b12*b02) + b02*(b01*b12-b11*b02))
	r = math.Max(-1, math.Min(1, r))
	phi := math.Acos(r) / 3

	hi := q + 2*p*math.Cos(phi)
	lo := q + 2*p*math.Cos(phi+2*math.Pi/3)
	out[0], out[1], out[2] = lo, 3*q-hi-lo, hi
	if out[1] < out[0] {
		out[0], out[1] = out[1], out[0]
	}
	if out[2] < out[1] {
		out[1], out[2] = out[2], out[1]
	}
}

// jacobiValues runs classical Jacobi rotations on a working copy, always
// annihilating the largest off-diagonal entry.
func (w *SymEigen) jacobiValues(a, out []float64) error {
	n := w.n
	A := w.work
	copy(A, a)
	// mirror the upper triangle so rotations start from an exactly symmetric matrix
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			A[j*n+i] = A[i*n+j]
		}
	}

	norm := 0.0
	for _, v := range A {
		norm += v * v
	}
	tol := jacobiRelTol * math.Sqrt(norm)
	maxIter := jacobiRotationsPerEntry * n * n

	var (
		iter, p, q    int
		maxOff, off   float64
		app, aqq, apq float64
		theta, t      float64
		c, s, tau     float64
		aip, aiq      float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|, fixed i→j scan order
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off = math.Abs(A[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: converged
		if maxOff <= tol {
			break
		}

		// J.3: rotation parameters
		app, aqq, apq = A[p*n+p], A[q*n+q], A[p*n+q]
		theta = (aqq - app) / (2 * apq)
		if math.Abs(theta) > 1e150 {
			t = 1 / (2 * theta)
		} else {
			t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		}
		c = 1 / math.Sqrt(t*t+1)
		s = t * c
		tau = s / (1 + c)

		// J.4: apply rotation
		A[p*n+p] = app - t*apq
		A[q*n+q] = aqq + t*apq
		A[p*n+q], A[q*n+p] = 0, 0
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A[i*n+p], A[i*n+q]
			A[i*n+p] = aip - s*(aiq+tau*aip)
			A[i*n+q] = aiq + s*(aip-tau*aiq)
			A[p*n+i], A[q*n+i] = A[i*n+p], A[i*n+q]
		}
	}
	if iter == maxIter {
		return fmt.Errorf("SymEigen.Values: %d rotations: %w", maxIter, ErrEigenFailed)
	}

	for i := 0; i < n; i++ {
		out[i] = A[i*n+i]
	}
	slices.Sort(out)

	return nil
}

func (w *SymEigen) gonumValues(a, out []float64) error {
	raw := w.sym.RawSymmetric()
	n := w.n
	for i := 0; i < n; i++ {
		copy(raw.Data[i*raw.Stride+i:i*raw.Stride+n], a[i*n+i:i*n+n])
	}
	if ok := w.es.Factorize(w.sym, false); !ok {
		return fmt.Errorf("SymEigen.Values: gonum: %w", ErrEigenFailed)
	}
	w.es.Values(out)

	return nil
}
