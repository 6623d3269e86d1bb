// SPDX-License-Identifier: MIT

// Package linalg provides the small dense kernels evaluated once per grid
// point: eigenvalues of a P×P symmetric matrix and singular values of a
// P×2 Jacobian.
//
// Solvers:
//
//   - SolverAuto: closed forms for n ≤ 3 eigenproblems and for every P×2
//     singular-value problem; Jacobi rotations for n ≥ 4.
//   - SolverJacobi: Jacobi rotations for every eigenproblem (largest
//     off-diagonal pivot first), closed form for P×2.
//   - SolverGonum: gonum mat.EigenSym / mat.SVD for everything.
//
// Workspaces (SymEigen, SVD2) own their buffers and are NOT safe for
// concurrent use; allocate one per worker and reuse it across grid points.
package linalg

import "errors"

var (
	// ErrDimension indicates a buffer or order that does not match the workspace.
	ErrDimension = errors.New("linalg: dimension mismatch")

	// ErrEigenFailed indicates the eigen solver did not converge.
	ErrEigenFailed = errors.New("linalg: eigen decomposition did not converge")

	// ErrSVDFailed indicates the singular value factorization failed.
	ErrSVDFailed = errors.New("linalg: singular value decomposition failed")

	// ErrUnknownSolver indicates an unsupported Solver value.
	ErrUnknownSolver = errors.New("linalg: unknown solver")
)

// Solver selects the eigen/SVD backend.
type Solver int

const (
	// SolverAuto uses closed forms where available and Jacobi otherwise.
	SolverAuto Solver = iota
	// SolverJacobi forces Jacobi rotations for symmetric eigenproblems.
	SolverJacobi
	// SolverGonum delegates to gonum's LAPACK-backed routines.
	SolverGonum
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverAuto:
		return "auto"
	case SolverJacobi:
		return "jacobi"
	case SolverGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known solver.
func (s Solver) Valid() bool {
	return s >= SolverAuto && s <= SolverGonum
}
