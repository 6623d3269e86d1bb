package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/regulon/linalg"
	"github.com/stretchr/testify/require"
)

var solvers = []linalg.Solver{linalg.SolverAuto, linalg.SolverJacobi, linalg.SolverGonum}

// randomSym returns a random n×n symmetric matrix and its Gram form
// MᵀM (positive semi-definite) when psd is true.
func randomSym(rng *rand.Rand, n int, psd bool) []float64 {
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.NormFloat64()
	}
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if psd {
				s := 0.0
				for k := 0; k < n; k++ {
					s += m[k*n+i] * m[k*n+j]
				}
				out[i*n+j] = s
			} else {
				out[i*n+j] = 0.5 * (m[i*n+j] + m[j*n+i])
			}
		}
	}

	return out
}

func TestSymEigen_KnownSpectra(t *testing.T) {
	cases := []struct {
		name string
		n    int
		a    []float64
		want []float64
	}{
		{"1x1", 1, []float64{-3}, []float64{-3}},
		{"2x2", 2, []float64{2, 1, 1, 2}, []float64{1, 3}},
		{"2x2Rank1", 2, []float64{1, 1, 1, 1}, []float64{0, 2}},
		{"3x3Diag", 3, []float64{3, 0, 0, 0, 1, 0, 0, 0, 2}, []float64{1, 2, 3}},
		{"3x3", 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2}, []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}},
		{"3x3Equal", 3, []float64{5, 0, 0, 0, 5, 0, 0, 0, 5}, []float64{5, 5, 5}},
		{"4x4Block", 4, []float64{
			2, 1, 0, 0,
			1, 2, 0, 0,
			0, 0, 4, 0,
			0, 0, 0, -1,
		}, []float64{-1, 1, 3, 4}},
	}
	for _, tc := range cases {
		for _, s := range solvers {
			t.Run(tc.name+"/"+s.String(), func(t *testing.T) {
				w, err := linalg.NewSymEigen(tc.n, s)
				require.NoError(t, err)
				out := make([]float64, tc.n)
				require.NoError(t, w.Values(tc.a, out))
				require.InDeltaSlice(t, tc.want, out, 1e-12)
			})
		}
	}
}

// TestSymEigen_SolversAgree cross-checks closed forms and Jacobi against gonum.
func TestSymEigen_SolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		ref, _ := linalg.NewSymEigen(n, linalg.SolverGonum)
		auto, _ := linalg.NewSymEigen(n, linalg.SolverAuto)
		jac, _ := linalg.NewSymEigen(n, linalg.SolverJacobi)
		want := make([]float64, n)
		got := make([]float64, n)
		for trial := 0; trial < 50; trial++ {
			a := randomSym(rng, n, trial%2 == 0)
			require.NoError(t, ref.Values(a, want))
			require.NoError(t, auto.Values(a, got))
			require.InDeltaSlice(t, want, got, 1e-8, "auto n=%d", n)
			require.NoError(t, jac.Values(a, got))
			require.InDeltaSlice(t, want, got, 1e-9, "jacobi n=%d", n)
		}
	}
}

func TestSymEigen_TraceAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	w, _ := linalg.NewSymEigen(3, linalg.SolverAuto)
	out := make([]float64, 3)
	for trial := 0; trial < 200; trial++ {
		a := randomSym(rng, 3, false)
		require.NoError(t, w.Values(a, out))
		require.LessOrEqual(t, out[0], out[1])
		require.LessOrEqual(t, out[1], out[2])
		require.InDelta(t, a[0]+a[4]+a[8], out[0]+out[1]+out[2], 1e-10)
	}
}

func TestSymEigen_Errors(t *testing.T) {
	_, err := linalg.NewSymEigen(0, linalg.SolverAuto)
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = linalg.NewSymEigen(2, linalg.Solver(42))
	require.ErrorIs(t, err, linalg.ErrUnknownSolver)

	w, _ := linalg.NewSymEigen(2, linalg.SolverAuto)
	require.ErrorIs(t, w.Values([]float64{1, 2, 3}, make([]float64, 2)), linalg.ErrDimension)
	require.ErrorIs(t, w.Values([]float64{1, 0, 0, 1}, make([]float64, 3)), linalg.ErrDimension)
}

func TestSVD2_Known(t *testing.T) {
	cases := []struct {
		name   string
		p      int
		j      []float64
		s1, s2 float64
	}{
		{"Orthogonal", 2, []float64{1, 0, 0, 1}, 1, 1},
		{"Scaled", 2, []float64{3, 0, 0, 2}, 3, 2},
		{"Parallel", 2, []float64{1, 1, 2, 2}, math.Sqrt(10), 0},
		{"Zero", 3, []float64{0, 0, 0, 0, 0, 0}, 0, 0},
		{"SingleRow", 1, []float64{3, 4}, 5, 0},
		{"ThreeRows", 3, []float64{1, 0, 0, 1, 0, 0}, 1, 1},
	}
	for _, tc := range cases {
		for _, s := range solvers {
			t.Run(tc.name+"/"+s.String(), func(t *testing.T) {
				w, err := linalg.NewSVD2(tc.p, s)
				require.NoError(t, err)
				s1, s2, err := w.Values(tc.j)
				require.NoError(t, err)
				require.InDelta(t, tc.s1, s1, 1e-12)
				require.InDelta(t, tc.s2, s2, 1e-7)
			})
		}
	}
}

func TestSVD2_SolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for p := 1; p <= 5; p++ {
		ref, _ := linalg.NewSVD2(p, linalg.SolverGonum)
		auto, _ := linalg.NewSVD2(p, linalg.SolverAuto)
		for trial := 0; trial < 50; trial++ {
			j := make([]float64, 2*p)
			for i := range j {
				j[i] = rng.NormFloat64()
			}
			r1, r2, err := ref.Values(j)
			require.NoError(t, err)
			a1, a2, err := auto.Values(j)
			require.NoError(t, err)
			require.InDelta(t, r1, a1, 1e-10)
			require.InDelta(t, r2, a2, 1e-7)
			require.GreaterOrEqual(t, a1, a2)
			require.GreaterOrEqual(t, a2, 0.0)
		}
	}
}

func TestSVD2_Errors(t *testing.T) {
	_, err := linalg.NewSVD2(0, linalg.SolverAuto)
	require.ErrorIs(t, err, linalg.ErrDimension)
	w, _ := linalg.NewSVD2(2, linalg.SolverAuto)
	_, _, err = w.Values([]float64{1, 2, 3})
	require.ErrorIs(t, err, linalg.ErrDimension)
}
