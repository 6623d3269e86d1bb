package options_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/regulon/linalg"
	"github.com/katalvlaran/regulon/options"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	o := options.New()
	require.Equal(t, options.DefaultEpsilon, o.Epsilon)
	require.Equal(t, options.DefaultGradientSigma, o.GradientSigma)
	require.Equal(t, options.DefaultWorkers, o.Workers)
	require.Equal(t, linalg.SolverAuto, o.Solver)
	require.False(t, o.UniquePairs)
	require.NotNil(t, o.Logger)
}

func TestNew_LastWriterWins(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	o := options.New(
		options.WithEpsilon(1e-6),
		options.WithEpsilon(1e-9),
		options.WithGradientSigma(0),
		options.WithWorkers(3),
		options.WithSolver(linalg.SolverGonum),
		options.WithUniquePairs(),
		options.WithLogger(l),
	)
	require.Equal(t, 1e-9, o.Epsilon)
	require.Equal(t, 0.0, o.GradientSigma)
	require.Equal(t, 3, o.Workers)
	require.Equal(t, linalg.SolverGonum, o.Solver)
	require.True(t, o.UniquePairs)
	require.Same(t, l, o.Logger)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { options.WithEpsilon(-1) })
	require.Panics(t, func() { options.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { options.WithGradientSigma(math.Inf(1)) })
	require.Panics(t, func() { options.WithSolver(linalg.Solver(-1)) })
	require.Panics(t, func() { options.WithLogger(nil) })
}
