// Package builder_test exercises every Constructor through the public
// BuildField/BuildStack entry points.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regulon/builder"
	"github.com/katalvlaran/regulon/grid"
)

func TestConstructors_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cons  builder.Constructor
		check func(t *testing.T, f *grid.Field)
	}{
		{
			name: "Constant",
			cons: builder.Constant(2.5),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, 2.5, f.Min())
				assert.Equal(t, 2.5, f.Max())
			},
		},
		{
			name: "RampX",
			cons: builder.RampX(2),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, 0.0, at(f, 3, 0))
				assert.Equal(t, 8.0, at(f, 3, 4))
				assert.Equal(t, at(f, 0, 2), at(f, 4, 2))
			},
		},
		{
			name: "RampY",
			cons: builder.RampY(-1),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, -4.0, at(f, 4, 1))
				assert.Equal(t, at(f, 2, 0), at(f, 2, 5))
			},
		},
		{
			name: "Blob peak at centre",
			cons: builder.Blob(2, 3, 1.5),
			check: func(t *testing.T, f *grid.Field) {
				assert.InDelta(t, 1.0, at(f, 2, 3), 1e-15)
				assert.Equal(t, f.Max(), at(f, 2, 3))
				assert.InDelta(t, math.Exp(-0.5/(1.5*1.5)), at(f, 2, 4), 1e-15)
			},
		},
		{
			name: "Step along x",
			cons: builder.Step(builder.AxisX, 3, -1, 1),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, -1.0, at(f, 0, 2))
				assert.Equal(t, 1.0, at(f, 0, 3))
			},
		},
		{
			name: "Scaled",
			cons: builder.Scaled(3, builder.RampX(1)),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, 15.0, at(f, 1, 5))
			},
		},
		{
			name: "Sum",
			cons: builder.Sum(builder.RampX(1), builder.RampY(10)),
			check: func(t *testing.T, f *grid.Field) {
				assert.Equal(t, 32.0, at(f, 3, 2))
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := builder.BuildField(5, 6, nil, tc.cons)
			require.NoError(t, err)
			ny, nx := f.Shape()
			require.Equal(t, 5, ny)
			require.Equal(t, 6, nx)
			tc.check(t, f)
		})
	}
}

func TestAmplitudeOffset(t *testing.T) {
	t.Parallel()

	f, err := builder.BuildField(2, 3, []builder.BuilderOption{builder.WithAmplitude(2), builder.WithOffset(1)}, builder.RampX(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 1, 3, 5}, f.Data())
}

func TestNoise_DeterministicAndBounded(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithOctaves(3)}
	a, err := builder.BuildField(16, 16, opts, builder.Noise(0))
	require.NoError(t, err)
	b, err := builder.BuildField(16, 16, opts, builder.Noise(0))
	require.NoError(t, err)
	c, err := builder.BuildField(16, 16, opts, builder.Noise(1))
	require.NoError(t, err)

	assert.Equal(t, a.Data(), b.Data(), "same seed and stream must reproduce")
	assert.NotEqual(t, a.Data(), c.Data(), "streams must differ")
	assert.GreaterOrEqual(t, a.Min(), 0.0)
	assert.LessOrEqual(t, a.Max(), 1.0)
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildField(0, 3, nil, builder.Constant(1))
	assert.ErrorIs(t, err, builder.ErrBadShape)

	_, err = builder.BuildField(3, 3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)

	_, err = builder.BuildField(3, 3, nil, builder.Noise(0))
	assert.ErrorIs(t, err, builder.ErrNeedSeed)

	_, err = builder.BuildField(3, 3, nil, builder.Blob(1, 1, 0))
	assert.ErrorIs(t, err, builder.ErrBadParameter)

	_, err = builder.BuildField(3, 3, nil, builder.Step(builder.AxisY, 3, 0, 1))
	assert.ErrorIs(t, err, builder.ErrBadParameter)

	_, err = builder.BuildField(3, 3, nil, builder.Constant(math.NaN()))
	assert.ErrorIs(t, err, builder.ErrBadParameter)

	_, err = builder.BuildField(3, 3, nil, builder.Scaled(2, nil))
	assert.ErrorIs(t, err, builder.ErrNilConstructor)

	_, err = builder.BuildField(3, 3, nil, builder.Sum())
	assert.ErrorIs(t, err, builder.ErrBadParameter)
}

func TestBuildStack(t *testing.T) {
	t.Parallel()

	s, err := builder.BuildStack(4, 5, nil,
		builder.Entry("a", builder.RampX(1)),
		builder.Entry("b", builder.RampY(1)),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Names())
	ny, nx := s.Shape()
	assert.Equal(t, 4, ny)
	assert.Equal(t, 5, nx)

	_, err = builder.BuildStack(4, 5, nil,
		builder.Entry("a", builder.RampX(1)),
		builder.Entry("a", builder.RampY(1)),
	)
	assert.ErrorIs(t, err, grid.ErrDuplicateName)

	_, err = builder.BuildStack(4, 5, nil, builder.Entry("bad", builder.Blob(0, 0, -1)))
	assert.ErrorIs(t, err, builder.ErrBadParameter)
}

func at(f *grid.Field, y, x int) float64 { return f.Row(y)[x] }
