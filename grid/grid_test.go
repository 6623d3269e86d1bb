package grid_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/regulon/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Field
//----------------------------------------------------------------------------//

// TestFieldFromRows_Errors verifies that FieldFromRows rejects empty or ragged inputs.
func TestFieldFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FieldFromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FieldFromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestField_IndexingAndCopy(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	f, err := grid.FieldFromRows(src)
	require.NoError(t, err)

	ny, nx := f.Shape()
	require.Equal(t, 2, ny)
	require.Equal(t, 3, nx)

	v, err := f.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// deep copy: mutating the source does not leak in
	src[0][0] = 100
	v, _ = f.At(0, 0)
	require.Equal(t, 1.0, v)

	y, x := f.Coordinate(f.Index(1, 1))
	require.Equal(t, [2]int{1, 1}, [2]int{y, x})

	_, err = f.At(2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, f.Set(0, -1, 1), grid.ErrOutOfRange)

	require.Equal(t, src[1], f.Rows2D()[1])
}

func TestField_Arithmetic(t *testing.T) {
	f, _ := grid.FieldFromRows([][]float64{{1, -2}, {3, 4}})
	g := f.Scale(2)
	require.Equal(t, []float64{2, -4, 6, 8}, g.Data())
	require.Equal(t, []float64{1, -2, 3, 4}, f.Data(), "Scale must not mutate receiver")

	h, err := f.Add(g)
	require.NoError(t, err)
	require.Equal(t, []float64{3, -6, 9, 12}, h.Data())
	require.Equal(t, 6.0, f.Sum())
	require.Equal(t, -2.0, f.Min())
	require.Equal(t, 4.0, f.Max())

	other, _ := grid.NewField(1, 2)
	_, err = f.Add(other)
	require.ErrorIs(t, err, grid.ErrShapeMismatch)
}

func TestFieldFromData(t *testing.T) {
	_, err := grid.FieldFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, grid.ErrShapeMismatch)
	_, err = grid.FieldFromData(0, 2, nil)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Stack
//----------------------------------------------------------------------------//

func TestNewStack_Errors(t *testing.T) {
	a, _ := grid.NewField(3, 4)
	b, _ := grid.NewField(3, 4)
	c, _ := grid.NewField(4, 3)
	bad, _ := grid.NewField(3, 4)
	_ = bad.Set(1, 1, math.NaN())

	fields := map[string]*grid.Field{"A": a, "B": b, "C": c, "NaN": bad}
	cases := []struct {
		name  string
		names []string
		err   error
	}{
		{"Empty", nil, grid.ErrEmptyNames},
		{"Unknown", []string{"A", "Z"}, grid.ErrUnknownName},
		{"Duplicate", []string{"A", "A"}, grid.ErrDuplicateName},
		{"Shape", []string{"A", "C"}, grid.ErrShapeMismatch},
		{"NaN", []string{"A", "NaN"}, grid.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewStack(fields, tc.names)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewStack_ShapeErrorNamesField(t *testing.T) {
	a, _ := grid.NewField(3, 4)
	c, _ := grid.NewField(4, 3)
	_, err := grid.NewStack(map[string]*grid.Field{"SOX2": a, "PAX6": c}, []string{"SOX2", "PAX6"})
	require.ErrorIs(t, err, grid.ErrShapeMismatch)
	require.Contains(t, err.Error(), `"PAX6"`)
	require.Contains(t, err.Error(), "4x3")
}

func TestNewStack_PreservesOrder(t *testing.T) {
	a, _ := grid.NewField(2, 2)
	b, _ := grid.NewField(2, 2)
	names := []string{"B", "A"}
	st, err := grid.NewStack(map[string]*grid.Field{"A": a, "B": b}, names)
	require.NoError(t, err)
	require.Equal(t, 2, st.Len())
	require.Equal(t, []string{"B", "A"}, st.Names())
	require.Same(t, b, st.Field(0))

	names[0] = "X"
	require.Equal(t, "B", st.Names()[0], "stack must own its name list")

	f, ok := st.Lookup("A")
	require.True(t, ok)
	require.Same(t, a, f)
}

//----------------------------------------------------------------------------//
// Tensor
//----------------------------------------------------------------------------//

func TestTensor_ComponentRoundTrip(t *testing.T) {
	tn, err := grid.NewTensor(2, 3, 2)
	require.NoError(t, err)
	f, _ := grid.FieldFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, tn.SetComponent(0, 1, f))
	require.NoError(t, tn.SetComponent(1, 0, f))

	got, err := tn.Component(1, 0)
	require.NoError(t, err)
	require.Equal(t, f.Data(), got.Data())

	v, err := tn.At(1, 2, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, []float64{0, 6, 6, 0}, tn.Point(1, 2))
	require.True(t, tn.IsSymmetric(0))

	tn.Point(0, 0)[1] = 42
	require.False(t, tn.IsSymmetric(1e-9))

	_, err = tn.At(0, 0, 2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	small, _ := grid.NewField(1, 1)
	require.ErrorIs(t, tn.SetComponent(0, 0, small), grid.ErrShapeMismatch)
}

//----------------------------------------------------------------------------//
// Parallel execution
//----------------------------------------------------------------------------//

func TestParallelRows_VisitsEveryRowOnce(t *testing.T) {
	const ny = 37
	for _, workers := range []int{0, 1, 4, 64} {
		var visits [ny]int32
		err := grid.ParallelRows(context.Background(), ny, workers, func(y int) error {
			atomic.AddInt32(&visits[y], 1)
			return nil
		})
		require.NoError(t, err)
		for y, v := range visits {
			require.Equalf(t, int32(1), v, "workers=%d row=%d", workers, y)
		}
	}
}

func TestParallelRows_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := grid.ParallelRows(context.Background(), 10, 3, func(y int) error {
		if y == 7 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestParallelRows_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := grid.ParallelRows(ctx, 10, 1, func(int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestParallelEach(t *testing.T) {
	var sum int64
	err := grid.ParallelEach(context.Background(), 100, 8, func(k int) error {
		atomic.AddInt64(&sum, int64(k))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(4950), sum)
}
