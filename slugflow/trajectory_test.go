package slugflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/slugsim/utils"
)

func TestReshape(t *testing.T) {
	var (
		nt, n = 3, 2
		data  = make([]float64, nt*4*n)
	)
	for i := range data {
		data[i] = float64(i)
	}
	tr := Trajectory{
		Times:  []float64{0, 1, 2},
		States: utils.NewMatrix(nt, 4*n, data),
	}
	f, err := tr.Reshape()
	require.NoError(t, err)

	nr, nc := f.Positions.Dims()
	assert.Equal(t, nt, nr)
	assert.Equal(t, n, nc)
	// row 1 of the raw trajectory is [8..15]
	assert.Equal(t, []float64{8, 9}, f.Positions.Row(1).DataP())
	assert.Equal(t, []float64{10, 11}, f.Lengths.Row(1).DataP())
	assert.Equal(t, []float64{12, 13}, f.Pressures.Row(1).DataP())
	assert.Equal(t, []float64{14, 15}, f.Velocities.Row(1).DataP())
}

func TestReshapeIdempotent(t *testing.T) {
	var (
		nt, n = 4, 3
		data  = make([]float64, nt*4*n)
	)
	for i := range data {
		data[i] = float64(i) * 0.5
	}
	tr := Trajectory{States: utils.NewMatrix(nt, 4*n, data)}

	f1, err := tr.Reshape()
	require.NoError(t, err)
	f2, err := tr.Reshape()
	require.NoError(t, err)
	assert.Equal(t, f1.Pressures.RawMatrix().Data, f2.Pressures.RawMatrix().Data)

	// reshaping never mutates the input, and the views are copies
	f1.Pressures.Set(0, 0, -1)
	f3, err := tr.Reshape()
	require.NoError(t, err)
	assert.Equal(t, f2.Pressures.RawMatrix().Data, f3.Pressures.RawMatrix().Data)
}

func TestReshapeShapeInvariant(t *testing.T) {
	tr := Trajectory{States: utils.NewMatrix(2, 7)}
	_, err := tr.Reshape()
	var se *ShapeInvariantError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 7, se.Cols)
	assert.Contains(t, se.Error(), "multiple of 4")
}
