package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.DataP()[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.DataP()[N-1])

	v1.Scale(3).AddScalar(1)
	assert.Equal(t, []float64{7, 7, 7}, v1.DataP())

	v2 := NewVector(4, []float64{1, -2, 3, -4})
	assert.Equal(t, -4., v2.Min())
	assert.Equal(t, 3., v2.Max())
	v2.Apply(math.Abs)
	assert.Equal(t, []float64{1, 2, 3, 4}, v2.DataP())

	// Copy does not alias the source
	v3 := v2.Copy()
	v3.Set(0)
	assert.Equal(t, []float64{1, 2, 3, 4}, v2.DataP())

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
		req = NewVector(1).Linspace(5, 9)
		assert.Equal(t, 5., req.AtVec(0))
	}

	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}
