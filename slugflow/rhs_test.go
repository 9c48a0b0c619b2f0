package slugflow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRHSPressureFixedPoint(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 5 })
	n := p.BubbleCount
	U, err := InitialState(p)
	require.NoError(t, err)
	y := U.DataP()
	// every pressure at the outlet reference is a fixed point of the
	// pressure relaxation
	for i := 0; i < n; i++ {
		y[2*n+i] = p.OutletPressure
	}
	dydt := make([]float64, 4*n)
	RHS(p)(0, y, dydt)
	for i := 0; i < n; i++ {
		assert.Equal(t, 0., dydt[2*n+i])
		assert.Equal(t, 0., dydt[n+i]) // zero deficit, zero length rate
	}
}

func TestRHSPositionRateIsMixtureVelocity(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 3 })
	n := p.BubbleCount
	U, err := InitialState(p)
	require.NoError(t, err)
	dydt := make([]float64, 4*n)
	RHS(p)(1.5, U.DataP(), dydt)
	for i := 0; i < n; i++ {
		assert.Equal(t, p.Umix, dydt[i])
	}
}

func TestRHSNeighborCoupling(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 3 })
	n := p.BubbleCount
	y := make([]float64, 4*n)
	y[2*n+0] = 120000
	y[2*n+1] = 110000
	y[2*n+2] = 90000
	dydt := make([]float64, 4*n)
	RHS(p)(0, y, dydt)
	assert.InDelta(t, -PressureRelaxCoeff*(120000-110000), dydt[2*n+0], 1.e-9)
	assert.InDelta(t, -PressureRelaxCoeff*(110000-90000), dydt[2*n+1], 1.e-9)
	assert.InDelta(t, -PressureRelaxCoeff*(90000-p.OutletPressure), dydt[2*n+2], 1.e-9)
}

// The last bubble's pressure rate depends only on its own pressure and the
// outlet reference, never on any other bubble's state.
func TestRHSLastBubbleIsolation(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 4 })
	var (
		n   = p.BubbleCount
		rng = rand.New(rand.NewSource(42))
	)
	base := make([]float64, 4*n)
	for i := range base {
		base[i] = 1.e5 * rng.Float64()
	}
	dydt := make([]float64, 4*n)
	RHS(p)(0, base, dydt)
	want := dydt[2*n+n-1]

	for trial := 0; trial < 10; trial++ {
		y := make([]float64, 4*n)
		for i := range y {
			y[i] = 1.e5 * rng.Float64()
		}
		y[2*n+n-1] = base[2*n+n-1] // keep only the last bubble's pressure
		RHS(p)(0, y, dydt)
		assert.Equal(t, want, dydt[2*n+n-1])
	}
}

// With a single bubble only the outlet branch exists.
func TestRHSSingleBubble(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 1 })
	y := []float64{5, 0.2, 0.6 * p.OutletPressure, p.Umix}
	dydt := make([]float64, 4)
	RHS(p)(0, y, dydt)
	assert.InDelta(t, -PressureRelaxCoeff*(0.6*p.OutletPressure-p.OutletPressure),
		dydt[2], 1.e-9)
	assert.Greater(t, dydt[2], 0.) // below the outlet reference, pressure rises
}

// The derivative is a pure function: repeated evaluation at the same inputs
// yields the same output and never mutates the state.
func TestRHSPure(t *testing.T) {
	p := mustParams(t)
	n := p.BubbleCount
	U, err := InitialState(p)
	require.NoError(t, err)
	var (
		y     = U.DataP()
		yOrig = U.Copy().DataP()
		d1    = make([]float64, 4*n)
		d2    = make([]float64, 4*n)
		f     = RHS(p)
	)
	f(0.5, y, d1)
	f(0.5, y, d2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, yOrig, y)
}
