package slugflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, mutate ...func(*Config)) PhysicalParams {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	p, err := NewPhysicalParams(cfg)
	require.NoError(t, err)
	return p
}

func TestInitialStateLayout(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		p := mustParams(t, func(c *Config) { c.BubbleCount = n })
		U, err := InitialState(p)
		require.NoError(t, err)
		require.Equal(t, 4*n, U.Len())

		d := U.DataP()
		// positions strictly increasing, confined to the open interval (0, L)
		for i := 0; i < n; i++ {
			assert.Greater(t, d[i], 0.)
			assert.Less(t, d[i], p.PipeLength)
			if i > 0 {
				assert.Greater(t, d[i], d[i-1])
			}
		}
		// uniform lengths and velocities
		for i := 0; i < n; i++ {
			assert.Equal(t, InitialBubbleLength, d[n+i])
			assert.Equal(t, p.Umix, d[3*n+i])
		}
		// pressure ramp endpoints
		assert.InDelta(t, InletPressureRatio*p.OutletPressure, d[2*n], 1.e-9)
		if n > 1 {
			assert.InDelta(t, p.OutletPressure, d[2*n+n-1], 1.e-9)
		}
		// ramp is monotonically decreasing
		for i := 1; i < n; i++ {
			assert.Less(t, d[2*n+i], d[2*n+i-1])
		}
	}
}

func TestInitialStateSpacing(t *testing.T) {
	p := mustParams(t, func(c *Config) { c.BubbleCount = 4 })
	U, err := InitialState(p)
	require.NoError(t, err)
	d := U.DataP()
	// 4 bubbles on a 10 m pipe sit at 2, 4, 6, 8
	for i, want := range []float64{2, 4, 6, 8} {
		assert.InDelta(t, want, d[i], 1.e-12)
	}
}

func TestInitialStateBadBubbleCount(t *testing.T) {
	p := mustParams(t)
	p.Config.BubbleCount = 0
	_, err := InitialState(p)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "bubbleCount", ce.Field)
}
