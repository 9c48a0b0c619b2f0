package slugflow

import (
	"github.com/notargets/slugsim/utils"
)

/*
State vector layout for N bubbles, length 4N:

	[0,   N) bubble leading edge positions (m)
	[N,  2N) bubble lengths (m)
	[2N, 3N) bubble internal pressures (Pa)
	[3N, 4N) bubble translational velocities (m/s)

Bubble 0 is the leading, most downstream bubble; bubble N-1 is the furthest
from the outlet. This entry order is fixed for the whole run and is never
re-sorted by position. The derivative function and the integration driver both
rely on these offsets.
*/
const (
	// InitialBubbleLength is the uniform initial axial extent of every gas
	// pocket.
	InitialBubbleLength = 0.2 // m

	// InletPressureRatio scales the outlet pressure to the initial pressure
	// of bubble 0; the initial pressures ramp linearly down to the outlet
	// pressure at bubble N-1.
	InletPressureRatio = 1.2
)

// InitialState builds the flattened 4N state vector from the physical
// parameter set: positions evenly spaced strictly inside (0, PipeLength),
// uniform lengths, a linear pressure ramp from InletPressureRatio times the
// outlet pressure down to the outlet pressure, and uniform velocities at the
// mixture velocity.
func InitialState(p PhysicalParams) (U utils.Vector, err error) {
	var (
		n = p.BubbleCount
	)
	if n < 1 {
		return U, &ConfigurationError{
			Field:  "bubbleCount",
			Value:  float64(n),
			Reason: "at least one bubble is required",
		}
	}
	U = utils.NewVector(4 * n)
	var (
		d = U.DataP()
		// n+2 samples over [0, L], endpoints dropped, leaves n interior points
		x = utils.NewVector(n + 2).Linspace(0, p.PipeLength)
	)
	for i := 0; i < n; i++ {
		d[i] = x.AtVec(i + 1)
		d[n+i] = InitialBubbleLength
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		d[2*n+i] = p.OutletPressure * (InletPressureRatio - (InletPressureRatio-1)*frac)
		d[3*n+i] = p.Umix
	}
	return U, nil
}
