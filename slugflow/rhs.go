package slugflow

import (
	"github.com/notargets/slugsim/ode"
)

// Relaxation coefficients of the linearized slug model.
const (
	LengthRateCoeff    = 0.01
	PressureRelaxCoeff = 0.1
	VelocityRelaxCoeff = 0.05
)

/*
RHS returns the right hand side of the coupled bubble system for the given
parameter set. The returned function is pure: it reads only y and writes only
dydt, so the adaptive solver may evaluate it at non-monotonic trial times.

Per bubble i:

	x'(i) = Umix                                  all bubbles ride the mixture
	l'(i) = 0.01 (Pout - P(i)) / Pout             length responds to the deficit
	                                              against the outlet reference
	P'(i) = -0.1 (P(i) - P(i+1))   for i < N-1    relax toward downstream neighbor
	P'(i) = -0.1 (P(i) - Pout)     for i == N-1   relax toward outlet boundary
	v'(i) = 0.05 (Umix - v(i))

The length rate keeps the sign convention of the reference lab model even
though it makes bubbles above the outlet reference grow rather than shrink;
changing it would break comparisons against the recorded lab trajectories.
*/
func RHS(p PhysicalParams) ode.Function {
	var (
		n    = p.BubbleCount
		pOut = p.OutletPressure
		uMix = p.Umix
	)
	return func(t float64, y, dydt []float64) {
		for i := 0; i < n; i++ {
			Pi := y[2*n+i]
			dydt[i] = uMix
			dydt[n+i] = LengthRateCoeff * (pOut - Pi) / pOut
			if i < n-1 {
				dydt[2*n+i] = -PressureRelaxCoeff * (Pi - y[2*n+i+1])
			} else {
				dydt[2*n+i] = -PressureRelaxCoeff * (Pi - pOut)
			}
			dydt[3*n+i] = VelocityRelaxCoeff * (uMix - y[3*n+i])
		}
	}
}
