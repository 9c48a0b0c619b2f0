package ode

import "math"

// Five-stage fourth-order low-storage Runge-Kutta scheme of Carpenter and
// Kennedy. Fixed step, no error estimate; used for convergence cross-checks
// against the adaptive integrator.
var (
	lserk4a = []float64{
		0,
		-567301805773. / 1357537059087.,
		-2404267990393. / 2016746695238.,
		-3550918686646. / 2091501179385.,
		-1275806237668. / 842570457699.,
	}
	lserk4b = []float64{
		1432997174477. / 9575080441755.,
		5161836677717. / 13612068292357.,
		1720146321549. / 2090206949498.,
		3134564353537. / 4481467310338.,
		2277821191437. / 14882151754819.,
	}
	lserk4c = []float64{
		0,
		1432997174477. / 9575080441755.,
		2526269341429. / 6820363962896.,
		2006345519317. / 3224310063776.,
		2802321613138. / 2924317926251.,
	}
)

type LSERK4 struct {
	IntegratorInfo
	f Function
}

func NewLSERK4(f Function) (rk *LSERK4) {
	rk = &LSERK4{
		IntegratorInfo: IntegratorInfo{
			Name:   "Carpenter-Kennedy LSERK4",
			Stages: 5,
			Order:  4,
		},
		f: f,
	}
	return
}

// Integrate advances y from t to tEnd in equal steps of approximately
// Config.InitialStepSize, adjusted so the span divides evenly. Tolerance
// fields of cfg are ignored.
func (rk *LSERK4) Integrate(t, tEnd float64, y []float64, cfg Config) (stat Statistics, err error) {
	var (
		n     = len(y)
		resid = make([]float64, n)
		dydt  = make([]float64, n)
	)
	cfg = cfg.withDefaults()
	if tEnd < t {
		return stat, ErrTimeSpan
	}
	stat.CurrentTime = t
	if tEnd == t {
		return stat, nil
	}
	h := cfg.InitialStepSize
	if h <= 0 {
		h = (tEnd - t) / 100
	}
	Ns := int(math.Ceil((tEnd - t) / h))
	if Ns > cfg.MaxStepCount {
		return stat, ErrStepBudget
	}
	h = (tEnd - t) / float64(Ns)

	for step := 0; step < Ns; step++ {
		for s := 0; s < 5; s++ {
			rk.f(t+h*lserk4c[s], y, dydt)
			stat.EvaluationCount++
			for i := 0; i < n; i++ {
				resid[i] = lserk4a[s]*resid[i] + h*dydt[i]
				y[i] += lserk4b[s] * resid[i]
			}
		}
		t += h
		stat.StepCount++
		stat.LastStepSize = h
		stat.CurrentTime = t
	}
	stat.CurrentTime = tEnd
	return
}
