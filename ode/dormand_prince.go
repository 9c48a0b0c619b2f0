package ode

import "math"

/*
Dormand-Prince 5(4) embedded Runge-Kutta pair with FSAL. The fifth order
solution propagates the state; the difference against the embedded fourth
order solution drives the step-size controller.

Butcher tableau from Dormand & Prince (1980), "A family of embedded
Runge-Kutta formulae".
*/
var (
	dpC = []float64{0, 1. / 5., 3. / 10., 4. / 5., 8. / 9., 1, 1}
	dpA = [][]float64{
		{},
		{1. / 5.},
		{3. / 40., 9. / 40.},
		{44. / 45., -56. / 15., 32. / 9.},
		{19372. / 6561., -25360. / 2187., 64448. / 6561., -212. / 729.},
		{9017. / 3168., -355. / 33., 46732. / 5247., 49. / 176., -5103. / 18656.},
		{35. / 384., 0, 500. / 1113., 125. / 192., -2187. / 6784., 11. / 84.},
	}
	dpB = []float64{35. / 384., 0, 500. / 1113., 125. / 192., -2187. / 6784., 11. / 84., 0}
	// dpE = b - bHat, the coefficients of the embedded error estimate
	dpE = []float64{
		35./384. - 5179./57600.,
		0,
		500./1113. - 7571./16695.,
		125./192. - 393./640.,
		-2187./6784. + 92097./339200.,
		11./84. - 187./2100.,
		-1. / 40.,
	}
)

const (
	dpStages    = 7
	dpOrder     = 5
	dpSafety    = 0.9
	dpMinFactor = 0.2
	dpMaxFactor = 5.0
)

type DormandPrince struct {
	IntegratorInfo
	f Function
}

func NewDormandPrince(f Function) (dp *DormandPrince) {
	dp = &DormandPrince{
		IntegratorInfo: IntegratorInfo{
			Name:   "Dormand-Prince 5(4)",
			Stages: dpStages,
			Order:  dpOrder,
		},
		f: f,
	}
	return
}

func (dp *DormandPrince) Integrate(t, tEnd float64, y []float64, cfg Config) (stat Statistics, err error) {
	var (
		n = len(y)
		k = make([][]float64, dpStages)
	)
	cfg = cfg.withDefaults()
	if tEnd < t {
		return stat, ErrTimeSpan
	}
	stat.CurrentTime = t
	if tEnd == t {
		return stat, nil
	}
	for s := range k {
		k[s] = make([]float64, n)
	}
	yTrial := make([]float64, n)
	yNew := make([]float64, n)

	h := cfg.InitialStepSize
	if h <= 0 {
		h = (tEnd - t) / 100
	}
	if cfg.MaxStepSize > 0 && h > cfg.MaxStepSize {
		h = cfg.MaxStepSize
	}

	// FSAL: the last stage of an accepted step doubles as the first stage of
	// the next one. On rejection k[0] stays valid since t and y are unchanged.
	dp.f(t, y, k[0])
	stat.EvaluationCount++

	for t < tEnd {
		if stat.StepCount+stat.RejectedCount >= cfg.MaxStepCount {
			stat.CurrentTime = t
			return stat, ErrStepBudget
		}
		if t+h > tEnd {
			h = tEnd - t
		}
		for s := 1; s < dpStages; s++ {
			for i := 0; i < n; i++ {
				sum := 0.0
				for j := 0; j < s; j++ {
					sum += dpA[s][j] * k[j][i]
				}
				yTrial[i] = y[i] + h*sum
			}
			dp.f(t+dpC[s]*h, yTrial, k[s])
			stat.EvaluationCount++
		}
		// Fifth order solution and scaled error norm
		errNorm := 0.0
		for i := 0; i < n; i++ {
			sumB, sumE := 0.0, 0.0
			for s := 0; s < dpStages; s++ {
				sumB += dpB[s] * k[s][i]
				sumE += dpE[s] * k[s][i]
			}
			yNew[i] = y[i] + h*sumB
			sc := cfg.AbsoluteTolerance +
				cfg.RelativeTolerance*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
			e := h * sumE / sc
			errNorm += e * e
		}
		errNorm = math.Sqrt(errNorm / float64(n))

		if errNorm <= 1 {
			t += h
			copy(y, yNew)
			copy(k[0], k[dpStages-1]) // FSAL
			stat.StepCount++
			stat.LastStepSize = h
			stat.CurrentTime = t
		} else {
			stat.RejectedCount++
		}

		fac := dpSafety * math.Pow(errNorm, -1./float64(dpOrder))
		if math.IsNaN(fac) {
			// a NaN error estimate means the RHS blew up; retreat hard
			fac = dpMinFactor
		}
		if fac < dpMinFactor {
			fac = dpMinFactor
		} else if fac > dpMaxFactor {
			fac = dpMaxFactor
		}
		h *= fac
		if cfg.MaxStepSize > 0 && h > cfg.MaxStepSize {
			h = cfg.MaxStepSize
		}
		if h < cfg.MinStepSize && t < tEnd {
			stat.CurrentTime = t
			return stat, ErrStepUnderflow
		}
	}
	return stat, nil
}
