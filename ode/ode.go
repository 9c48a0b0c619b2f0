/*
Package ode integrates systems of ordinary differential equations

	y'(t) = f(t, y(t))

through a narrow Integrator interface, so that model code supplies only a
side-effect-free right hand side function and never deals with step-size
control directly.
*/
package ode

import "errors"

// Function evaluates the right hand side f(t, y) into dydt. Implementations
// must not retain or modify y and must write every entry of dydt.
type Function func(t float64, y, dydt []float64)

// Config controls step selection and the failure budget of an Integrator.
// Zero-valued fields are replaced by the DefaultConfig values.
type Config struct {
	// InitialStepSize is the trial size of the first step. If 0, the
	// integrator picks a fraction of the requested span.
	InitialStepSize float64

	// MinStepSize aborts the integration with ErrStepUnderflow when the
	// controller would need a smaller step to meet the tolerances.
	MinStepSize float64

	// MaxStepSize caps the step growth of the controller.
	MaxStepSize float64

	AbsoluteTolerance float64
	RelativeTolerance float64

	// MaxStepCount aborts the integration with ErrStepBudget when the total
	// number of attempted steps (accepted plus rejected) exceeds it.
	MaxStepCount int
}

func DefaultConfig() Config {
	return Config{
		MinStepSize:       1.e-12,
		AbsoluteTolerance: 1.e-8,
		RelativeTolerance: 1.e-6,
		MaxStepCount:      100000,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.MinStepSize == 0 {
		cfg.MinStepSize = def.MinStepSize
	}
	if cfg.AbsoluteTolerance == 0 {
		cfg.AbsoluteTolerance = def.AbsoluteTolerance
	}
	if cfg.RelativeTolerance == 0 {
		cfg.RelativeTolerance = def.RelativeTolerance
	}
	if cfg.MaxStepCount == 0 {
		cfg.MaxStepCount = def.MaxStepCount
	}
	return cfg
}

// Statistics reports what an Integrator did during one Integrate call.
type Statistics struct {
	StepCount       int // accepted steps
	RejectedCount   int // rejected trial steps
	EvaluationCount int // right hand side evaluations

	LastStepSize float64
	CurrentTime  float64 // furthest time reached, == tEnd on success
}

// Integrator advances a state vector in place from t to tEnd.
type Integrator interface {
	Info() IntegratorInfo
	Integrate(t, tEnd float64, y []float64, cfg Config) (Statistics, error)
}

type IntegratorInfo struct {
	Name          string
	Stages, Order int
}

func (i IntegratorInfo) Info() IntegratorInfo { return i }

var (
	// ErrStepUnderflow means the controller could not meet the tolerances
	// without shrinking the step below Config.MinStepSize.
	ErrStepUnderflow = errors.New("ode: step size underflow, tolerances not attainable")

	// ErrStepBudget means Config.MaxStepCount was exhausted before tEnd.
	ErrStepBudget = errors.New("ode: step budget exhausted before end time")

	// ErrTimeSpan means tEnd precedes t.
	ErrTimeSpan = errors.New("ode: end time precedes start time")
)
