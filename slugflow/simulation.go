package slugflow

import (
	"fmt"

	"github.com/notargets/slugsim/ode"
	"github.com/notargets/slugsim/utils"
)

// Simulation advances one fixed bubble population across a requested time
// window. Each Run owns its own state vector and trajectory; nothing is
// shared between concurrent simulations.
type Simulation struct {
	Params       PhysicalParams
	FinalTime    float64
	TimeSamples  int
	Solver       ode.Integrator // defaults to Dormand-Prince on the model RHS
	SolverConfig ode.Config
}

// NewSimulation builds a simulation over the reference window of 100 samples
// on [0, 10] seconds.
func NewSimulation(p PhysicalParams) *Simulation {
	return &Simulation{
		Params:       p,
		FinalTime:    10,
		TimeSamples:  100,
		SolverConfig: ode.DefaultConfig(),
	}
}

// Run integrates the bubble system from its initial state over the sample
// window and returns the full trajectory.
func (s *Simulation) Run(verbose bool) (tr Trajectory, err error) {
	if s.TimeSamples < 1 {
		return tr, &ConfigurationError{
			Field:  "timeSamples",
			Value:  float64(s.TimeSamples),
			Reason: "at least one sample is required",
		}
	}
	if !(s.FinalTime > 0) {
		return tr, &ConfigurationError{
			Field:  "finalTime",
			Value:  s.FinalTime,
			Reason: "must be strictly positive",
		}
	}
	U, err := InitialState(s.Params)
	if err != nil {
		return tr, err
	}
	solver := s.Solver
	if solver == nil {
		solver = ode.NewDormandPrince(RHS(s.Params))
	}
	if verbose {
		fmt.Printf("Transient Slug Flow in a Horizontal Pipe\n")
		fmt.Printf("Solver: %s\n", solver.Info().Name)
		s.Params.Print()
		fmt.Printf("%8.4f s\t\t= Final Time, %d samples\n\n", s.FinalTime, s.TimeSamples)
	}
	times := utils.NewVector(s.TimeSamples).Linspace(0, s.FinalTime).DataP()
	states, err := Integrate(U, times, solver, s.SolverConfig)
	tr = Trajectory{Times: times, States: states}
	if err != nil {
		return tr, err
	}
	if verbose {
		f, err := tr.Reshape()
		if err != nil {
			return tr, err
		}
		last := s.TimeSamples - 1
		fmt.Printf("Time = %8.4f, Pmin = %8.1f, Pmax = %8.1f, Xmax = %8.4f\n",
			times[last], f.Pressures.Row(last).Min(), f.Pressures.Row(last).Max(),
			f.Positions.Row(last).Max())
	}
	return tr, nil
}

// Integrate advances y0 across the requested sample times and returns one row
// per time, in request order. The first time point is the initial time; its
// row is the initial state. The sequence must be strictly increasing. Solver
// failures surface as an IntegrationError carrying the furthest time reached,
// with the rows up to that point filled in.
func Integrate(y0 utils.Vector, times []float64, solver ode.Integrator, cfg ode.Config) (R utils.Matrix, err error) {
	var (
		nv = y0.Len()
		nt = len(times)
	)
	if nt < 1 {
		return R, &ConfigurationError{
			Field:  "timePoints",
			Value:  0,
			Reason: "at least one time point is required",
		}
	}
	for k := 1; k < nt; k++ {
		if times[k] <= times[k-1] {
			return R, &ConfigurationError{
				Field:  "timePoints",
				Value:  times[k],
				Reason: "sequence must be strictly increasing",
			}
		}
	}
	R = utils.NewMatrix(nt, nv)
	y := y0.Copy().DataP()
	R.SetRow(0, y)
	for k := 1; k < nt; k++ {
		stat, err := solver.Integrate(times[k-1], times[k], y, cfg)
		if err != nil {
			return R, &IntegrationError{ReachedTime: stat.CurrentTime, Err: err}
		}
		R.SetRow(k, y)
	}
	return R, nil
}
