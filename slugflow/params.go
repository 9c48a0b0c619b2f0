package slugflow

import (
	"fmt"
	"math"
)

// Config is the raw input surface of one simulation run: pipe geometry, fluid
// properties and flow rates as they would appear in a parameter file. All
// values are SI.
type Config struct {
	PipeDiameter   float64 // m
	PipeLength     float64 // m
	Temperature    float64 // K
	OutletPressure float64 // Pa, downstream boundary reference

	LiquidDensity   float64 // kg/m^3
	GasDensity      float64 // kg/m^3
	LiquidViscosity float64 // Pa.s
	GasViscosity    float64 // Pa.s
	SurfaceTension  float64 // N/m

	LiquidFlowRate float64 // m^3/s
	GasFlowRate    float64 // m^3/s

	BubbleCount        int     // fixed for the whole run
	FormationFrequency float64 // 1/s
	FrictionFactor     float64
}

// DefaultConfig is the reference case: a 10 m air-water line at atmospheric
// outlet pressure with five bubbles.
func DefaultConfig() Config {
	return Config{
		PipeDiameter:       0.05,
		PipeLength:         10,
		Temperature:        293.15,
		OutletPressure:     101325,
		LiquidDensity:      1000,
		GasDensity:         1.2,
		LiquidViscosity:    1.e-3,
		GasViscosity:       1.8e-5,
		SurfaceTension:     0.072,
		LiquidFlowRate:     0.0005,
		GasFlowRate:        0.0001,
		BubbleCount:        5,
		FormationFrequency: 1,
		FrictionFactor:     0.02,
	}
}

// PhysicalParams is the immutable parameter set shared by the state
// initializer and the derivative function. It is computed once before the
// integration starts and never mutated afterwards.
type PhysicalParams struct {
	Config
	Area float64 // m^2, pi d^2 / 4
	JL   float64 // m/s, liquid superficial velocity
	JG   float64 // m/s, gas superficial velocity
	Umix float64 // m/s, JL + JG
}

func NewPhysicalParams(cfg Config) (p PhysicalParams, err error) {
	checks := []struct {
		field string
		val   float64
	}{
		{"pipeDiameter", cfg.PipeDiameter},
		{"pipeLength", cfg.PipeLength},
		{"temperature", cfg.Temperature},
		{"outletPressure", cfg.OutletPressure},
		{"liquidDensity", cfg.LiquidDensity},
		{"gasDensity", cfg.GasDensity},
		{"liquidViscosity", cfg.LiquidViscosity},
		{"gasViscosity", cfg.GasViscosity},
		{"surfaceTension", cfg.SurfaceTension},
		{"liquidFlowRate", cfg.LiquidFlowRate},
		{"gasFlowRate", cfg.GasFlowRate},
		{"formationFrequency", cfg.FormationFrequency},
		{"frictionFactor", cfg.FrictionFactor},
	}
	for _, c := range checks {
		if !(c.val > 0) {
			return p, &ConfigurationError{
				Field:  c.field,
				Value:  c.val,
				Reason: "must be strictly positive",
			}
		}
	}
	if cfg.BubbleCount < 1 {
		return p, &ConfigurationError{
			Field:  "bubbleCount",
			Value:  float64(cfg.BubbleCount),
			Reason: "at least one bubble is required",
		}
	}
	p.Config = cfg
	p.Area = math.Pi * cfg.PipeDiameter * cfg.PipeDiameter / 4
	p.JL = cfg.LiquidFlowRate / p.Area
	p.JG = cfg.GasFlowRate / p.Area
	p.Umix = p.JL + p.JG
	return p, nil
}

func (p PhysicalParams) Print() {
	fmt.Printf("%8.4f m\t\t= Pipe Diameter\n", p.PipeDiameter)
	fmt.Printf("%8.4f m\t\t= Pipe Length\n", p.PipeLength)
	fmt.Printf("%8.6f m2\t= Cross Section Area\n", p.Area)
	fmt.Printf("%8.1f Pa\t\t= Outlet Pressure\n", p.OutletPressure)
	fmt.Printf("%8.4f m/s\t= Liquid Superficial Velocity\n", p.JL)
	fmt.Printf("%8.4f m/s\t= Gas Superficial Velocity\n", p.JG)
	fmt.Printf("%8.4f m/s\t= Mixture Velocity\n", p.Umix)
	fmt.Printf("[%d]\t\t\t= Bubble Count\n", p.BubbleCount)
}
