package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title              string  `yaml:"Title"`
	PipeDiameter       float64 `yaml:"PipeDiameter"`       // m
	PipeLength         float64 `yaml:"PipeLength"`         // m
	Temperature        float64 `yaml:"Temperature"`        // K
	OutletPressure     float64 `yaml:"OutletPressure"`     // Pa
	LiquidDensity      float64 `yaml:"LiquidDensity"`      // kg/m3
	GasDensity         float64 `yaml:"GasDensity"`         // kg/m3
	LiquidViscosity    float64 `yaml:"LiquidViscosity"`    // Pa.s
	GasViscosity       float64 `yaml:"GasViscosity"`       // Pa.s
	SurfaceTension     float64 `yaml:"SurfaceTension"`     // N/m
	LiquidFlowRate     float64 `yaml:"LiquidFlowRate"`     // m3/s
	GasFlowRate        float64 `yaml:"GasFlowRate"`        // m3/s
	BubbleCount        int     `yaml:"BubbleCount"`
	FormationFrequency float64 `yaml:"FormationFrequency"` // 1/s
	FrictionFactor     float64 `yaml:"FrictionFactor"`
	FinalTime          float64 `yaml:"FinalTime"`          // s
	TimeSamples        int     `yaml:"TimeSamples"`
	AbsTolerance       float64 `yaml:"AbsTolerance"`
	RelTolerance       float64 `yaml:"RelTolerance"`
	MaxSteps           int     `yaml:"MaxSteps"`
}

// DefaultParameters is the reference air-water case.
func DefaultParameters() *SimParameters {
	return &SimParameters{
		Title:              "Reference Case",
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
		FinalTime:          10,
		TimeSamples:        100,
	}
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.4f\t\t= Pipe Diameter (m)\n", sp.PipeDiameter)
	fmt.Printf("%8.4f\t\t= Pipe Length (m)\n", sp.PipeLength)
	fmt.Printf("%8.2f\t\t= Temperature (K)\n", sp.Temperature)
	fmt.Printf("%8.1f\t\t= Outlet Pressure (Pa)\n", sp.OutletPressure)
	fmt.Printf("%8.6f\t\t= Liquid Flow Rate (m3/s)\n", sp.LiquidFlowRate)
	fmt.Printf("%8.6f\t\t= Gas Flow Rate (m3/s)\n", sp.GasFlowRate)
	fmt.Printf("[%d]\t\t\t= Bubble Count\n", sp.BubbleCount)
	fmt.Printf("%8.4f\t\t= Final Time (s)\n", sp.FinalTime)
	fmt.Printf("[%d]\t\t\t= Time Samples\n", sp.TimeSamples)
}
