/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/slugsim/InputParameters"
	"github.com/notargets/slugsim/ode"
	"github.com/notargets/slugsim/report"
	"github.com/notargets/slugsim/slugflow"
)

// RunOptions collects the run command inputs
type RunOptions struct {
	ParamFile string
	CSVFile   string
	PlotDir   string
	Quiet     bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a transient slug flow simulation",
	Long: `
Integrates the coupled bubble system from the configured initial layout over
the requested time window, then optionally writes the trajectory as CSV and
renders the standard charts.

slugsim run -I params.yaml --csv out.csv --plotDir plots`,
	Run: func(cmd *cobra.Command, args []string) {
		ro := &RunOptions{}
		ro.ParamFile, _ = cmd.Flags().GetString("paramFile")
		ro.CSVFile, _ = cmd.Flags().GetString("csv")
		ro.PlotDir, _ = cmd.Flags().GetString("plotDir")
		ro.Quiet, _ = cmd.Flags().GetBool("quiet")
		sp := processInput(ro)
		if cmd.Flags().Changed("finalTime") {
			sp.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		if cmd.Flags().Changed("samples") {
			sp.TimeSamples, _ = cmd.Flags().GetInt("samples")
		}
		if cmd.Flags().Changed("bubbles") {
			sp.BubbleCount, _ = cmd.Flags().GetInt("bubbles")
		}
		if err := RunSim(ro, sp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("paramFile", "I", "", "simulation parameters file in YAML format")
	RunCmd.Flags().String("csv", "", "write the trajectory to this CSV file")
	RunCmd.Flags().String("plotDir", "", "render the standard charts into this directory")
	RunCmd.Flags().Float64("finalTime", 10, "target end time for the simulation")
	RunCmd.Flags().Int("samples", 100, "number of output time samples")
	RunCmd.Flags().IntP("bubbles", "n", 5, "number of bubbles tracked along the pipe")
	RunCmd.Flags().BoolP("quiet", "q", false, "suppress the run banner and progress output")
}

func processInput(ro *RunOptions) (sp *InputParameters.SimParameters) {
	sp = InputParameters.DefaultParameters()
	if len(ro.ParamFile) == 0 {
		return
	}
	data, err := os.ReadFile(ro.ParamFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Reference Case"
PipeDiameter: 0.05
PipeLength: 10.
OutletPressure: 101325.
LiquidFlowRate: 0.0005
GasFlowRate: 0.0001
BubbleCount: 5
FinalTime: 10.
TimeSamples: 100
########################################
`
		fmt.Printf("example parameters file:%s", exampleFile)
		os.Exit(1)
	}
	if err = sp.Parse(data); err != nil {
		fmt.Printf("error parsing %s: %s\n", ro.ParamFile, err.Error())
		os.Exit(1)
	}
	return
}

// RunSim maps the file parameters onto the model, runs the integration and
// writes the requested outputs.
func RunSim(ro *RunOptions, sp *InputParameters.SimParameters) error {
	if !ro.Quiet {
		sp.Print()
	}
	p, err := slugflow.NewPhysicalParams(slugflow.Config{
		PipeDiameter:       sp.PipeDiameter,
		PipeLength:         sp.PipeLength,
		Temperature:        sp.Temperature,
		OutletPressure:     sp.OutletPressure,
		LiquidDensity:      sp.LiquidDensity,
		GasDensity:         sp.GasDensity,
		LiquidViscosity:    sp.LiquidViscosity,
		GasViscosity:       sp.GasViscosity,
		SurfaceTension:     sp.SurfaceTension,
		LiquidFlowRate:     sp.LiquidFlowRate,
		GasFlowRate:        sp.GasFlowRate,
		BubbleCount:        sp.BubbleCount,
		FormationFrequency: sp.FormationFrequency,
		FrictionFactor:     sp.FrictionFactor,
	})
	if err != nil {
		return err
	}
	sim := slugflow.NewSimulation(p)
	if sp.FinalTime > 0 {
		sim.FinalTime = sp.FinalTime
	}
	if sp.TimeSamples > 0 {
		sim.TimeSamples = sp.TimeSamples
	}
	cfg := ode.DefaultConfig()
	if sp.AbsTolerance > 0 {
		cfg.AbsoluteTolerance = sp.AbsTolerance
	}
	if sp.RelTolerance > 0 {
		cfg.RelativeTolerance = sp.RelTolerance
	}
	if sp.MaxSteps > 0 {
		cfg.MaxStepCount = sp.MaxSteps
	}
	sim.SolverConfig = cfg

	tr, err := sim.Run(!ro.Quiet)
	if err != nil {
		return err
	}
	if len(ro.CSVFile) != 0 {
		if err = report.SaveCSV(ro.CSVFile, tr); err != nil {
			return err
		}
		if !ro.Quiet {
			fmt.Printf("wrote %s\n", ro.CSVFile)
		}
	}
	if len(ro.PlotDir) != 0 {
		if err = os.MkdirAll(ro.PlotDir, 0o755); err != nil {
			return err
		}
		if err = report.SaveAll(ro.PlotDir, tr, p.PipeLength); err != nil {
			return err
		}
		if !ro.Quiet {
			fmt.Printf("wrote charts to %s\n", ro.PlotDir)
		}
	}
	return nil
}
