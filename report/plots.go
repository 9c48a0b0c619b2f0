package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/slugsim/slugflow"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PressureVsTime charts each bubble's internal pressure over the run.
func PressureVsTime(tr slugflow.Trajectory) (*plot.Plot, error) {
	f, err := tr.Reshape()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Bubble Pressure vs Time"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "P (Pa)"
	_, n := f.Pressures.Dims()
	for i := 0; i < n; i++ {
		pts := columnXYs(tr.Times, f.Pressures, i)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("bubble %d", i), line)
	}
	p.Legend.Top = true
	return p, nil
}

// PressureVsPosition charts the final snapshot of pressure along the pipe.
func PressureVsPosition(tr slugflow.Trajectory) (*plot.Plot, error) {
	f, err := tr.Reshape()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Final Pressure vs Position"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "P (Pa)"
	var (
		nt, n = f.Pressures.Dims()
		last  = nt - 1
		pts   = make(plotter.XYs, n)
	)
	for i := 0; i < n; i++ {
		pts[i].X = f.Positions.At(last, i)
		pts[i].Y = f.Pressures.At(last, i)
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	scatter.Color = plotutil.Color(0)
	p.Add(line, scatter)
	return p, nil
}

// LengthVsTime charts each bubble's axial extent over the run.
func LengthVsTime(tr slugflow.Trajectory) (*plot.Plot, error) {
	f, err := tr.Reshape()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Bubble Length vs Time"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "L (m)"
	_, n := f.Lengths.Dims()
	for i := 0; i < n; i++ {
		pts := columnXYs(tr.Times, f.Lengths, i)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("bubble %d", i), line)
	}
	p.Legend.Top = true
	return p, nil
}

// BubbleLayout draws a schematic of the final bubble arrangement: each gas
// pocket as a thick horizontal segment ending at its leading edge, with the
// pipe span as a thin baseline.
func BubbleLayout(tr slugflow.Trajectory, pipeLength float64) (*plot.Plot, error) {
	f, err := tr.Reshape()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Final Bubble Layout"
	p.X.Label.Text = "x (m)"
	p.Y.Min, p.Y.Max = -1, 1
	var (
		nt, n = f.Positions.Dims()
		last  = nt - 1
	)
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: pipeLength, Y: 0}})
	if err != nil {
		return nil, err
	}
	p.Add(axis)
	for i := 0; i < n; i++ {
		var (
			edge   = f.Positions.At(last, i)
			extent = f.Lengths.At(last, i)
		)
		seg, err := plotter.NewLine(plotter.XYs{
			{X: edge - extent, Y: 0},
			{X: edge, Y: 0},
		})
		if err != nil {
			return nil, err
		}
		seg.Width = vg.Points(8)
		seg.Color = plotutil.Color(i)
		p.Add(seg)
		p.Legend.Add(fmt.Sprintf("bubble %d", i), seg)
	}
	p.Legend.Top = true
	return p, nil
}

// SaveAll renders the four standard charts as PNG files under dir.
func SaveAll(dir string, tr slugflow.Trajectory, pipeLength float64) error {
	charts := []struct {
		file  string
		build func() (*plot.Plot, error)
	}{
		{"pressure_vs_time.png", func() (*plot.Plot, error) { return PressureVsTime(tr) }},
		{"pressure_vs_position.png", func() (*plot.Plot, error) { return PressureVsPosition(tr) }},
		{"length_vs_time.png", func() (*plot.Plot, error) { return LengthVsTime(tr) }},
		{"bubble_layout.png", func() (*plot.Plot, error) { return BubbleLayout(tr, pipeLength) }},
	}
	for _, c := range charts {
		p, err := c.build()
		if err != nil {
			return err
		}
		if err = p.Save(plotWidth, plotHeight, filepath.Join(dir, c.file)); err != nil {
			return fmt.Errorf("report: cannot save %s: %w", c.file, err)
		}
	}
	return nil
}

func columnXYs(times []float64, m interface{ At(i, j int) float64 }, col int) plotter.XYs {
	pts := make(plotter.XYs, len(times))
	for k, t := range times {
		pts[k].X = t
		pts[k].Y = m.At(k, col)
	}
	return pts
}
