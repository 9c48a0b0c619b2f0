// Package report renders simulation trajectories for human consumption: CSV
// export and chart images. It is a consumer of the slugflow core, never a
// dependency of it.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/slugsim/slugflow"
)

// WriteCSV writes the trajectory as one row per time sample with columns
//
//	time, x0..x{N-1}, len0..len{N-1}, p0..p{N-1}, v0..v{N-1}
func WriteCSV(w io.Writer, tr slugflow.Trajectory) error {
	f, err := tr.Reshape()
	if err != nil {
		return err
	}
	var (
		_, n = f.Positions.Dims()
		cw   = csv.NewWriter(w)
	)
	header := []string{"time"}
	for _, q := range []string{"x", "len", "p", "v"} {
		for i := 0; i < n; i++ {
			header = append(header, fmt.Sprintf("%s%d", q, i))
		}
	}
	if err = cw.Write(header); err != nil {
		return err
	}
	row := make([]string, 0, 1+4*n)
	for k, t := range tr.Times {
		row = row[:0]
		row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
		for _, m := range []interface{ At(i, j int) float64 }{
			f.Positions, f.Lengths, f.Pressures, f.Velocities,
		} {
			for i := 0; i < n; i++ {
				row = append(row, strconv.FormatFloat(m.At(k, i), 'g', -1, 64))
			}
		}
		if err = cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the trajectory CSV to path, creating or truncating it.
func SaveCSV(path string, tr slugflow.Trajectory) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: cannot create %s: %w", path, err)
	}
	defer fp.Close()
	return WriteCSV(fp, tr)
}
