package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/slugsim/slugflow"
)

func referenceTrajectory(t *testing.T) (slugflow.Trajectory, slugflow.PhysicalParams) {
	t.Helper()
	p, err := slugflow.NewPhysicalParams(slugflow.DefaultConfig())
	require.NoError(t, err)
	sim := slugflow.NewSimulation(p)
	sim.TimeSamples = 10
	tr, err := sim.Run(false)
	require.NoError(t, err)
	return tr, p
}

func TestWriteCSV(t *testing.T) {
	tr, p := referenceTrajectory(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tr))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(tr.Times))

	n := p.BubbleCount
	header := records[0]
	require.Len(t, header, 1+4*n)
	assert.Equal(t, "time", header[0])
	assert.Equal(t, "x0", header[1])
	assert.Equal(t, "len0", header[1+n])
	assert.Equal(t, "p0", header[1+2*n])
	assert.Equal(t, "v0", header[1+3*n])

	// first data row starts at t = 0
	assert.Equal(t, "0", records[1][0])
	for _, rec := range records[1:] {
		assert.Len(t, rec, 1+4*n)
	}
}

func TestWriteCSVBadShape(t *testing.T) {
	tr, _ := referenceTrajectory(t)
	tr.States = tr.States.Slice(0, len(tr.Times), 0, 7)
	var buf bytes.Buffer
	err := WriteCSV(&buf, tr)
	var se *slugflow.ShapeInvariantError
	assert.ErrorAs(t, err, &se)
}

func TestSaveAll(t *testing.T) {
	tr, p := referenceTrajectory(t)
	dir := t.TempDir()
	require.NoError(t, SaveAll(dir, tr, p.PipeLength))
	for _, f := range []string{
		"pressure_vs_time.png",
		"pressure_vs_position.png",
		"length_vs_time.png",
		"bubble_layout.png",
	} {
		fi, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0))
	}
}
