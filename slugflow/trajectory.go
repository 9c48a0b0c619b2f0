package slugflow

import (
	"github.com/notargets/slugsim/utils"
)

// Trajectory is the raw integration output: one row of the flattened 4N state
// per requested time point, in request order.
type Trajectory struct {
	Times  []float64
	States utils.Matrix // [len(Times), 4N]
}

// Fields is the trajectory reshaped into per-quantity arrays, each of shape
// [len(Times), N].
type Fields struct {
	Positions  utils.Matrix
	Lengths    utils.Matrix
	Pressures  utils.Matrix
	Velocities utils.Matrix
}

// Reshape slices the [T, 4N] state history into the four [T, N] quantity
// matrices using the fixed layout offsets. The slices are copies, so calling
// Reshape repeatedly on the same trajectory yields identical results and
// never mutates the input. A column count that is not a positive multiple of
// 4 is a contract violation between the derivative function and the
// integration driver and raises a ShapeInvariantError.
func (tr Trajectory) Reshape() (f Fields, err error) {
	nr, nc := tr.States.Dims()
	if nc <= 0 || nc%4 != 0 {
		return f, &ShapeInvariantError{Rows: nr, Cols: nc}
	}
	n := nc / 4
	f = Fields{
		Positions:  tr.States.Slice(0, nr, 0, n),
		Lengths:    tr.States.Slice(0, nr, n, 2*n),
		Pressures:  tr.States.Slice(0, nr, 2*n, 3*n),
		Velocities: tr.States.Slice(0, nr, 3*n, 4*n),
	}
	return f, nil
}
