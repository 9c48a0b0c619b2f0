package slugflow

import "fmt"

// ConfigurationError reports an invalid physical parameter set. It is raised
// at construction time, before any integration starts, and is always fatal to
// the run.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slugflow: configuration: %s = %g, %s", e.Field, e.Value, e.Reason)
}

// IntegrationError reports a failure of the underlying solver, carrying the
// furthest time point successfully reached. The simulation never retries on
// its own; relaxing the tolerances or the step budget is a caller decision.
type IntegrationError struct {
	ReachedTime float64
	Err         error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("slugflow: integration failed, reached t = %g: %v", e.ReachedTime, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

// ShapeInvariantError reports a trajectory whose column count is not 4N. It
// signals a contract violation between the derivative function and the
// integration driver, not a user-facing condition.
type ShapeInvariantError struct {
	Rows, Cols int
}

func (e *ShapeInvariantError) Error() string {
	return fmt.Sprintf("slugflow: trajectory shape [%d x %d]: column count must be a multiple of 4",
		e.Rows, e.Cols)
}
