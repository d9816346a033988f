package descent

import "errors"

// Sentinel errors for the descent package.
// Use errors.Is to check: errors.Is(err, descent.ErrEmptyObjective)
var (
	// ErrEmptyObjective is returned when the objective reports zero
	// sub-functions. There is nothing to sample, so the run never starts.
	ErrEmptyObjective = errors.New("descent: objective has no sub-functions")
)
