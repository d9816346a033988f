package descent

// Objective is a decomposable objective function: the mean of NumFunctions
// independently evaluable sub-functions. For a data-dependent loss,
// NumFunctions is the dataset size and Evaluate(params, 3) is the loss
// contribution of the fourth point.
//
// The optimizer only ever evaluates one sub-function per step; it never asks
// for the full objective except when computing the final return value.
type Objective interface {
	// NumFunctions returns the number of sub-functions n. Indices passed to
	// Evaluate and Gradient are in [0, n).
	NumFunctions() int

	// Evaluate returns the loss contribution of sub-function i at params.
	Evaluate(params []float64, i int) float64

	// Gradient returns the gradient of sub-function i at params. The returned
	// slice must have the same length as params and is owned by the caller;
	// implementations should allocate it fresh rather than reuse a buffer.
	Gradient(params []float64, i int) []float64
}
