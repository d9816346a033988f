package problems

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrObservationMismatch is returned when a design matrix and its target or
// label vector disagree on the number of observations.
var ErrObservationMismatch = errors.New("problems: design matrix rows and targets differ in count")

// LeastSquares is a decomposable linear least-squares objective: one
// sub-function per observation,
//
//	f_i(w) = ½ (x_i·w − y_i)²
//
// where x_i is row i of the design matrix. When the targets satisfy
// y = X·w* exactly, w* is the unique minimizer with objective value 0.
type LeastSquares struct {
	x *mat.Dense
	y []float64
}

// NewLeastSquares creates a least-squares objective over the given design
// matrix (one observation per row) and targets. Returns
// ErrObservationMismatch if the row count and target count differ.
func NewLeastSquares(x *mat.Dense, y []float64) (*LeastSquares, error) {
	if r, _ := x.Dims(); r != len(y) {
		return nil, ErrObservationMismatch
	}
	return &LeastSquares{x: x, y: y}, nil
}

// NumFunctions returns the number of observations.
func (l *LeastSquares) NumFunctions() int { return len(l.y) }

// Evaluate returns the squared residual of observation i, halved.
func (l *LeastSquares) Evaluate(params []float64, i int) float64 {
	r := floats.Dot(l.x.RawRowView(i), params) - l.y[i]
	return 0.5 * r * r
}

// Gradient returns the residual-scaled observation: (x_i·w − y_i) x_i.
func (l *LeastSquares) Gradient(params []float64, i int) []float64 {
	row := l.x.RawRowView(i)
	r := floats.Dot(row, params) - l.y[i]

	grad := make([]float64, len(params))
	for j, v := range row {
		grad[j] = r * v
	}
	return grad
}
