package problems

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// lossClamp keeps predicted probabilities inside (0, 1) so the log-loss
// never evaluates log(0).
const lossClamp = 1e-7

// LogisticRegression is a decomposable binary classification objective: one
// sub-function per training point,
//
//	f_i(w, b) = −[y_i·ln p_i + (1−y_i)·ln(1−p_i)] + λ/(2n)·‖w‖²
//	p_i       = σ(x_i·w + b)
//
// with labels y in {0, 1}. The parameter vector has one entry per feature
// plus a trailing intercept b; the L2 term is spread across the n
// sub-functions and never penalizes the intercept.
type LogisticRegression struct {
	x      *mat.Dense
	y      []float64
	lambda float64
}

// NewLogisticRegression creates a logistic regression objective over the
// given design matrix (one point per row), binary labels, and L2 strength
// lambda (0 for unregularized). Returns ErrObservationMismatch if the row
// count and label count differ.
func NewLogisticRegression(x *mat.Dense, y []float64, lambda float64) (*LogisticRegression, error) {
	if r, _ := x.Dims(); r != len(y) {
		return nil, ErrObservationMismatch
	}
	return &LogisticRegression{x: x, y: y, lambda: lambda}, nil
}

// NumFunctions returns the number of training points.
func (l *LogisticRegression) NumFunctions() int { return len(l.y) }

// Evaluate returns the clamped log-loss of point i plus its share of the L2
// penalty.
func (l *LogisticRegression) Evaluate(params []float64, i int) float64 {
	w := params[:len(params)-1]
	p := sigmoid(l.score(params, l.x.RawRowView(i)))
	p = math.Max(lossClamp, math.Min(p, 1-lossClamp))

	loss := -(l.y[i]*math.Log(p) + (1-l.y[i])*math.Log(1-p))
	if l.lambda != 0 {
		loss += l.lambda / (2 * float64(len(l.y))) * floats.Dot(w, w)
	}
	return loss
}

// Gradient returns (p_i − y_i)·[x_i, 1] plus the per-point L2 term on the
// feature weights.
func (l *LogisticRegression) Gradient(params []float64, i int) []float64 {
	row := l.x.RawRowView(i)
	e := sigmoid(l.score(params, row)) - l.y[i]

	grad := make([]float64, len(params))
	for j, v := range row {
		grad[j] = e * v
	}
	grad[len(params)-1] = e

	if l.lambda != 0 {
		reg := l.lambda / float64(len(l.y))
		for j := 0; j < len(params)-1; j++ {
			grad[j] += reg * params[j]
		}
	}
	return grad
}

// Predict returns the predicted label (0 or 1) for a single point.
func (l *LogisticRegression) Predict(params, point []float64) float64 {
	if l.score(params, point) >= 0 {
		return 1
	}
	return 0
}

// Accuracy returns the fraction of points in x whose predicted label matches
// y, under the given parameters. The points need not be the training set.
func (l *LogisticRegression) Accuracy(params []float64, x *mat.Dense, y []float64) float64 {
	correct := 0
	for i := range y {
		if l.Predict(params, x.RawRowView(i)) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y))
}

// score is the linear decision value x·w + b.
func (l *LogisticRegression) score(params, point []float64) float64 {
	d := len(params) - 1
	return floats.Dot(point, params[:d]) + params[d]
}

func sigmoid(s float64) float64 {
	return 1 / (1 + math.Exp(-s))
}
