package problems

// Sphere is the decomposable sphere function: dim independent
// one-dimensional terms f_i(x) = x_i², each minimized at 0. The full
// objective is the mean of the terms, with its unique minimizer at the
// origin.
type Sphere struct {
	dim int
}

// NewSphere creates a sphere function of the given dimension, with one
// sub-function per coordinate.
func NewSphere(dim int) *Sphere {
	return &Sphere{dim: dim}
}

// NumFunctions returns the dimension: one sub-function per coordinate.
func (s *Sphere) NumFunctions() int { return s.dim }

// Evaluate returns params[i]².
func (s *Sphere) Evaluate(params []float64, i int) float64 {
	return params[i] * params[i]
}

// Gradient returns 2·params[i] on coordinate i and zero elsewhere.
func (s *Sphere) Gradient(params []float64, i int) []float64 {
	grad := make([]float64, len(params))
	grad[i] = 2 * params[i]
	return grad
}

// InitialPoint returns the conventional starting point of all ones.
func (s *Sphere) InitialPoint() []float64 {
	p := make([]float64, s.dim)
	for i := range p {
		p[i] = 1
	}
	return p
}
