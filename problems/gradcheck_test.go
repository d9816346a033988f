package problems

// evaluator is the loss half of the objective contract, enough for a
// finite-difference gradient check.
type evaluator interface {
	Evaluate(params []float64, i int) float64
}

const diffEps = 1e-6

// numericalGradient approximates the gradient of sub-function i by central
// differences: dL/dw[j] ≈ (L(w[j]+ε) − L(w[j]−ε)) / (2ε).
func numericalGradient(f evaluator, params []float64, i int) []float64 {
	grad := make([]float64, len(params))
	for j := range params {
		pPlus := append([]float64(nil), params...)
		pPlus[j] += diffEps
		pMinus := append([]float64(nil), params...)
		pMinus[j] -= diffEps

		grad[j] = (f.Evaluate(pPlus, i) - f.Evaluate(pMinus, i)) / (2 * diffEps)
	}
	return grad
}
