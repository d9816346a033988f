package descent

// UpdateRule converts a raw per-sample gradient into an in-place parameter
// update. The [SGD] driver owns the loop; the rule owns whatever history it
// needs to scale the step.
//
// Initialize is called once at the start of every run with the parameter
// dimension and must reset any accumulated history. Update is then called
// once per step and must mutate params element-wise.
type UpdateRule interface {
	Initialize(dim int)
	Update(params []float64, stepSize float64, grad []float64)
}

var _ UpdateRule = VanillaUpdate{}

// VanillaUpdate is the plain stochastic gradient descent rule with no
// history: params[i] -= stepSize * grad[i].
type VanillaUpdate struct{}

// Initialize is a no-op; the vanilla rule keeps no state.
func (VanillaUpdate) Initialize(dim int) {}

// Update applies one unscaled gradient step in place.
func (VanillaUpdate) Update(params []float64, stepSize float64, grad []float64) {
	for i, g := range grad {
		params[i] -= stepSize * g
	}
}
