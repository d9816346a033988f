package descent

import (
	"fmt"
	"math"
)

// DefaultEpsilon seeds the squared-gradient accumulator and keeps the first
// update's denominator away from zero.
const DefaultEpsilon = 1e-8

var _ UpdateRule = (*AdaGradUpdate)(nil)

// AdaGradUpdate is the AdaGrad update rule (Duchi, Hazan and Singer, 2011).
// It keeps a per-coordinate running sum of squared gradients and divides each
// step by that sum's square root, so frequently-updated coordinates take
// smaller steps and sparse coordinates take larger ones.
//
// Update rule, strictly element-wise:
//
//	acc[i] += g[i]²
//	w[i]   -= stepSize · g[i] / √acc[i]
//
// The accumulator is seeded with epsilon and grows before the division, so
// the denominator is always at least √epsilon.
type AdaGradUpdate struct {
	epsilon float64
	acc     []float64
}

// NewAdaGradUpdate creates an AdaGrad rule. An epsilon of 0 is replaced with
// [DefaultEpsilon]. Negative or otherwise degenerate epsilon values are not
// validated; they produce degenerate numerics, not errors.
func NewAdaGradUpdate(epsilon float64) *AdaGradUpdate {
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}
	return &AdaGradUpdate{epsilon: epsilon}
}

// Initialize allocates the accumulator for a parameter vector of the given
// dimension, every entry seeded with epsilon. Calling it again discards all
// accumulated history, which is how a new run starts fresh.
func (a *AdaGradUpdate) Initialize(dim int) {
	a.acc = make([]float64, dim)
	for i := range a.acc {
		a.acc[i] = a.epsilon
	}
}

// Update applies one AdaGrad step to params in place. A zero gradient
// component leaves both the accumulator and the parameter untouched.
//
// Update panics if Initialize has not been called with the dimension of
// params: that is a driver or caller bug, not a data condition.
func (a *AdaGradUpdate) Update(params []float64, stepSize float64, grad []float64) {
	if len(a.acc) != len(params) {
		panic(fmt.Sprintf("descent: AdaGradUpdate initialized for dimension %d, got %d", len(a.acc), len(params)))
	}
	for i, g := range grad {
		if g == 0 {
			continue
		}
		a.acc[i] += g * g
		params[i] -= stepSize * g / math.Sqrt(a.acc[i])
	}
}

// Epsilon returns the accumulator seed value.
func (a *AdaGradUpdate) Epsilon() float64 { return a.epsilon }

// SetEpsilon changes the accumulator seed. It takes effect at the next
// Initialize; the current run's accumulator is left alone.
func (a *AdaGradUpdate) SetEpsilon(epsilon float64) { a.epsilon = epsilon }

// AdaGradConfig configures an [AdaGrad] optimizer.
// Zero values are replaced with sensible defaults.
type AdaGradConfig struct {
	StepSize float64 // default 0.01
	Epsilon  float64 // default 1e-8

	// MaxIterations caps the number of steps (single-sample updates, not
	// passes). Default 100000; negative means unbounded. After construction,
	// SetMaxIterations(0) also means unbounded.
	MaxIterations int

	Tolerance float64 // default 1e-5

	// DisableShuffle visits sub-functions in fixed cyclic order instead of
	// drawing a fresh permutation every pass.
	DisableShuffle bool

	// Seed for the shuffle permutations. Default: derived from the clock.
	Seed int64
}

// AdaGrad couples the [SGD] driver with an [AdaGradUpdate] rule behind a
// single optimizer surface.
type AdaGrad struct {
	update *AdaGradUpdate
	sgd    *SGD
}

// NewAdaGrad creates an AdaGrad optimizer with the given config.
// Zero-valued fields receive defaults: StepSize=0.01, Epsilon=1e-8,
// MaxIterations=100000, Tolerance=1e-5, shuffling on.
func NewAdaGrad(cfg AdaGradConfig) *AdaGrad {
	update := NewAdaGradUpdate(cfg.Epsilon)
	return &AdaGrad{
		update: update,
		sgd: NewSGD(update, Config{
			StepSize:       cfg.StepSize,
			MaxIterations:  cfg.MaxIterations,
			Tolerance:      cfg.Tolerance,
			DisableShuffle: cfg.DisableShuffle,
			Seed:           cfg.Seed,
		}),
	}
}

// Optimize minimizes f starting from params, mutating params in place, and
// returns the mean loss over all sub-functions at the final point.
func (a *AdaGrad) Optimize(f Objective, params []float64) (float64, error) {
	return a.sgd.Optimize(f, params)
}

// Epsilon returns the accumulator seed value.
func (a *AdaGrad) Epsilon() float64 { return a.update.Epsilon() }

// SetEpsilon changes the accumulator seed for subsequent runs.
func (a *AdaGrad) SetEpsilon(epsilon float64) { a.update.SetEpsilon(epsilon) }

// StepSize returns the step size.
func (a *AdaGrad) StepSize() float64 { return a.sgd.StepSize() }

// SetStepSize changes the step size for subsequent runs.
func (a *AdaGrad) SetStepSize(stepSize float64) { a.sgd.SetStepSize(stepSize) }

// MaxIterations returns the step budget (0 means unbounded).
func (a *AdaGrad) MaxIterations() int { return a.sgd.MaxIterations() }

// SetMaxIterations changes the step budget for subsequent runs.
// 0 means unbounded.
func (a *AdaGrad) SetMaxIterations(n int) { a.sgd.SetMaxIterations(n) }

// Tolerance returns the convergence tolerance.
func (a *AdaGrad) Tolerance() float64 { return a.sgd.Tolerance() }

// SetTolerance changes the convergence tolerance for subsequent runs.
func (a *AdaGrad) SetTolerance(tol float64) { a.sgd.SetTolerance(tol) }

// Shuffle reports whether sub-functions are visited in shuffled order.
func (a *AdaGrad) Shuffle() bool { return a.sgd.Shuffle() }

// SetShuffle enables or disables shuffling for subsequent runs.
func (a *AdaGrad) SetShuffle(shuffle bool) { a.sgd.SetShuffle(shuffle) }

// Steps returns the number of steps taken by the most recent run.
func (a *AdaGrad) Steps() int { return a.sgd.Steps() }

// Converged reports whether the most recent run stopped on tolerance rather
// than on the iteration budget.
func (a *AdaGrad) Converged() bool { return a.sgd.Converged() }
