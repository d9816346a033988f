package descent

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Defaults applied by NewSGD for zero-valued Config fields.
const (
	DefaultStepSize      = 0.01
	DefaultMaxIterations = 100000
	DefaultTolerance     = 1e-5
)

// Config configures the SGD driver.
// Zero values are replaced with sensible defaults.
type Config struct {
	StepSize float64 // default 0.01

	// MaxIterations caps the number of steps, where one step processes one
	// sub-function (one step is not one pass over the data). Default 100000;
	// negative means unbounded. After construction, SetMaxIterations(0) also
	// means unbounded.
	MaxIterations int

	// Tolerance is the minimum pass-over-pass change in mean sample loss
	// below which the run stops. Default 1e-5. An exact tie with the
	// tolerance counts as converged.
	Tolerance float64

	// DisableShuffle visits sub-functions in fixed cyclic order
	// 0, 1, …, n-1, 0, … instead of drawing a fresh random permutation at
	// the start of every pass.
	DisableShuffle bool

	// Seed for the shuffle permutations, so shuffled runs are reproducible.
	// Default: derived from the clock.
	Seed int64
}

// SGD drives stochastic gradient descent over a decomposable objective,
// delegating each parameter update to an [UpdateRule].
//
// SGD is not safe for concurrent use: the parameter vector and the rule's
// history are mutated in place by the goroutine running Optimize, and the
// configuration setters must not be called while a run is in progress.
type SGD struct {
	rule          UpdateRule
	stepSize      float64
	maxIterations int // 0 = unbounded
	tolerance     float64
	shuffle       bool
	rng           *rand.Rand

	// Diagnostics from the most recent run.
	steps     int
	converged bool
}

// NewSGD creates a driver around the given update rule.
// Zero-valued config fields receive defaults: StepSize=0.01,
// MaxIterations=100000, Tolerance=1e-5, shuffling on.
func NewSGD(rule UpdateRule, cfg Config) *SGD {
	s := &SGD{
		rule:          rule,
		stepSize:      cfg.StepSize,
		maxIterations: cfg.MaxIterations,
		tolerance:     cfg.Tolerance,
		shuffle:       !cfg.DisableShuffle,
	}
	if s.stepSize == 0 {
		s.stepSize = DefaultStepSize
	}
	if s.maxIterations == 0 {
		s.maxIterations = DefaultMaxIterations
	} else if s.maxIterations < 0 {
		s.maxIterations = 0
	}
	if s.tolerance == 0 {
		s.tolerance = DefaultTolerance
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Optimize minimizes f starting from params, mutating params in place, and
// returns the mean loss over all sub-functions at the final point.
//
// Each step samples one sub-function (a fresh permutation per pass when
// shuffling, cyclic order otherwise), evaluates its loss for the convergence
// signal, and applies its gradient through the update rule. At the end of
// every pass the mean sample loss is compared with the previous pass's mean;
// the run stops when the absolute change is within Tolerance, or when the
// step budget runs out, whichever comes first.
//
// Returns ErrEmptyObjective if f has no sub-functions. Degenerate numerics
// (NaN or Inf losses and gradients) are not detected; they flow into the
// returned value for the caller to inspect.
func (s *SGD) Optimize(f Objective, params []float64) (float64, error) {
	n := f.NumFunctions()
	if n == 0 {
		return 0, ErrEmptyObjective
	}

	s.rule.Initialize(len(params))
	s.steps = 0
	s.converged = false

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	lastAvg := math.Inf(1)
	for {
		if s.shuffle {
			s.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		var passSum float64
		for _, i := range order {
			passSum += f.Evaluate(params, i)
			grad := f.Gradient(params, i)
			s.rule.Update(params, s.stepSize, grad)

			s.steps++
			if s.maxIterations > 0 && s.steps >= s.maxIterations {
				return meanLoss(f, params, n), nil
			}
		}

		avg := passSum / float64(n)
		if math.Abs(avg-lastAvg) <= s.tolerance {
			s.converged = true
			return meanLoss(f, params, n), nil
		}
		lastAvg = avg
	}
}

// meanLoss evaluates every sub-function at params and returns the mean.
func meanLoss(f Objective, params []float64, n int) float64 {
	losses := make([]float64, n)
	for i := range losses {
		losses[i] = f.Evaluate(params, i)
	}
	return floats.Sum(losses) / float64(n)
}

// StepSize returns the step size.
func (s *SGD) StepSize() float64 { return s.stepSize }

// SetStepSize changes the step size for subsequent runs.
func (s *SGD) SetStepSize(stepSize float64) { s.stepSize = stepSize }

// MaxIterations returns the step budget (0 means unbounded).
func (s *SGD) MaxIterations() int { return s.maxIterations }

// SetMaxIterations changes the step budget for subsequent runs.
// 0 means unbounded: the run stops only on tolerance.
func (s *SGD) SetMaxIterations(n int) { s.maxIterations = n }

// Tolerance returns the convergence tolerance.
func (s *SGD) Tolerance() float64 { return s.tolerance }

// SetTolerance changes the convergence tolerance for subsequent runs.
func (s *SGD) SetTolerance(tol float64) { s.tolerance = tol }

// Shuffle reports whether sub-functions are visited in shuffled order.
func (s *SGD) Shuffle() bool { return s.shuffle }

// SetShuffle enables or disables shuffling for subsequent runs.
func (s *SGD) SetShuffle(shuffle bool) { s.shuffle = shuffle }

// Steps returns the number of steps taken by the most recent run.
func (s *SGD) Steps() int { return s.steps }

// Converged reports whether the most recent run stopped because the
// pass-over-pass loss change fell within the tolerance, as opposed to
// exhausting the iteration budget.
func (s *SGD) Converged() bool { return s.converged }
