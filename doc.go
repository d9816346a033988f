// Package descent implements stochastic gradient descent with pluggable
// per-coordinate update rules, including AdaGrad adaptive scaling.
//
// descent minimizes decomposable objectives: functions expressible as the
// mean of many independently evaluable sub-functions, such as per-data-point
// losses in empirical risk minimization. The caller supplies an [Objective]
// and an initial parameter vector; the optimizer mutates the vector in place
// and returns the mean loss at the final point.
//
// Basic usage:
//
//	opt := descent.NewAdaGrad(descent.AdaGradConfig{})
//	loss, err := opt.Optimize(objective, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The driver ([SGD]) and the update rule ([UpdateRule]) are separate: AdaGrad
// is one rule, and others can be substituted without touching the loop. The
// descent/problems subpackage provides ready-made objectives for testing and
// benchmarking.
package descent
