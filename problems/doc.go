// Package problems provides ready-made decomposable objectives for the
// descent optimizers.
//
// Each type satisfies the descent.Objective contract:
//
//   - [Sphere] — n independent squared coordinates, minimized at the origin.
//     The standard smoke-test function for stochastic optimizers.
//
//   - [LeastSquares] — per-row squared residuals of a linear model over a
//     gonum design matrix; a convex quadratic with a known minimizer when
//     the targets are generated exactly.
//
//   - [LogisticRegression] — per-point binary cross-entropy of a linear
//     classifier with intercept and optional L2 regularization.
//
// These exist for testing and benchmarking; real applications implement the
// contract over their own data.
package problems
