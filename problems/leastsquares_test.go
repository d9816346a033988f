package problems

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLeastSquaresObservationMismatch(t *testing.T) {
	x := mat.NewDense(3, 2, nil)
	_, err := NewLeastSquares(x, []float64{1, 2})
	require.ErrorIs(t, err, ErrObservationMismatch)
}

func TestLeastSquaresEvaluate(t *testing.T) {
	// Row (1, 2) with w = (3, -1) and target 2: residual = 3-2-2 = -1,
	// loss = ½.
	x := mat.NewDense(1, 2, []float64{1, 2})
	f, err := NewLeastSquares(x, []float64{2})
	require.NoError(t, err)

	require.Equal(t, 0.5, f.Evaluate([]float64{3, -1}, 0))
}

func TestLeastSquaresZeroAtMinimizer(t *testing.T) {
	// Targets generated exactly from wTrue: every residual vanishes there.
	x := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	wTrue := []float64{0.5, -1}
	y := []float64{0.5*1 - 1*2, 0.5*3 - 1*4}

	f, err := NewLeastSquares(x, y)
	require.NoError(t, err)

	for i := 0; i < f.NumFunctions(); i++ {
		require.Equal(t, 0.0, f.Evaluate(wTrue, i))
		require.Equal(t, []float64{0, 0}, f.Gradient(wTrue, i))
	}
}

func TestLeastSquaresGradientMatchesNumerical(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, 2,
		-0.5, 1.5,
		2, -3,
	})
	f, err := NewLeastSquares(x, []float64{1, 0, -2})
	require.NoError(t, err)

	params := []float64{0.7, -0.3}
	for i := 0; i < f.NumFunctions(); i++ {
		got := f.Gradient(params, i)
		want := numericalGradient(f, params, i)
		for j := range got {
			require.InDelta(t, want[j], got[j], 1e-6, "sub-function %d, coordinate %d", i, j)
		}
	}
}
