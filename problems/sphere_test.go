package problems

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSphereNumFunctions(t *testing.T) {
	require.Equal(t, 3, NewSphere(3).NumFunctions())
}

func TestSphereEvaluate(t *testing.T) {
	f := NewSphere(3)
	params := []float64{1, -2, 0.5}

	require.Equal(t, 1.0, f.Evaluate(params, 0))
	require.Equal(t, 4.0, f.Evaluate(params, 1))
	require.Equal(t, 0.25, f.Evaluate(params, 2))
}

func TestSphereGradient(t *testing.T) {
	// Sub-function i only touches coordinate i.
	f := NewSphere(3)
	params := []float64{1, -2, 0.5}

	grad := f.Gradient(params, 1)
	require.Equal(t, []float64{0, -4, 0}, grad)
}

func TestSphereGradientMatchesNumerical(t *testing.T) {
	f := NewSphere(3)
	params := []float64{0.3, -1.7, 2.2}

	for i := 0; i < f.NumFunctions(); i++ {
		got := f.Gradient(params, i)
		want := numericalGradient(f, params, i)
		for j := range got {
			require.InDelta(t, want[j], got[j], 1e-6, "sub-function %d, coordinate %d", i, j)
		}
	}
}

func TestSphereInitialPoint(t *testing.T) {
	require.Equal(t, []float64{1, 1, 1}, NewSphere(3).InitialPoint())
}
