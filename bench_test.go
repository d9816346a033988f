package descent

import (
	"testing"

	"github.com/descent-go/descent/problems"
)

// BenchmarkAdaGradUpdate measures a single rule application on a
// 100-dimensional vector. Target: < 500ns/op.
func BenchmarkAdaGradUpdate(b *testing.B) {
	const dim = 100
	u := NewAdaGradUpdate(1e-8)
	u.Initialize(dim)

	params := make([]float64, dim)
	grad := make([]float64, dim)
	for i := range grad {
		grad[i] = 0.5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Update(params, 0.01, grad)
	}
}

// BenchmarkAdaGradSphere measures a full optimization run on the
// 10-dimensional sphere function.
func BenchmarkAdaGradSphere(b *testing.B) {
	f := problems.NewSphere(10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opt := NewAdaGrad(AdaGradConfig{StepSize: 0.99, Epsilon: 1, Tolerance: 1e-9, Seed: 42})
		params := f.InitialPoint()
		if _, err := opt.Optimize(f, params); err != nil {
			b.Fatal(err)
		}
	}
}
