package fourier

import "testing"

func BenchmarkTemperatureOverTime(b *testing.B) {
	sol, err := New(linspace(0, 1, 100), linspace(0, 0.5, 300), CoefficientFunc(bump))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sol.TemperatureOverTime()
	}
}

func BenchmarkTemperatureOverTime_Workers4(b *testing.B) {
	sol, err := New(linspace(0, 1, 100), linspace(0, 0.5, 300), CoefficientFunc(bump), WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sol.TemperatureOverTime()
	}
}

func BenchmarkTemperatureAt(b *testing.B) {
	sol, err := New([]float64{0}, []float64{0}, CoefficientFunc(bump))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sol.TemperatureAt(0.3, 0.01)
	}
}
