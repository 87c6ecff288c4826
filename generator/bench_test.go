package generator_test

import (
	"testing"

	"github.com/tedd/libnoise/generator"
)

// sink prevents the compiler from eliding the benchmarked evaluation.
var sink float64

// BenchmarkPerlin_Eval3D measures a single 3D lattice-noise evaluation.
func BenchmarkPerlin_Eval3D(b *testing.B) {
	p := generator.NewPerlin(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = p.Eval3D(float64(i)*0.01, 1.5, -2.5)
	}
}

// BenchmarkPerlin_Eval4D measures the 16-corner 4D blend.
func BenchmarkPerlin_Eval4D(b *testing.B) {
	p := generator.NewPerlin(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = p.Eval4D(float64(i)*0.01, 1.5, -2.5, 0.75)
	}
}

// BenchmarkSimplex_Eval3D measures a single 3D simplex evaluation.
func BenchmarkSimplex_Eval3D(b *testing.B) {
	s := generator.NewSimplex(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = s.Eval3D(float64(i)*0.01, 1.5, -2.5)
	}
}

// BenchmarkVoronoi_Eval3D measures the 125-cell neighborhood scan.
func BenchmarkVoronoi_Eval3D(b *testing.B) {
	v := generator.NewVoronoi(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = v.Eval3D(float64(i)*0.01, 1.5, -2.5)
	}
}
