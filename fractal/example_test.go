package fractal_test

import (
	"fmt"

	"github.com/tedd/libnoise/fractal"
	"github.com/tedd/libnoise/generator"
)

// ExampleSum demonstrates a classic fractal stack: simplex noise summed
// over several octaves, with the single-octave case collapsing to the
// bare source.
func ExampleSum() {
	src := generator.NewSimplex(42)

	s := fractal.NewSum(src)
	s.SetOctaveCount(1)
	fmt.Println("one octave is the source:", s.Eval2D(0.3, 0.7) == src.Eval2D(0.3, 0.7))

	s.SetOctaveCount(6)
	a := s.Eval2D(0.3, 0.7)
	b := s.Eval2D(0.3, 0.7)
	fmt.Println("deterministic:", a == b)

	// Output:
	// one octave is the source: true
	// deterministic: true
}
