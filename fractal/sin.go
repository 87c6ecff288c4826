package fractal

import (
	"math"

	"github.com/tedd/libnoise/core"
)

// Sin accumulates absolute weighted signals across octaves and maps the
// total through sin(x + total), where x is the first input coordinate
// captured before frequency scaling. The absolute-value accumulation plus
// the sine warp produce banded, marble-like patterns.
type Sin struct {
	Spectral
}

// NewSin returns a Sin combinator wrapping src with default parameters.
func NewSin(src core.Module) *Sin {
	return &Sin{Spectral: newSpectral(src)}
}

// Eval1D evaluates the fractal at x.
func (f *Sin) Eval1D(x float64) float64 {
	src := core.Source1D(f.Source())
	ox := x
	x *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += math.Abs(src.Eval1D(x)) * f.weights[i]
		x *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * math.Abs(src.Eval1D(x))
	}

	return math.Sin(ox + sum)
}

// Eval2D evaluates the fractal at (x, y).
func (f *Sin) Eval2D(x, y float64) float64 {
	src := core.Source2D(f.Source())
	ox := x
	x *= f.frequency
	y *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += math.Abs(src.Eval2D(x, y)) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * math.Abs(src.Eval2D(x, y))
	}

	return math.Sin(ox + sum)
}

// Eval3D evaluates the fractal at (x, y, z).
func (f *Sin) Eval3D(x, y, z float64) float64 {
	src := core.Source3D(f.Source())
	ox := x
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += math.Abs(src.Eval3D(x, y, z)) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * math.Abs(src.Eval3D(x, y, z))
	}

	return math.Sin(ox + sum)
}

// Eval4D evaluates the fractal at (x, y, z, w).
func (f *Sin) Eval4D(x, y, z, w float64) float64 {
	src := core.Source4D(f.Source())
	ox := x
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency
	w *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += math.Abs(src.Eval4D(x, y, z, w)) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
		w *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * math.Abs(src.Eval4D(x, y, z, w))
	}

	return math.Sin(ox + sum)
}
