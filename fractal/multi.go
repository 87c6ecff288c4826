package fractal

import "github.com/tedd/libnoise/core"

// Multi is the multiplicative (Musgrave-style) cascade: starting from 1,
// each octave multiplies the running value by 1 + signal·weight[i]. The
// fractional octave multiplies by 1 + rem·signal·weight, which approaches
// the full-octave factor as the remainder approaches one and the identity
// as it approaches zero.
type Multi struct {
	Spectral
}

// NewMulti returns a Multi combinator wrapping src with default parameters.
func NewMulti(src core.Module) *Multi {
	return &Multi{Spectral: newSpectral(src)}
}

// Eval1D evaluates the fractal at x.
func (f *Multi) Eval1D(x float64) float64 {
	src := core.Source1D(f.Source())
	x *= f.frequency

	value := 1.0
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		value *= 1 + src.Eval1D(x)*f.weights[i]
		x *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		value *= 1 + rem*f.weights[n]*src.Eval1D(x)
	}

	return value
}

// Eval2D evaluates the fractal at (x, y).
func (f *Multi) Eval2D(x, y float64) float64 {
	src := core.Source2D(f.Source())
	x *= f.frequency
	y *= f.frequency

	value := 1.0
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		value *= 1 + src.Eval2D(x, y)*f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		value *= 1 + rem*f.weights[n]*src.Eval2D(x, y)
	}

	return value
}

// Eval3D evaluates the fractal at (x, y, z).
func (f *Multi) Eval3D(x, y, z float64) float64 {
	src := core.Source3D(f.Source())
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency

	value := 1.0
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		value *= 1 + src.Eval3D(x, y, z)*f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		value *= 1 + rem*f.weights[n]*src.Eval3D(x, y, z)
	}

	return value
}

// Eval4D evaluates the fractal at (x, y, z, w).
func (f *Multi) Eval4D(x, y, z, w float64) float64 {
	src := core.Source4D(f.Source())
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency
	w *= f.frequency

	value := 1.0
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		value *= 1 + src.Eval4D(x, y, z, w)*f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
		w *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		value *= 1 + rem*f.weights[n]*src.Eval4D(x, y, z, w)
	}

	return value
}
