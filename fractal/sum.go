package fractal

import "github.com/tedd/libnoise/core"

// Sum accumulates weighted source evaluations across octaves — plain
// fractional Brownian motion. Octave i samples the source at
// coord·frequency·lacunarity^i and adds signal·weight[i]; a fractional
// octave count adds one final contribution scaled by the remainder.
type Sum struct {
	Spectral
}

// NewSum returns a Sum combinator wrapping src with default parameters.
// src may be nil and bound later via SetSource.
func NewSum(src core.Module) *Sum {
	return &Sum{Spectral: newSpectral(src)}
}

// Eval1D evaluates the fractal at x.
func (f *Sum) Eval1D(x float64) float64 {
	src := core.Source1D(f.Source())
	x *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += src.Eval1D(x) * f.weights[i]
		x *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * src.Eval1D(x)
	}

	return sum
}

// Eval2D evaluates the fractal at (x, y).
func (f *Sum) Eval2D(x, y float64) float64 {
	src := core.Source2D(f.Source())
	x *= f.frequency
	y *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += src.Eval2D(x, y) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * src.Eval2D(x, y)
	}

	return sum
}

// Eval3D evaluates the fractal at (x, y, z).
func (f *Sum) Eval3D(x, y, z float64) float64 {
	src := core.Source3D(f.Source())
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += src.Eval3D(x, y, z) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * src.Eval3D(x, y, z)
	}

	return sum
}

// Eval4D evaluates the fractal at (x, y, z, w).
func (f *Sum) Eval4D(x, y, z, w float64) float64 {
	src := core.Source4D(f.Source())
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency
	w *= f.frequency

	var sum float64
	n := int(f.octaves)
	for i := 0; i < n; i++ {
		sum += src.Eval4D(x, y, z, w) * f.weights[i]
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
		w *= f.lacunarity
	}
	if rem := f.octaves - float64(n); rem > 0 {
		sum += rem * f.weights[n] * src.Eval4D(x, y, z, w)
	}

	return sum
}
