package adapter

import (
	"github.com/aquilax/go-perlin"
)

// Default go-perlin parameters.
const (
	DefaultAlpha   = 2.0
	DefaultBeta    = 2.0
	DefaultOctaves = 3
)

// GoPerlin adapts a go-perlin generator to the module protocol. The
// backing library implements 1D, 2D and 3D evaluation, so the adapter
// does not satisfy Module4D. alpha controls the per-octave amplitude
// falloff, beta the per-octave frequency step and n the octave count.
type GoPerlin struct {
	noise *perlin.Perlin
	alpha float64
	beta  float64
	n     int32
	seed  int64
}

// NewGoPerlin returns an adapter with alpha 2, beta 2 and 3 octaves.
func NewGoPerlin(seed int64) *GoPerlin {
	return NewGoPerlinParams(DefaultAlpha, DefaultBeta, DefaultOctaves, seed)
}

// NewGoPerlinParams returns an adapter with explicit parameters.
func NewGoPerlinParams(alpha, beta float64, n int32, seed int64) *GoPerlin {
	return &GoPerlin{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		alpha: alpha,
		beta:  beta,
		n:     n,
		seed:  seed,
	}
}

// Seed reports the generator seed.
func (g *GoPerlin) Seed() int64 { return g.seed }

// SetSeed rebuilds the backing generator, preserving alpha, beta and the
// octave count.
func (g *GoPerlin) SetSeed(seed int64) {
	g.seed = seed
	g.noise = perlin.NewPerlin(g.alpha, g.beta, g.n, seed)
}

// Params reports the alpha, beta and octave-count parameters.
func (g *GoPerlin) Params() (alpha, beta float64, n int32) {
	return g.alpha, g.beta, g.n
}

func (g *GoPerlin) Dimensions() int { return 3 }

func (g *GoPerlin) Eval1D(x float64) float64 {
	return g.noise.Noise1D(x)
}

func (g *GoPerlin) Eval2D(x, y float64) float64 {
	return g.noise.Noise2D(x, y)
}

func (g *GoPerlin) Eval3D(x, y, z float64) float64 {
	return g.noise.Noise3D(x, y, z)
}
