package adapter

import (
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex adapts an opensimplex-go generator to the module
// protocol. The backing library implements 2D, 3D and 4D evaluation, so
// the adapter does not satisfy Module1D.
type OpenSimplex struct {
	noise      opensimplex.Noise
	seed       int64
	normalized bool
}

// NewOpenSimplex returns an adapter over the plain [-1, 1] generator.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.New(seed), seed: seed}
}

// NewOpenSimplexNormalized returns an adapter over the [0, 1] variant.
func NewOpenSimplexNormalized(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.NewNormalized(seed), seed: seed, normalized: true}
}

// Seed reports the generator seed.
func (o *OpenSimplex) Seed() int64 { return o.seed }

// SetSeed rebuilds the backing generator, preserving the normalized
// flag.
func (o *OpenSimplex) SetSeed(seed int64) {
	o.seed = seed
	if o.normalized {
		o.noise = opensimplex.NewNormalized(seed)
	} else {
		o.noise = opensimplex.New(seed)
	}
}

// Normalized reports whether the adapter yields [0, 1] output.
func (o *OpenSimplex) Normalized() bool { return o.normalized }

func (o *OpenSimplex) Dimensions() int { return 4 }

func (o *OpenSimplex) Eval2D(x, y float64) float64 {
	return o.noise.Eval2(x, y)
}

func (o *OpenSimplex) Eval3D(x, y, z float64) float64 {
	return o.noise.Eval3(x, y, z)
}

func (o *OpenSimplex) Eval4D(x, y, z, w float64) float64 {
	return o.noise.Eval4(x, y, z, w)
}
