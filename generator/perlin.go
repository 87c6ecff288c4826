package generator

import "github.com/tedd/libnoise/noisegen"

// Perlin is classic lattice gradient noise over 1–4 dimensional coordinates.
//
// The only state is the seed-derived permutation table and the quality
// setting; evaluation is stateless per call. Output usually lies in [-1, 1]
// but is not strictly bounded.
type Perlin struct {
	perm    *noisegen.Permutation
	seed    int64
	quality noisegen.Quality
}

// NewPerlin returns a Perlin primitive for the given seed with
// QualityStandard blending.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		perm:    noisegen.NewPermutation(seed),
		seed:    seed,
		quality: noisegen.QualityStandard,
	}
}

// Seed returns the current seed.
func (p *Perlin) Seed() int64 { return p.seed }

// SetSeed rederives the permutation table from the new seed.
func (p *Perlin) SetSeed(seed int64) {
	p.seed = seed
	p.perm = noisegen.NewPermutation(seed)
}

// Quality returns the current blend quality.
func (p *Perlin) Quality() noisegen.Quality { return p.quality }

// SetQuality selects the per-axis blend curve.
func (p *Perlin) SetQuality(q noisegen.Quality) { p.quality = q }

// Dimensions reports the maximum supported input dimensionality.
func (p *Perlin) Dimensions() int { return 4 }

// Eval1D evaluates the noise field at x.
func (p *Perlin) Eval1D(x float64) float64 {
	return p.perm.GradientCoherent1D(x, p.quality)
}

// Eval2D evaluates the noise field at (x, y).
func (p *Perlin) Eval2D(x, y float64) float64 {
	return p.perm.GradientCoherent2D(x, y, p.quality)
}

// Eval3D evaluates the noise field at (x, y, z).
func (p *Perlin) Eval3D(x, y, z float64) float64 {
	return p.perm.GradientCoherent3D(x, y, z, p.quality)
}

// Eval4D evaluates the noise field at (x, y, z, w).
func (p *Perlin) Eval4D(x, y, z, w float64) float64 {
	return p.perm.GradientCoherent4D(x, y, z, w, p.quality)
}
