package transform

import (
	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/fractal"
	"github.com/tedd/libnoise/generator"
)

// Default Turbulence parameters.
const (
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3.0
)

// Turbulence warps the input domain: three decorrelated Perlin fractal
// channels each displace one axis by power·noise before delegating, bending
// the source field without changing its value range.
//
// Turbulence is 3D-only.
type Turbulence struct {
	core.Sourced

	power float64
	seed  int64

	xChan, yChan, zChan *fractal.Sum
}

// NewTurbulence returns a Turbulence wrapping src, with distortion channels
// seeded from seed, seed+1 and seed+2, default power and roughness.
func NewTurbulence(src core.Module, seed int64) *Turbulence {
	t := &Turbulence{power: DefaultTurbulencePower}
	t.SetSource(src)
	t.SetSeed(seed)

	return t
}

// Power returns the displacement strength.
func (t *Turbulence) Power() float64 { return t.power }

// SetPower sets the displacement strength; zero makes the transform an
// exact identity.
func (t *Turbulence) SetPower(p float64) { t.power = p }

// Seed returns the base seed of the distortion channels.
func (t *Turbulence) Seed() int64 { return t.seed }

// SetSeed rebuilds the three distortion channels from consecutive seeds,
// preserving the current roughness and frequency.
func (t *Turbulence) SetSeed(seed int64) {
	roughness := DefaultTurbulenceRoughness
	frequency := fractal.DefaultFrequency
	if t.xChan != nil {
		roughness = t.xChan.OctaveCount()
		frequency = t.xChan.Frequency()
	}

	t.seed = seed
	t.xChan = fractal.NewSum(generator.NewPerlin(seed))
	t.yChan = fractal.NewSum(generator.NewPerlin(seed + 1))
	t.zChan = fractal.NewSum(generator.NewPerlin(seed + 2))
	for _, ch := range []*fractal.Sum{t.xChan, t.yChan, t.zChan} {
		ch.SetOctaveCount(roughness)
		ch.SetFrequency(frequency)
	}
}

// Roughness returns the octave count of the distortion channels.
func (t *Turbulence) Roughness() float64 { return t.xChan.OctaveCount() }

// SetRoughness sets the octave count of all three distortion channels
// (clamped to the fractal octave bounds).
func (t *Turbulence) SetRoughness(r float64) {
	t.xChan.SetOctaveCount(r)
	t.yChan.SetOctaveCount(r)
	t.zChan.SetOctaveCount(r)
}

// Frequency returns the base frequency of the distortion channels.
func (t *Turbulence) Frequency() float64 { return t.xChan.Frequency() }

// SetFrequency sets the base frequency of all three distortion channels.
func (t *Turbulence) SetFrequency(f float64) {
	t.xChan.SetFrequency(f)
	t.yChan.SetFrequency(f)
	t.zChan.SetFrequency(f)
}

// Dimensions reports the supported input dimensionality. Turbulence is
// 3D-only.
func (t *Turbulence) Dimensions() int { return 3 }

// Eval3D displaces (x, y, z) by the three distortion channels and
// delegates.
//
// Each channel samples the input nudged by a distinct fixed offset so the
// three displacements decorrelate even near integer boundaries, where
// channels seeded alike would otherwise align.
func (t *Turbulence) Eval3D(x, y, z float64) float64 {
	x0, y0, z0 := x+(12414.0/65536.0), y+(65124.0/65536.0), z+(31337.0/65536.0)
	x1, y1, z1 := x+(26519.0/65536.0), y+(18128.0/65536.0), z+(60493.0/65536.0)
	x2, y2, z2 := x+(53820.0/65536.0), y+(11213.0/65536.0), z+(44845.0/65536.0)

	dx := x + t.xChan.Eval3D(x0, y0, z0)*t.power
	dy := y + t.yChan.Eval3D(x1, y1, z1)*t.power
	dz := z + t.zChan.Eval3D(x2, y2, z2)*t.power

	return core.Source3D(t.Source()).Eval3D(dx, dy, dz)
}
