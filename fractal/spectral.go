package fractal

import (
	"math"

	"github.com/tedd/libnoise/core"
)

// Octave-count bounds. Counts are clamped, not rejected: the octave knob is
// continuous and every value in range is meaningful.
const (
	MinOctaves = 1.0
	MaxOctaves = 30.0
)

// maxWeights covers every full octave plus the partial one at MaxOctaves.
const maxWeights = int(MaxOctaves) + 1

// Default parameters shared by all combinators.
const (
	DefaultFrequency        = 1.0
	DefaultLacunarity       = 2.0
	DefaultSpectralExponent = 1.0
	DefaultOctaves          = 6.0
)

// Spectral is the shared core of every octave combinator: the source slot,
// the frequency/lacunarity/exponent/octave parameters, and the precomputed
// per-octave amplitude table weight[i] = lacunarity^(−i·exponent).
//
// It is embedded by Sum, Sin and Multi and not useful on its own.
type Spectral struct {
	core.Sourced

	frequency  float64
	lacunarity float64
	exponent   float64
	octaves    float64
	weights    [maxWeights]float64
}

// newSpectral returns the shared core wired to src with default parameters
// and a freshly computed weight table.
func newSpectral(src core.Module) Spectral {
	s := Spectral{
		frequency:  DefaultFrequency,
		lacunarity: DefaultLacunarity,
		exponent:   DefaultSpectralExponent,
		octaves:    DefaultOctaves,
	}
	s.SetSource(src)
	s.recalcWeights()

	return s
}

// recalcWeights rebuilds the whole amplitude table from the current
// lacunarity and spectral exponent. Always rebuilt in full, so the table is
// never partially stale.
func (s *Spectral) recalcWeights() {
	for i := range s.weights {
		s.weights[i] = math.Pow(s.lacunarity, -float64(i)*s.exponent)
	}
}

// Frequency returns the base spatial frequency of octave zero.
func (s *Spectral) Frequency() float64 { return s.frequency }

// SetFrequency sets the base frequency. Any value is accepted, including
// zero and negatives.
func (s *Spectral) SetFrequency(f float64) { s.frequency = f }

// Lacunarity returns the per-octave frequency multiplier.
func (s *Spectral) Lacunarity() float64 { return s.lacunarity }

// SetLacunarity sets the per-octave frequency multiplier and eagerly
// rederives the spectral weights. Any value is accepted.
func (s *Spectral) SetLacunarity(l float64) {
	s.lacunarity = l
	s.recalcWeights()
}

// SpectralExponent returns the amplitude falloff exponent.
func (s *Spectral) SpectralExponent() float64 { return s.exponent }

// SetSpectralExponent sets the falloff exponent and eagerly rederives the
// spectral weights.
func (s *Spectral) SetSpectralExponent(e float64) {
	s.exponent = e
	s.recalcWeights()
}

// OctaveCount returns the current octave count.
func (s *Spectral) OctaveCount() float64 { return s.octaves }

// SetOctaveCount sets the octave count, clamped to
// [MinOctaves, MaxOctaves]. The fractional part contributes one
// partial-weight octave.
func (s *Spectral) SetOctaveCount(o float64) {
	if o < MinOctaves {
		o = MinOctaves
	}
	if o > MaxOctaves {
		o = MaxOctaves
	}
	s.octaves = o
}

// Weight returns the precomputed amplitude multiplier of octave i.
// Valid for i in [0, 30].
func (s *Spectral) Weight(i int) float64 { return s.weights[i] }

// Dimensions reports the bound source's maximum dimensionality, or 4 while
// unbound: the combinator itself handles every arity.
func (s *Spectral) Dimensions() int {
	if src := s.Source(); src != nil {
		return src.Dimensions()
	}

	return 4
}
