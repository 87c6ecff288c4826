package transform

import "github.com/tedd/libnoise/core"

// Scale multiplies each input axis by a per-axis factor before delegating.
// All factors default to 1 (the identity).
type Scale struct {
	core.Sourced

	sx, sy, sz, sw float64
}

// NewScale returns a Scale wrapping src with unit factors.
func NewScale(src core.Module) *Scale {
	s := &Scale{sx: 1, sy: 1, sz: 1, sw: 1}
	s.SetSource(src)

	return s
}

// Factors returns the current per-axis factors.
func (s *Scale) Factors() (x, y, z, w float64) {
	return s.sx, s.sy, s.sz, s.sw
}

// SetFactors sets all four per-axis factors; axes beyond the evaluated
// dimensionality are simply unused.
func (s *Scale) SetFactors(x, y, z, w float64) {
	s.sx, s.sy, s.sz, s.sw = x, y, z, w
}

// SetUniform sets every axis to the same factor.
func (s *Scale) SetUniform(f float64) {
	s.sx, s.sy, s.sz, s.sw = f, f, f, f
}

// Dimensions reports the bound source's maximum dimensionality, or 4 while
// unbound.
func (s *Scale) Dimensions() int {
	if src := s.Source(); src != nil {
		return src.Dimensions()
	}

	return 4
}

// Eval1D scales x and delegates.
func (s *Scale) Eval1D(x float64) float64 {
	return core.Source1D(s.Source()).Eval1D(x * s.sx)
}

// Eval2D scales (x, y) and delegates.
func (s *Scale) Eval2D(x, y float64) float64 {
	return core.Source2D(s.Source()).Eval2D(x*s.sx, y*s.sy)
}

// Eval3D scales (x, y, z) and delegates.
func (s *Scale) Eval3D(x, y, z float64) float64 {
	return core.Source3D(s.Source()).Eval3D(x*s.sx, y*s.sy, z*s.sz)
}

// Eval4D scales (x, y, z, w) and delegates.
func (s *Scale) Eval4D(x, y, z, w float64) float64 {
	return core.Source4D(s.Source()).Eval4D(x*s.sx, y*s.sy, z*s.sz, w*s.sw)
}
