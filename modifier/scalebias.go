package modifier

import "github.com/tedd/libnoise/core"

// Default ScaleBias parameters.
const (
	DefaultScale = 1.0
	DefaultBias  = 0.0
)

// ScaleBias applies the affine remap output·scale + bias.
type ScaleBias struct {
	core.Sourced

	scale float64
	bias  float64
}

// NewScaleBias returns a ScaleBias wrapping src with scale 1 and bias 0.
func NewScaleBias(src core.Module) *ScaleBias {
	s := &ScaleBias{scale: DefaultScale, bias: DefaultBias}
	s.SetSource(src)
	return s
}

// Scale reports the multiplicative factor.
func (s *ScaleBias) Scale() float64 { return s.scale }

// SetScale replaces the multiplicative factor.
func (s *ScaleBias) SetScale(scale float64) { s.scale = scale }

// Bias reports the additive offset.
func (s *ScaleBias) Bias() float64 { return s.bias }

// SetBias replaces the additive offset.
func (s *ScaleBias) SetBias(bias float64) { s.bias = bias }

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (s *ScaleBias) Dimensions() int {
	if src := s.Source(); src != nil {
		return src.Dimensions()
	}
	return 4
}

func (s *ScaleBias) Eval1D(x float64) float64 {
	return core.Source1D(s.Source()).Eval1D(x)*s.scale + s.bias
}

func (s *ScaleBias) Eval2D(x, y float64) float64 {
	return core.Source2D(s.Source()).Eval2D(x, y)*s.scale + s.bias
}

func (s *ScaleBias) Eval3D(x, y, z float64) float64 {
	return core.Source3D(s.Source()).Eval3D(x, y, z)*s.scale + s.bias
}

func (s *ScaleBias) Eval4D(x, y, z, w float64) float64 {
	return core.Source4D(s.Source()).Eval4D(x, y, z, w)*s.scale + s.bias
}
