package modifier

import "github.com/tedd/libnoise/core"

// Invert negates the source output.
type Invert struct {
	core.Sourced
}

// NewInvert returns an Invert wrapping src.
func NewInvert(src core.Module) *Invert {
	i := &Invert{}
	i.SetSource(src)
	return i
}

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (i *Invert) Dimensions() int {
	if s := i.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (i *Invert) Eval1D(x float64) float64 {
	return -core.Source1D(i.Source()).Eval1D(x)
}

func (i *Invert) Eval2D(x, y float64) float64 {
	return -core.Source2D(i.Source()).Eval2D(x, y)
}

func (i *Invert) Eval3D(x, y, z float64) float64 {
	return -core.Source3D(i.Source()).Eval3D(x, y, z)
}

func (i *Invert) Eval4D(x, y, z, w float64) float64 {
	return -core.Source4D(i.Source()).Eval4D(x, y, z, w)
}
