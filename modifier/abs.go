package modifier

import (
	"math"

	"github.com/tedd/libnoise/core"
)

// Abs yields the absolute value of the source output.
type Abs struct {
	core.Sourced
}

// NewAbs returns an Abs wrapping src.
func NewAbs(src core.Module) *Abs {
	a := &Abs{}
	a.SetSource(src)
	return a
}

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (a *Abs) Dimensions() int {
	if s := a.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (a *Abs) Eval1D(x float64) float64 {
	return math.Abs(core.Source1D(a.Source()).Eval1D(x))
}

func (a *Abs) Eval2D(x, y float64) float64 {
	return math.Abs(core.Source2D(a.Source()).Eval2D(x, y))
}

func (a *Abs) Eval3D(x, y, z float64) float64 {
	return math.Abs(core.Source3D(a.Source()).Eval3D(x, y, z))
}

func (a *Abs) Eval4D(x, y, z, w float64) float64 {
	return math.Abs(core.Source4D(a.Source()).Eval4D(x, y, z, w))
}
