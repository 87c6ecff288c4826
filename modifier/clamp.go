package modifier

import "github.com/tedd/libnoise/core"

// Default clamping bounds.
const (
	DefaultLowerBound = -1.0
	DefaultUpperBound = 1.0
)

// Clamp saturates the source output into [lower, upper].
type Clamp struct {
	core.Sourced

	lower float64
	upper float64
}

// NewClamp returns a Clamp wrapping src with bounds [-1, 1].
func NewClamp(src core.Module) *Clamp {
	c := &Clamp{lower: DefaultLowerBound, upper: DefaultUpperBound}
	c.SetSource(src)
	return c
}

// Bounds reports the current lower and upper bounds.
func (c *Clamp) Bounds() (lower, upper float64) { return c.lower, c.upper }

// SetBounds replaces both bounds. It returns ErrBounds, leaving the
// current bounds untouched, when lower > upper.
func (c *Clamp) SetBounds(lower, upper float64) error {
	if lower > upper {
		return ErrBounds
	}
	c.lower, c.upper = lower, upper
	return nil
}

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (c *Clamp) Dimensions() int {
	if s := c.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (c *Clamp) clamp(v float64) float64 {
	if v < c.lower {
		return c.lower
	}
	if v > c.upper {
		return c.upper
	}
	return v
}

func (c *Clamp) Eval1D(x float64) float64 {
	return c.clamp(core.Source1D(c.Source()).Eval1D(x))
}

func (c *Clamp) Eval2D(x, y float64) float64 {
	return c.clamp(core.Source2D(c.Source()).Eval2D(x, y))
}

func (c *Clamp) Eval3D(x, y, z float64) float64 {
	return c.clamp(core.Source3D(c.Source()).Eval3D(x, y, z))
}

func (c *Clamp) Eval4D(x, y, z, w float64) float64 {
	return c.clamp(core.Source4D(c.Source()).Eval4D(x, y, z, w))
}
