package modifier

import (
	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/noisegen"
)

// minCurvePoints is the smallest control-point set a cubic spline needs.
const minCurvePoints = 4

// ControlPoint maps one source output value to one remapped value.
type ControlPoint struct {
	Input  float64
	Output float64
}

// Curve remaps the source output through a cubic spline defined by a
// sorted set of control points. At least four points must be added
// before the first evaluation; evaluating earlier panics with
// ErrTooFewPoints. Outside the covered input range the spline clamps to
// the outermost segments.
type Curve struct {
	core.Sourced

	points []ControlPoint
}

// NewCurve returns a Curve wrapping src with no control points.
func NewCurve(src core.Module) *Curve {
	c := &Curve{}
	c.SetSource(src)
	return c
}

// AddControlPoint inserts a point keeping the set sorted by input. It
// returns ErrDuplicatePoint when a point with the same input position
// already exists.
func (c *Curve) AddControlPoint(input, output float64) error {
	pos := len(c.points)
	for i, p := range c.points {
		if p.Input == input {
			return ErrDuplicatePoint
		}
		if p.Input > input {
			pos = i
			break
		}
	}
	c.points = append(c.points, ControlPoint{})
	copy(c.points[pos+1:], c.points[pos:])
	c.points[pos] = ControlPoint{Input: input, Output: output}
	return nil
}

// ClearControlPoints removes every control point.
func (c *Curve) ClearControlPoints() { c.points = nil }

// ControlPoints returns a copy of the sorted control-point set.
func (c *Curve) ControlPoints() []ControlPoint {
	out := make([]ControlPoint, len(c.points))
	copy(out, c.points)
	return out
}

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (c *Curve) Dimensions() int {
	if s := c.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (c *Curve) remap(v float64) float64 {
	if len(c.points) < minCurvePoints {
		panic(ErrTooFewPoints)
	}

	// First point whose input exceeds v; v sits between indexPos-1 and
	// indexPos.
	indexPos := len(c.points)
	for i, p := range c.points {
		if v < p.Input {
			indexPos = i
			break
		}
	}

	last := len(c.points) - 1
	index0 := clampIndex(indexPos-2, last)
	index1 := clampIndex(indexPos-1, last)
	index2 := clampIndex(indexPos, last)
	index3 := clampIndex(indexPos+1, last)

	// Off either end of the covered range both bracketing indices
	// collapse onto the same point.
	if index1 == index2 {
		return c.points[index1].Output
	}

	in0 := c.points[index1].Input
	in1 := c.points[index2].Input
	alpha := (v - in0) / (in1 - in0)
	return noisegen.Cubic(
		c.points[index0].Output,
		c.points[index1].Output,
		c.points[index2].Output,
		c.points[index3].Output,
		alpha,
	)
}

func clampIndex(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

func (c *Curve) Eval1D(x float64) float64 {
	return c.remap(core.Source1D(c.Source()).Eval1D(x))
}

func (c *Curve) Eval2D(x, y float64) float64 {
	return c.remap(core.Source2D(c.Source()).Eval2D(x, y))
}

func (c *Curve) Eval3D(x, y, z float64) float64 {
	return c.remap(core.Source3D(c.Source()).Eval3D(x, y, z))
}

func (c *Curve) Eval4D(x, y, z, w float64) float64 {
	return c.remap(core.Source4D(c.Source()).Eval4D(x, y, z, w))
}
