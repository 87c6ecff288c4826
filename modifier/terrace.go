package modifier

import (
	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/noisegen"
)

// minTerracePoints is the smallest control-point set a terrace needs.
const minTerracePoints = 2

// Terrace reshapes the source output into flat-bottomed steps. Between
// two adjacent control points the output eases quadratically from the
// lower point toward the upper one; inverting the curve flips the easing
// so steps flatten at their tops instead.
//
// At least two control points must be added before the first evaluation;
// evaluating earlier panics with ErrTooFewPoints.
type Terrace struct {
	core.Sourced

	points []float64
	invert bool
}

// NewTerrace returns a Terrace wrapping src with no control points.
func NewTerrace(src core.Module) *Terrace {
	t := &Terrace{}
	t.SetSource(src)
	return t
}

// AddControlPoint inserts a point keeping the set sorted. It returns
// ErrDuplicatePoint when the position is already occupied.
func (t *Terrace) AddControlPoint(v float64) error {
	pos := len(t.points)
	for i, p := range t.points {
		if p == v {
			return ErrDuplicatePoint
		}
		if p > v {
			pos = i
			break
		}
	}
	t.points = append(t.points, 0)
	copy(t.points[pos+1:], t.points[pos:])
	t.points[pos] = v
	return nil
}

// MakeControlPoints replaces the point set with n points evenly spread
// across [-1, 1]. It returns ErrTooFewPoints when n < 2.
func (t *Terrace) MakeControlPoints(n int) error {
	if n < minTerracePoints {
		return ErrTooFewPoints
	}
	step := 2.0 / float64(n-1)
	t.points = t.points[:0]
	for i := 0; i < n; i++ {
		t.points = append(t.points, -1.0+float64(i)*step)
	}
	return nil
}

// ClearControlPoints removes every control point.
func (t *Terrace) ClearControlPoints() { t.points = nil }

// ControlPoints returns a copy of the sorted point set.
func (t *Terrace) ControlPoints() []float64 {
	out := make([]float64, len(t.points))
	copy(out, t.points)
	return out
}

// Inverted reports whether the terrace curve is inverted.
func (t *Terrace) Inverted() bool { return t.invert }

// SetInverted flips the terrace curve.
func (t *Terrace) SetInverted(invert bool) { t.invert = invert }

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (t *Terrace) Dimensions() int {
	if s := t.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (t *Terrace) remap(v float64) float64 {
	if len(t.points) < minTerracePoints {
		panic(ErrTooFewPoints)
	}

	indexPos := len(t.points)
	for i, p := range t.points {
		if v < p {
			indexPos = i
			break
		}
	}

	last := len(t.points) - 1
	index0 := clampIndex(indexPos-1, last)
	index1 := clampIndex(indexPos, last)
	if index0 == index1 {
		return t.points[index1]
	}

	v0 := t.points[index0]
	v1 := t.points[index1]
	alpha := (v - v0) / (v1 - v0)
	if t.invert {
		alpha = 1.0 - alpha
		v0, v1 = v1, v0
	}
	alpha *= alpha
	return noisegen.Lerp(alpha, v0, v1)
}

func (t *Terrace) Eval1D(x float64) float64 {
	return t.remap(core.Source1D(t.Source()).Eval1D(x))
}

func (t *Terrace) Eval2D(x, y float64) float64 {
	return t.remap(core.Source2D(t.Source()).Eval2D(x, y))
}

func (t *Terrace) Eval3D(x, y, z float64) float64 {
	return t.remap(core.Source3D(t.Source()).Eval3D(x, y, z))
}

func (t *Terrace) Eval4D(x, y, z, w float64) float64 {
	return t.remap(core.Source4D(t.Source()).Eval4D(x, y, z, w))
}
