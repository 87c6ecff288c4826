package transform

import "github.com/tedd/libnoise/core"

// Translate adds a per-axis offset to the input coordinate before
// delegating. All offsets default to 0 (the identity).
type Translate struct {
	core.Sourced

	tx, ty, tz, tw float64
}

// NewTranslate returns a Translate wrapping src with zero offsets.
func NewTranslate(src core.Module) *Translate {
	t := &Translate{}
	t.SetSource(src)

	return t
}

// Offsets returns the current per-axis offsets.
func (t *Translate) Offsets() (x, y, z, w float64) {
	return t.tx, t.ty, t.tz, t.tw
}

// SetOffsets sets all four per-axis offsets; axes beyond the evaluated
// dimensionality are simply unused.
func (t *Translate) SetOffsets(x, y, z, w float64) {
	t.tx, t.ty, t.tz, t.tw = x, y, z, w
}

// Dimensions reports the bound source's maximum dimensionality, or 4 while
// unbound.
func (t *Translate) Dimensions() int {
	if src := t.Source(); src != nil {
		return src.Dimensions()
	}

	return 4
}

// Eval1D offsets x and delegates.
func (t *Translate) Eval1D(x float64) float64 {
	return core.Source1D(t.Source()).Eval1D(x + t.tx)
}

// Eval2D offsets (x, y) and delegates.
func (t *Translate) Eval2D(x, y float64) float64 {
	return core.Source2D(t.Source()).Eval2D(x+t.tx, y+t.ty)
}

// Eval3D offsets (x, y, z) and delegates.
func (t *Translate) Eval3D(x, y, z float64) float64 {
	return core.Source3D(t.Source()).Eval3D(x+t.tx, y+t.ty, z+t.tz)
}

// Eval4D offsets (x, y, z, w) and delegates.
func (t *Translate) Eval4D(x, y, z, w float64) float64 {
	return core.Source4D(t.Source()).Eval4D(x+t.tx, y+t.ty, z+t.tz, w+t.tw)
}
