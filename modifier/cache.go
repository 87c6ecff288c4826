package modifier

import "github.com/tedd/libnoise/core"

// Cache memoizes the most recent evaluation of its source. A repeated
// call with the same arity and the same coordinates returns the stored
// value without consulting the source; any other call re-evaluates and
// replaces the slot.
//
// Rebinding the source through SetSource invalidates the slot, so a
// cached value never leaks across sources. Cache is the one modifier
// that mutates on the evaluation path and must therefore not be shared
// between goroutines.
type Cache struct {
	core.Sourced

	valid          bool
	dim            int
	kx, ky, kz, kw float64
	value          float64
}

// NewCache returns a Cache wrapping src. src may be nil and bound later.
func NewCache(src core.Module) *Cache {
	c := &Cache{}
	c.Sourced.SetSource(src)
	return c
}

// SetSource rebinds the source and drops the memoized value.
func (c *Cache) SetSource(m core.Module) {
	c.Sourced.SetSource(m)
	c.valid = false
}

// Dimensions reports the source's dimensionality, or 4 when unbound.
func (c *Cache) Dimensions() int {
	if s := c.Source(); s != nil {
		return s.Dimensions()
	}
	return 4
}

func (c *Cache) Eval1D(x float64) float64 {
	if c.valid && c.dim == 1 && x == c.kx {
		return c.value
	}
	v := core.Source1D(c.Source()).Eval1D(x)
	c.valid, c.dim, c.kx, c.value = true, 1, x, v
	return v
}

func (c *Cache) Eval2D(x, y float64) float64 {
	if c.valid && c.dim == 2 && x == c.kx && y == c.ky {
		return c.value
	}
	v := core.Source2D(c.Source()).Eval2D(x, y)
	c.valid, c.dim, c.kx, c.ky, c.value = true, 2, x, y, v
	return v
}

func (c *Cache) Eval3D(x, y, z float64) float64 {
	if c.valid && c.dim == 3 && x == c.kx && y == c.ky && z == c.kz {
		return c.value
	}
	v := core.Source3D(c.Source()).Eval3D(x, y, z)
	c.valid, c.dim, c.kx, c.ky, c.kz, c.value = true, 3, x, y, z, v
	return v
}

func (c *Cache) Eval4D(x, y, z, w float64) float64 {
	if c.valid && c.dim == 4 && x == c.kx && y == c.ky && z == c.kz && w == c.kw {
		return c.value
	}
	v := core.Source4D(c.Source()).Eval4D(x, y, z, w)
	c.valid, c.dim, c.kx, c.ky, c.kz, c.kw, c.value = true, 4, x, y, z, w, v
	return v
}
