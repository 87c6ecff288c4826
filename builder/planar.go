package builder

import (
	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/noisegen"
)

// Planar renders a rectangle of the (x, z) plane, sampling the source at
// y = 0. In seamless mode every cell blends the four corners of the
// scanned region, so the resulting map tiles in both directions.
type Planar struct {
	src      core.Module
	width    int
	height   int
	lowerX   float64
	upperX   float64
	lowerZ   float64
	upperZ   float64
	seamless bool
}

// NewPlanar returns a Planar builder over src with no region or size
// configured. src may be nil and bound later.
func NewPlanar(src core.Module) *Planar {
	return &Planar{src: src}
}

// SetModule rebinds the source module.
func (p *Planar) SetModule(src core.Module) { p.src = src }

// SetSize fixes the output resolution.
func (p *Planar) SetSize(width, height int) { p.width, p.height = width, height }

// SetBounds fixes the scanned region. The scan is inclusive of both
// edges on each axis.
func (p *Planar) SetBounds(lowerX, upperX, lowerZ, upperZ float64) {
	p.lowerX, p.upperX = lowerX, upperX
	p.lowerZ, p.upperZ = lowerZ, upperZ
}

// SetSeamless toggles four-corner blending.
func (p *Planar) SetSeamless(seamless bool) { p.seamless = seamless }

// Build scans the region and returns the filled map. It returns
// ErrNoModule, ErrMapSize or ErrBounds on configuration mistakes.
func (p *Planar) Build() (*NoiseMap, error) {
	if p.src == nil {
		return nil, ErrNoModule
	}
	if p.lowerX >= p.upperX || p.lowerZ >= p.upperZ {
		return nil, ErrBounds
	}
	m, err := NewNoiseMap(p.width, p.height)
	if err != nil {
		return nil, err
	}
	src := core.Source3D(p.src)

	xExtent := p.upperX - p.lowerX
	zExtent := p.upperZ - p.lowerZ
	for row := 0; row < p.height; row++ {
		z := gridCoord(p.lowerZ, zExtent, row, p.height)
		for col := 0; col < p.width; col++ {
			x := gridCoord(p.lowerX, xExtent, col, p.width)
			if !p.seamless {
				m.Set(col, row, src.Eval3D(x, 0, z))
				continue
			}
			sw := src.Eval3D(x, 0, z)
			se := src.Eval3D(x+xExtent, 0, z)
			nw := src.Eval3D(x, 0, z+zExtent)
			ne := src.Eval3D(x+xExtent, 0, z+zExtent)
			xBlend := 1.0 - (x-p.lowerX)/xExtent
			zBlend := 1.0 - (z-p.lowerZ)/zExtent
			z0 := noisegen.Lerp(xBlend, sw, se)
			z1 := noisegen.Lerp(xBlend, nw, ne)
			m.Set(col, row, noisegen.Lerp(zBlend, z0, z1))
		}
	}
	return m, nil
}

// gridCoord maps cell index i of an n-cell axis onto [lower, lower+extent],
// inclusive of both edges. A single-cell axis samples the lower edge.
func gridCoord(lower, extent float64, i, n int) float64 {
	if n == 1 {
		return lower
	}
	return lower + extent*float64(i)/float64(n-1)
}
