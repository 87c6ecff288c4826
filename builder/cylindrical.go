package builder

import (
	"math"

	"github.com/tedd/libnoise/core"
)

// Cylindrical renders an angle/height window of the unit cylinder.
// Angles are degrees around the y axis; heights run along it. Rows run
// bottom to top, columns counterclockwise.
type Cylindrical struct {
	src        core.Module
	width      int
	height     int
	lowerAngle float64
	upperAngle float64
	lowerH     float64
	upperH     float64
}

// NewCylindrical returns a Cylindrical builder over src with no region
// or size configured. src may be nil and bound later.
func NewCylindrical(src core.Module) *Cylindrical {
	return &Cylindrical{src: src}
}

// SetModule rebinds the source module.
func (c *Cylindrical) SetModule(src core.Module) { c.src = src }

// SetSize fixes the output resolution.
func (c *Cylindrical) SetSize(width, height int) { c.width, c.height = width, height }

// SetBounds fixes the scanned window: angles in degrees, heights in
// model units.
func (c *Cylindrical) SetBounds(lowerAngle, upperAngle, lowerHeight, upperHeight float64) {
	c.lowerAngle, c.upperAngle = lowerAngle, upperAngle
	c.lowerH, c.upperH = lowerHeight, upperHeight
}

// Build scans the window and returns the filled map. It returns
// ErrNoModule, ErrMapSize or ErrBounds on configuration mistakes.
func (c *Cylindrical) Build() (*NoiseMap, error) {
	if c.src == nil {
		return nil, ErrNoModule
	}
	if c.lowerAngle >= c.upperAngle || c.lowerH >= c.upperH {
		return nil, ErrBounds
	}
	m, err := NewNoiseMap(c.width, c.height)
	if err != nil {
		return nil, err
	}
	src := core.Source3D(c.src)

	angleExtent := c.upperAngle - c.lowerAngle
	heightExtent := c.upperH - c.lowerH
	for row := 0; row < c.height; row++ {
		y := gridCoord(c.lowerH, heightExtent, row, c.height)
		for col := 0; col < c.width; col++ {
			angle := gridCoord(c.lowerAngle, angleExtent, col, c.width) * math.Pi / 180
			m.Set(col, row, src.Eval3D(math.Cos(angle), y, math.Sin(angle)))
		}
	}
	return m, nil
}
