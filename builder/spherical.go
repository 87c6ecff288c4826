package builder

import (
	"math"

	"github.com/tedd/libnoise/core"
)

// Spherical renders a latitude/longitude window of the unit sphere.
// Angles are degrees; latitude spans [-90, 90] south to north and
// longitude grows west to east. Rows run south to north, columns west to
// east.
type Spherical struct {
	src    core.Module
	width  int
	height int
	south  float64
	north  float64
	west   float64
	east   float64
}

// NewSpherical returns a Spherical builder over src with no region or
// size configured. src may be nil and bound later.
func NewSpherical(src core.Module) *Spherical {
	return &Spherical{src: src}
}

// SetModule rebinds the source module.
func (s *Spherical) SetModule(src core.Module) { s.src = src }

// SetSize fixes the output resolution.
func (s *Spherical) SetSize(width, height int) { s.width, s.height = width, height }

// SetBounds fixes the scanned window in degrees.
func (s *Spherical) SetBounds(south, north, west, east float64) {
	s.south, s.north = south, north
	s.west, s.east = west, east
}

// Build scans the window and returns the filled map. It returns
// ErrNoModule, ErrMapSize or ErrBounds on configuration mistakes; a
// latitude bound outside [-90, 90] counts as ErrBounds.
func (s *Spherical) Build() (*NoiseMap, error) {
	if s.src == nil {
		return nil, ErrNoModule
	}
	if s.south >= s.north || s.west >= s.east {
		return nil, ErrBounds
	}
	if s.south < -90 || s.north > 90 {
		return nil, ErrBounds
	}
	m, err := NewNoiseMap(s.width, s.height)
	if err != nil {
		return nil, err
	}
	src := core.Source3D(s.src)

	latExtent := s.north - s.south
	lonExtent := s.east - s.west
	for row := 0; row < s.height; row++ {
		lat := gridCoord(s.south, latExtent, row, s.height)
		for col := 0; col < s.width; col++ {
			lon := gridCoord(s.west, lonExtent, col, s.width)
			x, y, z := latLonToXYZ(lat, lon)
			m.Set(col, row, src.Eval3D(x, y, z))
		}
	}
	return m, nil
}

// latLonToXYZ projects a lat/lon pair in degrees onto the unit sphere.
func latLonToXYZ(lat, lon float64) (x, y, z float64) {
	r := math.Cos(lat * math.Pi / 180)
	x = r * math.Cos(lon*math.Pi/180)
	y = math.Sin(lat * math.Pi / 180)
	z = r * math.Sin(lon*math.Pi/180)
	return x, y, z
}
