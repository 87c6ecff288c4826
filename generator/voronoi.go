package generator

import (
	"math"

	"github.com/tedd/libnoise/noisegen"
)

// sqrt3 normalizes the nearest-seed distance: no seed point can be farther
// than one cell diagonal from a query point inside the scanned neighborhood.
var sqrt3 = math.Sqrt(3.0)

// Voronoi is 3D cell noise: each unit cell owns one pseudo-random seed
// point, and a query point takes its value from the nearest seed in the
// 5×5×5 surrounding cell block.
//
// Output is displacement × value-noise of the winning cell (flat cells),
// plus the normalized nearest distance when distance mode is enabled.
type Voronoi struct {
	frequency       float64
	displacement    float64
	seed            int64
	distanceEnabled bool
}

// NewVoronoi returns a Voronoi primitive for the given seed with
// frequency 1, displacement 1, distance mode off.
func NewVoronoi(seed int64) *Voronoi {
	return &Voronoi{frequency: 1, displacement: 1, seed: seed}
}

// Frequency returns the spatial frequency of the cell lattice.
func (v *Voronoi) Frequency() float64 { return v.frequency }

// SetFrequency scales the input coordinate before cell lookup.
func (v *Voronoi) SetFrequency(f float64) { v.frequency = f }

// Displacement returns the per-cell value scale.
func (v *Voronoi) Displacement() float64 { return v.displacement }

// SetDisplacement scales the per-cell pseudo-random value added to the
// output.
func (v *Voronoi) SetDisplacement(d float64) { v.displacement = d }

// Seed returns the current seed.
func (v *Voronoi) Seed() int64 { return v.seed }

// SetSeed changes the cell-seeding hash. No tables to rebuild: seeding is
// pure integer hashing.
func (v *Voronoi) SetSeed(seed int64) { v.seed = seed }

// DistanceEnabled reports whether the normalized nearest-seed distance is
// added to the output.
func (v *Voronoi) DistanceEnabled() bool { return v.distanceEnabled }

// SetDistanceEnabled toggles distance mode.
func (v *Voronoi) SetDistanceEnabled(on bool) { v.distanceEnabled = on }

// Dimensions reports the supported input dimensionality. Voronoi is
// 3D-only.
func (v *Voronoi) Dimensions() int { return 3 }

// Eval3D evaluates the cell noise at (x, y, z).
//
// Scan order is fixed — z outer, y middle, x inner, ascending — and only a
// strictly smaller squared distance replaces the candidate, so equidistant
// seeds deterministically resolve to the earliest-scanned cell.
func (v *Voronoi) Eval3D(x, y, z float64) float64 {
	x *= v.frequency
	y *= v.frequency
	z *= v.frequency

	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)

	minDist := math.MaxFloat64
	var xCand, yCand, zCand float64

	for zCur := zi - 2; zCur <= zi+2; zCur++ {
		for yCur := yi - 2; yCur <= yi+2; yCur++ {
			for xCur := xi - 2; xCur <= xi+2; xCur++ {
				// The cell's seed point: cell corner plus a hashed offset
				// per axis, decorrelated by consecutive seeds.
				xPos := float64(xCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed)
				yPos := float64(yCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed+1)
				zPos := float64(zCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed+2)

				xd := xPos - x
				yd := yPos - y
				zd := zPos - z
				dist := xd*xd + yd*yd + zd*zd

				if dist < minDist {
					minDist = dist
					xCand, yCand, zCand = xPos, yPos, zPos
				}
			}
		}
	}

	var value float64
	if v.distanceEnabled {
		value = math.Sqrt(minDist)*sqrt3 - 1.0
	}

	return value + v.displacement*noisegen.ValueNoise3D(
		fastFloor(xCand), fastFloor(yCand), fastFloor(zCand), v.seed)
}
