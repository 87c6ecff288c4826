package transform

import (
	"math"

	"github.com/tedd/libnoise/core"
)

const degToRad = math.Pi / 180.0

// Rotate rotates the input coordinate around the origin by three Euler
// angles (degrees) before delegating. The 3×3 rotation matrix is derived
// state: every angle setter rebuilds all nine entries from all three
// current angles, so matrix and angles are always consistent.
//
// Rotation is 3D-only.
type Rotate struct {
	core.Sourced

	xAngle, yAngle, zAngle float64

	x1, y1, z1 float64
	x2, y2, z2 float64
	x3, y3, z3 float64
}

// NewRotate returns a Rotate wrapping src with zero angles (the identity
// rotation).
func NewRotate(src core.Module) *Rotate {
	r := &Rotate{}
	r.SetSource(src)
	r.recompute()

	return r
}

// Angles returns the current Euler angles in degrees.
func (r *Rotate) Angles() (x, y, z float64) {
	return r.xAngle, r.yAngle, r.zAngle
}

// SetAngles sets all three Euler angles (degrees) and rebuilds the matrix.
func (r *Rotate) SetAngles(x, y, z float64) {
	r.xAngle, r.yAngle, r.zAngle = x, y, z
	r.recompute()
}

// SetXAngle sets the rotation about the x axis (degrees) and rebuilds the
// matrix.
func (r *Rotate) SetXAngle(a float64) {
	r.xAngle = a
	r.recompute()
}

// SetYAngle sets the rotation about the y axis (degrees) and rebuilds the
// matrix.
func (r *Rotate) SetYAngle(a float64) {
	r.yAngle = a
	r.recompute()
}

// SetZAngle sets the rotation about the z axis (degrees) and rebuilds the
// matrix.
func (r *Rotate) SetZAngle(a float64) {
	r.zAngle = a
	r.recompute()
}

// recompute rebuilds the full rotation matrix from the three current
// angles.
func (r *Rotate) recompute() {
	xCos, xSin := math.Cos(r.xAngle*degToRad), math.Sin(r.xAngle*degToRad)
	yCos, ySin := math.Cos(r.yAngle*degToRad), math.Sin(r.yAngle*degToRad)
	zCos, zSin := math.Cos(r.zAngle*degToRad), math.Sin(r.zAngle*degToRad)

	r.x1 = ySin*xSin*zSin + yCos*zCos
	r.y1 = xCos * zSin
	r.z1 = ySin*zCos - yCos*xSin*zSin
	r.x2 = ySin*xSin*zCos - yCos*zSin
	r.y2 = xCos * zCos
	r.z2 = -yCos*xSin*zCos - ySin*zSin
	r.x3 = -ySin * xCos
	r.y3 = xSin
	r.z3 = yCos * xCos
}

// Dimensions reports the supported input dimensionality. Rotation is
// 3D-only.
func (r *Rotate) Dimensions() int { return 3 }

// Eval3D rotates (x, y, z) and delegates to the source.
func (r *Rotate) Eval3D(x, y, z float64) float64 {
	nx := r.x1*x + r.y1*y + r.z1*z
	ny := r.x2*x + r.y2*y + r.z2*z
	nz := r.x3*x + r.y3*y + r.z3*z

	return core.Source3D(r.Source()).Eval3D(nx, ny, nz)
}
