package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/generator"
	"github.com/tedd/libnoise/transform"
)

// axisSource reports a weighted sum of its coordinates, making coordinate
// remapping directly observable.
type axisSource struct{}

func (axisSource) Dimensions() int { return 4 }

func (axisSource) Eval1D(x float64) float64 { return x }

func (axisSource) Eval2D(x, y float64) float64 { return x + 10*y }

func (axisSource) Eval3D(x, y, z float64) float64 { return x + 10*y + 100*z }

func (axisSource) Eval4D(x, y, z, w float64) float64 { return x + 10*y + 100*z + 1000*w }

// TestRotate_ZeroAnglesIdentity verifies Rotate(0,0,0) reproduces the
// source bit-for-bit over a coordinate sweep.
func TestRotate_ZeroAnglesIdentity(t *testing.T) {
	src := generator.NewPerlin(44)
	r := transform.NewRotate(src)

	for c := -3.0; c < 3; c += 0.47 {
		assert.Equal(t, src.Eval3D(c, c*0.6, -c), r.Eval3D(c, c*0.6, -c))
	}
}

// TestRotate_QuarterTurnAboutX verifies a 90° rotation about the x axis
// maps the sampled coordinate (x, y, z) onto (x, -z, y) up to
// floating-point rounding.
func TestRotate_QuarterTurnAboutX(t *testing.T) {
	r := transform.NewRotate(axisSource{})
	r.SetXAngle(90)

	got := r.Eval3D(1, 2, 3)
	want := axisSource{}.Eval3D(1, -3, 2)
	assert.InDelta(t, want, got, 1e-9)
}

// TestRotate_SetterRebuildsMatrix verifies each angle setter takes effect
// immediately: two equivalent ways of reaching the same angles agree.
func TestRotate_SetterRebuildsMatrix(t *testing.T) {
	a := transform.NewRotate(axisSource{})
	a.SetAngles(30, 40, 50)

	b := transform.NewRotate(axisSource{})
	b.SetXAngle(30)
	b.SetYAngle(40)
	b.SetZAngle(50)

	assert.Equal(t, a.Eval3D(1.5, -2.5, 0.5), b.Eval3D(1.5, -2.5, 0.5))
}

// TestScale_UnitIdentity verifies Scale(1,1,1,1) reproduces the source
// bit-for-bit at every arity.
func TestScale_UnitIdentity(t *testing.T) {
	src := generator.NewPerlin(45)
	s := transform.NewScale(src)

	for c := -3.0; c < 3; c += 0.47 {
		assert.Equal(t, src.Eval1D(c), s.Eval1D(c))
		assert.Equal(t, src.Eval2D(c, -c), s.Eval2D(c, -c))
		assert.Equal(t, src.Eval3D(c, -c, c*2), s.Eval3D(c, -c, c*2))
		assert.Equal(t, src.Eval4D(c, -c, c*2, 1), s.Eval4D(c, -c, c*2, 1))
	}
}

// TestScale_PerAxisFactors verifies each axis scales independently.
func TestScale_PerAxisFactors(t *testing.T) {
	s := transform.NewScale(axisSource{})
	s.SetFactors(2, 3, 4, 5)

	assert.Equal(t, axisSource{}.Eval4D(2, 6, 12, 20), s.Eval4D(1, 2, 3, 4))
}

// TestTranslate_ZeroIdentity verifies zero offsets reproduce the source
// bit-for-bit.
func TestTranslate_ZeroIdentity(t *testing.T) {
	src := generator.NewPerlin(46)
	tr := transform.NewTranslate(src)

	for c := -3.0; c < 3; c += 0.47 {
		assert.Equal(t, src.Eval3D(c, c, c), tr.Eval3D(c, c, c))
	}
}

// TestTranslate_Offsets verifies the additive remap per axis.
func TestTranslate_Offsets(t *testing.T) {
	tr := transform.NewTranslate(axisSource{})
	tr.SetOffsets(1, 2, 3, 4)

	assert.Equal(t, axisSource{}.Eval4D(2, 4, 6, 8), tr.Eval4D(1, 2, 3, 4))
}

// TestTurbulence_ZeroPowerIdentity verifies power 0 leaves the coordinate
// untouched.
func TestTurbulence_ZeroPowerIdentity(t *testing.T) {
	src := generator.NewPerlin(47)
	tb := transform.NewTurbulence(src, 7)
	tb.SetPower(0)

	for c := -2.0; c < 2; c += 0.39 {
		assert.Equal(t, src.Eval3D(c, -c, c*0.5), tb.Eval3D(c, -c, c*0.5))
	}
}

// TestTurbulence_WarpsDomain verifies a non-zero power displaces the
// sampled coordinate somewhere in a sweep.
func TestTurbulence_WarpsDomain(t *testing.T) {
	src := generator.NewPerlin(48)
	tb := transform.NewTurbulence(src, 7)
	tb.SetPower(1)

	warped := false
	for c := 0.1; !warped && c < 4; c += 0.33 {
		warped = tb.Eval3D(c, c, c) != src.Eval3D(c, c, c)
	}
	assert.True(t, warped, "turbulence with power 1 must displace the domain")
}

// TestTurbulence_Determinism verifies seed-stable warping and that SetSeed
// preserves roughness and frequency.
func TestTurbulence_Determinism(t *testing.T) {
	a := transform.NewTurbulence(generator.NewPerlin(1), 9)
	b := transform.NewTurbulence(generator.NewPerlin(1), 9)
	assert.Equal(t, a.Eval3D(0.7, 1.4, 2.1), b.Eval3D(0.7, 1.4, 2.1))

	a.SetRoughness(5)
	a.SetFrequency(2.5)
	a.SetSeed(10)
	assert.Equal(t, 5.0, a.Roughness(), "SetSeed must preserve roughness")
	assert.Equal(t, 2.5, a.Frequency(), "SetSeed must preserve frequency")
}

// TestTransform_ContractViolations verifies unbound transformers panic with
// the core sentinel.
func TestTransform_ContractViolations(t *testing.T) {
	require.PanicsWithValue(t, core.ErrNoSource, func() {
		transform.NewRotate(nil).Eval3D(1, 2, 3)
	})
	require.PanicsWithValue(t, core.ErrNoSource, func() {
		transform.NewScale(nil).Eval2D(1, 2)
	})
	require.PanicsWithValue(t, core.ErrNoSource, func() {
		transform.NewTranslate(nil).Eval1D(1)
	})
	require.PanicsWithValue(t, core.ErrNoSource, func() {
		transform.NewTurbulence(nil, 3).Eval3D(1, 2, 3)
	})
}

// TestRotate_PreservesRadius sanity-checks the matrix: rotating a point
// must preserve its distance from the origin, observed through a source
// that reports the squared radius.
func TestRotate_PreservesRadius(t *testing.T) {
	r := transform.NewRotate(radiusSource{})
	r.SetAngles(33, -71, 140)

	want := 1.0*1 + 2.0*2 + 3.0*3
	assert.InDelta(t, want, r.Eval3D(1, 2, 3), 1e-9)
}

// radiusSource reports the squared distance from the origin.
type radiusSource struct{}

func (radiusSource) Dimensions() int { return 3 }

func (radiusSource) Eval3D(x, y, z float64) float64 { return x*x + y*y + z*z }
