package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tedd/libnoise/core"
	"github.com/tedd/libnoise/modifier"
)

// countingSource returns a fixed value and counts how many times each
// Eval method was invoked, so tests can observe memoization.
type countingSource struct {
	value float64
	calls int
}

func (s *countingSource) Dimensions() int { return 4 }

func (s *countingSource) Eval1D(x float64) float64 {
	s.calls++
	return s.value
}

func (s *countingSource) Eval2D(x, y float64) float64 {
	s.calls++
	return s.value
}

func (s *countingSource) Eval3D(x, y, z float64) float64 {
	s.calls++
	return s.value
}

func (s *countingSource) Eval4D(x, y, z, w float64) float64 {
	s.calls++
	return s.value
}

// rampSource returns its first coordinate, turning coordinate choice
// into output choice for remap tests.
type rampSource struct{}

func (rampSource) Dimensions() int { return 4 }

func (rampSource) Eval1D(x float64) float64 { return x }

func (rampSource) Eval2D(x, y float64) float64 { return x }

func (rampSource) Eval3D(x, y, z float64) float64 { return x }

func (rampSource) Eval4D(x, y, z, w float64) float64 { return x }

// TestCache_RepeatedCoordinateHitsSlot verifies that re-evaluating the
// same coordinate with the same arity consults the source only once.
func TestCache_RepeatedCoordinateHitsSlot(t *testing.T) {
	src := &countingSource{value: 0.25}
	c := modifier.NewCache(src)

	first := c.Eval3D(1, 2, 3)
	second := c.Eval3D(1, 2, 3)
	require.Equal(t, first, second)
	require.Equal(t, 1, src.calls)

	c.Eval3D(1, 2, 4)
	require.Equal(t, 2, src.calls)
}

// TestCache_ArityIsPartOfTheKey verifies that a cached 2D value is not
// served to a 3D call even when the shared coordinates match.
func TestCache_ArityIsPartOfTheKey(t *testing.T) {
	src := &countingSource{value: 0.5}
	c := modifier.NewCache(src)

	c.Eval2D(1, 2)
	c.Eval3D(1, 2, 0)
	require.Equal(t, 2, src.calls)
}

// TestCache_SetSourceInvalidates verifies that rebinding the source
// drops the memoized value.
func TestCache_SetSourceInvalidates(t *testing.T) {
	first := &countingSource{value: 0.25}
	second := &countingSource{value: 0.75}
	c := modifier.NewCache(first)

	require.Equal(t, 0.25, c.Eval3D(1, 2, 3))
	c.SetSource(second)
	require.Equal(t, 0.75, c.Eval3D(1, 2, 3))
	require.Equal(t, 1, second.calls)
}

// TestCache_UnboundSourcePanics verifies the contract violation on an
// unbound cache.
func TestCache_UnboundSourcePanics(t *testing.T) {
	c := modifier.NewCache(nil)
	require.PanicsWithValue(t, core.ErrNoSource, func() { c.Eval3D(0, 0, 0) })
}

// TestClamp_Defaults verifies the [-1, 1] default bounds and the
// passthrough of in-range values.
func TestClamp_Defaults(t *testing.T) {
	c := modifier.NewClamp(rampSource{})

	lower, upper := c.Bounds()
	require.Equal(t, -1.0, lower)
	require.Equal(t, 1.0, upper)

	require.Equal(t, 0.5, c.Eval2D(0.5, 0))
	require.Equal(t, 1.0, c.Eval2D(3.0, 0))
	require.Equal(t, -1.0, c.Eval2D(-3.0, 0))
}

// TestClamp_SetBounds verifies bound replacement and the rejection of an
// inverted pair.
func TestClamp_SetBounds(t *testing.T) {
	c := modifier.NewClamp(rampSource{})

	require.NoError(t, c.SetBounds(0, 0.5))
	require.Equal(t, 0.0, c.Eval1D(-2))
	require.Equal(t, 0.5, c.Eval1D(2))

	require.ErrorIs(t, c.SetBounds(1, -1), modifier.ErrBounds)
	lower, upper := c.Bounds()
	require.Equal(t, 0.0, lower)
	require.Equal(t, 0.5, upper)

	// Equal bounds collapse the output to a constant.
	require.NoError(t, c.SetBounds(0.25, 0.25))
	require.Equal(t, 0.25, c.Eval1D(0.9))
}

// TestCurve_PassesThroughControlPoints verifies that the spline
// reproduces every control point exactly.
func TestCurve_PassesThroughControlPoints(t *testing.T) {
	c := modifier.NewCurve(rampSource{})
	points := []modifier.ControlPoint{
		{Input: -1, Output: -0.5},
		{Input: -0.25, Output: 0.1},
		{Input: 0.25, Output: 0.3},
		{Input: 1, Output: 0.9},
	}
	for _, p := range points {
		require.NoError(t, c.AddControlPoint(p.Input, p.Output))
	}

	for _, p := range points {
		require.Equal(t, p.Output, c.Eval3D(p.Input, 0, 0))
	}
}

// TestCurve_ClampsOutsideRange verifies that inputs beyond the outermost
// control points return the outermost outputs.
func TestCurve_ClampsOutsideRange(t *testing.T) {
	c := modifier.NewCurve(rampSource{})
	require.NoError(t, c.AddControlPoint(-1, -0.5))
	require.NoError(t, c.AddControlPoint(0, 0))
	require.NoError(t, c.AddControlPoint(0.5, 0.25))
	require.NoError(t, c.AddControlPoint(1, 0.75))

	require.Equal(t, -0.5, c.Eval1D(-5))
	require.Equal(t, 0.75, c.Eval1D(5))
}

// TestCurve_MonotoneOnLinearPoints verifies strict monotonicity across
// the covered range for uniformly spaced linear control points.
func TestCurve_MonotoneOnLinearPoints(t *testing.T) {
	c := modifier.NewCurve(rampSource{})
	for _, v := range []float64{-1, -1.0 / 3.0, 1.0 / 3.0, 1} {
		require.NoError(t, c.AddControlPoint(v, v))
	}

	prev := c.Eval1D(-1)
	for i := 1; i <= 200; i++ {
		v := -1.0 + float64(i)/100.0
		cur := c.Eval1D(v)
		require.Greater(t, cur, prev, "input %v", v)
		prev = cur
	}
}

// TestCurve_DuplicateInputRejected verifies that an occupied input
// position is rejected and the existing point kept.
func TestCurve_DuplicateInputRejected(t *testing.T) {
	c := modifier.NewCurve(rampSource{})
	require.NoError(t, c.AddControlPoint(0.5, 1))
	require.ErrorIs(t, c.AddControlPoint(0.5, 2), modifier.ErrDuplicatePoint)

	got := c.ControlPoints()
	require.Len(t, got, 1)
	require.Equal(t, 1.0, got[0].Output)
}

// TestCurve_TooFewPointsPanics verifies the contract violation when the
// spline is evaluated with fewer than four points.
func TestCurve_TooFewPointsPanics(t *testing.T) {
	c := modifier.NewCurve(rampSource{})
	require.NoError(t, c.AddControlPoint(0, 0))
	require.NoError(t, c.AddControlPoint(1, 1))
	require.NoError(t, c.AddControlPoint(2, 2))
	require.PanicsWithValue(t, modifier.ErrTooFewPoints, func() { c.Eval1D(0.5) })
}

// TestTerrace_PassesThroughControlPoints verifies exact reproduction of
// every control point, inverted or not.
func TestTerrace_PassesThroughControlPoints(t *testing.T) {
	for _, invert := range []bool{false, true} {
		tr := modifier.NewTerrace(rampSource{})
		tr.SetInverted(invert)
		for _, v := range []float64{-1, -0.25, 0.5, 1} {
			require.NoError(t, tr.AddControlPoint(v))
		}
		for _, v := range []float64{-1, -0.25, 0.5, 1} {
			require.Equal(t, v, tr.Eval1D(v), "invert=%v point %v", invert, v)
		}
	}
}

// TestTerrace_EasingDirection verifies that between two points the plain
// terrace hugs the lower step and the inverted terrace hugs the upper.
func TestTerrace_EasingDirection(t *testing.T) {
	tr := modifier.NewTerrace(rampSource{})
	require.NoError(t, tr.MakeControlPoints(2))

	mid := tr.Eval1D(0)
	require.Less(t, mid, 0.0)

	tr.SetInverted(true)
	require.Greater(t, tr.Eval1D(0), 0.0)
}

// TestTerrace_MakeControlPoints verifies the even spread over [-1, 1]
// and the minimum-count guard.
func TestTerrace_MakeControlPoints(t *testing.T) {
	tr := modifier.NewTerrace(rampSource{})
	require.NoError(t, tr.MakeControlPoints(5))
	require.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, tr.ControlPoints())

	require.ErrorIs(t, tr.MakeControlPoints(1), modifier.ErrTooFewPoints)
}

// TestTerrace_ClampsOutsideRange verifies the outermost steps beyond the
// covered range.
func TestTerrace_ClampsOutsideRange(t *testing.T) {
	tr := modifier.NewTerrace(rampSource{})
	require.NoError(t, tr.MakeControlPoints(3))

	require.Equal(t, -1.0, tr.Eval1D(-4))
	require.Equal(t, 1.0, tr.Eval1D(4))
}

// TestTerrace_TooFewPointsPanics verifies the contract violation when a
// terrace is evaluated with fewer than two points.
func TestTerrace_TooFewPointsPanics(t *testing.T) {
	tr := modifier.NewTerrace(rampSource{})
	require.NoError(t, tr.AddControlPoint(0))
	require.PanicsWithValue(t, modifier.ErrTooFewPoints, func() { tr.Eval1D(0.5) })
}

// TestScaleBias_Remap verifies the affine remap and the identity
// defaults.
func TestScaleBias_Remap(t *testing.T) {
	s := modifier.NewScaleBias(rampSource{})
	require.Equal(t, 0.5, s.Eval4D(0.5, 0, 0, 0))

	s.SetScale(2)
	s.SetBias(0.25)
	require.Equal(t, 1.25, s.Eval2D(0.5, 0))
	require.Equal(t, 2.0, s.Scale())
	require.Equal(t, 0.25, s.Bias())
}

// TestAbsInvert_Remap verifies the two trivial remaps across arities.
func TestAbsInvert_Remap(t *testing.T) {
	a := modifier.NewAbs(rampSource{})
	require.Equal(t, 0.5, a.Eval1D(-0.5))
	require.Equal(t, 0.5, a.Eval3D(0.5, 0, 0))

	i := modifier.NewInvert(rampSource{})
	require.Equal(t, -0.5, i.Eval1D(0.5))
	require.Equal(t, 0.5, i.Eval4D(-0.5, 0, 0, 0))
}

// TestModifier_UnboundSourcePanics verifies the shared contract
// violation across the pure remaps.
func TestModifier_UnboundSourcePanics(t *testing.T) {
	require.PanicsWithValue(t, core.ErrNoSource, func() { modifier.NewClamp(nil).Eval2D(0, 0) })
	require.PanicsWithValue(t, core.ErrNoSource, func() { modifier.NewScaleBias(nil).Eval3D(0, 0, 0) })
	require.PanicsWithValue(t, core.ErrNoSource, func() { modifier.NewAbs(nil).Eval1D(0) })
	require.PanicsWithValue(t, core.ErrNoSource, func() { modifier.NewInvert(nil).Eval4D(0, 0, 0, 0) })
}
