package noisegen

// Quality selects the per-axis smoothing curve used when blending lattice
// corner contributions.
type Quality int

const (
	// QualityFast blends corners linearly (no easing).
	QualityFast Quality = iota

	// QualityStandard eases each axis through the cubic s-curve 3t²−2t³.
	QualityStandard

	// QualityBest eases each axis through the quintic s-curve
	// 6t⁵−15t⁴+10t³, giving a continuous second derivative across cell
	// boundaries.
	QualityBest
)

// Lerp linearly interpolates between a and b by t∈[0,1].
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// SCurve3 maps t∈[0,1] through the cubic s-curve 3t²−2t³.
func SCurve3(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SCurve5 maps t∈[0,1] through the quintic s-curve 6t⁵−15t⁴+10t³.
func SCurve5(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Cubic interpolates between n1 and n2 by a∈[0,1] on the cubic through the
// four knots n0..n3 (Catmull-Rom-style). Used by the curve modifier and by
// anything needing smooth 4-point remapping.
func Cubic(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1

	return p*a*a*a + q*a*a + r*a + s
}

// smooth applies the quality-selected easing to a single axis fraction.
func smooth(t float64, q Quality) float64 {
	switch q {
	case QualityFast:
		return t
	case QualityStandard:
		return SCurve3(t)
	default:
		return SCurve5(t)
	}
}
