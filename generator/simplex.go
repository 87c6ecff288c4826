package generator

import (
	"math"

	"github.com/tedd/libnoise/noisegen"
)

// Skew/unskew constants per dimension, derived from sqrt(n+1):
// Fn = (sqrt(n+1)-1)/n skews the input onto the simplex lattice,
// Gn = (1-1/sqrt(n+1))/n unskews cell origins back to input space.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
	f4 = (math.Sqrt(5.0) - 1.0) / 4.0
	g4 = (5.0 - math.Sqrt(5.0)) / 20.0
)

const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// simplexOrder is the 4D corner-traversal table. The six pairwise
// comparisons of the relative coordinate magnitudes pack into a 6-bit index;
// each valid entry ranks the axes so that entry[axis] ≥ 3, ≥ 2 and ≥ 1 pick
// the axis steps of the second, third and fourth simplex corner. Impossible
// comparison combinations hold zero entries and are never indexed.
var simplexOrder = [64][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 0, 0}, {0, 2, 3, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 2, 3, 0},
	{0, 2, 1, 3}, {0, 0, 0, 0}, {0, 3, 1, 2}, {0, 3, 2, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 3, 2, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{1, 2, 0, 3}, {0, 0, 0, 0}, {1, 3, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 3, 1}, {0, 0, 0, 0}, {2, 1, 3, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{2, 0, 1, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 0, 1, 2}, {3, 0, 2, 1}, {0, 0, 0, 0}, {3, 1, 2, 0},
	{2, 1, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 1, 0, 2}, {0, 0, 0, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// Simplex is simplex noise over 2–4 dimensional coordinates.
//
// Per corner of the containing simplex, the contribution is
// (max(0, r²−|off|²))² · dot(gradient, off); the sum is scaled by an
// empirical per-dimension constant (70, 32, 27) so output usually lies in
// [-1, 1]. There is no 1D form.
type Simplex struct {
	perm *noisegen.Permutation
	seed int64
}

// NewSimplex returns a Simplex primitive for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{perm: noisegen.NewPermutation(seed), seed: seed}
}

// Seed returns the current seed.
func (s *Simplex) Seed() int64 { return s.seed }

// SetSeed rederives the permutation table from the new seed.
func (s *Simplex) SetSeed(seed int64) {
	s.seed = seed
	s.perm = noisegen.NewPermutation(seed)
}

// Dimensions reports the maximum supported input dimensionality.
// Simplex supports 2D, 3D and 4D; there is no 1D capability.
func (s *Simplex) Dimensions() int { return 4 }

func dot2(g *[3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g *[3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

func dot4(g *[4]float64, x, y, z, w float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w
}

// Eval2D evaluates 2D simplex noise at (x, y).
func (s *Simplex) Eval2D(x, y float64) float64 {
	var n0, n1, n2 float64

	// Skew the input to find the containing simplex cell.
	skew := (x + y) * f2
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)

	// Unskew the cell origin and take offsets in input space.
	unskew := float64(i+j) * g2
	x0 := x - (float64(i) - unskew)
	y0 := y - (float64(j) - unskew)

	// The 2D simplex is a triangle: one comparison picks the middle corner.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		gi := s.perm.At(ii+s.perm.At(jj)) % 12
		n0 = t0 * t0 * dot2(&noisegen.Grad3[gi], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		gi := s.perm.At(ii+i1+s.perm.At(jj+j1)) % 12
		n1 = t1 * t1 * dot2(&noisegen.Grad3[gi], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		gi := s.perm.At(ii+1+s.perm.At(jj+1)) % 12
		n2 = t2 * t2 * dot2(&noisegen.Grad3[gi], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// Eval3D evaluates 3D simplex noise at (x, y, z).
func (s *Simplex) Eval3D(x, y, z float64) float64 {
	var n0, n1, n2, n3 float64

	skew := (x + y + z) * f3
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)
	k := fastFloor(z + skew)

	unskew := float64(i+j+k) * g3
	x0 := x - (float64(i) - unskew)
	y0 := y - (float64(j) - unskew)
	z0 := z - (float64(k) - unskew)

	// The 3D simplex is an irregular tetrahedron; the nested comparisons
	// yield one of six axis orderings for the two middle corners.
	var i1, j1, k1 int
	var i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0 // X Y Z
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1 // X Z Y
	case x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1 // Z X Y
	case y0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1 // Z Y X
	case x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1 // Y Z X
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0 // Y X Z
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0
	if t0 > 0 {
		t0 *= t0
		gi := s.perm.At(ii+s.perm.At(jj+s.perm.At(kk))) % 12
		n0 = t0 * t0 * dot3(&noisegen.Grad3[gi], x0, y0, z0)
	}

	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1
	if t1 > 0 {
		t1 *= t1
		gi := s.perm.At(ii+i1+s.perm.At(jj+j1+s.perm.At(kk+k1))) % 12
		n1 = t1 * t1 * dot3(&noisegen.Grad3[gi], x1, y1, z1)
	}

	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2
	if t2 > 0 {
		t2 *= t2
		gi := s.perm.At(ii+i2+s.perm.At(jj+j2+s.perm.At(kk+k2))) % 12
		n2 = t2 * t2 * dot3(&noisegen.Grad3[gi], x2, y2, z2)
	}

	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3
	if t3 > 0 {
		t3 *= t3
		gi := s.perm.At(ii+1+s.perm.At(jj+1+s.perm.At(kk+1))) % 12
		n3 = t3 * t3 * dot3(&noisegen.Grad3[gi], x3, y3, z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}

// Eval4D evaluates 4D simplex noise at (x, y, z, w).
func (s *Simplex) Eval4D(x, y, z, w float64) float64 {
	var n0, n1, n2, n3, n4 float64

	skew := (x + y + z + w) * f4
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)
	k := fastFloor(z + skew)
	l := fastFloor(w + skew)

	unskew := float64(i+j+k+l) * g4
	x0 := x - (float64(i) - unskew)
	y0 := y - (float64(j) - unskew)
	z0 := z - (float64(k) - unskew)
	w0 := w - (float64(l) - unskew)

	// Pack the six pairwise magnitude comparisons into a 6-bit index into
	// the corner-traversal table.
	c := 0
	if x0 > y0 {
		c |= 32
	}
	if x0 > z0 {
		c |= 16
	}
	if y0 > z0 {
		c |= 8
	}
	if x0 > w0 {
		c |= 4
	}
	if y0 > w0 {
		c |= 2
	}
	if z0 > w0 {
		c |= 1
	}
	order := &simplexOrder[c]

	// Rank ≥3 marks the largest axis (second corner), ≥2 the next (third
	// corner), ≥1 the next (fourth corner); the fifth corner steps all axes.
	var i1, j1, k1, l1 int
	var i2, j2, k2, l2 int
	var i3, j3, k3, l3 int
	if order[0] >= 3 {
		i1 = 1
	}
	if order[1] >= 3 {
		j1 = 1
	}
	if order[2] >= 3 {
		k1 = 1
	}
	if order[3] >= 3 {
		l1 = 1
	}
	if order[0] >= 2 {
		i2 = 1
	}
	if order[1] >= 2 {
		j2 = 1
	}
	if order[2] >= 2 {
		k2 = 1
	}
	if order[3] >= 2 {
		l2 = 1
	}
	if order[0] >= 1 {
		i3 = 1
	}
	if order[1] >= 1 {
		j3 = 1
	}
	if order[2] >= 1 {
		k3 = 1
	}
	if order[3] >= 1 {
		l3 = 1
	}

	x1 := x0 - float64(i1) + g4
	y1 := y0 - float64(j1) + g4
	z1 := z0 - float64(k1) + g4
	w1 := w0 - float64(l1) + g4
	x2 := x0 - float64(i2) + 2*g4
	y2 := y0 - float64(j2) + 2*g4
	z2 := z0 - float64(k2) + 2*g4
	w2 := w0 - float64(l2) + 2*g4
	x3 := x0 - float64(i3) + 3*g4
	y3 := y0 - float64(j3) + 3*g4
	z3 := z0 - float64(k3) + 3*g4
	w3 := w0 - float64(l3) + 3*g4
	x4 := x0 - 1 + 4*g4
	y4 := y0 - 1 + 4*g4
	z4 := z0 - 1 + 4*g4
	w4 := w0 - 1 + 4*g4

	ii := i & 255
	jj := j & 255
	kk := k & 255
	ll := l & 255

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0
	if t0 > 0 {
		t0 *= t0
		gi := s.perm.At(ii+s.perm.At(jj+s.perm.At(kk+s.perm.At(ll)))) % 32
		n0 = t0 * t0 * dot4(&noisegen.Grad4[gi], x0, y0, z0, w0)
	}

	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1
	if t1 > 0 {
		t1 *= t1
		gi := s.perm.At(ii+i1+s.perm.At(jj+j1+s.perm.At(kk+k1+s.perm.At(ll+l1)))) % 32
		n1 = t1 * t1 * dot4(&noisegen.Grad4[gi], x1, y1, z1, w1)
	}

	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2
	if t2 > 0 {
		t2 *= t2
		gi := s.perm.At(ii+i2+s.perm.At(jj+j2+s.perm.At(kk+k2+s.perm.At(ll+l2)))) % 32
		n2 = t2 * t2 * dot4(&noisegen.Grad4[gi], x2, y2, z2, w2)
	}

	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3
	if t3 > 0 {
		t3 *= t3
		gi := s.perm.At(ii+i3+s.perm.At(jj+j3+s.perm.At(kk+k3+s.perm.At(ll+l3)))) % 32
		n3 = t3 * t3 * dot4(&noisegen.Grad4[gi], x3, y3, z3, w3)
	}

	t4 := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4
	if t4 > 0 {
		t4 *= t4
		gi := s.perm.At(ii+1+s.perm.At(jj+1+s.perm.At(kk+1+s.perm.At(ll+1)))) % 32
		n4 = t4 * t4 * dot4(&noisegen.Grad4[gi], x4, y4, z4, w4)
	}

	return 27.0 * (n0 + n1 + n2 + n3 + n4)
}

// fastFloor floors without the math.Floor call overhead on the hot path.
func fastFloor(x float64) int {
	i := int(x)
	if x < float64(i) {
		return i - 1
	}

	return i
}
