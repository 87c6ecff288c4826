package noisegen

// grad1 dots a pseudo-random 1D gradient with the offset x.
// Gradient magnitudes are (1..8)/8 with a hash-selected sign.
func grad1(hash int, x float64) float64 {
	h := hash & 15
	g := float64(1+(h&7)) / 8
	if h&8 != 0 {
		g = -g
	}

	return g * x
}

// grad2 dots one of four diagonal gradients with the offset (x, y).
func grad2(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// grad3 dots one of the 12 cube-edge gradients with the offset (x, y, z),
// using Ken Perlin's bit-selection form (hashes 12–15 repeat earlier
// gradients so the selector stays a power of two).
func grad3(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// grad4 dots one of the 32 hypercube-edge gradients with the offset
// (x, y, z, w).
func grad4(hash int, x, y, z, w float64) float64 {
	g := &Grad4[hash&31]

	return g[0]*x + g[1]*y + g[2]*z + g[3]*w
}

// GradientCoherent1D evaluates 1D lattice gradient noise at x.
func (t *Permutation) GradientCoherent1D(x float64, q Quality) float64 {
	xi := floorInt(x) & (tableSize - 1)
	xf := x - float64(floorInt(x))

	u := smooth(xf, q)

	a := t.p[xi]
	b := t.p[xi+1]

	return Lerp(u, grad1(a, xf), grad1(b, xf-1))
}

// GradientCoherent2D evaluates 2D lattice gradient noise at (x, y): the four
// corners of the containing unit square, hashed with additive index folding,
// blended per axis by the quality curve.
func (t *Permutation) GradientCoherent2D(x, y float64, q Quality) float64 {
	xi := floorInt(x) & (tableSize - 1)
	yi := floorInt(y) & (tableSize - 1)

	xf := x - float64(floorInt(x))
	yf := y - float64(floorInt(y))

	u := smooth(xf, q)
	v := smooth(yf, q)

	aa := t.p[t.p[xi]+yi]
	ab := t.p[t.p[xi]+yi+1]
	ba := t.p[t.p[xi+1]+yi]
	bb := t.p[t.p[xi+1]+yi+1]

	x1 := Lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := Lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))

	return Lerp(v, x1, x2)
}

// GradientCoherent3D evaluates 3D lattice gradient noise at (x, y, z):
// eight corner contributions blended along x, then y, then z.
func (t *Permutation) GradientCoherent3D(x, y, z float64, q Quality) float64 {
	xi := floorInt(x) & (tableSize - 1)
	yi := floorInt(y) & (tableSize - 1)
	zi := floorInt(z) & (tableSize - 1)

	xf := x - float64(floorInt(x))
	yf := y - float64(floorInt(y))
	zf := z - float64(floorInt(z))

	u := smooth(xf, q)
	v := smooth(yf, q)
	w := smooth(zf, q)

	aaa := t.p[t.p[t.p[xi]+yi]+zi]
	aba := t.p[t.p[t.p[xi]+yi+1]+zi]
	aab := t.p[t.p[t.p[xi]+yi]+zi+1]
	abb := t.p[t.p[t.p[xi]+yi+1]+zi+1]
	baa := t.p[t.p[t.p[xi+1]+yi]+zi]
	bba := t.p[t.p[t.p[xi+1]+yi+1]+zi]
	bab := t.p[t.p[t.p[xi+1]+yi]+zi+1]
	bbb := t.p[t.p[t.p[xi+1]+yi+1]+zi+1]

	x1 := Lerp(u, grad3(aaa, xf, yf, zf), grad3(baa, xf-1, yf, zf))
	x2 := Lerp(u, grad3(aba, xf, yf-1, zf), grad3(bba, xf-1, yf-1, zf))
	y1 := Lerp(v, x1, x2)

	x1 = Lerp(u, grad3(aab, xf, yf, zf-1), grad3(bab, xf-1, yf, zf-1))
	x2 = Lerp(u, grad3(abb, xf, yf-1, zf-1), grad3(bbb, xf-1, yf-1, zf-1))
	y2 := Lerp(v, x1, x2)

	return Lerp(w, y1, y2)
}

// GradientCoherent4D evaluates 4D lattice gradient noise at (x, y, z, w):
// sixteen corner contributions folded through the permutation table and
// blended along each axis in turn.
func (t *Permutation) GradientCoherent4D(x, y, z, w float64, q Quality) float64 {
	xi := floorInt(x) & (tableSize - 1)
	yi := floorInt(y) & (tableSize - 1)
	zi := floorInt(z) & (tableSize - 1)
	wi := floorInt(w) & (tableSize - 1)

	xf := x - float64(floorInt(x))
	yf := y - float64(floorInt(y))
	zf := z - float64(floorInt(z))
	wf := w - float64(floorInt(w))

	su := smooth(xf, q)
	sv := smooth(yf, q)
	sw := smooth(zf, q)
	st := smooth(wf, q)

	// corner hash with additive folding: p[p[p[p[x]+y]+z]+w]
	h := func(cx, cy, cz, cw int) int {
		return t.p[t.p[t.p[t.p[xi+cx]+yi+cy]+zi+cz]+wi+cw]
	}

	// Blend along x for each of the eight (y,z,w) corner pairs.
	x1 := Lerp(su, grad4(h(0, 0, 0, 0), xf, yf, zf, wf), grad4(h(1, 0, 0, 0), xf-1, yf, zf, wf))
	x2 := Lerp(su, grad4(h(0, 1, 0, 0), xf, yf-1, zf, wf), grad4(h(1, 1, 0, 0), xf-1, yf-1, zf, wf))
	y1 := Lerp(sv, x1, x2)

	x1 = Lerp(su, grad4(h(0, 0, 1, 0), xf, yf, zf-1, wf), grad4(h(1, 0, 1, 0), xf-1, yf, zf-1, wf))
	x2 = Lerp(su, grad4(h(0, 1, 1, 0), xf, yf-1, zf-1, wf), grad4(h(1, 1, 1, 0), xf-1, yf-1, zf-1, wf))
	y2 := Lerp(sv, x1, x2)
	z1 := Lerp(sw, y1, y2)

	x1 = Lerp(su, grad4(h(0, 0, 0, 1), xf, yf, zf, wf-1), grad4(h(1, 0, 0, 1), xf-1, yf, zf, wf-1))
	x2 = Lerp(su, grad4(h(0, 1, 0, 1), xf, yf-1, zf, wf-1), grad4(h(1, 1, 0, 1), xf-1, yf-1, zf, wf-1))
	y1 = Lerp(sv, x1, x2)

	x1 = Lerp(su, grad4(h(0, 0, 1, 1), xf, yf, zf-1, wf-1), grad4(h(1, 0, 1, 1), xf-1, yf, zf-1, wf-1))
	x2 = Lerp(su, grad4(h(0, 1, 1, 1), xf, yf-1, zf-1, wf-1), grad4(h(1, 1, 1, 1), xf-1, yf-1, zf-1, wf-1))
	y2 = Lerp(sv, x1, x2)
	z2 := Lerp(sw, y1, y2)

	return Lerp(st, z1, z2)
}
