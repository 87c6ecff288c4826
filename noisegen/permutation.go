package noisegen

import "math"

// tableSize is the number of distinct permutation entries; the stored table
// is doubled so folded indices up to 2·tableSize−1 never wrap mid-lookup.
const tableSize = 256

// Permutation is a seed-derived pseudo-random index table mapping integer
// lattice coordinates to gradient selectors. It is immutable once built and
// may be shared freely across concurrent evaluations.
type Permutation struct {
	p [tableSize * 2]int
}

// NewPermutation builds the table for the given seed: the identity 0..255
// shuffled by Fisher–Yates over a 64-bit LCG, then doubled for
// wraparound-free folded indexing. The same seed always yields the same
// table on every platform.
func NewPermutation(seed int64) *Permutation {
	var base [tableSize]int
	for i := range base {
		base[i] = i
	}

	s := seed
	for i := tableSize - 1; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	t := &Permutation{}
	for i := 0; i < tableSize; i++ {
		t.p[i] = base[i]
		t.p[i+tableSize] = base[i]
	}

	return t
}

// At returns the table entry at index i. Valid for i in [0, 512): callers
// mask their lattice coordinate to [0, 255] and may add one folded entry
// plus a corner offset without leaving the doubled table.
func (t *Permutation) At(i int) int {
	return t.p[i]
}

// floorInt returns the integer lattice coordinate below x.
func floorInt(x float64) int {
	return int(math.Floor(x))
}
