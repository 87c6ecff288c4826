package noisegen

// Prime-mix constants of the integer lattice hash. Chosen (in the classic
// coherent-noise lineage) so distinct axes and seeds decorrelate.
const (
	xNoiseGen    = 1619
	yNoiseGen    = 31337
	zNoiseGen    = 6971
	seedNoiseGen = 1013
)

// IntValueNoise3D hashes an integer lattice coordinate and seed into a
// non-negative 31-bit value. Arithmetic is int32 with wraparound; the
// deliberate overflow is part of the hash and keeps results identical
// across platforms.
func IntValueNoise3D(x, y, z int, seed int64) int32 {
	n := (xNoiseGen*int32(x) + yNoiseGen*int32(y) + zNoiseGen*int32(z) + seedNoiseGen*int32(seed)) & 0x7fffffff
	n = (n >> 13) ^ n

	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D maps an integer lattice coordinate and seed to a value in
// [-1, 1].
func ValueNoise3D(x, y, z int, seed int64) float64 {
	return 1.0 - float64(IntValueNoise3D(x, y, z, seed))/1073741824.0
}
