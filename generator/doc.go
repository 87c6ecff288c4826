// Package generator provides the primitive noise modules — the leaves of an
// evaluation graph. Each primitive maps a coordinate to a scalar in roughly
// [-1, 1] with no upstream source.
//
// What:
//
//   - Perlin   — classic lattice gradient noise, 1D–4D, with a Quality
//     setting selecting linear, cubic or quintic corner blending.
//   - Simplex  — Gustavson-style simplex noise, 2D/3D/4D: skew into simplex
//     space, rank the relative coordinate magnitudes to pick the traversal
//     order of the n+1 corners, sum squared-falloff gradient contributions.
//   - Voronoi  — 3D cell noise: pseudo-random seed points in a 5×5×5 cell
//     neighborhood, nearest-seed selection with a stable scan order,
//     optional nearest-distance output.
//
// Determinism:
//
//	Every primitive derives its lookup tables from an int64 seed at
//	construction; the same seed, parameters and coordinate always produce a
//	bit-identical scalar. SetSeed rebuilds the derived tables eagerly.
//
// Errors:
//
//	Primitives have no error paths. Numeric edge cases (negative simplex
//	falloff, equidistant Voronoi seeds) resolve by design: zero
//	contribution and first-scanned-cell-wins respectively.
package generator
