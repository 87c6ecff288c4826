// Package noisegen provides the seed-derived lookup tables and lattice-level
// noise functions the primitive generators are built on.
//
// What:
//
//   - Permutation: a 512-entry (doubled 256) pseudo-random index table
//     derived deterministically from an int64 seed. Identical seed ⇒
//     identical table ⇒ identical noise for every coordinate.
//   - GradientCoherent1D…4D: classic lattice gradient noise over the unit
//     hypercube containing the query point — hash each of the 2ⁿ corners
//     through the permutation table with additive index folding, dot the
//     selected gradient with the corner-to-point offset, and blend per axis.
//   - ValueNoise3D / IntValueNoise3D: integer lattice value noise with the
//     classic prime-mix constants and 32-bit wraparound, used for Voronoi
//     cell seeding and displacement.
//   - Interpolation kernels: Lerp, SCurve3, SCurve5 and the 4-point Cubic.
//
// Quality:
//
//   - QualityFast     — linear blending. Cheapest; visible lattice creasing.
//   - QualityStandard — cubic s-curve (3t²−2t³). The classic Perlin look.
//   - QualityBest     — quintic s-curve (6t⁵−15t⁴+10t³). C2-continuous;
//     the "improved" Perlin smoothing.
//
// Output of the gradient functions usually lies in [-1, 1] but is not
// strictly bounded; consumers that need hard bounds clamp downstream.
//
// A Permutation is immutable after construction and safe to share across
// concurrent read-only evaluations.
package noisegen
