// Package transform provides coordinate transformers: modules that remap
// the input coordinate before delegating to their single source module.
//
// What:
//
//   - Rotate     — 3D Euler rotation (degrees); the 3×3 matrix is rebuilt
//     eagerly from all three angles inside every angle setter.
//   - Scale      — per-axis multiplicative scaling, 1D–4D.
//   - Translate  — per-axis additive offsets, 1D–4D.
//   - Turbulence — 3D domain warping: three decorrelated Perlin fractal
//     channels displace the coordinate by a tunable power before
//     delegating.
//
// Beyond their rarely-changing derived constants (Rotate's matrix,
// Turbulence's distortion channels), transformers carry no state across
// calls; evaluation is stateless per call and deterministic.
//
// Identity parameters are exact: Rotate(0,0,0), Scale(1,…) and
// Translate(0,…) reproduce the source bit-for-bit.
package transform
