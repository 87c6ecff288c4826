// Package builder renders a module graph into a two-dimensional value
// grid by scanning a coordinate region at a chosen resolution.
//
// What:
//
//   - NoiseMap     — width×height float64 grid with bounds-checked
//     accessors.
//   - Planar       — scans a rectangle of the (x, z) plane; optional
//     seamless mode blends the four region corners so the output tiles.
//   - Spherical    — scans a latitude/longitude window of the unit
//     sphere.
//   - Cylindrical  — scans an angle/height window of the unit cylinder.
//
// Scans are inclusive of both region edges: a map of width w places its
// first column exactly on the lower bound and its last column exactly on
// the upper bound. Each cell costs one 3D evaluation (four in seamless
// mode).
//
// Errors:
//
//   - ErrNoModule — Build called with no source module bound.
//   - ErrMapSize  — non-positive width or height.
//   - ErrBounds   — an empty or inverted coordinate region.
//
// Rendering, color mapping and file output are out of scope; a NoiseMap
// is plain data for the caller to consume.
package builder
