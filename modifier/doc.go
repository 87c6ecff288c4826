// Package modifier provides value modifiers: modules that wrap one source
// and remap or memoize its output without touching the input coordinate.
//
// What:
//
//   - Cache     — single-slot memoization keyed on exact coordinate
//     equality and call arity; invalidated by SetSource.
//   - Clamp     — saturates output into [lower, upper].
//   - Curve     — remaps output through a cubic spline over ≥4 sorted
//     control points.
//   - Terrace   — step-quantizes output across ≥2 sorted control points
//     with quadratic easing, optionally inverted.
//   - ScaleBias — output·scale + bias.
//   - Abs       — absolute value of the output.
//   - Invert    — negated output.
//
// Errors:
//
//   - ErrBounds         — Clamp bounds with lower > upper.
//   - ErrDuplicatePoint — control point at an already-occupied input
//     position; insertion is rejected, the existing point stays.
//   - ErrTooFewPoints   — a curve evaluated with fewer than 4 points or a
//     terrace with fewer than 2. On the evaluation path this is a
//     contract violation and panics; MakeControlPoints returns it.
//
// All modifiers are pure functions of the source output and their
// configured parameters; only Cache carries call-to-call state, and that
// state is a deterministic function of the last evaluation.
package modifier
