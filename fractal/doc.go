// Package fractal provides the octave combinators: modules that wrap one
// source generator and accumulate repeated evaluations at geometrically
// scaled frequencies to produce self-similar, multi-scale noise.
//
// What:
//
//   - Sum   — plain weighted accumulation (fractional Brownian motion).
//   - Sin   — accumulates absolute signals, then maps the total through
//     sin(x + total) with x captured before frequency scaling.
//   - Multi — multiplicative (Musgrave-style) cascade of weighted signals.
//
// All three share the spectral machinery:
//
//   - weight[i] = lacunarity^(−i·spectralExponent), precomputed for every
//     possible octave and rebuilt eagerly inside SetLacunarity and
//     SetSpectralExponent — derived state is never partially stale.
//   - Octave count is a float64 clamped to [MinOctaves, MaxOctaves]; the
//     fractional part adds one partial-weight contribution at the last
//     octave, so the field varies continuously with the octave parameter.
//   - For integer octave i the source is evaluated at
//     coord · frequency · lacunarity^i.
//
// Frequency and lacunarity setters are deliberately permissive — negative
// and zero values are accepted unchanged, as creative inputs rather than
// configuration errors.
//
// Combinators evaluate at whatever dimensionalities their source supports,
// 1D through 4D; an arity the source lacks panics with
// core.ErrUnsupportedDim per the module-graph contract.
package fractal
