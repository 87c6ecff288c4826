// Package adapter bridges external noise generators into the module
// graph, so third-party primitives compose with the fractal, transform
// and modifier layers exactly like the built-in generators.
//
// What:
//
//   - OpenSimplex — wraps github.com/ojrac/opensimplex-go (2D–4D),
//     optionally in its normalized [0, 1] variant.
//   - GoPerlin    — wraps github.com/aquilax/go-perlin (1D–3D) with its
//     alpha/beta/octave parameters.
//
// Adapters report only the arities their backing library implements;
// resolving an unsupported arity panics with core.ErrUnsupportedDim like
// any other module.
package adapter
