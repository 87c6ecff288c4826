// Package libnoise is a coherent-noise toolkit: composable field generators
// wired into arbitrarily deep evaluation graphs for procedural textures,
// terrains and other spatial patterns.
//
// 🚀 What is libnoise?
//
//	A deterministic, allocation-light library that brings together:
//		• Primitives: Perlin (1D–4D), Simplex (2D–4D), Voronoi (3D)
//		• Fractals: Sum/Sin/Multi octave combinators with spectral weights
//		• Transformers: rotate, scale, translate, turbulence
//		• Modifiers: cache, clamp, curve, terrace, scale-bias, abs, invert
//		• Adapters: third-party generators bridged into the graph
//		• Builders: planar, spherical and cylindrical map scanners
//
// ✨ Why choose libnoise?
//
//   - Deterministic — identical seed, parameters and coordinate always
//     produce a bit-identical scalar
//   - Composable — every node implements the same evaluation contract,
//     so any node can feed any other and be rewired at runtime
//   - Pure math — no I/O, no goroutines, no hidden state on the hot path
//
// Everything is organized under small, focused subpackages:
//
//	core/      — the module-graph protocol: capability interfaces, source
//	             binding, contract-violation discipline
//	noisegen/  — permutation tables, lattice gradient/value noise, kernels
//	generator/ — Perlin, Simplex and Voronoi primitives
//	fractal/   — SumFractal, SinFractal, MultiFractal combinators
//	transform/ — coordinate transformers (rotate/scale/translate/turbulence)
//	modifier/  — value modifiers (cache/clamp/curve/terrace/…)
//	adapter/   — opensimplex-go and go-perlin bridge modules
//	builder/   — NoiseMap grid builders over planar, spherical and
//	             cylindrical projections
//
// Quick ASCII example:
//
//	Perlin ──► SumFractal ──► Rotate ──► Curve ──► (your sampler)
//
//	a four-node graph: one primitive, one fractal, one transformer,
//	one modifier, evaluated once per output cell.
//
// Evaluation follows a single-writer/many-reader discipline: concurrent
// read-only evaluation of an immutable-parameter graph is safe; rebinding
// sources or mutating parameters must not race an in-flight evaluation.
//
//	go get github.com/tedd/libnoise
package libnoise
