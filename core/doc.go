// Package core defines the module-graph protocol shared by every noise
// module in libnoise: capability interfaces per dimensionality, the
// single-slot source binding, and the contract-violation discipline.
//
// What:
//
//   - Module is the common contract: a node with a declared maximum input
//     dimensionality (1–4) and at most one rebindable upstream source.
//   - Module1D…Module4D are capability interfaces; a module implements
//     exactly the dimensionalities it supports and callers resolve the one
//     they need via Source1D…Source4D.
//   - Sourced is the embeddable single-slot source holder used by every
//     wrapping module (fractals, transformers, modifiers).
//
// Why:
//
//   - Any node can feed any other: a fractal over a primitive, a rotation
//     over a fractal, a cache over the whole stack — the graph is wired and
//     rewired at runtime through SetSource.
//   - A module never owns its source. Lifetime belongs to whoever built the
//     graph; a module holds a non-owning reference and tolerates that
//     reference changing between calls.
//
// Contract violations:
//
//	Evaluation methods return bare float64 — pure math with no error
//	channel. Programming errors (evaluating with no source bound, or
//	requesting a dimensionality the source does not implement) are
//	therefore signaled by panicking with the matching sentinel error:
//
//	  ErrNoSource       — evaluation reached an unbound source slot.
//	  ErrUnsupportedDim — the bound source lacks the requested arity.
//
//	These are fail-fast programmer mistakes, not runtime failure paths;
//	recoverable configuration mistakes elsewhere in the library are plain
//	error returns from setters and constructors.
//
// Concurrency:
//
//	Single-writer / many-readers, enforced by the caller. Concurrent
//	read-only evaluation of a graph whose parameters and wiring are not
//	being mutated is safe: evaluation touches no shared mutable state.
//	SetSource and parameter setters are unsynchronized in-place mutations
//	and must not race an in-flight evaluation. The library takes no locks.
package core
