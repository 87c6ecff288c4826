// Package core declares the Module capability interfaces, the Sourced
// single-slot holder, and the sentinel errors of the module-graph protocol.
package core

import "errors"

// Sentinel errors for module-graph contract violations.
//
// Both are panic values, not return values: evaluation has no error channel,
// and hitting either means the graph was mis-wired by the programmer.
var (
	// ErrNoSource indicates evaluation reached a module whose source slot
	// was never bound (or was rebound to nil).
	ErrNoSource = errors.New("core: source module not set")

	// ErrUnsupportedDim indicates a module was asked to evaluate a
	// dimensionality it does not implement.
	ErrUnsupportedDim = errors.New("core: module does not support requested dimensionality")
)

// Module is the common contract every noise node implements.
//
// Dimensions reports the maximum input dimensionality the module can accept,
// in [1,4]. It declares capability only; the concrete evaluation entry points
// are the Module1D…Module4D interfaces, and a module may support a subset of
// arities below its maximum (Simplex has no 1D form, Voronoi is 3D-only).
type Module interface {
	Dimensions() int
}

// Module1D is the capability interface for one-dimensional evaluation.
// Eval1D must be pure: same coordinate, parameters and source wiring yield a
// bit-identical result.
type Module1D interface {
	Module
	Eval1D(x float64) float64
}

// Module2D is the capability interface for two-dimensional evaluation.
type Module2D interface {
	Module
	Eval2D(x, y float64) float64
}

// Module3D is the capability interface for three-dimensional evaluation.
type Module3D interface {
	Module
	Eval3D(x, y, z float64) float64
}

// Module4D is the capability interface for four-dimensional evaluation.
type Module4D interface {
	Module
	Eval4D(x, y, z, w float64) float64
}

// Sourced is the embeddable single upstream slot shared by every wrapping
// module. The reference is non-owning and may be rebound at any time between
// evaluations; Sourced itself performs no synchronization.
type Sourced struct {
	src Module
}

// Source returns the currently bound upstream module, or nil if unbound.
func (s *Sourced) Source() Module { return s.src }

// SetSource rebinds the upstream module reference. Binding nil is allowed
// and simply returns the slot to its unbound state.
func (s *Sourced) SetSource(m Module) { s.src = m }

// Source1D resolves m to its 1D capability.
// Panics with ErrNoSource if m is nil, ErrUnsupportedDim if m cannot
// evaluate one-dimensional coordinates.
func Source1D(m Module) Module1D {
	if m == nil {
		panic(ErrNoSource)
	}
	s, ok := m.(Module1D)
	if !ok {
		panic(ErrUnsupportedDim)
	}

	return s
}

// Source2D resolves m to its 2D capability; panic rules as Source1D.
func Source2D(m Module) Module2D {
	if m == nil {
		panic(ErrNoSource)
	}
	s, ok := m.(Module2D)
	if !ok {
		panic(ErrUnsupportedDim)
	}

	return s
}

// Source3D resolves m to its 3D capability; panic rules as Source1D.
func Source3D(m Module) Module3D {
	if m == nil {
		panic(ErrNoSource)
	}
	s, ok := m.(Module3D)
	if !ok {
		panic(ErrUnsupportedDim)
	}

	return s
}

// Source4D resolves m to its 4D capability; panic rules as Source1D.
func Source4D(m Module) Module4D {
	if m == nil {
		panic(ErrNoSource)
	}
	s, ok := m.(Module4D)
	if !ok {
		panic(ErrUnsupportedDim)
	}

	return s
}
