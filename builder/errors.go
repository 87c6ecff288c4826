package builder

import "errors"

var (
	// ErrNoModule indicates Build was called with no source module bound.
	ErrNoModule = errors.New("builder: source module not set")

	// ErrMapSize indicates a non-positive map width or height.
	ErrMapSize = errors.New("builder: map size must be positive")

	// ErrBounds indicates an empty or inverted coordinate region.
	ErrBounds = errors.New("builder: invalid region bounds")
)
