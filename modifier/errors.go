package modifier

import "errors"

var (
	// ErrBounds is returned by Clamp.SetBounds when lower > upper.
	ErrBounds = errors.New("modifier: lower bound exceeds upper bound")

	// ErrDuplicatePoint is returned by AddControlPoint when a control
	// point already occupies the requested input position.
	ErrDuplicatePoint = errors.New("modifier: duplicate control point")

	// ErrTooFewPoints signals a curve with fewer than 4 control points or
	// a terrace with fewer than 2. MakeControlPoints returns it; the
	// evaluation path panics with it.
	ErrTooFewPoints = errors.New("modifier: not enough control points")
)
