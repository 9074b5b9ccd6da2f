package holefill

import "errors"

// Sentinel errors for hole detection and filling.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("holefill: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("holefill: all rows must have the same length")
	// ErrSampleRange indicates a sample outside [0,1] that is not the sentinel.
	ErrSampleRange = errors.New("holefill: sample must be in [0,1] or the hole sentinel")
	// ErrOutOfBounds indicates a coordinate or rectangle outside the grid.
	ErrOutOfBounds = errors.New("holefill: coordinates outside grid bounds")
	// ErrInvalidRect indicates an empty or inverted rectangle.
	ErrInvalidRect = errors.New("holefill: rectangle start must be before its end")
	// ErrNoHole indicates an operation that needs a hole found none.
	ErrNoHole = errors.New("holefill: grid has no hole")
	// ErrEdgeHole indicates a covering rectangle corner is itself a hole pixel,
	// so corner-anchored strategies have nothing to interpolate from.
	ErrEdgeHole = errors.New("holefill: hole touches the image edge at a covering rectangle corner")
	// ErrUncoveredHole indicates a hole whose covering rectangle holds none of
	// its pixels, as when the hole spans the full grid width or height and is
	// bounded on one side only.
	ErrUncoveredHole = errors.New("holefill: covering rectangle holds no hole pixel")
	// ErrEmptyBoundary indicates a hole without boundary pixels to fill from.
	ErrEmptyBoundary = errors.New("holefill: hole boundary is empty")
	// ErrInvalidWeight indicates weight parameters that cannot produce finite weights.
	ErrInvalidWeight = errors.New("holefill: weight parameters must be finite with z >= 0 and eps > 0")
	// ErrTraceDiverged indicates the tracer exhausted its step budget without closing the boundary.
	ErrTraceDiverged = errors.New("holefill: boundary trace did not close")
	// ErrStaleHole indicates a hole whose boundary no longer matches the grid.
	ErrStaleHole = errors.New("holefill: hole boundary contains hole pixels; locate the hole again")
	// ErrUnknownStrategy indicates an unrecognised fill strategy name.
	ErrUnknownStrategy = errors.New("holefill: unknown fill strategy")
)
