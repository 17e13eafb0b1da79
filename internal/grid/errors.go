package grid

import "errors"

var (
	// ErrDimensions is returned when a grid would be narrower or shorter than 2.
	ErrDimensions = errors.New("grid: width and height must both be at least 2")
	// ErrNotConstructible is returned when no element can be built for a point.
	ErrNotConstructible = errors.New("grid: element cannot be constructed")
	// ErrBadIndex is returned for malformed selectors or index shapes.
	ErrBadIndex = errors.New("grid: bad index")
	// ErrNotFound is returned when an index selects no point.
	ErrNotFound = errors.New("grid: no point matches index")
	// ErrSizeMismatch is returned when an assignment has the wrong number of values.
	ErrSizeMismatch = errors.New("grid: wrong number of values for selection")
)

// IntegrityError reports a broken structural invariant. It means the grid was
// corrupted by a bug, not by bad input, so callers inside this module panic
// with it instead of returning it.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "grid: integrity violated: " + e.Reason
}
