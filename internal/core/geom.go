// Package core provides fundamental types shared by the grid, the game rules
// and the frontends. It contains no external dependencies to keep game logic
// pure and testable.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrNegativeCoordinate is returned when a Point would have a negative component.
var ErrNegativeCoordinate = errors.New("core: coordinates must be non-negative")

// Point is a position on a grid. X grows to the right, Y grows downwards.
// Points are values: once built they never change.
type Point struct {
	X, Y int
}

// NewPoint creates a point, rejecting negative coordinates.
func NewPoint(x, y int) (Point, error) {
	if x < 0 || y < 0 {
		return Point{}, fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, x, y)
	}
	return Point{X: x, Y: y}, nil
}

// Offset returns the point displaced by (dx, dy).
// ok is false if the result would leave the non-negative quadrant.
func (p Point) Offset(dx, dy int) (q Point, ok bool) {
	x, y := p.X+dx, p.Y+dy
	if x < 0 || y < 0 {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Compare orders points by X, then by Y.
func (p Point) Compare(other Point) int {
	if c := cmp.Compare(p.X, other.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, other.Y)
}

// Less reports whether p sorts before other.
func (p Point) Less(other Point) bool {
	return p.Compare(other) < 0
}

// String returns "<x,y>".
func (p Point) String() string {
	return fmt.Sprintf("<%d,%d>", p.X, p.Y)
}

// SortPoints sorts points in place, X first.
func SortPoints(points []Point) {
	slices.SortFunc(points, Point.Compare)
}
