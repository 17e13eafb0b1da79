// Package grid provides a generic rectangular container that maps points to
// values, with row/column iteration and selector-based bulk access.
package grid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Options controls how a Grid builds and validates its elements.
type Options[T any] struct {
	// New builds the element stored at p. When nil, the zero value of T is used.
	New func(p core.Point) T
	// Check rejects values the grid must never hold. Optional.
	Check func(v T) error
}

// Grid maps every point of a width x height rectangle to a value of type T.
type Grid[T any] struct {
	width  int
	height int
	cells  map[core.Point]T
	check  func(T) error
}

// New creates a width x height grid with one element per point.
func New[T any](width, height int, opts Options[T]) (*Grid[T], error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}

	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make(map[core.Point]T, width*height),
		check:  opts.Check,
	}

	for x := range width {
		for y := range height {
			p := core.Point{X: x, Y: y}
			var v T
			if opts.New != nil {
				v = opts.New(p)
			}
			if err := g.validate(v); err != nil {
				return nil, fmt.Errorf("%w at %v: %w", ErrNotConstructible, p, err)
			}
			g.cells[p] = v
		}
	}

	return g, nil
}

func (g *Grid[T]) validate(v T) error {
	if g.check == nil {
		return nil
	}
	return g.check(v)
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the number of stored points.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Contains reports whether p is on the grid.
func (g *Grid[T]) Contains(p core.Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Points returns every point, X first then Y.
func (g *Grid[T]) Points() []core.Point {
	points := make([]core.Point, 0, len(g.cells))
	for p := range g.cells {
		points = append(points, p)
	}
	core.SortPoints(points)
	return points
}

// Values returns every element in Points order.
func (g *Grid[T]) Values() []T {
	points := g.Points()
	values := make([]T, len(points))
	for i, p := range points {
		values[i] = g.cells[p]
	}
	return values
}

// At returns the element at p.
func (g *Grid[T]) At(p core.Point) (T, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// SelectPoints returns the points matched by idx, X first then Y.
func (g *Grid[T]) SelectPoints(idx Index) ([]core.Point, error) {
	if p, ok := idx.Point(); ok {
		if !g.Contains(p) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, idx)
		}
		return []core.Point{p}, nil
	}

	var selected []core.Point
	for _, p := range g.Points() {
		if idx.matches(p) {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, idx)
	}
	return selected, nil
}

// Select returns the elements matched by idx, X first then Y.
// An index pinning a single point yields a one-element slice.
func (g *Grid[T]) Select(idx Index) ([]T, error) {
	points, err := g.SelectPoints(idx)
	if err != nil {
		return nil, err
	}
	values := make([]T, len(points))
	for i, p := range points {
		values[i] = g.cells[p]
	}
	return values, nil
}

// Lookup parses args with ParseIndex and selects the matching elements.
// It always returns a slice; use LookupOne when the index names one point.
func (g *Grid[T]) Lookup(args ...any) ([]T, error) {
	idx, err := ParseIndex(args...)
	if err != nil {
		return nil, err
	}
	return g.Select(idx)
}

// LookupOne parses args with ParseIndex and returns the single element they
// pin. Indexes that can match more than one point fail with ErrBadIndex.
func (g *Grid[T]) LookupOne(args ...any) (T, error) {
	var zero T
	idx, err := ParseIndex(args...)
	if err != nil {
		return zero, err
	}
	p, ok := idx.Point()
	if !ok {
		return zero, fmt.Errorf("%w: %v does not name a single point", ErrBadIndex, idx)
	}
	v, ok := g.cells[p]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, idx)
	}
	return v, nil
}

// Set replaces the element at p.
func (g *Grid[T]) Set(p core.Point, v T) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	if err := g.validate(v); err != nil {
		return fmt.Errorf("grid: cannot set %v: %w", p, err)
	}
	g.cells[p] = v
	return nil
}

// Assign stores values into the points matched by idx. A single value is
// broadcast to every selected point; otherwise there must be exactly one
// value per point, in SelectPoints order.
func (g *Grid[T]) Assign(idx Index, values ...T) error {
	points, err := g.SelectPoints(idx)
	if err != nil {
		return err
	}
	if len(values) == 0 || (len(values) != 1 && len(values) != len(points)) {
		return fmt.Errorf("%w: expected %d, got %d", ErrSizeMismatch, len(points), len(values))
	}
	for _, v := range values {
		if err := g.validate(v); err != nil {
			return fmt.Errorf("grid: cannot assign %v: %w", idx, err)
		}
	}

	for i, p := range points {
		if len(values) == 1 {
			g.cells[p] = values[0]
		} else {
			g.cells[p] = values[i]
		}
	}

	g.MustCheckIntegrity()
	return nil
}

// Rows returns each row (fixed y, x ascending), ordered by y.
func (g *Grid[T]) Rows(reverse bool) [][]T {
	return g.lines(g.ys(), reverse, func(y int) Index {
		return Index{X: All(), Y: At(y)}
	})
}

// Columns returns each column (fixed x, y ascending), ordered by x.
func (g *Grid[T]) Columns(reverse bool) [][]T {
	return g.lines(g.xs(), reverse, func(x int) Index {
		return Index{X: At(x), Y: All()}
	})
}

func (g *Grid[T]) lines(axis []int, reverse bool, index func(int) Index) [][]T {
	if reverse {
		slices.Reverse(axis)
	}
	lines := make([][]T, 0, len(axis))
	for _, i := range axis {
		line, err := g.Select(index(i))
		if err != nil {
			// every coordinate in axis comes from a stored point
			panic(err)
		}
		lines = append(lines, line)
	}
	return lines
}

// xs returns the distinct x coordinates in ascending order.
func (g *Grid[T]) xs() []int {
	return g.distinct(func(p core.Point) int { return p.X })
}

// ys returns the distinct y coordinates in ascending order.
func (g *Grid[T]) ys() []int {
	return g.distinct(func(p core.Point) int { return p.Y })
}

func (g *Grid[T]) distinct(coord func(core.Point) int) []int {
	seen := make(map[int]struct{})
	for p := range g.cells {
		seen[coord(p)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// String prints one row per line.
func (g *Grid[T]) String() string {
	rows := g.Rows(false)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = fmt.Sprint(row)
	}
	return strings.Join(lines, "\n")
}
