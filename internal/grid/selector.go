package grid

import (
	"fmt"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Unbounded is the stop value of a Range that runs to the end of its axis.
const Unbounded = -1

type selectorKind uint8

const (
	kindAll selectorKind = iota
	kindAt
	kindRange
)

// Selector picks coordinates along one axis: every coordinate, a single one,
// or a stepped half-open range. The zero Selector selects everything.
type Selector struct {
	kind  selectorKind
	index int
	start int
	stop  int
	step  int
}

// All selects every coordinate of an axis.
func All() Selector {
	return Selector{kind: kindAll}
}

// At selects exactly one coordinate.
func At(i int) Selector {
	return Selector{kind: kindAt, index: i}
}

// Range selects start, start+step, ... while below stop.
// A zero step means 1; stop may be Unbounded.
func Range(start, stop, step int) Selector {
	if step == 0 {
		step = 1
	}
	return Selector{kind: kindRange, start: start, stop: stop, step: step}
}

// IsAll reports whether s selects every coordinate.
func (s Selector) IsAll() bool {
	return s.kind == kindAll || (s.kind == kindRange && s.start == 0 && s.stop == Unbounded && s.step == 1)
}

// Single returns the coordinate s pins, if it pins exactly one.
func (s Selector) Single() (int, bool) {
	if s.kind == kindAt {
		return s.index, true
	}
	return 0, false
}

func (s Selector) validate() error {
	switch s.kind {
	case kindAt:
		if s.index < 0 {
			return fmt.Errorf("%w: negative coordinate %d", ErrBadIndex, s.index)
		}
	case kindRange:
		if s.start < 0 {
			return fmt.Errorf("%w: negative range start %d", ErrBadIndex, s.start)
		}
		if s.stop < 0 && s.stop != Unbounded {
			return fmt.Errorf("%w: negative range stop %d", ErrBadIndex, s.stop)
		}
		if s.step < 0 {
			return fmt.Errorf("%w: negative range step %d", ErrBadIndex, s.step)
		}
	}
	return nil
}

func (s Selector) matches(v int) bool {
	switch s.kind {
	case kindAt:
		return v == s.index
	case kindRange:
		if v < s.start || (s.stop != Unbounded && v >= s.stop) {
			return false
		}
		return (v-s.start)%s.step == 0
	default:
		return true
	}
}

func (s Selector) String() string {
	switch s.kind {
	case kindAt:
		return fmt.Sprint(s.index)
	case kindRange:
		stop := ""
		if s.stop != Unbounded {
			stop = fmt.Sprint(s.stop)
		}
		return fmt.Sprintf("%d:%s:%d", s.start, stop, s.step)
	default:
		return "..."
	}
}

// Index addresses a set of points with one selector per axis.
// The zero Index selects the whole grid.
type Index struct {
	X, Y Selector
}

// PointIndex addresses a single point.
func PointIndex(p core.Point) Index {
	return Index{X: At(p.X), Y: At(p.Y)}
}

// Point returns the point idx pins, if it pins exactly one.
func (idx Index) Point() (core.Point, bool) {
	x, okX := idx.X.Single()
	y, okY := idx.Y.Single()
	if !okX || !okY {
		return core.Point{}, false
	}
	return core.Point{X: x, Y: y}, true
}

func (idx Index) matches(p core.Point) bool {
	return idx.X.matches(p.X) && idx.Y.matches(p.Y)
}

func (idx Index) String() string {
	return fmt.Sprintf("(%s, %s)", idx.X, idx.Y)
}

// ParseIndex builds an Index from the shapes callers naturally have at hand:
//
//	ParseIndex()                  every point
//	ParseIndex(p)                 a core.Point
//	ParseIndex(idx)               an Index, validated
//	ParseIndex(x)                 an int or Selector for the x axis; y is All
//	ParseIndex([2]int{x, y})      a pair, also []int or []any of length 2
//	ParseIndex(x, y)              two ints or Selectors
func ParseIndex(args ...any) (Index, error) {
	switch len(args) {
	case 0:
		return Index{}, nil
	case 1:
		return parseOne(args[0])
	case 2:
		return parsePair(args[0], args[1])
	default:
		return Index{}, fmt.Errorf("%w: at most 2 selectors, got %d", ErrBadIndex, len(args))
	}
}

func parseOne(arg any) (Index, error) {
	switch v := arg.(type) {
	case nil:
		return Index{}, fmt.Errorf("%w: nil index", ErrBadIndex)
	case Index:
		if err := v.X.validate(); err != nil {
			return Index{}, err
		}
		if err := v.Y.validate(); err != nil {
			return Index{}, err
		}
		return v, nil
	case core.Point:
		return parsePair(v.X, v.Y)
	case [2]int:
		return parsePair(v[0], v[1])
	case []int:
		if len(v) != 2 {
			return Index{}, fmt.Errorf("%w: pair must have 2 items, got %d", ErrBadIndex, len(v))
		}
		return parsePair(v[0], v[1])
	case []any:
		if len(v) != 2 {
			return Index{}, fmt.Errorf("%w: pair must have 2 items, got %d", ErrBadIndex, len(v))
		}
		return parsePair(v[0], v[1])
	default:
		x, err := parseSelector(v)
		if err != nil {
			return Index{}, err
		}
		return Index{X: x, Y: All()}, nil
	}
}

func parsePair(x, y any) (Index, error) {
	sx, err := parseSelector(x)
	if err != nil {
		return Index{}, err
	}
	sy, err := parseSelector(y)
	if err != nil {
		return Index{}, err
	}
	return Index{X: sx, Y: sy}, nil
}

func parseSelector(arg any) (Selector, error) {
	var s Selector
	switch v := arg.(type) {
	case nil:
		return Selector{}, fmt.Errorf("%w: nil selector", ErrBadIndex)
	case int:
		s = At(v)
	case Selector:
		s = v
	default:
		return Selector{}, fmt.Errorf("%w: unsupported selector type %T", ErrBadIndex, arg)
	}
	if err := s.validate(); err != nil {
		return Selector{}, err
	}
	return s, nil
}
