package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Direction represents a drag direction. The order follows the WASD keys.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions returns every direction in WASD order.
func Directions() []Direction {
	return []Direction{DirUp, DirLeft, DirDown, DirRight}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// delta returns the coordinate displacement of one step in direction d.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(d)))
	}
}

// ParseDirection converts "up", "left", "down" or "right" (any case).
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions() {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrDirection, s)
}

// DirectionFromAction maps a movement action to its direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// PairedWith binds exactly four keys to the directions in WASD order.
func PairedWith[K comparable](keys []K) (map[K]Direction, error) {
	dirs := Directions()
	if len(keys) != len(dirs) {
		return nil, fmt.Errorf("t2048: must pair with exactly %d keys; %d found", len(dirs), len(keys))
	}
	pairs := make(map[K]Direction, len(keys))
	for i, k := range keys {
		if _, dup := pairs[k]; dup {
			return nil, fmt.Errorf("t2048: key %v paired twice", k)
		}
		pairs[k] = dirs[i]
	}
	return pairs, nil
}
