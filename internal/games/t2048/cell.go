package t2048

import (
	"fmt"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Cell is one tile slot on the board. Its point never changes; only its
// number and lock flag do.
//
// The lock marks a cell that already absorbed a merge during the current
// drag, so a 2+2 that became 4 cannot merge again into a neighboring 4 in
// the same move.
type Cell struct {
	point  core.Point
	number int
	locked bool
}

// NewCell creates an empty, unlocked cell at p.
func NewCell(p core.Point) *Cell {
	return &Cell{point: p}
}

// Point returns the cell's fixed position.
func (c *Cell) Point() core.Point {
	return c.point
}

// Number returns the tile value, 0 for an empty cell.
func (c *Cell) Number() int {
	return c.number
}

// IsEmpty reports whether the cell holds 0.
func (c *Cell) IsEmpty() bool {
	return c.number == 0
}

// SetNumber changes the tile value. n must be 0 or a power of two.
func (c *Cell) SetNumber(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d at %v", ErrNegativeNumber, n, c.point)
	}
	if !IsValidNumber(n) {
		return fmt.Errorf("%w: %d at %v", ErrInvalidNumber, n, c.point)
	}
	c.number = n
	return nil
}

// Locked reports whether the cell already merged this cycle.
func (c *Cell) Locked() bool {
	return c.locked
}

// Lock prevents further merges into the cell this cycle.
func (c *Cell) Lock() {
	c.locked = true
}

// Unlock clears the per-cycle merge guard.
func (c *Cell) Unlock() {
	c.locked = false
}

// Equal reports whether both cells occupy the same slot, whatever their numbers.
func (c *Cell) Equal(other *Cell) bool {
	return other != nil && c.point == other.point
}

// Less orders cells by position.
func (c *Cell) Less(other *Cell) bool {
	return c.point.Less(other.point)
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d, %d)", c.point.X, c.point.Y, c.number)
}

func checkCell(c *Cell) error {
	if c == nil {
		return fmt.Errorf("t2048: nil cell")
	}
	if !IsValidNumber(c.number) {
		return fmt.Errorf("%w: %d at %v", ErrInvalidNumber, c.number, c.point)
	}
	return nil
}
