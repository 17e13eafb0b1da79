package t2048

import (
	"fmt"
	"slices"
)

// Neighbor returns the adjacent cell in direction dir, or nil at the edge
// of the board.
func (g *Grid) Neighbor(c *Cell, dir Direction) *Cell {
	dx, dy := dir.delta()
	p, ok := c.point.Offset(dx, dy)
	if !ok {
		return nil
	}
	return g.Cell(p)
}

// Pivot returns the cell that c will interact with when moving in dir:
//  1. the first unlocked cell with c's number, if nothing blocks the way;
//  2. otherwise the farthest empty cell reached;
//  3. otherwise c itself.
//
// It never returns nil.
func (g *Grid) Pivot(c *Cell, dir Direction) *Cell {
	last := c
	for current := g.Neighbor(c, dir); current != nil; current = g.Neighbor(current, dir) {
		if current.IsEmpty() {
			last = current
			continue
		}
		if current.number == c.number && !current.locked {
			return current
		}
		// Different number, or a match that already merged this cycle.
		break
	}
	return last
}

// MoveCell moves c as far as it goes in dir, merging into its pivot when the
// numbers match. A merge locks the pivot for the rest of the cycle and adds
// the merged value to the score. Returns whether anything moved.
func (g *Grid) MoveCell(c *Cell, dir Direction) bool {
	if c.IsEmpty() {
		return false
	}
	pivot := g.Pivot(c, dir)
	if pivot == c {
		return false
	}

	merged := c.number + pivot.number
	if !pivot.IsEmpty() {
		pivot.Lock()
		g.score += merged
	}
	g.mustSetCell(c, 0)
	g.mustSetCell(pivot, merged)
	return true
}

// Drag moves every cell in dir, starting with the line closest to that
// edge. If anything moved, the cycle count grows, one new tile is seeded
// (recording a snapshot) and every cell is unlocked. Returns whether the
// board changed; an unchanged board only counts the attempt.
func (g *Grid) Drag(dir Direction) bool {
	var lines [][]*Cell
	switch dir {
	case DirLeft:
		lines = g.board.Columns(false)
	case DirRight:
		lines = g.board.Columns(true)
	case DirUp:
		lines = g.board.Rows(false)
	case DirDown:
		lines = g.board.Rows(true)
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}

	g.attempt++
	g.logger.Debug("attempt increased", "attempt", g.attempt, "direction", dir)

	moved := false
	for _, c := range slices.Concat(lines...) {
		if g.MoveCell(c, dir) {
			moved = true
		}
	}
	if !moved {
		return false
	}

	g.cycle++
	g.logger.Debug("cycle increased", "cycle", g.cycle, "direction", dir)
	if err := g.Seed(1); err != nil {
		// a slide keeps the number of empty cells and a merge adds one,
		// so a board that moved always has room for a tile
		panic(err)
	}
	g.unlockAll()
	g.mustCheckIntegrity()
	return true
}

// IsJammed reports whether no drag can change the board: there is no empty
// cell and no two adjacent cells share a number.
func (g *Grid) IsJammed() bool {
	if n := len(g.empty); n > 0 {
		g.logger.Debug("not jammed", "empty", n)
		return false
	}
	for _, c := range g.board.Values() {
		for _, dir := range Directions() {
			n := g.Neighbor(c, dir)
			if n != nil && n.number == c.number {
				g.logger.Debug("not jammed", "cell", c, "neighbor", n)
				return false
			}
		}
	}
	g.logger.Debug("jammed grid detected")
	return true
}
