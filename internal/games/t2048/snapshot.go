package t2048

import (
	"fmt"
	"maps"
	"math"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Snapshot captures the number of every cell at one instant. It is a plain
// copy that shares nothing with the live cells.
type Snapshot map[core.Point]int

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	return maps.Clone(s)
}

// Equal reports whether both snapshots hold the same numbers at the same points.
func (s Snapshot) Equal(other Snapshot) bool {
	return maps.Equal(s, other)
}

func (s Snapshot) empty() bool {
	for _, n := range s {
		if n != 0 {
			return false
		}
	}
	return true
}

// Snapshot returns the current numbers of every cell.
func (g *Grid) Snapshot() Snapshot {
	snap := make(Snapshot, g.board.Len())
	for _, c := range g.board.Values() {
		snap[c.point] = c.number
	}
	return snap
}

// storeSnapshot records the current board. An empty board is never a state
// to return to, so it is not recorded.
func (g *Grid) storeSnapshot() {
	if g.IsEmpty() {
		return
	}
	g.history = append(g.history, g.Snapshot())
}

// History returns copies of the stored snapshots, oldest first. Unless the
// board was emptied through Assign, the last one describes the current board.
func (g *Grid) History() []Snapshot {
	out := make([]Snapshot, len(g.history))
	for i, s := range g.history {
		out[i] = s.Clone()
	}
	return out
}

// UpdateWithSnapshot unlocks and renumbers every cell named by snap.
// Nothing changes if any point is off the board or any number is invalid.
func (g *Grid) UpdateWithSnapshot(snap Snapshot) error {
	for p, n := range snap {
		if g.Cell(p) == nil {
			return fmt.Errorf("t2048: snapshot point %v is off the %dx%d board", p, g.side, g.side)
		}
		if n < 0 {
			return fmt.Errorf("%w: %d at %v", ErrNegativeNumber, n, p)
		}
		if !IsValidNumber(n) {
			return fmt.Errorf("%w: %d at %v", ErrInvalidNumber, n, p)
		}
	}

	for p, n := range snap {
		c := g.Cell(p)
		c.Unlock()
		g.mustSetCell(c, n)
	}
	g.mustCheckIntegrity()
	return nil
}

// NewFromSnapshot creates a grid from a square snapshot. The snapshot becomes
// the only history entry and every counter starts at zero.
func NewFromSnapshot(snap Snapshot, opts ...Option) (*Grid, error) {
	side := int(math.Sqrt(float64(len(snap))))
	for side*side < len(snap) {
		side++
	}
	if side*side != len(snap) {
		return nil, fmt.Errorf("%w: %d points", ErrNotSquare, len(snap))
	}
	if snap.empty() {
		return nil, ErrEmptySnapshot
	}

	g, err := build(side, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.UpdateWithSnapshot(snap); err != nil {
		return nil, err
	}
	g.storeSnapshot()
	return g, nil
}

// Undo restores the board to the state before the last change. It needs the
// current snapshot plus at least one older one; without them it returns
// false, or ErrNoHistory when ignoreEmpty is false. Score and counters are
// left alone.
func (g *Grid) Undo(ignoreEmpty bool) (bool, error) {
	if len(g.history) < 2 {
		if ignoreEmpty {
			return false, nil
		}
		return false, fmt.Errorf("%w: %d snapshot(s) stored", ErrNoHistory, len(g.history))
	}

	// Forget the current state, then take the previous one off the stack;
	// restoring it stores it again as the new current state.
	g.history = g.history[:len(g.history)-1]
	previous := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	if err := g.UpdateWithSnapshot(previous); err != nil {
		// every stored snapshot came from this board
		panic(err)
	}
	g.storeSnapshot()
	g.logger.Debug("undo", "history", len(g.history))
	return true, nil
}

// Reset clears the board, the counters and the history, then seeds the
// starting amount of tiles as a new game.
func (g *Grid) Reset() {
	g.attempt = 0
	g.cycle = 0
	g.score = 0
	for _, c := range g.board.Values() {
		c.Unlock()
		g.mustSetCell(c, 0)
	}
	g.history = nil
	g.logger.Debug("reset")
	g.start()
}
