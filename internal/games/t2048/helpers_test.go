package t2048

import (
	"testing"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/grid"
)

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

func newTestGrid(t *testing.T, side int, opts ...Option) *Grid {
	t.Helper()
	g, err := New(side, append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", side, err)
	}
	return g
}

// setBoard replaces every number on g; rows are listed top to bottom.
func setBoard(t *testing.T, g *Grid, rows [][]int) {
	t.Helper()
	var numbers []int
	for x := range g.Side() {
		for y := range g.Side() {
			numbers = append(numbers, rows[y][x])
		}
	}
	if err := g.Assign(grid.Index{}, numbers...); err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
}

// expectSeededBoard checks that g equals want except for exactly one cell
// that was empty in want and now holds a seed value.
func expectSeededBoard(t *testing.T, g *Grid, want [][]int) {
	t.Helper()
	seeded := 0
	for y, row := range g.Rows() {
		for x, n := range row {
			if n == want[y][x] {
				continue
			}
			if want[y][x] != 0 || (n != 2 && n != 4) {
				t.Fatalf("cell (%d, %d) = %d, expected %d\n%v", x, y, n, want[y][x], g)
			}
			seeded++
		}
	}
	if seeded != 1 {
		t.Fatalf("expected exactly one seeded tile, found %d\n%v", seeded, g)
	}
}

func emptyRows(side int) [][]int {
	rows := make([][]int, side)
	for i := range rows {
		rows[i] = make([]int, side)
	}
	return rows
}
