package t2048

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Seed puts a random seed value into amount distinct empty cells, chosen
// uniformly without replacement, then records a snapshot. It fails when
// amount is not in 1..EmptyCount(): seeding that changes nothing is an error.
func (g *Grid) Seed(amount int) error {
	available := len(g.empty)
	if amount < 1 || amount > available {
		return fmt.Errorf("%w: asked for %d tile(s), %d empty cell(s) available", ErrSeed, amount, available)
	}

	// Sorting makes the choice depend only on the random source.
	points := slices.SortedFunc(maps.Keys(g.empty), core.Point.Compare)
	g.logger.Debug("available cells for seeding", "cells", points)

	chosen := g.rng.Perm(len(points))[:amount]
	seeded := make([]*Cell, 0, amount)
	for _, i := range chosen {
		c := g.empty[points[i]]
		g.mustSetCell(c, g.seedValues[g.rng.Intn(len(g.seedValues))])
		seeded = append(seeded, c)
	}
	slices.SortFunc(seeded, func(a, b *Cell) int { return a.point.Compare(b.point) })
	g.logger.Debug("seeded cells", "cells", seeded)

	g.storeSnapshot()
	g.mustCheckIntegrity()
	return nil
}

// Autofill fills every cell with a random power of two from 2 to 1024. With
// noJamming it redraws until the board is playable. Records a snapshot.
// It exists to set up jammed and nearly jammed boards, not for normal play.
func (g *Grid) Autofill(noJamming bool) {
	g.fillRandom()
	for noJamming && g.IsJammed() {
		g.fillRandom()
	}
	g.storeSnapshot()
	g.mustCheckIntegrity()
}

func (g *Grid) fillRandom() {
	for _, c := range g.board.Values() {
		c.Unlock()
		g.mustSetCell(c, autofillNumbers[g.rng.Intn(len(autofillNumbers))])
	}
}
