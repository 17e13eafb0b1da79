package t2048

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/grid2048/internal/core"
)

const saveVersion = 1

type savedCell struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Number int  `json:"number"`
	Locked bool `json:"locked,omitempty"`
}

// savedGrid is the on-disk form of a Grid. History entries list numbers in
// X-then-Y point order so they can be restored without storing points again.
type savedGrid struct {
	Version        int         `json:"version"`
	Side           int         `json:"side"`
	StartingAmount int         `json:"starting_amount"`
	SeedValues     []int       `json:"seed_values"`
	Attempt        int         `json:"attempt"`
	Cycle          int         `json:"cycle"`
	Score          int         `json:"score"`
	Cells          []savedCell `json:"cells"`
	History        [][]int     `json:"history"`
}

// Encode writes the full game state as indented JSON. The same state always
// produces the same bytes.
func (g *Grid) Encode(w io.Writer) error {
	points := g.board.Points()
	saved := savedGrid{
		Version:        saveVersion,
		Side:           g.side,
		StartingAmount: g.startingAmount,
		SeedValues:     g.seedValues,
		Attempt:        g.attempt,
		Cycle:          g.cycle,
		Score:          g.score,
		Cells:          make([]savedCell, 0, len(points)),
		History:        make([][]int, 0, len(g.history)),
	}
	for _, p := range points {
		c := g.Cell(p)
		saved.Cells = append(saved.Cells, savedCell{X: p.X, Y: p.Y, Number: c.number, Locked: c.locked})
	}
	for _, snap := range g.history {
		numbers := make([]int, len(points))
		for i, p := range points {
			numbers[i] = snap[p]
		}
		saved.History = append(saved.History, numbers)
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("t2048: encode grid: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("t2048: write grid: %w", err)
	}
	return nil
}

// Decode reads a grid written by Encode. Options apply on top of the saved
// settings, so callers can attach a logger or a random source.
func Decode(r io.Reader, opts ...Option) (*Grid, error) {
	var saved savedGrid
	if err := json.NewDecoder(r).Decode(&saved); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	if saved.Version != saveVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSave, saved.Version)
	}

	base := []Option{WithStartingAmount(saved.StartingAmount), WithSeedValues(saved.SeedValues...)}
	g, err := build(saved.Side, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	if len(saved.Cells) != g.board.Len() {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrCorruptSave, len(saved.Cells), g.side, g.side)
	}

	current := make(Snapshot, len(saved.Cells))
	for _, sc := range saved.Cells {
		p := core.Point{X: sc.X, Y: sc.Y}
		if _, dup := current[p]; dup {
			return nil, fmt.Errorf("%w: cell %v saved twice", ErrCorruptSave, p)
		}
		current[p] = sc.Number
	}
	if err := g.UpdateWithSnapshot(current); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	for _, sc := range saved.Cells {
		if sc.Locked {
			g.Cell(core.Point{X: sc.X, Y: sc.Y}).Lock()
		}
	}

	points := g.board.Points()
	for i, numbers := range saved.History {
		if len(numbers) != len(points) {
			return nil, fmt.Errorf("%w: history entry %d has %d numbers", ErrCorruptSave, i, len(numbers))
		}
		snap := make(Snapshot, len(points))
		for j, p := range points {
			if !IsValidNumber(numbers[j]) {
				return nil, fmt.Errorf("%w: history entry %d: %w: %d", ErrCorruptSave, i, ErrInvalidNumber, numbers[j])
			}
			snap[p] = numbers[j]
		}
		if snap.empty() {
			return nil, fmt.Errorf("%w: history entry %d has no tiles", ErrCorruptSave, i)
		}
		g.history = append(g.history, snap)
	}
	if len(g.history) == 0 {
		g.storeSnapshot()
	} else if tip := g.history[len(g.history)-1]; !g.IsEmpty() && !tip.Equal(current) {
		return nil, fmt.Errorf("%w: last history entry does not match the cells", ErrCorruptSave)
	}

	switch {
	case saved.Attempt < 0 || saved.Cycle < 0 || saved.Score < 0:
		return nil, fmt.Errorf("%w: negative counter (attempt %d, cycle %d, score %d)",
			ErrCorruptSave, saved.Attempt, saved.Cycle, saved.Score)
	case saved.Cycle > saved.Attempt:
		return nil, fmt.Errorf("%w: cycle %d exceeds attempt %d", ErrCorruptSave, saved.Cycle, saved.Attempt)
	}
	g.attempt = saved.Attempt
	g.cycle = saved.Cycle
	g.score = saved.Score
	return g, nil
}

// SaveFile writes the grid to path, creating parent directories as needed.
func (g *Grid) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("t2048: create save directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("t2048: create save file: %w", err)
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("t2048: close save file: %w", err)
	}
	g.logger.Info("saved grid", "path", path)
	return nil
}

// LoadFile reads a grid saved by SaveFile. A missing file yields (nil, nil)
// when ignoreMissing is set and ErrSaveNotFound otherwise.
func LoadFile(path string, ignoreMissing bool, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if ignoreMissing {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("t2048: open save file: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, err
	}
	g.logger.Info("loaded grid", "path", path, "score", g.score)
	return g, nil
}
