// Package t2048 implements the rules of the 2048 puzzle on a square grid of
// cells: sliding, merging, scoring, seeding new tiles, jam detection and
// snapshot-based undo.
package t2048

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/grid"
)

// Grid is a square board of cells plus the state of one game.
// A Grid is owned by a single game loop and is not safe for concurrent use.
type Grid struct {
	board *grid.Grid[*Cell]
	side  int

	// empty indexes every cell holding 0. setCell keeps it current; it is
	// never rebuilt by scanning.
	empty map[core.Point]*Cell

	history []Snapshot
	attempt int // Drags requested
	cycle   int // Drags that changed the board
	score   int

	startingAmount int
	seedValues     []int
	rng            *rand.Rand
	logger         *log.Logger
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand sets the random source used for seeding and autofill.
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes tile placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStartingAmount sets how many tiles a fresh or reset board gets.
func WithStartingAmount(n int) Option {
	return func(g *Grid) {
		g.startingAmount = n
	}
}

// WithSeedValues sets the values a seeded tile can take.
func WithSeedValues(values ...int) Option {
	return func(g *Grid) {
		g.seedValues = append([]int(nil), values...)
	}
}

// New creates a side x side grid seeded with the starting amount of tiles.
func New(side int, opts ...Option) (*Grid, error) {
	g, err := build(side, opts...)
	if err != nil {
		return nil, err
	}
	g.logger.Info("created grid", "side", side)
	g.start()
	return g, nil
}

// build creates an empty grid with no history.
func build(side int, opts ...Option) (*Grid, error) {
	board, err := grid.New(side, side, grid.Options[*Cell]{
		New:   NewCell,
		Check: checkCell,
	})
	if err != nil {
		return nil, fmt.Errorf("t2048: cannot create grid: %w", err)
	}

	g := &Grid{
		board:          board,
		side:           side,
		empty:          make(map[core.Point]*Cell, side*side),
		startingAmount: DefaultStartingAmount,
		seedValues:     DefaultSeedValues,
		logger:         log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if g.startingAmount < 1 || g.startingAmount > side*side {
		return nil, fmt.Errorf("%w: %d on a %dx%d grid (must be 1..%d)",
			ErrStartingAmount, g.startingAmount, side, side, side*side)
	}
	if len(g.seedValues) == 0 {
		return nil, fmt.Errorf("%w: no seed values", ErrInvalidNumber)
	}
	for _, v := range g.seedValues {
		if !IsGoal(v) {
			return nil, fmt.Errorf("%w: seed value %d", ErrInvalidNumber, v)
		}
	}

	for _, c := range board.Values() {
		g.empty[c.point] = c
	}
	return g, nil
}

// start seeds an empty board. A board that starts jammed is autofilled instead.
func (g *Grid) start() {
	if err := g.Seed(g.startingAmount); err != nil {
		// build guarantees startingAmount fits an empty board
		panic(err)
	}
	if g.IsJammed() {
		g.history = g.history[:0]
		g.Autofill(true)
	}
	g.mustCheckIntegrity()
}

// Side returns the board dimension.
func (g *Grid) Side() int {
	return g.side
}

// Score returns the sum of every merge result so far.
func (g *Grid) Score() int {
	return g.score
}

// Attempt returns how many drags were requested.
func (g *Grid) Attempt() int {
	return g.attempt
}

// Cycle returns how many drags changed the board.
func (g *Grid) Cycle() int {
	return g.cycle
}

// Largest returns the highest tile on the board.
func (g *Grid) Largest() int {
	largest := 0
	for _, c := range g.board.Values() {
		largest = max(largest, c.number)
	}
	return largest
}

// IsEmpty reports whether every cell holds 0.
func (g *Grid) IsEmpty() bool {
	return len(g.empty) == g.board.Len()
}

// EmptyCount returns how many cells hold 0.
func (g *Grid) EmptyCount() int {
	return len(g.empty)
}

// State summarizes the grid for frontends and score storage.
func (g *Grid) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Largest: g.Largest(),
		Attempt: g.attempt,
		Cycle:   g.cycle,
		Jammed:  g.IsJammed(),
	}
}

// Cell returns the cell at p, or nil if p is off the board.
func (g *Grid) Cell(p core.Point) *Cell {
	c, _ := g.board.At(p)
	return c
}

// Cells returns every cell, X first then Y.
func (g *Grid) Cells() []*Cell {
	return g.board.Values()
}

// Number returns the number at (x, y), or 0 off the board.
func (g *Grid) Number(x, y int) int {
	if c := g.Cell(core.Point{X: x, Y: y}); c != nil {
		return c.number
	}
	return 0
}

// Rows returns the numbers of each row, top to bottom.
func (g *Grid) Rows() [][]int {
	rows := g.board.Rows(false)
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = make([]int, len(row))
		for j, c := range row {
			out[i][j] = c.number
		}
	}
	return out
}

// Lookup returns the cells selected by a grid index (see grid.ParseIndex).
// A single point still comes back as a one-cell slice.
func (g *Grid) Lookup(args ...any) ([]*Cell, error) {
	return g.board.Lookup(args...)
}

// LookupOne returns the cell at the single point args name.
func (g *Grid) LookupOne(args ...any) (*Cell, error) {
	return g.board.LookupOne(args...)
}

// setCell is the only place cell numbers change, so the empty index can
// never drift from the board.
func (g *Grid) setCell(c *Cell, n int) error {
	if err := c.SetNumber(n); err != nil {
		return err
	}
	if n == 0 {
		g.empty[c.point] = c
	} else {
		delete(g.empty, c.point)
	}
	return nil
}

func (g *Grid) mustSetCell(c *Cell, n int) {
	if err := g.setCell(c, n); err != nil {
		panic(err)
	}
}

// Assign sets the numbers of the selected cells and records a snapshot,
// unless the board ends up empty.
// A single number is broadcast; otherwise one number per selected cell is
// required, in X-then-Y order.
func (g *Grid) Assign(idx grid.Index, numbers ...int) error {
	points, err := g.board.SelectPoints(idx)
	if err != nil {
		return err
	}
	if len(numbers) == 0 || (len(numbers) != 1 && len(numbers) != len(points)) {
		return fmt.Errorf("%w: expected %d, got %d", grid.ErrSizeMismatch, len(points), len(numbers))
	}
	for _, n := range numbers {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeNumber, n)
		}
		if !IsValidNumber(n) {
			return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
		}
	}

	for i, p := range points {
		n := numbers[0]
		if len(numbers) > 1 {
			n = numbers[i]
		}
		g.mustSetCell(g.Cell(p), n)
	}
	g.storeSnapshot()
	g.mustCheckIntegrity()
	return nil
}

// unlockAll clears every cell's merge guard.
func (g *Grid) unlockAll() {
	for _, c := range g.board.Values() {
		c.Unlock()
	}
}

// CheckIntegrity verifies the board structure, that it is square, and that
// the empty-cell index matches the zero cells exactly.
func (g *Grid) CheckIntegrity() error {
	if err := g.board.CheckIntegrity(); err != nil {
		return err
	}
	if w, h := g.board.Width(), g.board.Height(); w != h || w != g.side {
		return &grid.IntegrityError{Reason: fmt.Sprintf("grid must be %dx%d square, got %dx%d", g.side, g.side, w, h)}
	}

	zeros := 0
	for _, p := range g.board.Points() {
		c, _ := g.board.At(p)
		if c.point != p {
			return &grid.IntegrityError{Reason: fmt.Sprintf("%v stored at %v", c, p)}
		}
		indexed, ok := g.empty[p]
		switch {
		case c.number == 0 && !ok:
			return &grid.IntegrityError{Reason: fmt.Sprintf("empty %v missing from the empty index", c)}
		case c.number != 0 && ok:
			return &grid.IntegrityError{Reason: fmt.Sprintf("non-empty %v in the empty index", c)}
		case ok && indexed != c:
			return &grid.IntegrityError{Reason: fmt.Sprintf("empty index holds a stale cell for %v", p)}
		}
		if c.number == 0 {
			zeros++
		}
	}
	if zeros != len(g.empty) {
		return &grid.IntegrityError{Reason: fmt.Sprintf("empty index has %d cells, board has %d zeros", len(g.empty), zeros)}
	}
	return nil
}

func (g *Grid) mustCheckIntegrity() {
	if err := g.CheckIntegrity(); err != nil {
		panic(err)
	}
}

// String prints the board one row per line with right-aligned numbers.
func (g *Grid) String() string {
	width := len(strconv.Itoa(g.Largest()))
	var sb strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, n := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if n == 0 {
				sb.WriteString(strings.Repeat(" ", width-1) + ".")
				continue
			}
			fmt.Fprintf(&sb, "%*d", width, n)
		}
	}
	return sb.String()
}
