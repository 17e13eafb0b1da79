// Package text implements a line-oriented frontend: it prints the board as
// plain text and reads one key per line.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/registry"
)

const ID = "text"

const help = "keys: w/k up, a/h left, s/j down, d/l right, u undo, r restart, q quit"

func init() {
	registry.Register(ID, func(s registry.Settings) registry.Frontend {
		return New(s.In, s.Out, s.Prompt, s.Logger)
	})
}

// Frontend plays through a reader and a writer, usually a terminal.
type Frontend struct {
	in     io.Reader
	out    io.Writer
	prompt bool
	keys   core.KeyMap
	logger *log.Logger

	start   sync.Once
	lines   chan string
	readErr error // set before lines is closed
}

// New creates a text frontend. Nil in and out mean stdin and stdout.
func New(in io.Reader, out io.Writer, prompt bool, logger *log.Logger) *Frontend {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{
		in:     in,
		out:    out,
		prompt: prompt,
		keys:   core.DefaultKeyMap(),
		logger: logger,
		lines:  make(chan string),
	}
}

func (f *Frontend) ID() string    { return ID }
func (f *Frontend) Title() string { return "Plain Text" }

// readLines feeds lines to Choose so a pending read never blocks
// cancellation. It runs until the input ends.
func (f *Frontend) readLines() {
	sc := bufio.NewScanner(f.in)
	for sc.Scan() {
		f.lines <- sc.Text()
	}
	f.readErr = sc.Err()
	close(f.lines)
}

// Choose prints the board and reads lines until one maps to an action.
// End of input counts as quitting.
func (f *Frontend) Choose(ctx context.Context, g *t2048.Grid) (core.Action, error) {
	f.start.Do(func() { go f.readLines() })
	f.printBoard(g)

	for {
		if f.prompt {
			fmt.Fprint(f.out, "> ")
		}
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case line, ok := <-f.lines:
			if !ok {
				if f.readErr != nil {
					return core.ActionNone, fmt.Errorf("text: read input: %w", f.readErr)
				}
				return core.ActionQuit, registry.ErrQuit
			}
			if action := f.keys.Lookup(line); action != core.ActionNone {
				f.logger.Debug("key read", "line", line, "action", action)
				return action, nil
			}
			if line != "" {
				fmt.Fprintf(f.out, "unknown key %q\n", line)
			}
			fmt.Fprintln(f.out, help)
		}
	}
}

// Observe tells the player when a drag changed nothing.
func (f *Frontend) Observe(action core.Action, changed bool, _ *t2048.Grid) {
	if action.IsMove() && !changed {
		fmt.Fprintf(f.out, "nothing moves %s\n", action)
	}
}

func (f *Frontend) Report(outcome core.Outcome, g *t2048.Grid) {
	f.printBoard(g)
	switch outcome {
	case core.OutcomeVictory:
		fmt.Fprintln(f.out, "You won!")
	case core.OutcomeOvervictory:
		fmt.Fprintln(f.out, "No more moves, but you had already won.")
	case core.OutcomeLoss:
		fmt.Fprintln(f.out, "No more moves. Game over.")
	case core.OutcomeQuit:
		fmt.Fprintln(f.out, "Bye.")
	}
}

func (f *Frontend) printBoard(g *t2048.Grid) {
	fmt.Fprintf(f.out, "\nscore: %d  largest: %d  moves: %d\n%s\n",
		g.Score(), g.Largest(), g.Cycle(), g)
}
