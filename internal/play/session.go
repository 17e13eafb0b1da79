// Package play runs the 2048 game loop: it asks a frontend for actions,
// applies them to a grid and decides how the game ended.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/registry"
)

var (
	// ErrEmptyGrid is returned by Play for a grid without tiles.
	ErrEmptyGrid = errors.New("play: grid is empty")
	// ErrJammedGrid is returned by Play for a grid that cannot move.
	ErrJammedGrid = errors.New("play: grid is jammed")
	// ErrGoal is returned by New for a goal that is not a power of two.
	ErrGoal = errors.New("play: goal must be a power of 2")
)

// Session drives one grid with one frontend. The victory flag survives
// between Play calls, so a player who continues after winning ends the
// next game with an overvictory instead of a loss.
type Session struct {
	grid     *t2048.Grid
	frontend registry.Frontend
	goal     int
	logger   *log.Logger
	victory  bool
}

// New creates a session. A zero goal means t2048.DefaultGoal.
func New(g *t2048.Grid, f registry.Frontend, goal int, logger *log.Logger) (*Session, error) {
	if goal == 0 {
		goal = t2048.DefaultGoal
	}
	if !t2048.IsGoal(goal) {
		return nil, fmt.Errorf("%w, got %d", ErrGoal, goal)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{grid: g, frontend: f, goal: goal, logger: logger}, nil
}

// Resume creates a session for a grid restored from a save. A grid that
// already holds the goal tile counts as won, so it is not won again.
func Resume(g *t2048.Grid, f registry.Frontend, goal int, logger *log.Logger) (*Session, error) {
	s, err := New(g, f, goal, logger)
	if err != nil {
		return nil, err
	}
	s.victory = g.Largest() >= s.goal
	if s.victory {
		s.logger.Debug("resumed a won game", "largest", g.Largest(), "goal", s.goal)
	}
	return s, nil
}

// Grid returns the grid being played.
func (s *Session) Grid() *t2048.Grid {
	return s.grid
}

// Goal returns the tile needed to win.
func (s *Session) Goal() int {
	return s.goal
}

// Victory reports whether the goal was reached since the last restart.
func (s *Session) Victory() bool {
	return s.victory
}

// Play runs attempts until the grid jams, the player quits, or the goal is
// reached for the first time. The frontend's Report sees every outcome
// except OutcomeInterrupted, which is returned as soon as ctx is done.
func (s *Session) Play(ctx context.Context) (core.Outcome, error) {
	g := s.grid
	if g.IsEmpty() {
		return core.OutcomeNone, fmt.Errorf("%w:\n%v", ErrEmptyGrid, g)
	}
	jammed := g.IsJammed()
	if jammed {
		return core.OutcomeNone, fmt.Errorf("%w:\n%v", ErrJammedGrid, g)
	}
	s.logger.Info("game started", "frontend", s.frontend.ID(), "goal", s.goal, "side", g.Side())

	quit := false
loop:
	for !jammed {
		if ctx.Err() != nil {
			return s.interrupted()
		}

		action, err := s.frontend.Choose(ctx, g)
		switch {
		case errors.Is(err, registry.ErrQuit):
			quit = true
			break loop
		case ctx.Err() != nil:
			return s.interrupted()
		case err != nil:
			return core.OutcomeNone, fmt.Errorf("play: frontend %s: %w", s.frontend.ID(), err)
		}

		changed := false
		switch {
		case action.IsMove():
			dir, _ := t2048.DirectionFromAction(action)
			if changed = g.Drag(dir); changed {
				jammed = g.IsJammed()
			}
		case action == core.ActionUndo:
			changed, _ = g.Undo(true)
		case action == core.ActionRestart:
			s.victory = false
			g.Reset()
			changed = true
			jammed = g.IsJammed()
		case action == core.ActionQuit:
			quit = true
			break loop
		default:
			s.logger.Debug("ignoring action", "action", action)
			continue
		}
		s.logger.Debug("attempt", "action", action, "changed", changed, "score", g.Score())

		if o, ok := s.frontend.(registry.Observer); ok {
			o.Observe(action, changed, g)
		}

		// Only the first victory stops the loop; after that the player
		// keeps going until the grid jams.
		if !s.victory && g.Largest() >= s.goal {
			s.victory = true
			break
		}
	}

	var outcome core.Outcome
	switch {
	case quit:
		outcome = core.OutcomeQuit
	case s.victory && jammed:
		outcome = core.OutcomeOvervictory
	case s.victory:
		outcome = core.OutcomeVictory
	default:
		outcome = core.OutcomeLoss
	}
	s.logger.Info("game ended", "outcome", outcome, "score", g.Score(), "largest", g.Largest())
	s.frontend.Report(outcome, g)
	return outcome, nil
}

func (s *Session) interrupted() (core.Outcome, error) {
	s.logger.Info("game interrupted", "score", s.grid.Score())
	return core.OutcomeInterrupted, nil
}
