// Package random implements a frontend that drags in uniformly random
// directions. It is useful for smoke-testing the rules and for autoplay.
package random

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/registry"
)

const ID = "random"

var moves = []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

func init() {
	registry.Register(ID, func(s registry.Settings) registry.Frontend {
		return New(s.Runtime.Seed, s.Runtime.AutoplayDelay, s.Logger)
	})
}

// Frontend picks a random direction on every attempt.
type Frontend struct {
	rng    *rand.Rand
	delay  time.Duration
	logger *log.Logger
}

// New creates a random frontend. A zero seed uses the clock; delay pauses
// before every choice.
func New(seed int64, delay time.Duration, logger *log.Logger) *Frontend {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{
		rng:    rand.New(rand.NewSource(seed)),
		delay:  delay,
		logger: logger,
	}
}

func (f *Frontend) ID() string    { return ID }
func (f *Frontend) Title() string { return "Random Moves" }

// Choose waits for the configured delay, then returns a random direction.
func (f *Frontend) Choose(ctx context.Context, _ *t2048.Grid) (core.Action, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case <-timer.C:
		}
	}
	return moves[f.rng.Intn(len(moves))], nil
}

func (f *Frontend) Report(outcome core.Outcome, g *t2048.Grid) {
	f.logger.Info("random game finished",
		"outcome", outcome,
		"score", g.Score(),
		"largest", g.Largest(),
		"attempts", g.Attempt(),
		"cycles", g.Cycle(),
	)
}
