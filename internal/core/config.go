package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Side           int           // Board side length
	StartingAmount int           // Tiles seeded on a fresh board
	SeedValues     []int         // Values a seeded tile can take
	Goal           int           // Tile needed to win
	Seed           int64         // RNG seed for deterministic gameplay
	AutoplayDelay  time.Duration // Pause between random moves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Side:           4,
		StartingAmount: 2,
		SeedValues:     []int{2, 4},
		Goal:           2048,
		Seed:           0, // 0 means use current time in platform layer
	}
}

// Outcome describes why a game loop ended.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeVictory             // goal reached for the first time
	OutcomeOvervictory         // board jammed after the goal was already reached
	OutcomeLoss                // board jammed before reaching the goal
	OutcomeQuit                // player asked to leave
	OutcomeInterrupted         // loop cancelled from outside
)

// String returns the lowercase name stored alongside scores.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeOvervictory:
		return "overvictory"
	case OutcomeLoss:
		return "loss"
	case OutcomeQuit:
		return "quit"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "none"
	}
}

// GameState summarizes a board for frontends and score storage.
type GameState struct {
	Score   int // Cumulative merge score
	Largest int // Highest tile on the board
	Attempt int // Drags requested
	Cycle   int // Drags that changed the board
	Jammed  bool
}
