// Package config provides YAML-based configuration loading for grid2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the whole configuration file.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board shape and how new tiles are seeded.
type BoardConfig struct {
	Side           int   `yaml:"side"`
	StartingAmount int   `yaml:"starting_amount"`
	SeedValues     []int `yaml:"seed_values"`
}

// GameConfig defines the game loop parameters.
type GameConfig struct {
	Goal            int    `yaml:"goal"`
	Frontend        string `yaml:"frontend"`          // Registered frontend ID
	AutoplayDelayMS int    `yaml:"autoplay_delay_ms"` // Pause between random moves
}

// StorageConfig defines where scores and saved games live.
type StorageConfig struct {
	DBPath   string `yaml:"db_path"`
	SavePath string `yaml:"save_path"`
}

// LogConfig defines the default log level.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Side:           4,
			StartingAmount: t2048.DefaultStartingAmount,
			SeedValues:     []int{2, 4},
		},
		Game: GameConfig{
			Goal:     t2048.DefaultGoal,
			Frontend: "text",
		},
		Storage: StorageConfig{
			DBPath:   "~/.grid2048/scores.db",
			SavePath: "~/.grid2048/save.json",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	b := c.Board
	if b.Side < 2 {
		return fmt.Errorf("%w: board.side must be at least 2, got %d", ErrInvalid, b.Side)
	}
	if b.StartingAmount < 1 || b.StartingAmount > b.Side*b.Side {
		return fmt.Errorf("%w: board.starting_amount must be 1..%d, got %d",
			ErrInvalid, b.Side*b.Side, b.StartingAmount)
	}
	if len(b.SeedValues) == 0 {
		return fmt.Errorf("%w: board.seed_values is empty", ErrInvalid)
	}
	for _, v := range b.SeedValues {
		if !t2048.IsGoal(v) {
			return fmt.Errorf("%w: board.seed_values must be powers of 2, got %d", ErrInvalid, v)
		}
	}
	if !t2048.IsGoal(c.Game.Goal) {
		return fmt.Errorf("%w: game.goal must be a power of 2, got %d", ErrInvalid, c.Game.Goal)
	}
	if c.Game.AutoplayDelayMS < 0 {
		return fmt.Errorf("%w: game.autoplay_delay_ms is negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Runtime converts the configuration into game parameters. A zero seed
// means the caller picks one from the clock.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Side:           c.Board.Side,
		StartingAmount: c.Board.StartingAmount,
		SeedValues:     append([]int(nil), c.Board.SeedValues...),
		Goal:           c.Game.Goal,
		Seed:           seed,
		AutoplayDelay:  time.Duration(c.Game.AutoplayDelayMS) * time.Millisecond,
	}
}
