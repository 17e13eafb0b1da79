// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
)

// ErrQuit is returned by Frontend.Choose when the player wants to leave.
var ErrQuit = errors.New("registry: player quit")

// Frontend is the interface every way of playing implements.
// A frontend only chooses actions and reports results; the game loop
// owns the grid and applies the rules.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "text", "random").
	// Used for CLI flags and configuration.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Choose returns the next action for the current grid. It may block
	// until the player decides; it must return promptly once ctx is done.
	// Returns ErrQuit when the player wants to stop.
	Choose(ctx context.Context, g *t2048.Grid) (core.Action, error)

	// Report is called once when the game ends, unless it was interrupted.
	Report(outcome core.Outcome, g *t2048.Grid)
}

// Observer is optionally implemented by frontends that want to see the
// board after every attempt, whether or not it changed.
type Observer interface {
	Observe(action core.Action, changed bool, g *t2048.Grid)
}

// Settings is what a factory receives to build a frontend.
type Settings struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Interactive frontends read In and write Out; nil means stdin/stdout.
	In  io.Reader
	Out io.Writer
	// Prompt asks interactive frontends to print a prompt before reading.
	Prompt bool
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func(Settings) Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(Settings{Runtime: core.DefaultConfig(), Logger: log.New(io.Discard)}).Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string, s Settings) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(s), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
