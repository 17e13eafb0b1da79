// grid2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	grid2048 play                - Play with the configured frontend
//	grid2048 autoplay            - Let the random frontend play
//	grid2048 scores [side]       - Show results for a board size
//	grid2048 frontends           - List available frontends
//	grid2048 inspect <save>      - Print a saved game
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default from config)
//	-v, -vv         - Log info or debug messages
//	-q              - Log nothing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/grid2048/internal/frontends/random"
	_ "github.com/vovakirdan/grid2048/internal/frontends/text"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose int
	flagQuiet   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grid2048",
	Short: "grid2048 - Slide and merge tiles until you reach 2048",
	Long: `grid2048 is the 2048 puzzle for the terminal. Slide the board up,
left, down or right; equal tiles merge and a new tile appears after
every move that changed something.

Available commands:
  play       - Play a game (resumes the saved one with --resume)
  autoplay   - Let random moves play a number of games
  scores     - View results per board size
  frontends  - Show all available frontends
  inspect    - Print a saved game

Examples:
  grid2048 play
  grid2048 play --resume
  grid2048 autoplay --games 10 --seed 42
  grid2048 scores 4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "Log more (repeat for debug)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Log nothing")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the CLI logger. -q silences it; each -v lowers the
// threshold one step from warn; otherwise the config level applies.
func newLogger(cfg config.Config) *log.Logger {
	if flagQuiet {
		return log.New(io.Discard)
	}

	level := log.WarnLevel
	if parsed, err := log.ParseLevel(cfg.Log.Level); err == nil && cfg.Log.Level != "" {
		level = parsed
	}
	switch {
	case flagVerbose == 1:
		level = log.InfoLevel
	case flagVerbose >= 2:
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "grid2048",
		Level:           level,
	})
}

// dbPath returns the --db flag, or the configured path.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}
