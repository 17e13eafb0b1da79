package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [save]",
	Short: "Print a saved game",
	Long: `Print the board and counters of a saved game
(default: the configured save path).

Examples:
  grid2048 inspect
  grid2048 inspect ./game.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg := loadConfig()
		expanded, err := config.ExpandHome(cfg.Storage.SavePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path = expanded
	}

	g, err := t2048.LoadFile(path, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	state := g.State()
	fmt.Printf("%s (%dx%d)\n\n%s\n\n", path, g.Side(), g.Side(), g)
	fmt.Printf("  Score:    %d\n", state.Score)
	fmt.Printf("  Largest:  %d\n", state.Largest)
	fmt.Printf("  Moves:    %d of %d attempts\n", state.Cycle, state.Attempt)
	fmt.Printf("  Undo:     %d step(s) available\n", len(g.History())-1)
	fmt.Printf("  Jammed:   %t\n", state.Jammed)
}
