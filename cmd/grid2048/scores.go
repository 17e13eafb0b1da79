package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/storage"
)

var (
	flagClear bool
	flagAll   bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [side]",
	Short: "Show results for a board size",
	Long: `Display the best results for a board size (default from config).
With --all, show aggregated statistics for every size played.

Examples:
  grid2048 scores
  grid2048 scores 5 --limit 20
  grid2048 scores --all
  grid2048 scores 4 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results for this board size")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show statistics for every board size")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	side := cfg.Board.Side
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 2 {
			fmt.Fprintf(os.Stderr, "Error: invalid board side %q\n", args[0])
			os.Exit(1)
		}
		side = n
	}

	// Open result storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagAll:
		printAllStats(store)
	case flagClear:
		if err := store.ClearResults(side); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared results for %dx%d.\n", side, side)
	default:
		printTopResults(store, side)
	}
}

func printTopResults(store *storage.Store, side int) {
	results, err := store.TopResults(side, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Best Results - %dx%d\n", side, side)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'grid2048 play' to set the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Score", "Largest", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "-------", "-------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-12s  %s\n", i+1, r.Score, r.Largest, r.Outcome, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(side); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printAllStats(store *storage.Store) {
	sides, err := store.Sides()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		return
	}
	if len(sides) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-6s  %-5s  %-8s  %-9s  %-8s  %s\n", "Board", "Games", "Wins", "Best", "Average", "Top tile", "Last played")
	fmt.Printf("  %-6s  %-6s  %-5s  %-8s  %-9s  %-8s  %s\n", "-----", "-----", "----", "----", "-------", "--------", "-----------")
	for _, side := range sides {
		s, err := store.Stats(side)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
			return
		}
		board := fmt.Sprintf("%dx%d", side, side)
		fmt.Printf("  %-6s  %-6d  %-5d  %-8d  %-9.1f  %-8d  %s\n",
			board, s.GamesCount, s.Victories, s.HighScore, s.AvgScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
