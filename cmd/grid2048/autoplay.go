package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/frontends/random"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/play"
	"github.com/vovakirdan/grid2048/internal/registry"
)

var (
	flagGames    int
	flagDelay    time.Duration
	flagNoRecord bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let random moves play",
	Long: `Play a number of games with the random frontend and print how each ended.
Results are recorded like any other game unless --no-record is given.

Examples:
  grid2048 autoplay
  grid2048 autoplay --games 100 --seed 42 --no-record
  grid2048 autoplay --delay 200ms -v`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().DurationVar(&flagDelay, "delay", -1, "Pause between moves (default from config)")
	autoplayCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not store results")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	rt := runtimeConfig(cfg)
	if flagDelay >= 0 {
		rt.AutoplayDelay = flagDelay
	}
	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be at least 1")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Game", "Outcome", "Score", "Largest", "Moves")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "-------", "-----", "-------", "-----")

	for i := range flagGames {
		// Each game gets its own seed so a run is reproducible as a whole.
		gameRT := rt
		gameRT.Seed = rt.Seed + int64(i)

		g, err := t2048.New(gameRT.Side,
			t2048.WithLogger(logger),
			t2048.WithSeed(gameRT.Seed),
			t2048.WithStartingAmount(gameRT.StartingAmount),
			t2048.WithSeedValues(gameRT.SeedValues...),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		frontend, err := registry.Create(random.ID, registry.Settings{Runtime: gameRT, Logger: logger})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
			os.Exit(1)
		}
		session, err := play.New(g, frontend, gameRT.Goal, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		outcome, err := session.Play(ctx)
		for err == nil && outcome == core.OutcomeVictory {
			outcome, err = session.Play(ctx)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %d\n", i+1, outcome, g.Score(), g.Largest(), g.Cycle())
		if outcome == core.OutcomeInterrupted {
			return
		}
		if !flagNoRecord {
			recordResult(dbPath(cfg), uuid.NewString(), outcome, g, logger)
		}
	}
}
