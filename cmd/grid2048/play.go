package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/games/t2048"
	"github.com/vovakirdan/grid2048/internal/play"
	"github.com/vovakirdan/grid2048/internal/registry"
	"github.com/vovakirdan/grid2048/internal/storage"
)

var (
	flagFrontend string
	flagResume   bool
	flagSavePath string
	flagStop     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing 2048 with the configured frontend.

Controls (text frontend, one key per line):
  w/k   - Up
  a/h   - Left
  s/j   - Down
  d/l   - Right
  u     - Undo the last move
  r     - Restart
  q/EOF - Quit and save

Quitting or pressing Ctrl+C saves the game; --resume picks it up again.
Reaching the goal does not end the game unless --stop is given.

Examples:
  grid2048 play
  grid2048 play --resume
  grid2048 play --frontend random --seed 7
  grid2048 play --config ./my-grid2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend ID (default from config)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved game if there is one")
	playCmd.Flags().StringVar(&flagSavePath, "save", "", "Save file path (default from config)")
	playCmd.Flags().BoolVar(&flagStop, "stop", false, "End the game when the goal is reached")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	rt := runtimeConfig(cfg)

	frontendID := flagFrontend
	if frontendID == "" {
		frontendID = cfg.Game.Frontend
	}
	if !registry.Exists(frontendID) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", frontendID)
		fmt.Fprintln(os.Stderr, "Run 'grid2048 frontends' to see available frontends.")
		os.Exit(1)
	}

	savePath := flagSavePath
	if savePath == "" {
		savePath = cfg.Storage.SavePath
	}
	savePath, err := config.ExpandHome(savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, resumed, err := openGrid(rt, logger, savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontend, err := registry.Create(frontendID, registry.Settings{
		Runtime: rt,
		Logger:  logger,
		Prompt:  term.IsTerminal(int(os.Stdin.Fd())),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	newSession := play.New
	if resumed {
		newSession = play.Resume
	}
	session, err := newSession(g, frontend, rt.Goal, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()
	logger.Info("session started", "session", sessionID, "frontend", frontendID)

	outcome, err := session.Play(ctx)
	for err == nil && outcome == core.OutcomeVictory && !flagStop {
		outcome, err = session.Play(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch outcome {
	case core.OutcomeQuit, core.OutcomeInterrupted:
		// Unfinished games are saved, not scored.
		if err := g.SaveFile(savePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save game: %v\n", err)
			return
		}
		fmt.Printf("Game saved to %s\n", savePath)
	default:
		if err := os.Remove(savePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not remove finished save", "path", savePath, "error", err)
		}
		recordResult(dbPath(cfg), sessionID, outcome, g, logger)
	}
}

// runtimeConfig converts cfg with the --seed flag, picking a clock seed
// when none was given so it can be logged and replayed.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cfg.Runtime(seed)
}

// openGrid resumes the game saved at savePath when --resume is set and the
// save is still playable; otherwise it starts a new one. resumed reports
// which of the two happened.
func openGrid(rt core.RuntimeConfig, logger *log.Logger, savePath string) (g *t2048.Grid, resumed bool, err error) {
	opts := []t2048.Option{
		t2048.WithLogger(logger),
		t2048.WithSeed(rt.Seed),
		t2048.WithStartingAmount(rt.StartingAmount),
		t2048.WithSeedValues(rt.SeedValues...),
	}

	if flagResume {
		g, err := t2048.LoadFile(savePath, true, t2048.WithLogger(logger), t2048.WithSeed(rt.Seed))
		if err != nil {
			return nil, false, err
		}
		switch {
		case g == nil:
			logger.Info("no saved game, starting a new one", "path", savePath)
		case g.IsEmpty() || g.IsJammed():
			logger.Warn("saved game cannot be played, starting a new one", "path", savePath)
		default:
			return g, true, nil
		}
	}

	logger.Debug("new grid", "side", rt.Side, "seed", rt.Seed)
	g, err = t2048.New(rt.Side, opts...)
	return g, false, err
}

// recordResult stores a finished game. Failures are logged, never fatal.
func recordResult(path, sessionID string, outcome core.Outcome, g *t2048.Grid, logger *log.Logger) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveResult(storage.Result{
		SessionID: sessionID,
		Side:      g.Side(),
		Score:     g.Score(),
		Largest:   g.Largest(),
		Attempts:  g.Attempt(),
		Cycles:    g.Cycle(),
		Outcome:   outcome.String(),
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
		return
	}
	logger.Info("result saved", "session", sessionID, "outcome", outcome, "score", g.Score())
}
