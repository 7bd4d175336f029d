package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termvaders/internal/completion"
	"github.com/vovakirdan/termvaders/internal/logging"
	"github.com/vovakirdan/termvaders/internal/platform/tui"
	"github.com/vovakirdan/termvaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D - Move
  Space           - Fire (restart after game over)
  P               - Pause
  Q/Esc/Ctrl+C    - Quit

The game ends with TASK COMPLETE when the marker file appears or the
process receives SIGUSR1. Press any key to exit after that.

Examples:
  vaders play
  vaders play --seed 42
  vaders play --config ./my-vaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, logFile, err := logging.Open(cfg.Paths.Log, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, logFile = logging.Discard(), io.NopCloser(nil)
	}
	logger.Info("starting", "config", cfg.Source, "seed", flagSeed)

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.FrameWidth || h < tui.FrameHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
				w, h, tui.FrameWidth, tui.FrameHeight)
		}
	}

	scores := storage.NewAsyncHighScores(storage.NewHighScoreFile(cfg.Paths.HighScore, logger))

	// Continue without history - the game still works
	var history tui.HistoryRecorder
	store, err := storage.Open(cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("could not open history database", "err", err)
	} else {
		history = store
	}

	closeAll := func() {
		if err := scores.Close(); err != nil {
			logger.Warn("could not flush high score", "err", err)
		}
		if store != nil {
			store.Close()
		}
		logger.Info("exiting")
		logFile.Close()
	}

	watcher := completion.New(completion.Options{
		Path:   cfg.Paths.Signal,
		Signal: completion.SignalSupported,
		Logger: logger,
	})

	exit := tui.ExitHook(cfg.Paths.Signal)
	life := tui.NewLifecycle(tui.WithExitHook(func() {
		closeAll()
		exit()
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Play(ctx, tui.PlayOptions{
		Model: tui.ModelOptions{
			Lifecycle: life,
			Scores:    scores,
			History:   history,
			Keys:      cfg.Keys,
			Theme:     cfg.Theme,
			Seed:      flagSeed,
			Logger:    logger,
		},
		Watcher: watcher,
	})

	// Play only returns when the program failed to run
	closeAll()
	if runErr != nil {
		fatalf("%v", runErr)
	}
}
