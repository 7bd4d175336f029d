package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termvaders/internal/logging"
	"github.com/vovakirdan/termvaders/internal/platform/tui"
	"github.com/vovakirdan/termvaders/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. The high score and history are
shared by every session. The task complete trigger only reaches games
played in a local terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.vaders/host_key

Examples:
  vaders serve                           # Listen on :23234 with auto-generated key
  vaders serve --ssh :2222               # Listen on port 2222
  vaders serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := logging.New(os.Stderr, cfg.Log.Level)

	scores := storage.NewAsyncHighScores(storage.NewHighScoreFile(cfg.Paths.HighScore, logger))
	defer scores.Close()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.Scores = scores
	serverCfg.Keys = cfg.Keys
	serverCfg.Theme = cfg.Theme
	serverCfg.Logger = logger

	store, err := storage.Open(cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("could not open history database", "err", err)
	} else {
		defer store.Close()
		serverCfg.History = store
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting vaders SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
