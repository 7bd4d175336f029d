// vaders is a Space Invaders shooter for the terminal, meant to be played
// while a long task runs elsewhere.
//
// Usage:
//
//	vaders                   - Play (same as vaders play)
//	vaders play              - Play a game
//	vaders complete          - Signal the running game that the task is done
//	vaders scores            - Show the game history
//	vaders serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Use a custom config file
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termvaders/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vaders",
	Short: "Termvaders - shoot aliens while you wait",
	Long: `Termvaders is a terminal Space Invaders game. Run it while a long task
works in another window; when the task finishes, run 'vaders complete'
(or send SIGUSR1) and the game shows TASK COMPLETE.

Available commands:
  play      - Play the game (default)
  complete  - Tell a running game the task is done
  scores    - View the game history
  serve     - Start SSH server for remote play

Examples:
  vaders
  vaders complete
  vaders scores --tui
  vaders serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config and applies global flag overrides.
// Setup failures end the process.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			fatalf("%v", err)
		}
	}
	return cfg
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
