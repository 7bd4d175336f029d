package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termvaders/internal/completion"
)

var flagPID int

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Tell a running game the task is done",
	Long: `Create the marker file a running game polls for. The game switches to
TASK COMPLETE within half a second and removes the file.

With --pid the process is also sent SIGUSR1, which is picked up at once.

Examples:
  long-build && vaders complete
  vaders complete --pid 4242`,
	Args: cobra.NoArgs,
	Run:  runComplete,
}

func init() {
	completeCmd.Flags().IntVar(&flagPID, "pid", 0, "Also send SIGUSR1 to this process")
}

func runComplete(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if err := completion.Touch(cfg.Paths.Signal); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Created %s\n", cfg.Paths.Signal)

	if flagPID > 0 {
		if err := completion.SendSignal(flagPID); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Sent SIGUSR1 to %d\n", flagPID)
	}
}
