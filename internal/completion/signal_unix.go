//go:build unix

package completion

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func subscribe() chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGUSR1)
	return c
}

func unsubscribe(c chan os.Signal) {
	signal.Stop(c)
}

// SignalSupported reports whether SIGUSR1 delivery works on this platform.
const SignalSupported = true

// SendSignal delivers the completion signal to the process pid.
func SendSignal(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGUSR1); err != nil {
		return fmt.Errorf("completion: cannot signal pid %d: %w", pid, err)
	}
	return nil
}
