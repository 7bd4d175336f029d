//go:build !unix

package completion

import (
	"errors"
	"os"
)

// ErrNoSignal is returned where SIGUSR1 does not exist.
var ErrNoSignal = errors.New("completion: signals are not supported on this platform")

// A nil channel never delivers, so the signal source just waits for ctx.
func subscribe() chan os.Signal { return nil }

func unsubscribe(chan os.Signal) {}

// SignalSupported reports whether SIGUSR1 delivery works on this platform.
const SignalSupported = false

// SendSignal always fails; use the marker file instead.
func SendSignal(int) error {
	return ErrNoSignal
}
