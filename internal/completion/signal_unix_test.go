//go:build unix

package completion

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSignalTriggers(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := New(Options{Signal: true})
	cancel, done := startWatcher(t, w)

	require.NoError(t, SendSignal(os.Getpid()))
	ev := waitEvent(t, w)
	require.Equal(t, SourceSignal, ev.Source)

	cancel()
	require.NoError(t, <-done)
}
