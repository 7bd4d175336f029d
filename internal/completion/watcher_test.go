package completion

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// startWatcher runs w until the test ends and waits for it to subscribe.
func startWatcher(t *testing.T, w *Watcher) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case <-time.After(2 * time.Second):
		cancelCtx()
		t.Fatal("watcher never became ready")
	}
	return cancelCtx, errc
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("no completion event")
		return Event{}
	}
}

func TestPollDetectsMarker(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "signal")
	w := New(Options{Path: path, PollInterval: 20 * time.Millisecond, DisableNotify: true})
	cancel, done := startWatcher(t, w)

	require.NoError(t, Touch(path))
	ev := waitEvent(t, w)
	require.Equal(t, SourceFile, ev.Source)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "marker should be deleted on detection")

	cancel()
	require.NoError(t, <-done)
}

func TestNotifyDetectsMarker(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "signal")
	// Polling is too slow to win; only the file watch can see the marker in time
	w := New(Options{Path: path, PollInterval: time.Hour})
	cancel, done := startWatcher(t, w)

	require.NoError(t, Touch(path))
	ev := waitEvent(t, w)
	require.Equal(t, SourceNotify, ev.Source)

	cancel()
	require.NoError(t, <-done)
}

func TestMarkerConsumedOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "signal")
	w := New(Options{Path: path, PollInterval: 10 * time.Millisecond})
	cancel, done := startWatcher(t, w)

	require.NoError(t, Touch(path))
	waitEvent(t, w)

	select {
	case ev := <-w.Events():
		t.Fatalf("one marker produced a second event from %s", ev.Source)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestEventsClosedAfterRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := New(Options{})
	cancel, done := startWatcher(t, w)
	cancel()
	require.NoError(t, <-done)

	_, open := <-w.Events()
	require.False(t, open, "events channel should be closed")
}

func TestCleanupRemovesStaleMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal")
	require.NoError(t, Touch(path))

	w := New(Options{Path: path})
	w.Cleanup()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Missing marker is fine
	w.Cleanup()
}

func TestTouchCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "signal")
	require.NoError(t, Touch(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestNewDefaults(t *testing.T) {
	w := New(Options{Path: "/tmp/x"})
	require.Equal(t, DefaultPollInterval, w.opts.PollInterval)
	require.Equal(t, "/tmp/x", w.Path())
	require.NotNil(t, w.logger)
}
