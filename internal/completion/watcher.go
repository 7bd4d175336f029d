// Package completion detects the external "task complete" trigger. Three
// sources produce the same event: SIGUSR1 (on unix), a marker file found by
// polling, and the same marker file seen by a filesystem watch. The marker
// is deleted when detected.
package completion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval is how often the marker file is checked.
const DefaultPollInterval = 500 * time.Millisecond

// Source identifies what raised a completion event.
type Source string

const (
	SourceSignal Source = "signal"
	SourceFile   Source = "file"
	SourceNotify Source = "fsnotify"
)

// Event is one detected trigger. Consumers treat every source alike.
type Event struct {
	Source Source
	At     time.Time
}

// Options configures a Watcher.
type Options struct {
	// Path is the marker file. Empty disables both file sources.
	Path string

	// PollInterval defaults to DefaultPollInterval.
	PollInterval time.Duration

	// Signal enables SIGUSR1 delivery where the platform supports it.
	Signal bool

	// DisableNotify turns off the filesystem watch and relies on polling.
	DisableNotify bool

	Logger *log.Logger
}

// Watcher delivers completion events on a channel while Run is active.
type Watcher struct {
	opts   Options
	logger *log.Logger
	events chan Event
	ready  chan struct{}

	mu sync.Mutex // serializes marker consumption between poll and notify
}

// New creates a watcher. Call Run to start it.
func New(opts Options) *Watcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		opts:   opts,
		logger: logger,
		events: make(chan Event, 1),
		ready:  make(chan struct{}),
	}
}

// Events returns the channel of detected triggers. It is closed when Run
// returns. The buffer holds one event; triggers arriving while an event is
// still unread are dropped, since completion is only acted on once.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Ready is closed once every source is subscribed.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Path returns the marker file location.
func (w *Watcher) Path() string {
	return w.opts.Path
}

// Run watches every enabled source until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	if w.opts.Signal {
		sigs := subscribe()
		g.Go(func() error {
			defer unsubscribe(sigs)
			return w.watchSignal(ctx, sigs)
		})
	}

	if w.opts.Path != "" {
		if !w.opts.DisableNotify {
			if fsw, err := w.newNotifier(); err != nil {
				w.logger.Warn("file watch unavailable, polling only", "err", err)
			} else {
				g.Go(func() error {
					defer fsw.Close()
					return w.watchNotify(ctx, fsw)
				})
			}
		}
		g.Go(func() error {
			return w.poll(ctx)
		})
	}

	close(w.ready)
	w.logger.Debug("completion watcher started", "path", w.opts.Path, "signal", w.opts.Signal)

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (w *Watcher) watchSignal(ctx context.Context, sigs <-chan os.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sigs:
			w.emit(SourceSignal)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.check(SourceFile)
		}
	}
}

func (w *Watcher) newNotifier() (*fsnotify.Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("completion: cannot create file watcher: %w", err)
	}
	dir := filepath.Dir(w.opts.Path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("completion: cannot watch %s: %w", dir, err)
	}
	return fsw, nil
}

func (w *Watcher) watchNotify(ctx context.Context, fsw *fsnotify.Watcher) error {
	target := filepath.Clean(w.opts.Path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				w.check(SourceNotify)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			// Polling still covers the marker
			w.logger.Warn("file watch error", "err", err)
		}
	}
}

// check consumes the marker file if present.
func (w *Watcher) check(src Source) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := os.Stat(w.opts.Path); err != nil {
		return
	}
	if err := os.Remove(w.opts.Path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		w.logger.Warn("cannot remove marker file", "path", w.opts.Path, "err", err)
	}
	w.emit(src)
}

func (w *Watcher) emit(src Source) {
	w.logger.Info("completion triggered", "source", src)
	select {
	case w.events <- Event{Source: src, At: time.Now()}:
	default:
	}
}

// Cleanup removes a stale marker file. Errors are ignored.
func (w *Watcher) Cleanup() {
	if w.opts.Path != "" {
		_ = os.Remove(w.opts.Path)
	}
}

// Touch creates the marker file at path, making any running game finish.
func Touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("completion: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return fmt.Errorf("completion: cannot create marker %s: %w", path, err)
	}
	return nil
}
