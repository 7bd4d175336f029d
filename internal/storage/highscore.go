package storage

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termvaders/internal/config"
)

// HighScoreFile stores the best score as a decimal integer in a text file.
// The format is shared with other installs of the game, so nothing else
// is ever written to it. Failures are logged and swallowed.
type HighScoreFile struct {
	path   string
	logger *log.Logger
}

// NewHighScoreFile creates a store for path. A leading ~ is expanded.
// A nil logger discards messages.
func NewHighScoreFile(path string, logger *log.Logger) *HighScoreFile {
	if expanded, err := config.ExpandHome(path); err == nil {
		path = expanded
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreFile{path: path, logger: logger}
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored score, or 0 when the file is missing or invalid.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Debug("high score unreadable", "path", f.path, "err", err)
		}
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		f.logger.Debug("high score malformed", "path", f.path, "content", string(data))
		return 0
	}
	return v
}

// Save writes score, replacing the previous value.
func (f *HighScoreFile) Save(score int) {
	if err := f.write(score); err != nil {
		f.logger.Debug("high score not saved", "err", err)
	}
}

func (f *HighScoreFile) write(score int) error {
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score %s: %w", f.path, err)
	}
	return nil
}

// ScoreBackend is a synchronous high score store.
type ScoreBackend interface {
	Load() int
	Save(score int)
}

// AsyncHighScores moves writes off the caller's goroutine. Only the latest
// pending value is written; intermediate values may be skipped. It keeps
// the best value seen in memory and never saves a lower one, so it can be
// shared by several concurrent games.
type AsyncHighScores struct {
	backend ScoreBackend

	mu      sync.Mutex
	best    int
	pending int
	dirty   bool
	closed  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewAsyncHighScores loads the current value and starts the writer.
// Call Close to flush and stop it.
func NewAsyncHighScores(backend ScoreBackend) *AsyncHighScores {
	a := &AsyncHighScores{
		backend: backend,
		best:    max(0, backend.Load()),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go a.loop()
	return a
}

// Load returns the best known score without touching the backend.
func (a *AsyncHighScores) Load() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.best
}

// Save queues score if it beats the best known value. Never blocks on I/O
// while the writer runs; after Close the write happens synchronously.
func (a *AsyncHighScores) Save(score int) {
	a.mu.Lock()
	if score <= a.best {
		a.mu.Unlock()
		return
	}
	a.best = score
	if a.closed {
		a.mu.Unlock()
		a.backend.Save(score)
		return
	}
	a.pending = score
	a.dirty = true
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Close writes any pending value and stops the writer. Safe to call twice.
func (a *AsyncHighScores) Close() error {
	a.once.Do(func() {
		close(a.quit)
		<-a.done
	})
	return nil
}

func (a *AsyncHighScores) loop() {
	defer close(a.done)
	for {
		select {
		case <-a.wake:
			a.flush()
		case <-a.quit:
			a.mu.Lock()
			a.closed = true
			a.mu.Unlock()
			a.flush()
			return
		}
	}
}

func (a *AsyncHighScores) flush() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	v := a.pending
	a.dirty = false
	a.mu.Unlock()

	a.backend.Save(v)
}
