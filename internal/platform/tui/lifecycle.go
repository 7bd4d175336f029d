package tui

import (
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Lifecycle owns the process-level resources of one game: the tick timer
// state, the completion subscription and the exit hook.
//
// Shutdown order is fixed: the timer stops first (Model does this before
// quitting), the Bubble Tea program then releases the terminal, and Finish
// cancels the subscription and runs the exit hook exactly once.
type Lifecycle struct {
	mu          sync.Mutex
	gen         uint64
	ticking     bool
	unsubscribe func()
	exitHook    func()
	finished    sync.Once
}

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*Lifecycle)

// WithExitHook replaces the default exit hook. A nil hook does nothing.
func WithExitHook(hook func()) LifecycleOption {
	return func(l *Lifecycle) {
		l.exitHook = hook
	}
}

// NewLifecycle creates a lifecycle. The default exit hook exits the
// process with status 0.
func NewLifecycle(opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		exitHook: func() { os.Exit(0) },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ExitHook removes the marker file at path, then exits with status 0.
func ExitHook(markerPath string) func() {
	return func() {
		if markerPath != "" {
			_ = os.Remove(markerPath)
		}
		os.Exit(0)
	}
}

// StartTimer begins a new timer generation and schedules its first tick.
func (l *Lifecycle) StartTimer() tea.Cmd {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.ticking = true
	return tickCmd(l.gen)
}

// NextTick schedules the following tick, or nothing once stopped.
func (l *Lifecycle) NextTick() tea.Cmd {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ticking {
		return nil
	}
	return tickCmd(l.gen)
}

// Generation returns the current timer generation.
func (l *Lifecycle) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Accept reports whether msg belongs to the running timer.
func (l *Lifecycle) Accept(msg TickMsg) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticking && msg.Gen == l.gen
}

// StopTimer stops the timer. Ticks already in flight are discarded.
func (l *Lifecycle) StopTimer() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ticking = false
}

// Ticking reports whether the timer is running.
func (l *Lifecycle) Ticking() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticking
}

// Subscribe registers the cancel function of the completion subscription.
func (l *Lifecycle) Subscribe(cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unsubscribe = cancel
}

// Finish cancels the completion subscription and runs the exit hook.
// Only the first call has any effect.
func (l *Lifecycle) Finish() {
	l.finished.Do(func() {
		l.StopTimer()

		l.mu.Lock()
		unsubscribe, hook := l.unsubscribe, l.exitHook
		l.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}
		if hook != nil {
			hook()
		}
	})
}
