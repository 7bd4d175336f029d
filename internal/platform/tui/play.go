package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/termvaders/internal/completion"
)

// PlayOptions configures a local interactive game.
type PlayOptions struct {
	Model ModelOptions

	// Watcher delivers the task complete trigger. Optional.
	Watcher *completion.Watcher

	// ProgramOptions are appended to the defaults (alt screen, context).
	ProgramOptions []tea.ProgramOption
}

// Play runs a game in the terminal until the player quits, the task
// completes and a key is pressed, or ctx is cancelled. It then calls
// Lifecycle.Finish, whose default hook exits the process.
func Play(ctx context.Context, opts PlayOptions) error {
	life := opts.Model.Lifecycle
	if life == nil {
		life = NewLifecycle()
		opts.Model.Lifecycle = life
	}

	model := NewModel(opts.Model)
	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)

	watchCtx, cancelWatch := context.WithCancel(ctx)
	life.Subscribe(cancelWatch)

	g, gctx := errgroup.WithContext(watchCtx)
	if w := opts.Watcher; w != nil {
		w.Cleanup()
		g.Go(func() error {
			return w.Run(gctx)
		})
		g.Go(func() error {
			forwardCompletion(w.Events(), p.Send)
			return nil
		})
	}

	_, runErr := p.Run()

	// The terminal is restored once Run returns
	cancelWatch()
	watchErr := g.Wait()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: program failed: %w", runErr)
	}
	if watchErr != nil {
		return fmt.Errorf("tui: completion watcher failed: %w", watchErr)
	}

	life.Finish()
	return nil
}

// forwardCompletion relays watcher events into the program until the
// event channel closes.
func forwardCompletion(events <-chan completion.Event, send func(tea.Msg)) {
	for ev := range events {
		send(CompletionMsg{Source: ev.Source})
	}
}
