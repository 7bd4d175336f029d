// Package tui hosts the game in a Bubble Tea program: key mapping, frame
// drawing, the tick timer and the process lifecycle, plus the SSH server
// and the score history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termvaders/internal/completion"
	"github.com/vovakirdan/termvaders/internal/invaders"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// timer that scheduled it; ticks from a stopped timer are discarded.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// CompletionMsg reports that the external task complete trigger fired.
type CompletionMsg struct {
	Source completion.Source
}

// tickCmd schedules one tick for timer generation gen.
func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(invaders.TickPeriod, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
