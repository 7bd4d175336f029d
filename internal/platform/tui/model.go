package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/termvaders/internal/config"
	"github.com/vovakirdan/termvaders/internal/core"
	"github.com/vovakirdan/termvaders/internal/invaders"
	"github.com/vovakirdan/termvaders/internal/storage"
)

// HistoryRecorder stores finished games. *storage.Store implements it.
type HistoryRecorder interface {
	RecordGame(rec storage.GameRecord) (int64, error)
}

// ModelOptions collects the collaborators of a Model. Zero values are
// replaced with defaults; only Lifecycle is required.
type ModelOptions struct {
	Lifecycle *Lifecycle
	Scores    invaders.HighScores
	History   HistoryRecorder
	Keys      config.KeysConfig
	Theme     config.ThemeConfig
	Palette   Palette
	Seed      int64
	Logger    *log.Logger
}

// Model is the Bubble Tea model running one game. Bubble Tea delivers
// messages to Update one at a time, so the engine is only ever touched
// from a single goroutine.
type Model struct {
	engine  *invaders.Engine
	frame   *Frame
	keys    KeyMap
	life    *Lifecycle
	history HistoryRecorder
	logger  *log.Logger

	runID    string
	recorded bool // Whether the current game is already in the history
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a fresh game.
func NewModel(opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	if len(opts.Keys.Left) > 0 {
		keys = NewKeyMap(opts.Keys)
	}
	theme := DefaultTheme()
	if opts.Theme != (config.ThemeConfig{}) {
		theme = ThemeFromConfig(opts.Theme)
	}
	life := opts.Lifecycle
	if life == nil {
		life = NewLifecycle(WithExitHook(nil))
	}

	frame := NewFrame(theme, opts.Palette, keys)
	engine := invaders.NewEngine(
		invaders.WithRenderer(frame),
		invaders.WithHighScores(opts.Scores),
		invaders.WithSeed(opts.Seed),
		invaders.WithLogger(logger),
	)
	frame.Render(engine.Snapshot())

	return Model{
		engine:  engine,
		frame:   frame,
		keys:    keys,
		life:    life,
		history: opts.History,
		logger:  logger,
		runID:   uuid.NewString(),
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.life.StartTimer()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case CompletionMsg:
		return m.handleCompletion(msg)
	}

	return m, nil
}

// handleKey applies the mapped action immediately. Once the task is
// complete any key at all exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine.Phase() == invaders.PhaseTaskComplete {
		return m.exit()
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	switch m.engine.Apply(action) {
	case invaders.OutcomeExit:
		return m.exit()
	case invaders.OutcomeRestarted:
		m.runID = uuid.NewString()
		m.recorded = false
		m.logger.Info("new game", "run", m.runID)
	}

	m.frame.Render(m.engine.Snapshot())
	return m, nil
}

// handleTick runs one simulation step for the live timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.life.Accept(msg) {
		return m, nil
	}

	m.engine.Tick()
	if m.engine.Phase() == invaders.PhaseGameOver && !m.recorded {
		m.record(storage.OutcomeGameOver)
	}

	return m, m.life.NextTick()
}

// handleCompletion ends the game and freezes the board.
func (m Model) handleCompletion(msg CompletionMsg) (tea.Model, tea.Cmd) {
	alreadyOver := m.recorded
	if !m.engine.TriggerCompletion() {
		return m, nil
	}
	m.logger.Info("completion received", "source", msg.Source)
	m.life.StopTimer()

	// A game that already ended stays recorded as it ended
	if !alreadyOver {
		m.record(storage.OutcomeTaskComplete)
	}
	return m, nil
}

// exit stops the timer and quits the program. Releasing the terminal
// happens when the program returns; the exit hook runs after that.
func (m Model) exit() (tea.Model, tea.Cmd) {
	m.life.StopTimer()
	if !m.recorded && m.engine.Snapshot().Score > 0 {
		m.record(storage.OutcomeQuit)
	}
	m.quitting = true
	return m, tea.Quit
}

// record stores the current game in the history. Failures are logged only.
func (m *Model) record(outcome storage.Outcome) {
	m.recorded = true
	if m.history == nil {
		return
	}

	snap := m.engine.Snapshot()
	_, err := m.history.RecordGame(storage.GameRecord{
		RunID:   m.runID,
		Score:   snap.Score,
		Wave:    snap.Wave,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("could not record game", "err", err)
		return
	}
	m.logger.Debug("game recorded", "run", m.runID, "score", snap.Score, "outcome", outcome)
}

// Snapshot returns the current game state.
func (m Model) Snapshot() invaders.Snapshot {
	return m.engine.Snapshot()
}

// IsQuitting returns true once the model asked the program to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the frame centred in the terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.frame.View()
	if m.width < FrameWidth || m.height < FrameHeight {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}
