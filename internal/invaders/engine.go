// Package invaders implements the Space Invaders-style simulation: a fixed
// tick engine owning the player, the alien formation, shields and bullets.
//
// The engine is not safe for concurrent use. The host serializes calls to
// Apply, Tick and TriggerCompletion (the Bubble Tea update loop does this
// naturally), which makes the engine a single-threaded actor.
package invaders

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termvaders/internal/core"
)

// Phase is the position of the engine in its state machine.
type Phase int

const (
	PhaseRunning      Phase = iota // Simulation advances every tick
	PhasePaused                    // Frozen until the pause action repeats
	PhaseGameOver                  // No lives left; fire restarts
	PhaseTaskComplete              // Absorbing; any action exits
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseTaskComplete:
		return "task_complete"
	default:
		return "unknown"
	}
}

// Outcome tells the host what an applied action requires of it.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeRestarted         // A fresh game started
	OutcomeExit              // The host must shut down
)

// Renderer consumes snapshots and the two terminal presentations.
type Renderer interface {
	Render(snap Snapshot)
	ShowGameOver(score, highScore int)
	ShowTaskComplete(score int)
}

// HighScores persists the best score. Implementations must not block and
// must swallow their own failures.
type HighScores interface {
	Load() int
	Save(score int)
}

// Random is the subset of *rand.Rand used for alien fire.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Engine owns all mutable game state.
type Engine struct {
	renderer Renderer
	scores   HighScores
	rng      Random
	logger   *log.Logger

	phase     Phase
	tick      uint64
	score     int
	highScore int
	lives     int
	wave      int

	player       Player
	aliens       []Alien
	shields      []Shield
	bullets      []Bullet
	nextBulletID uint64

	alienDir      int // +1 right, -1 left
	moveCounter   int // Ticks since the last formation step
	moveRate      int // Ticks between formation steps
	waveStartRate int // moveRate the current wave started with
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the render adapter that receives snapshots.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithHighScores sets the high score persistence adapter.
func WithHighScores(s HighScores) Option {
	return func(e *Engine) {
		if s != nil {
			e.scores = s
		}
	}
}

// WithRand sets the random source used for alien fire.
func WithRand(r Random) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private random source. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine with a fresh game ready to run.
// The stored high score is loaded once, here.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		renderer: nopRenderer{},
		scores:   nopHighScores{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.highScore = max(0, e.scores.Load())
	e.reset()
	return e
}

// reset puts every piece of game state back to a fresh game.
// The high score is kept.
func (e *Engine) reset() {
	e.phase = PhaseRunning
	e.tick = 0
	e.score = 0
	e.lives = StartLives
	e.wave = 1
	e.player.center()
	e.aliens = newAlienGrid()
	e.shields = newShields()
	e.bullets = nil
	e.alienDir = 1
	e.moveCounter = 0
	e.moveRate = BaseMoveRate
	e.waveStartRate = BaseMoveRate
}

// Phase returns the current state machine position.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Apply executes one input action immediately.
func (e *Engine) Apply(a core.Action) Outcome {
	if a == core.ActionNone {
		return OutcomeNone
	}

	switch {
	case e.phase == PhaseTaskComplete:
		return OutcomeExit
	case a == core.ActionQuit:
		return OutcomeExit
	case e.phase == PhaseGameOver:
		if a == core.ActionFire {
			e.Restart()
			return OutcomeRestarted
		}
		return OutcomeNone
	case a == core.ActionPause:
		e.togglePause()
		return OutcomeNone
	case e.phase == PhasePaused:
		return OutcomeNone
	}

	switch a {
	case core.ActionLeft:
		e.player.Pos.X = core.Clamp(e.player.Pos.X-1, 1, Width-2)
	case core.ActionRight:
		e.player.Pos.X = core.Clamp(e.player.Pos.X+1, 1, Width-2)
	case core.ActionFire:
		e.fire()
	}
	return OutcomeNone
}

// togglePause flips between running and paused.
func (e *Engine) togglePause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseRunning
	}
}

// Tick advances the simulation by one fixed step and emits a snapshot.
// Outside PhaseRunning only the snapshot is emitted.
func (e *Engine) Tick() {
	if e.phase != PhaseRunning {
		e.emit()
		return
	}
	e.tick++

	e.advanceBullets()
	e.resolveCollisions()

	if e.phase == PhaseRunning {
		e.moveCounter++
		if e.moveCounter >= e.moveRate {
			e.moveCounter = 0
			e.stepFormation()
		}
	}

	if e.phase == PhaseRunning {
		e.alienFire()
	}

	if e.phase == PhaseRunning && countAlive(e.aliens) == 0 {
		e.nextWave()
	}

	e.emit()
}

// TriggerCompletion enters the absorbing TaskComplete phase.
// Returns false if the engine was already complete.
func (e *Engine) TriggerCompletion() bool {
	if e.phase == PhaseTaskComplete {
		return false
	}
	e.phase = PhaseTaskComplete
	e.logger.Info("task complete", "score", e.score, "wave", e.wave)
	e.renderer.ShowTaskComplete(e.score)
	return true
}

// Restart starts a fresh game. Ignored once the task is complete.
func (e *Engine) Restart() {
	if e.phase == PhaseTaskComplete {
		return
	}
	e.logger.Debug("restart", "previous_score", e.score)
	e.reset()
}

// emit hands the current snapshot to the renderer.
func (e *Engine) emit() {
	e.renderer.Render(e.Snapshot())
}

// addScore awards points and persists a new high score when it is beaten.
func (e *Engine) addScore(points int) {
	e.score += points
	if e.score > e.highScore {
		e.highScore = e.score
		e.scores.Save(e.highScore)
	}
}

// loseLife removes a life, clears the field of bullets and recenters the
// player. The last life ends the game.
func (e *Engine) loseLife() {
	e.lives--
	e.bullets = nil
	e.player.center()
	e.logger.Debug("life lost", "lives", e.lives)

	if e.lives <= 0 {
		e.phase = PhaseGameOver
		e.logger.Info("game over", "score", e.score, "high_score", e.highScore, "wave", e.wave)
		e.renderer.ShowGameOver(e.score, e.highScore)
	}
}

// nextWave awards the clear bonus and spawns a faster formation.
// Shields are not repaired.
func (e *Engine) nextWave() {
	e.addScore(WaveBonus)
	e.aliens = newAlienGrid()
	e.alienDir = 1
	e.waveStartRate = max(MinWaveMoveRate, e.waveStartRate-WaveMoveRateStep)
	e.moveRate = e.waveStartRate
	e.bullets = nil
	e.wave++
	e.logger.Debug("wave cleared", "wave", e.wave, "move_rate", e.moveRate)
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot)       {}
func (nopRenderer) ShowGameOver(int, int) {}
func (nopRenderer) ShowTaskComplete(int)  {}

type nopHighScores struct{}

func (nopHighScores) Load() int { return 0 }
func (nopHighScores) Save(int)  {}
