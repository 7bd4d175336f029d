package invaders

import (
	"slices"

	"github.com/vovakirdan/termvaders/internal/core"
)

// Snapshot is an immutable copy of the game state handed to renderers.
// Slices are copies; mutating them does not affect the engine.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Lives     int
	Wave      int

	Paused       bool
	GameOver     bool
	TaskComplete bool

	Player  core.Point
	Aliens  []Alien
	Shields []Shield
	Bullets []Bullet

	AlienDirection int
	MoveRate       int
	MoveCounter    int
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:           e.tick,
		Phase:          e.phase,
		Score:          e.score,
		HighScore:      e.highScore,
		Lives:          e.lives,
		Wave:           e.wave,
		Paused:         e.phase == PhasePaused,
		GameOver:       e.phase == PhaseGameOver,
		TaskComplete:   e.phase == PhaseTaskComplete,
		Player:         e.player.Pos,
		Aliens:         slices.Clone(e.aliens),
		Shields:        slices.Clone(e.shields),
		Bullets:        slices.Clone(e.bullets),
		AlienDirection: e.alienDir,
		MoveRate:       e.moveRate,
		MoveCounter:    e.moveCounter,
	}
}

// AliveAliens returns the number of live aliens in the snapshot.
func (s Snapshot) AliveAliens() int {
	return countAlive(s.Aliens)
}

// PlayerBullets returns the number of player bullets in the snapshot.
func (s Snapshot) PlayerBullets() int {
	n := 0
	for _, b := range s.Bullets {
		if !b.Alien {
			n++
		}
	}
	return n
}
