package invaders

import "time"

// Play field geometry. These values define what the game looks like and are
// part of its external contract; they are not configurable.
const (
	Width  = 56 // Play field width in cells
	Height = 18 // Play field height in cells

	AlienRows    = 4
	AlienCols    = 11
	AlienCount   = AlienRows * AlienCols
	alienOriginX = 4 // X of the first column
	alienOriginY = 2 // Y of the first row
	alienStepX   = 4 // Horizontal distance between columns
	alienStepY   = 2 // Vertical distance between rows

	ShieldCount  = 4
	ShieldWidth  = 3
	ShieldHeight = 2
	ShieldHealth = 4
	shieldTopY   = Height - 5

	PlayerY = Height - 1
)

// Timing and difficulty curve.
const (
	TickPeriod = 50 * time.Millisecond

	BaseMoveRate     = 20 // Ticks between formation steps at wave start
	MinMoveRate      = 2  // Fastest formation cadence inside a wave
	MinWaveMoveRate  = 5  // Fastest cadence a wave can start with
	WaveMoveRateStep = 2  // Cadence reduction per cleared wave

	AlienShootChance = 0.02
	MaxPlayerBullets = 2
)

// Scoring.
const (
	StartLives  = 3
	AlienPoints = 10
	WaveBonus   = 100
)
