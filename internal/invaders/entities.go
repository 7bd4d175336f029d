package invaders

import "github.com/vovakirdan/termvaders/internal/core"

// Player is the cannon at the bottom of the field.
// Only X changes; Y is fixed at PlayerY.
type Player struct {
	Pos core.Point
}

// center places the player in the middle of the bottom row.
func (p *Player) center() {
	p.Pos = core.Pt(Width/2, PlayerY)
}

// Alien is one member of the formation. Dead aliens stay in the slice
// until the next wave so indices remain stable.
type Alien struct {
	Pos   core.Point
	Alive bool
}

// Shield is a single destructible cell of a shield cluster.
type Shield struct {
	Pos    core.Point
	Health int
}

// Intact reports whether the cell still blocks bullets.
func (s Shield) Intact() bool {
	return s.Health > 0
}

// Bullet is a projectile travelling vertically.
// Alien bullets move down, player bullets move up.
type Bullet struct {
	ID    uint64
	Pos   core.Point
	Alien bool

	removed bool // Marked during a collision pass, dropped by compact
}

// newAlienGrid builds a full formation of live aliens.
func newAlienGrid() []Alien {
	aliens := make([]Alien, 0, AlienCount)
	for row := 0; row < AlienRows; row++ {
		for col := 0; col < AlienCols; col++ {
			aliens = append(aliens, Alien{
				Pos:   core.Pt(alienOriginX+col*alienStepX, alienOriginY+row*alienStepY),
				Alive: true,
			})
		}
	}
	return aliens
}

// newShields builds the four shield clusters at full health.
func newShields() []Shield {
	shields := make([]Shield, 0, ShieldCount*ShieldWidth*ShieldHeight)
	spacing := Width / (ShieldCount + 1)

	for i := 0; i < ShieldCount; i++ {
		baseX := spacing * (i + 1)
		for dx := -1; dx <= 1; dx++ {
			for dy := 0; dy < ShieldHeight; dy++ {
				shields = append(shields, Shield{
					Pos:    core.Pt(baseX+dx, shieldTopY+dy),
					Health: ShieldHealth,
				})
			}
		}
	}
	return shields
}

// countAlive returns the number of live aliens.
func countAlive(aliens []Alien) int {
	n := 0
	for _, a := range aliens {
		if a.Alive {
			n++
		}
	}
	return n
}
