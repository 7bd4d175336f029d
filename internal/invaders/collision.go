package invaders

import "github.com/vovakirdan/termvaders/internal/core"

// fire spawns a player bullet above the cannon unless the per-player
// bullet cap is reached.
func (e *Engine) fire() {
	if e.playerBulletCount() >= MaxPlayerBullets {
		return
	}
	e.spawnBullet(e.player.Pos.Add(0, -1), false)
}

// playerBulletCount returns the number of live player bullets.
func (e *Engine) playerBulletCount() int {
	n := 0
	for _, b := range e.bullets {
		if !b.Alien {
			n++
		}
	}
	return n
}

// spawnBullet appends a bullet with a fresh ID.
func (e *Engine) spawnBullet(pos core.Point, alien bool) {
	e.nextBulletID++
	e.bullets = append(e.bullets, Bullet{
		ID:    e.nextBulletID,
		Pos:   pos,
		Alien: alien,
	})
}

// advanceBullets moves every bullet one cell and drops those that leave
// the field vertically.
func (e *Engine) advanceBullets() {
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		if b.Alien {
			b.Pos.Y++
			if b.Pos.Y >= Height {
				continue
			}
		} else {
			b.Pos.Y--
			if b.Pos.Y < 0 {
				continue
			}
		}
		kept = append(kept, b)
	}
	e.bullets = kept
}

// resolveCollisions tests every bullet in storage order. Hits only mark
// bullets; marked bullets are dropped in one compaction at the end, so a
// bullet is removed at most once no matter how many targets it matches.
//
// Player bullets test aliens first and shields only when no alien was hit.
// Alien bullets test the player first; a player hit costs a life, which
// clears all bullets and ends the pass.
func (e *Engine) resolveCollisions() {
	for i := 0; i < len(e.bullets); i++ {
		b := &e.bullets[i]
		if b.removed {
			continue
		}

		if b.Alien {
			if b.Pos == e.player.Pos {
				b.removed = true
				e.loseLife()
				continue
			}
			if e.hitShield(b.Pos) {
				b.removed = true
			}
			continue
		}

		if e.hitAlien(b.Pos) {
			b.removed = true
			continue
		}
		if e.hitShield(b.Pos) {
			b.removed = true
		}
	}
	e.compactBullets()
}

// compactBullets drops every bullet marked during the collision pass.
func (e *Engine) compactBullets() {
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		if !b.removed {
			kept = append(kept, b)
		}
	}
	e.bullets = kept
}

// hitAlien kills the first live alien at p, scores it and speeds up the
// formation. Reports whether an alien was hit.
func (e *Engine) hitAlien(p core.Point) bool {
	for i := range e.aliens {
		a := &e.aliens[i]
		if !a.Alive || a.Pos != p {
			continue
		}
		a.Alive = false
		e.addScore(AlienPoints)
		e.accelerate()
		return true
	}
	return false
}

// accelerate recomputes the formation cadence from the surviving aliens.
// The cadence never slows down within a wave.
func (e *Engine) accelerate() {
	rate := max(MinMoveRate, BaseMoveRate*countAlive(e.aliens)/AlienCount)
	if rate < e.moveRate {
		e.moveRate = rate
	}
}

// hitShield damages the first intact shield cell at p.
// Reports whether a shield was hit.
func (e *Engine) hitShield(p core.Point) bool {
	for i := range e.shields {
		s := &e.shields[i]
		if !s.Intact() || s.Pos != p {
			continue
		}
		s.Health--
		return true
	}
	return false
}
