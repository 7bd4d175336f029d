package invaders

import (
	"maps"
	"slices"

	"github.com/vovakirdan/termvaders/internal/core"
)

// stepFormation moves the live aliens one step as a rigid body. Reaching
// a side margin turns the step into a drop and reverses direction. A
// formation that reaches the near-bottom row costs the player a life.
func (e *Engine) stepFormation() {
	minX, maxX, ok := formationBounds(e.aliens)
	if !ok {
		return
	}

	drop := false
	if e.alienDir > 0 && maxX >= Width-2 {
		drop = true
		e.alienDir = -1
	} else if e.alienDir < 0 && minX <= 1 {
		drop = true
		e.alienDir = 1
	}

	for i := range e.aliens {
		a := &e.aliens[i]
		if !a.Alive {
			continue
		}
		if drop {
			a.Pos.Y++
		} else {
			a.Pos.X += e.alienDir
		}
	}

	if lowestRow(e.aliens) >= Height-2 {
		e.loseLife()
	}
}

// formationBounds returns the horizontal extent of the live aliens.
func formationBounds(aliens []Alien) (minX, maxX int, ok bool) {
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		if !ok {
			minX, maxX, ok = a.Pos.X, a.Pos.X, true
			continue
		}
		minX = min(minX, a.Pos.X)
		maxX = max(maxX, a.Pos.X)
	}
	return minX, maxX, ok
}

// lowestRow returns the largest Y among live aliens, or -1 if none live.
func lowestRow(aliens []Alien) int {
	y := -1
	for _, a := range aliens {
		if a.Alive {
			y = max(y, a.Pos.Y)
		}
	}
	return y
}

// shooters returns the bottommost live alien of every occupied column,
// ordered left to right.
func shooters(aliens []Alien) []core.Point {
	bottom := make(map[int]core.Point)
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		if cur, seen := bottom[a.Pos.X]; !seen || a.Pos.Y > cur.Y {
			bottom[a.Pos.X] = a.Pos
		}
	}

	result := make([]core.Point, 0, len(bottom))
	for _, x := range slices.Sorted(maps.Keys(bottom)) {
		result = append(result, bottom[x])
	}
	return result
}

// alienFire runs one Bernoulli trial and, on success, fires from a
// uniformly chosen shooter.
func (e *Engine) alienFire() {
	candidates := shooters(e.aliens)
	if len(candidates) == 0 {
		return
	}
	if e.rng.Float64() >= AlienShootChance {
		return
	}
	shooter := candidates[e.rng.Intn(len(candidates))]
	e.spawnBullet(shooter.Add(0, 1), true)
}
