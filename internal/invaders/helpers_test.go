package invaders

import "github.com/vovakirdan/termvaders/internal/core"

// stubRand returns fixed values so alien fire is predictable.
type stubRand struct {
	f   float64
	idx int
}

func (r stubRand) Float64() float64 { return r.f }
func (r stubRand) Intn(n int) int   { return r.idx % n }

// neverFire keeps aliens from shooting.
var neverFire = stubRand{f: 1}

// alwaysFire makes the leftmost shooter fire every tick.
var alwaysFire = stubRand{f: 0}

// recordingRenderer captures everything the engine presents.
type recordingRenderer struct {
	frames      int
	last        Snapshot
	gameOvers   [][2]int
	completions []int
}

func (r *recordingRenderer) Render(s Snapshot) {
	r.frames++
	r.last = s
}

func (r *recordingRenderer) ShowGameOver(score, highScore int) {
	r.gameOvers = append(r.gameOvers, [2]int{score, highScore})
}

func (r *recordingRenderer) ShowTaskComplete(score int) {
	r.completions = append(r.completions, score)
}

// recordingScores is an in-memory HighScores that remembers every save.
type recordingScores struct {
	initial int
	saves   []int
}

func (s *recordingScores) Load() int      { return s.initial }
func (s *recordingScores) Save(score int) { s.saves = append(s.saves, score) }

// newTestEngine creates an engine whose aliens never fire.
func newTestEngine(opts ...Option) *Engine {
	return NewEngine(append([]Option{WithRand(neverFire)}, opts...)...)
}

// killAll marks every alien dead.
func killAll(e *Engine) {
	for i := range e.aliens {
		e.aliens[i].Alive = false
	}
}

// playerBullet places a player bullet at p.
func playerBullet(e *Engine, p core.Point) {
	e.spawnBullet(p, false)
}

// alienBullet places an alien bullet at p.
func alienBullet(e *Engine, p core.Point) {
	e.spawnBullet(p, true)
}
