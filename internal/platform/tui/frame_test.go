package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/termvaders/internal/config"
	"github.com/vovakirdan/termvaders/internal/core"
	"github.com/vovakirdan/termvaders/internal/invaders"
)

// neverFire keeps aliens quiet so frames are predictable.
type neverFire struct{}

func (neverFire) Float64() float64 { return 1 }
func (neverFire) Intn(int) int     { return 0 }

func newFrameEngine(f *Frame) *invaders.Engine {
	return invaders.NewEngine(invaders.WithRenderer(f), invaders.WithRand(neverFire{}))
}

// fieldCell returns the frame cell showing field position (x, y).
func fieldCell(f *Frame, x, y int) core.Cell {
	return f.Screen().GetCell(fieldX+x, fieldY+y)
}

func TestFrameSize(t *testing.T) {
	f := NewFrame(DefaultTheme(), nil, DefaultKeyMap())
	if f.Screen().Width() != 60 || f.Screen().Height() != 24 {
		t.Errorf("Expected a 60x24 frame, got %dx%d", f.Screen().Width(), f.Screen().Height())
	}
}

func TestFrameBoard(t *testing.T) {
	theme := DefaultTheme()
	f := NewFrame(theme, nil, DefaultKeyMap())
	e := newFrameEngine(f)
	f.Render(e.Snapshot())

	header := f.Screen().Row(headerY)
	if !strings.Contains(header, "SCORE: 00000    HI: 00000    LIVES: ♥♥♥") {
		t.Errorf("Unexpected header %q", header)
	}
	if strings.Contains(header, "WAVE") {
		t.Errorf("First wave header should match the classic layout, got %q", header)
	}

	footer := f.Screen().Row(footerY)
	if !strings.Contains(footer, "←/→ move   space fire   p pause   q quit") {
		t.Errorf("Unexpected footer %q", footer)
	}

	tests := []struct {
		name  string
		x, y  int
		glyph rune
		color core.Color
	}{
		{"alien", 4, 2, '▼', theme.Alien},
		{"shield", 10, invaders.Height - 5, '█', theme.Shield},
		{"player", invaders.Width / 2, invaders.Height - 1, '▲', theme.Player},
	}
	for _, tt := range tests {
		c := fieldCell(f, tt.x, tt.y)
		if c.Rune != tt.glyph || c.Color != tt.color {
			t.Errorf("%s: got %q/%d, want %q/%d", tt.name, c.Rune, c.Color, tt.glyph, tt.color)
		}
	}

	if c := f.Screen().GetCell(0, 0); c.Rune != '┌' || c.Color != theme.Border {
		t.Errorf("Expected border corner in border colour, got %q/%d", c.Rune, c.Color)
	}
}

func TestFrameBullets(t *testing.T) {
	f := NewFrame(DefaultTheme(), nil, DefaultKeyMap())
	e := newFrameEngine(f)

	e.Apply(core.ActionFire)
	f.Render(e.Snapshot())

	c := fieldCell(f, invaders.Width/2, invaders.Height-2)
	if c.Rune != '│' {
		t.Errorf("Expected player bullet glyph, got %q", c.Rune)
	}
}

func TestFramePausedFooter(t *testing.T) {
	f := NewFrame(DefaultTheme(), nil, DefaultKeyMap())
	e := newFrameEngine(f)
	e.Apply(core.ActionPause)
	e.Tick()

	if !strings.Contains(f.Screen().Row(footerY), "[PAUSED] Press P to resume") {
		t.Errorf("Expected paused footer, got %q", f.Screen().Row(footerY))
	}
}

func TestFrameHintsFollowKeyBindings(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Left = []string{"j"}
	keys.Right = []string{"l"}
	keys.Fire = []string{"w", "space"}
	keys.Pause = []string{"escape"}
	keys.Quit = []string{"x"}
	f := NewFrame(DefaultTheme(), nil, NewKeyMap(keys))
	e := newFrameEngine(f)
	f.Render(e.Snapshot())

	footer := f.Screen().Row(footerY)
	if !strings.Contains(footer, "j/l move   w fire   esc pause   x quit") {
		t.Errorf("Footer should name the configured keys, got %q", footer)
	}

	e.Apply(core.ActionPause)
	e.Tick()
	if !strings.Contains(f.Screen().Row(footerY), "[PAUSED] Press ESC to resume") {
		t.Errorf("Paused footer should name the pause key, got %q", f.Screen().Row(footerY))
	}

	f.ShowGameOver(0, 0)
	screen := f.Screen().String()
	for _, want := range []string{"W to retry", "X to quit"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Game over box missing %q", want)
		}
	}
}

func TestFrameGameOverLatch(t *testing.T) {
	theme := DefaultTheme()
	f := NewFrame(theme, nil, DefaultKeyMap())
	e := newFrameEngine(f)

	f.ShowGameOver(120, 450)
	screen := f.Screen().String()
	for _, want := range []string{"GAME OVER", "SCORE: 00120", "HIGH:  00450", "SPACE to retry"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Game over box missing %q", want)
		}
	}
	if f.Screen().GetCell(0, 0).Color != theme.GameOver {
		t.Error("Border should switch to the game over colour")
	}

	// A game over snapshot must not wipe the box
	over := e.Snapshot()
	over.Phase = invaders.PhaseGameOver
	over.GameOver = true
	f.Render(over)
	if !strings.Contains(f.Screen().String(), "GAME OVER") {
		t.Error("Game over box should stay latched")
	}

	// A running snapshot brings the board back
	f.Render(e.Snapshot())
	if strings.Contains(f.Screen().String(), "GAME OVER") {
		t.Error("Running snapshot should clear the overlay")
	}
	if f.Screen().GetCell(0, 0).Color != theme.Border {
		t.Error("Border colour should be restored")
	}
}

func TestFrameTaskComplete(t *testing.T) {
	theme := DefaultTheme()
	f := NewFrame(theme, nil, DefaultKeyMap())
	e := newFrameEngine(f)

	e.TriggerCompletion()
	e.Tick()

	screen := f.Screen().String()
	for _, want := range []string{"TASK COMPLETE!", "SCORE: 00000", "Press any key"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Completion box missing %q", want)
		}
	}
	if f.Screen().GetCell(0, 0).Color != theme.Complete {
		t.Error("Border should switch to the completion colour")
	}
}

func TestFrameOverlayPosition(t *testing.T) {
	f := NewFrame(DefaultTheme(), nil, DefaultKeyMap())
	f.ShowGameOver(0, 0)

	// Box is 20 columns, centred in the 58 column interior, six rows down
	row := f.Screen().Row(1 + 6)
	if idx := strings.Index(row, "╔"); idx < 0 || !strings.HasPrefix(row[idx:], "╔══════════════════╗") {
		t.Fatalf("Expected box top on row 7, got %q", row)
	}
	if c := f.Screen().GetCell(20, 7); c.Rune != '╔' {
		t.Errorf("Expected box corner at column 20, got %q", c.Rune)
	}
}

func TestShieldGlyph(t *testing.T) {
	tests := map[int]rune{4: '█', 3: '█', 2: '▓', 1: '░'}
	for health, want := range tests {
		if got := shieldGlyph(health); got != want {
			t.Errorf("shieldGlyph(%d) = %q, want %q", health, got, want)
		}
	}
}

func TestFrameView(t *testing.T) {
	f := NewFrame(DefaultTheme(), NewPalette(nil), DefaultKeyMap())
	f.Render(newFrameEngine(f).Snapshot())

	view := f.View()
	if !strings.Contains(view, "SCORE") {
		t.Error("View should contain the header text")
	}
	if got := strings.Count(view, "\n"); got != FrameHeight-1 {
		t.Errorf("Expected %d lines, got %d", FrameHeight, got+1)
	}
}
