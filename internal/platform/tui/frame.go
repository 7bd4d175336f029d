package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termvaders/internal/core"
	"github.com/vovakirdan/termvaders/internal/invaders"
)

// Frame geometry: the play field plus a border, header and footer.
const (
	FrameWidth  = invaders.Width + 4
	FrameHeight = invaders.Height + 6

	innerWidth = FrameWidth - 2
	headerY    = 1
	topRuleY   = 2
	fieldX     = 1
	fieldY     = 3
	bottomRule = fieldY + invaders.Height
	footerY    = bottomRule + 1

	overlayWidth = 20
)

var (
	frameRect = core.NewRect(0, 0, FrameWidth, FrameHeight)
	fieldRect = core.NewRect(0, 0, invaders.Width, invaders.Height)
)

// Glyphs drawn on the field.
const (
	glyphAlien        = '▼'
	glyphPlayer       = '▲'
	glyphPlayerBullet = '│'
	glyphAlienBullet  = '·'
	glyphLife         = "♥"
	glyphRule         = '─'
)

type overlay int

const (
	overlayNone overlay = iota
	overlayGameOver
	overlayComplete
)

// Frame draws snapshots into a fixed-size cell buffer. It implements
// invaders.Renderer. The game over and task complete boxes are latched:
// once shown they replace the board until a running snapshot arrives.
type Frame struct {
	screen  *core.Screen
	theme   Theme
	palette Palette
	keys    KeyMap

	controls string // Footer hint built from the key bindings

	last    invaders.Snapshot
	overlay overlay
	score   int
	high    int
}

// NewFrame creates a frame using theme colours rendered by palette.
// A nil palette uses the local terminal. Footer and box hints name the
// keys bound in keys.
func NewFrame(theme Theme, palette Palette, keys KeyMap) *Frame {
	if palette == nil {
		palette = NewPalette(nil)
	}
	return &Frame{
		screen:   core.NewScreen(FrameWidth, FrameHeight),
		theme:    theme,
		palette:  palette,
		keys:     keys,
		controls: controlsHint(keys),
	}
}

// controlsHint renders the short help as plain text; colour is applied
// per cell by the palette.
func controlsHint(keys KeyMap) string {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	h.ShortSeparator = "   "
	h.Width = innerWidth
	return h.ShortHelpView(keys.ShortHelp())
}

// Render draws the board for snap.
func (f *Frame) Render(snap invaders.Snapshot) {
	f.last = snap
	if snap.Phase == invaders.PhaseRunning || snap.Phase == invaders.PhasePaused {
		f.overlay = overlayNone
	}
	f.draw()
}

// ShowGameOver replaces the board with the game over box.
func (f *Frame) ShowGameOver(score, highScore int) {
	f.overlay = overlayGameOver
	f.score, f.high = score, highScore
	f.draw()
}

// ShowTaskComplete replaces the board with the task complete box.
func (f *Frame) ShowTaskComplete(score int) {
	f.overlay = overlayComplete
	f.score = score
	f.draw()
}

// Screen returns the cell buffer of the last drawn frame.
func (f *Frame) Screen() *core.Screen {
	return f.screen
}

// View returns the styled frame.
func (f *Frame) View() string {
	return f.palette.Render(f.screen)
}

func (f *Frame) draw() {
	f.screen.Clear()

	border := f.theme.Border
	switch f.overlay {
	case overlayGameOver:
		border = f.theme.GameOver
	case overlayComplete:
		border = f.theme.Complete
	}
	f.screen.DrawBox(frameRect, core.BoxSingle, border)

	switch f.overlay {
	case overlayGameOver:
		f.drawBox("GAME OVER", f.gameOverBody(), f.theme.GameOver)
	case overlayComplete:
		f.drawBox("TASK COMPLETE!", f.completeBody(), f.theme.Complete)
	default:
		f.drawBoard()
	}
}

func (f *Frame) drawBoard() {
	s := f.last
	text := f.theme.Text

	header := fmt.Sprintf("  SCORE: %05d    HI: %05d    LIVES: %s",
		s.Score, s.HighScore, strings.Repeat(glyphLife, max(0, s.Lives)))
	if s.Wave > 1 {
		header += fmt.Sprintf("    WAVE: %d", s.Wave)
	}
	f.screen.DrawTextColored(1, headerY, header, text)
	f.screen.DrawHLine(1, topRuleY, innerWidth, glyphRule, text)

	for _, a := range s.Aliens {
		if a.Alive {
			f.plot(a.Pos, glyphAlien, f.theme.Alien)
		}
	}
	for _, sh := range s.Shields {
		if sh.Intact() {
			f.plot(sh.Pos, shieldGlyph(sh.Health), f.theme.Shield)
		}
	}
	for _, b := range s.Bullets {
		if b.Alien {
			f.plot(b.Pos, glyphAlienBullet, f.theme.AlienBullet)
		} else {
			f.plot(b.Pos, glyphPlayerBullet, f.theme.PlayerBullet)
		}
	}
	f.plot(s.Player, glyphPlayer, f.theme.Player)

	f.screen.DrawHLine(1, bottomRule, innerWidth, glyphRule, text)
	footer := f.controls
	if s.Paused {
		footer = fmt.Sprintf("[PAUSED] Press %s to resume", upperLabel(f.keys.Pause))
	}
	f.screen.DrawTextCentered(footerY, footer, text)
}

// plot draws a field cell, clipping anything outside the field.
func (f *Frame) plot(p core.Point, r rune, c core.Color) {
	if !fieldRect.Contains(p.X, p.Y) {
		return
	}
	f.screen.SetColored(fieldX+p.X, fieldY+p.Y, r, c)
}

// drawBox draws a double-lined message box centred on the frame: the title
// centred, then the body lines indented below it. Empty lines are spacers.
func (f *Frame) drawBox(title string, body []string, c core.Color) {
	h := len(body) + 6
	cx, cy := frameRect.Center()
	box := core.NewRect(cx-overlayWidth/2, cy-h/2, overlayWidth, h)
	f.screen.DrawBox(box, core.BoxDouble, c)

	f.screen.DrawTextCentered(box.Y+2, title, c)
	for i, line := range body {
		f.screen.DrawTextColored(box.X+3, box.Y+4+i, line, c)
	}
}

func shieldGlyph(health int) rune {
	switch {
	case health > 2:
		return '█'
	case health > 1:
		return '▓'
	default:
		return '░'
	}
}

func (f *Frame) gameOverBody() []string {
	return []string{
		fmt.Sprintf("SCORE: %05d", f.score),
		fmt.Sprintf("HIGH:  %05d", f.high),
		"",
		hint(upperLabel(f.keys.Fire), "to retry"),
		hint(upperLabel(f.keys.Quit), "to quit"),
	}
}

func (f *Frame) completeBody() []string {
	return []string{
		fmt.Sprintf("SCORE: %05d", f.score),
		"",
		"Press any key",
	}
}

// hint joins a key name and an action, clipped to the box interior.
func hint(name, action string) string {
	text := []rune(name + " " + action)
	return string(text[:min(len(text), overlayWidth-4)])
}

func upperLabel(b key.Binding) string {
	return strings.ToUpper(primaryLabel(b))
}
