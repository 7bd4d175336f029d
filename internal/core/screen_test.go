package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("Size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("New screen should be all spaces, got %q", s.String())
	}
}

func TestScreenCellsAndBounds(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '▼', ColorGreen)
	if c := s.GetCell(3, 2); c.Rune != '▼' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 2) = %+v", c)
	}

	s.Set(4, 2, '▲')
	if c := s.GetCell(4, 2); c.Rune != '▲' || c.Color != ColorDefault {
		t.Errorf("Set should use the default colour, got %+v", c)
	}

	// Writes off the buffer are dropped and reads return a blank cell
	s.SetCell(-1, 0, Cell{Rune: 'X'})
	s.SetCell(10, 0, Cell{Rune: 'X'})
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Out-of-bounds writes should be ignored")
	}
	if c := s.GetCell(0, 99); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out-of-bounds read = %+v, want blank", c)
	}

	s.Clear()
	if s.GetCell(3, 2).Rune != ' ' {
		t.Error("Clear should blank every cell")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 3)

	// Multibyte glyphs take one cell each
	s.DrawTextColored(0, 0, "LIVES: ♥♥♥", ColorRed)
	if got := s.Row(0); got != "LIVES: ♥♥♥          " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(9, 0).Color != ColorRed {
		t.Error("Text should carry its colour")
	}

	// Clipped at the right edge
	s.DrawTextColored(17, 1, "HELLO", ColorDefault)
	if got := s.Row(1); got != strings.Repeat(" ", 17)+"HEL" {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawTextCentered(2, "GAME", ColorWhite)
	if got := s.Row(2); got != strings.Repeat(" ", 8)+"GAME"+strings.Repeat(" ", 8) {
		t.Errorf("Centered row = %q", got)
	}

	if got := s.Row(7); got != strings.Repeat(" ", 20) {
		t.Errorf("Row outside the screen should be blank, got %q", got)
	}
}

func TestScreenBoxes(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(0, 0, 8, 5), BoxSingle, ColorCyan)
	s.DrawBox(NewRect(2, 1, 4, 3), BoxDouble, ColorRed)

	want := []string{
		"┌──────┐",
		"│ ╔══╗ │",
		"│ ║  ║ │",
		"│ ╚══╝ │",
		"└──────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("Boxes drawn as:\n%s", got)
	}
	if s.GetCell(0, 0).Color != ColorCyan || s.GetCell(2, 1).Color != ColorRed {
		t.Error("Box glyphs should carry their colour")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 4, '─', ColorWhite)

	if got := s.Row(1); got != " ──── " {
		t.Errorf("Row(1) = %q", got)
	}
}
