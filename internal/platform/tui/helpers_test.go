package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termvaders/internal/storage"
)

// keyMsg builds the key message Bubble Tea would deliver for k.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// fakeHistory records games in memory.
type fakeHistory struct {
	records []storage.GameRecord
	err     error
}

func (h *fakeHistory) RecordGame(rec storage.GameRecord) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	h.records = append(h.records, rec)
	return int64(len(h.records)), nil
}
