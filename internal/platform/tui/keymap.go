package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termvaders/internal/config"
	"github.com/vovakirdan/termvaders/internal/core"
)

// KeyMap binds keys to game actions. Built from the keys section of the
// configuration so players can rebind controls.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  binding(cfg.Left, "move left"),
		Right: binding(cfg.Right, "move right"),
		Fire:  binding(cfg.Fire, "fire"),
		Pause: binding(cfg.Pause, "pause"),
		Quit:  binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the classic bindings: arrows or A/D, space, P, Q.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	normalized := make([]string, 0, len(keys))
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		nk := config.NormalizeKey(k)
		normalized = append(normalized, nk)
		labels = append(labels, keyLabel(nk))
	}
	return key.NewBinding(
		key.WithKeys(normalized...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns a printable name for a Bubble Tea key string.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// Action maps a key press to its game action, or core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// ShortHelp returns the footer bindings. Each action shows its first key
// and left and right share one entry.
func (k KeyMap) ShortHelp() []key.Binding {
	move := key.NewBinding(
		key.WithKeys(slices.Concat(k.Left.Keys(), k.Right.Keys())...),
		key.WithHelp(primaryLabel(k.Left)+"/"+primaryLabel(k.Right), "move"),
	)
	return []key.Binding{
		move,
		shortBinding(k.Fire, "fire"),
		shortBinding(k.Pause, "pause"),
		shortBinding(k.Quit, "quit"),
	}
}

func shortBinding(b key.Binding, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys()...),
		key.WithHelp(primaryLabel(b), desc),
	)
}

// primaryLabel is the display name of the first key bound to b.
func primaryLabel(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keyLabel(keys[0])
}
