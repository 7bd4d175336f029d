// Package config provides YAML-based configuration loading for the game:
// file locations, key bindings, log level and colours.
// Grid geometry and tick period are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config is the complete user configuration.
type Config struct {
	Paths PathsConfig `yaml:"paths"`
	Keys  KeysConfig  `yaml:"keys"`
	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// PathsConfig locates every file the game touches. A leading ~ is expanded.
type PathsConfig struct {
	HighScore string `yaml:"high_score"`
	Signal    string `yaml:"signal"`
	HistoryDB string `yaml:"history_db"`
	Log       string `yaml:"log"`
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key
// notation ("left", "ctrl+c", "a"). "space" is accepted for the space bar.
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
	Pause []string `yaml:"pause"`
	Quit  []string `yaml:"quit"`
}

// LogConfig controls the log file verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ThemeConfig names the colour of each drawn element.
type ThemeConfig struct {
	Border       string `yaml:"border"`
	Text         string `yaml:"text"`
	Alien        string `yaml:"alien"`
	Shield       string `yaml:"shield"`
	Player       string `yaml:"player"`
	PlayerBullet string `yaml:"player_bullet"`
	AlienBullet  string `yaml:"alien_bullet"`
	GameOver     string `yaml:"game_over"`
	Complete     string `yaml:"complete"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Bindings returns the key lists paired with their action names,
// in a stable order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{Action: "left", Keys: k.Left},
		{Action: "right", Keys: k.Right},
		{Action: "fire", Keys: k.Fire},
		{Action: "pause", Keys: k.Pause},
		{Action: "quit", Keys: k.Quit},
	}
}

// Binding is one action and the keys that trigger it.
type Binding struct {
	Action string
	Keys   []string
}

// NormalizeKey converts user notation to Bubble Tea's key string.
func NormalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.ToLower(strings.TrimSpace(k))
	switch k {
	case "space", "spacebar":
		return " "
	case "escape":
		return "esc"
	}
	return k
}

// Validate checks that every action is bound, no key triggers two actions
// and the log level is known.
func (c *Config) Validate() error {
	seen := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("config: %w: action %q has no keys", ErrInvalid, b.Action)
		}
		for _, k := range b.Keys {
			nk := NormalizeKey(k)
			if nk == "" {
				return fmt.Errorf("config: %w: empty key for action %q", ErrInvalid, b.Action)
			}
			if other, dup := seen[nk]; dup {
				return fmt.Errorf("config: %w: key %q bound to both %q and %q", ErrInvalid, k, other, b.Action)
			}
			seen[nk] = b.Action
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w: log level %q", ErrInvalid, c.Log.Level)
	}

	if c.Paths.HighScore == "" || c.Paths.Signal == "" {
		return fmt.Errorf("config: %w: high score and signal paths are required", ErrInvalid)
	}
	return nil
}
