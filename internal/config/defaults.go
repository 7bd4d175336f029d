package config

import (
	_ "embed"
)

//go:embed defaults/vaders.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the
// embedded defaults/vaders.yaml.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			HighScore: "~/.claudevaders-highscore",
			Signal:    "~/.claudevaders-signal",
			HistoryDB: "~/.vaders/history.db",
			Log:       "~/.vaders/vaders.log",
		},
		Keys: KeysConfig{
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Fire:  []string{"space"},
			Pause: []string{"p"},
			Quit:  []string{"q", "ctrl+c", "esc"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Border:       "cyan",
			Text:         "white",
			Alien:        "green",
			Shield:       "green",
			Player:       "cyan",
			PlayerBullet: "yellow",
			AlienBullet:  "red",
			GameOver:     "red",
			Complete:     "green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
