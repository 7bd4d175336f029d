package tui

import (
	"github.com/vovakirdan/termvaders/internal/config"
	"github.com/vovakirdan/termvaders/internal/core"
)

// Theme assigns a colour to every element drawn by the frame.
type Theme struct {
	Border       core.Color
	Text         core.Color
	Alien        core.Color
	Shield       core.Color
	Player       core.Color
	PlayerBullet core.Color
	AlienBullet  core.Color
	GameOver     core.Color // Border and box while the game is over
	Complete     core.Color // Border and box once the task is complete
}

// ThemeFromConfig resolves colour names. Unknown names use the terminal
// default colour.
func ThemeFromConfig(c config.ThemeConfig) Theme {
	return Theme{
		Border:       core.ParseColor(c.Border),
		Text:         core.ParseColor(c.Text),
		Alien:        core.ParseColor(c.Alien),
		Shield:       core.ParseColor(c.Shield),
		Player:       core.ParseColor(c.Player),
		PlayerBullet: core.ParseColor(c.PlayerBullet),
		AlienBullet:  core.ParseColor(c.AlienBullet),
		GameOver:     core.ParseColor(c.GameOver),
		Complete:     core.ParseColor(c.Complete),
	}
}

// DefaultTheme returns the built-in colours: cyan border, green aliens.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultConfig().Theme)
}
