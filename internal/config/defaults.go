package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: the classic 32x24 grid at
// 12 ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		TickRate: 12,
		Theme: ThemeConfig{
			Head: "O",
			Body: "o",
			Food: "*",
		},
	}
}
