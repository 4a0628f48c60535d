// Package config provides YAML-based configuration loading for the game:
// grid dimensions, tick rate and the glyph theme used by the renderer.
package config

import (
	"fmt"

	"github.com/vovakirdan/snaketui/internal/game"
)

// Config contains all tunable settings.
type Config struct {
	Grid     GridConfig  `yaml:"grid"`
	TickRate int         `yaml:"tick_rate"`
	Theme    ThemeConfig `yaml:"theme"`
}

// GridConfig defines the playable grid dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig defines the glyphs used to draw game elements.
// Each value must be a single character.
type ThemeConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Validate checks the configuration for startup-time contract violations.
// An unplayable grid or a non-positive tick rate fails fast here rather
// than surfacing as a runtime game event.
func (c Config) Validate() error {
	if err := (game.Config{Width: c.Grid.Width, Height: c.Grid.Height}).Validate(); err != nil {
		return err
	}
	if c.TickRate < 1 {
		return fmt.Errorf("config: tick_rate %d must be at least 1", c.TickRate)
	}
	for name, glyph := range map[string]string{
		"head": c.Theme.Head,
		"body": c.Theme.Body,
		"food": c.Theme.Food,
	} {
		if n := len([]rune(glyph)); n != 1 {
			return fmt.Errorf("config: theme.%s %q must be exactly one character", name, glyph)
		}
	}
	return nil
}

// GameConfig returns the grid portion as the game package's config type.
func (c Config) GameConfig() game.Config {
	return game.Config{Width: c.Grid.Width, Height: c.Grid.Height}
}

// Glyph helpers for the renderer.

// HeadRune returns the head glyph as a rune.
func (c Config) HeadRune() rune { return firstRune(c.Theme.Head, 'O') }

// BodyRune returns the body glyph as a rune.
func (c Config) BodyRune() rune { return firstRune(c.Theme.Body, 'o') }

// FoodRune returns the food glyph as a rune.
func (c Config) FoodRune() rune { return firstRune(c.Theme.Food, '*') }

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
