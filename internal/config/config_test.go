package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 32 || cfg.Grid.Height != 24 {
		t.Errorf("default grid = %dx%d, expected 32x24", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.TickRate != 12 {
		t.Errorf("default tick_rate = %d, expected 12", cfg.TickRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// Load without a custom path may pick up user/local configs in a dev
	// environment, but the result must always validate.
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"minimum grid", func(c *Config) { c.Grid.Width = 3; c.Grid.Height = 1 }, false},
		{"too narrow", func(c *Config) { c.Grid.Width = 2 }, true},
		{"zero height", func(c *Config) { c.Grid.Height = 0 }, true},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, true},
		{"empty head glyph", func(c *Config) { c.Theme.Head = "" }, true},
		{"multi-rune food glyph", func(c *Config) { c.Theme.Food = "xx" }, true},
		{"unicode glyph", func(c *Config) { c.Theme.Food = "●" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestGlyphRunes(t *testing.T) {
	cfg := Default()
	cfg.Theme.Food = "●"

	if cfg.HeadRune() != 'O' {
		t.Errorf("HeadRune() = %q, expected 'O'", cfg.HeadRune())
	}
	if cfg.BodyRune() != 'o' {
		t.Errorf("BodyRune() = %q, expected 'o'", cfg.BodyRune())
	}
	if cfg.FoodRune() != '●' {
		t.Errorf("FoodRune() = %q, expected '●'", cfg.FoodRune())
	}

	// Empty glyphs fall back to the classic characters.
	cfg.Theme.Head = ""
	if cfg.HeadRune() != 'O' {
		t.Errorf("empty head glyph should fall back to 'O', got %q", cfg.HeadRune())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("grid:\n  width: 16\n  height: 10\ntick_rate: 8\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Grid.Width != 16 || cfg.Grid.Height != 10 {
		t.Errorf("grid = %dx%d, expected 16x10", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.TickRate != 8 {
		t.Errorf("tick_rate = %d, expected 8", cfg.TickRate)
	}
	// Unset theme keys keep their defaults.
	if cfg.Theme.Head != "O" {
		t.Errorf("theme.head = %q, expected default 'O'", cfg.Theme.Head)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML should fail")
	}

	path = filepath.Join(dir, "unplayable.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 1\n  height: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with an unplayable grid should fail")
	}
}
