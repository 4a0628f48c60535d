package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snaketui/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight},
		{"w", runeKey('w'), core.DirUp},
		{"s", runeKey('s'), core.DirDown},
		{"a", runeKey('a'), core.DirLeft},
		{"d", runeKey('d'), core.DirRight},
		{"vim k", runeKey('k'), core.DirUp},
		{"vim j", runeKey('j'), core.DirDown},
		{"vim h", runeKey('h'), core.DirLeft},
		{"vim l", runeKey('l'), core.DirRight},
		{"unbound key", runeKey('x'), core.DirNone},
		{"restart key", runeKey('r'), core.DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Direction(tc.msg); got != tc.expected {
				t.Errorf("Direction(%s) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
}
