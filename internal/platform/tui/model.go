package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snaketui/internal/config"
	"github.com/vovakirdan/snaketui/internal/core"
	"github.com/vovakirdan/snaketui/internal/game"
)

// Model is the Bubble Tea model driving one game: it collects at most
// one directional intent per tick window, advances the game exactly once
// per tick, and renders the resulting snapshot.
type Model struct {
	game   *game.Game
	cfg    config.Config
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	// pending is the buffered intent for the next tick. Later key
	// presses within the same tick window overwrite earlier ones, so at
	// most one heading change is consumed per step.
	pending core.Direction

	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and terminal
// size. The bottom screen line is reserved for the help bar.
func NewModel(g *game.Game, cfg config.Config, width, height int) Model {
	return Model{
		game:   g,
		cfg:    cfg,
		screen: core.NewScreen(width, core.Max(height-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.game.Terminal() {
			m.game.Reset()
			m.pending = core.DirNone
		}
		return m, nil
	}

	if dir := m.keys.Direction(msg); dir != core.DirNone {
		// Last-writer-wins within a tick window.
		m.pending = dir
	}
	return m, nil
}

// handleTick advances the simulation by exactly one step and re-arms the
// tick timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.pending)
	m.pending = core.DirNone
	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current frame plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.game.Snapshot(), m.cfg)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local game in the current terminal.
func Run(cfg config.Config, seed int64, width, height int) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg.GameConfig(), seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(g, cfg, width, height),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
