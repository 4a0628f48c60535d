package game

import "github.com/vovakirdan/snaketui/internal/core"

// Status describes how a run ended, if it has.
type Status string

const (
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
	StatusWin      Status = "win"
)

// Snapshot is a read-only copy of the game state, taken once per tick by
// the driver for rendering and used by tests for determinism checks.
type Snapshot struct {
	Width    int
	Height   int
	Body     []core.Point // Head at index 0
	Heading  core.Direction
	Food     core.Point
	Score    int
	Terminal bool
	Status   Status
}

// Snapshot returns the current game state. The body slice is copied so
// the caller cannot alias internal state.
func (g *Game) Snapshot() Snapshot {
	status := StatusRunning
	switch {
	case g.won:
		status = StatusWin
	case g.gameOver:
		status = StatusGameOver
	}

	body := make([]core.Point, len(g.body))
	copy(body, g.body)

	return Snapshot{
		Width:    g.cfg.Width,
		Height:   g.cfg.Height,
		Body:     body,
		Heading:  g.heading,
		Food:     g.food,
		Score:    g.score,
		Terminal: g.Terminal(),
		Status:   status,
	}
}
