// Package game implements the headless snake game state: movement,
// collision detection, growth, scoring and restart. It has no rendering
// or input dependencies; the platform layer feeds it one directional
// intent per tick and reads snapshots back.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snaketui/internal/core"
)

// Minimum playable grid. The initial 3-segment body must fit on one row
// without wrapping.
const (
	MinWidth  = 3
	MinHeight = 1
)

// Config holds the grid dimensions for a game.
type Config struct {
	Width  int
	Height int
}

// Validate checks that the grid is large enough to play on.
func (c Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("game: grid width %d is below minimum %d", c.Width, MinWidth)
	}
	if c.Height < MinHeight {
		return fmt.Errorf("game: grid height %d is below minimum %d", c.Height, MinHeight)
	}
	return nil
}

// Game owns the full state of one snake run. All mutation goes through
// Step and Reset; callers observe state via Snapshot.
type Game struct {
	cfg Config
	rng *rand.Rand

	body     []core.Point // Head at index 0
	heading  core.Direction
	food     core.Point
	score    int
	gameOver bool
	won      bool // Full-grid win, also terminal
}

// New creates a game on the given grid and seeds its RNG.
// The grid dimensions are validated up front; an unplayable grid is a
// startup-time contract violation, not a runtime game event.
func New(cfg Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g, nil
}

// Reset reinitializes the run in place: a 3-segment body centered on the
// grid facing right, score zero, and food on a uniformly random free cell.
func (g *Game) Reset() {
	// The body extends two cells left of the head, so on the narrowest
	// grids the head is pushed right of the exact center to keep the
	// tail on-grid.
	center := core.Point{X: core.Max(g.cfg.Width/2, 2), Y: g.cfg.Height / 2}
	left := core.DirLeft.Delta()

	g.body = []core.Point{
		center, // Head
		center.Add(left),
		center.Add(left).Add(left),
	}
	g.heading = core.DirRight
	g.score = 0
	g.gameOver = false
	g.won = false

	food, err := randomFreeCell(g.rng, g.cfg.Width, g.cfg.Height, g.body)
	if err != nil {
		// Body already fills the grid (e.g. 3x1). Treat as a win, same
		// as running out of cells mid-game.
		g.won = true
		return
	}
	g.food = food
}

// Terminal reports whether the run has ended (collision or full-grid win).
func (g *Game) Terminal() bool {
	return g.gameOver || g.won
}

// Score returns the number of food items eaten since the last reset.
func (g *Game) Score() int {
	return g.score
}

// Step advances the game by one tick. The intent is the single buffered
// direction for this tick; core.DirNone means no input. A terminal game
// ignores Step entirely until Reset is called.
func (g *Game) Step(intent core.Direction) {
	if g.Terminal() {
		return
	}

	// Apply intent unless it would reverse the snake into itself.
	// Reversal is rejected against the heading alone, regardless of
	// body length.
	if intent != core.DirNone && !intent.Opposite(g.heading) {
		g.heading = intent
	}

	newHead := g.body[0].Add(g.heading.Delta())

	// Wall collision: the failed move is not committed.
	if newHead.X < 0 || newHead.X >= g.cfg.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Height {
		g.gameOver = true
		return
	}

	eats := newHead == g.food

	// Self collision. The tail cell is excluded unless this move eats,
	// since a non-eating move vacates it this same tick.
	checkLen := len(g.body)
	if !eats {
		checkLen--
	}
	for i := 1; i < checkLen; i++ {
		if g.body[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.body = append([]core.Point{newHead}, g.body...)

	if eats {
		g.score++
		food, err := randomFreeCell(g.rng, g.cfg.Width, g.cfg.Height, g.body)
		if err != nil {
			// Grid is full: win. Body and food stay as they are.
			g.won = true
			return
		}
		g.food = food
		return
	}

	// Didn't eat: drop the tail to keep length constant.
	g.body = g.body[:len(g.body)-1]
}
