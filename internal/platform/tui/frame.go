package tui

import (
	"fmt"

	"github.com/vovakirdan/snaketui/internal/config"
	"github.com/vovakirdan/snaketui/internal/core"
	"github.com/vovakirdan/snaketui/internal/game"
)

// Top HUD lines above the playfield.
const hudHeight = 2

// drawFrame draws one full frame (HUD, border, body, food, overlays)
// from a read-only snapshot into the screen buffer. The grid is centered
// in the available area.
func drawFrame(dst *core.Screen, snap game.Snapshot, cfg config.Config) {
	dst.Clear()

	drawHUD(dst, snap)

	// Border adds one cell on each side.
	requiredW := snap.Width + 2
	requiredH := snap.Height + 2 + hudHeight
	if dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", requiredW, requiredH))
		return
	}

	ox := (dst.Width() - requiredW) / 2
	oy := hudHeight + (dst.Height()-hudHeight-(snap.Height+2))/2

	dst.DrawBox(ox, oy, snap.Width+2, snap.Height+2)

	// Cell (x, y) of the grid maps inside the border.
	cellX := func(x int) int { return ox + 1 + x }
	cellY := func(y int) int { return oy + 1 + y }

	dst.SetColored(cellX(snap.Food.X), cellY(snap.Food.Y), cfg.FoodRune(), core.ColorBrightRed)

	// Body drawn after food so a win-by-fill frame shows the head, not a
	// stale food cell underneath it.
	for i, seg := range snap.Body {
		if i == 0 {
			dst.SetColored(cellX(seg.X), cellY(seg.Y), cfg.HeadRune(), core.ColorBrightGreen)
		} else {
			dst.SetColored(cellX(seg.X), cellY(seg.Y), cfg.BodyRune(), core.ColorGreen)
		}
	}

	switch snap.Status {
	case game.StatusGameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Final score: %d", snap.Score), "Press R to restart")
	case game.StatusWin:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final score: %d", snap.Score), "Press R to restart")
	}
}

// drawHUD draws the top status bar and separator.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Snake — Score: %d", snap.Score)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered boxed message over the playfield.
func drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len([]rune(line)) > maxLen {
			maxLen = len([]rune(line))
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Clear the interior so the playfield doesn't bleed through.
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, boxY+2+i, line, core.ColorBrightYellow)
	}
}
