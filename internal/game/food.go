package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/snaketui/internal/core"
)

// ErrNoFreeCell is returned by randomFreeCell when the body occupies
// every grid cell. Step and Reset convert it into the win state; it
// never reaches callers of the package.
var ErrNoFreeCell = errors.New("game: no free cell left")

// randomFreeCell picks a uniformly random cell not occupied by the body.
// Free cells are enumerated and sampled once, so placement stays cheap
// even when the body approaches grid capacity.
func randomFreeCell(rng *rand.Rand, width, height int, occupied []core.Point) (core.Point, error) {
	taken := make(map[core.Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}

	free := make([]core.Point, 0, width*height-len(taken))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
