package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BobdaProgrammer/chefwm/geom"
)

// centered returns a 100x100 rectangle centered on (x, y).
func centered(x, y int) geom.Rect {
	return geom.Rect{X: x - 50, Y: y - 50, Width: 100, Height: 100}
}

func TestCardinalSingleCandidateNorth(t *testing.T) {
	focus := centered(100, 400)
	candidates := []geom.Rect{centered(100, 100)}

	assert.Equal(t, 0, Cardinal(geom.North, focus, candidates))
	assert.Equal(t, -1, Cardinal(geom.South, focus, candidates))
}

func TestCardinalPrefersOverlapOverCloser(t *testing.T) {
	focus := centered(100, 400)
	candidates := []geom.Rect{
		centered(250, 250), // diagonal, outer cone
		centered(100, 0),   // straight above
	}
	assert.Equal(t, 1, Cardinal(geom.North, focus, candidates))
}

func TestCardinalDiscardsOutsideCones(t *testing.T) {
	focus := centered(100, 400)
	candidates := []geom.Rect{centered(400, 300)}
	assert.Equal(t, -1, Cardinal(geom.North, focus, candidates))
}

func TestCardinalTieKeepsFirst(t *testing.T) {
	focus := centered(100, 100)
	candidates := []geom.Rect{centered(500, 100), centered(500, 100)}
	assert.Equal(t, 0, Cardinal(geom.East, focus, candidates))
}

func TestCardinalWestAndEast(t *testing.T) {
	focus := centered(500, 500)
	left := centered(200, 520)
	right := centered(800, 480)
	candidates := []geom.Rect{left, right}

	assert.Equal(t, 0, Cardinal(geom.West, focus, candidates))
	assert.Equal(t, 1, Cardinal(geom.East, focus, candidates))
}

func TestCardinalNoCandidates(t *testing.T) {
	assert.Equal(t, -1, Cardinal(geom.North, centered(0, 0), nil))
}
