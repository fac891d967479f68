package layout

import (
	"errors"

	"github.com/BobdaProgrammer/chefwm/geom"
)

var (
	ErrInvalidPlacement = errors.New("grid placement outside of grid")
	ErrCellTooSmall     = errors.New("grid cell smaller than one pixel")
)

// GridRect places a window in a uniform grid on mon. Every cell has the same
// size; a span covers whole cells plus the gaps and borders between them.
func GridRect(mon geom.Rect, p Params, g geom.GridPlacement) (geom.Rect, error) {
	if !g.Valid() {
		return geom.Rect{}, ErrInvalidPlacement
	}

	b2 := 2 * p.Border
	cellW := (mon.Width - p.Gaps.Left - p.Gaps.Right - (g.Columns-1)*p.GridGap - g.Columns*b2) / g.Columns
	cellH := (mon.Height - p.Gaps.Up - p.Gaps.Down - (g.Rows-1)*p.GridGap - g.Rows*b2) / g.Rows
	if cellW < 1 || cellH < 1 {
		return geom.Rect{}, ErrCellTooSmall
	}

	return geom.Rect{
		X:      mon.X + p.Gaps.Left + g.Col*(b2+cellW+p.GridGap),
		Y:      mon.Y + p.Gaps.Up + g.Row*(b2+cellH+p.GridGap),
		Width:  cellW*g.SpanW + (g.SpanW-1)*(p.GridGap+b2),
		Height: cellH*g.SpanH + (g.SpanH-1)*(p.GridGap+b2),
	}, nil
}

// MoveInGrid shifts the target cell by (dx, dy). ok is false when the result
// would leave the grid.
func MoveInGrid(g geom.GridPlacement, dx, dy int) (geom.GridPlacement, bool) {
	g.Col += dx
	g.Row += dy
	return g, g.Valid()
}

// ResizeInGrid changes the span by (dw, dh). ok is false when the span would
// drop below one cell or run past the grid.
func ResizeInGrid(g geom.GridPlacement, dw, dh int) (geom.GridPlacement, bool) {
	g.SpanW += dw
	g.SpanH += dh
	return g, g.Valid()
}
