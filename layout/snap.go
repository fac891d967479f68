package layout

import "github.com/BobdaProgrammer/chefwm/geom"

// Snap returns the origin that puts r at pos on mon. The window's outer size
// (geometry plus both borders) is what gets aligned. ok is false for All,
// which the engine handles as a maximize, and for unknown positions.
func Snap(pos geom.Position, r, mon geom.Rect, p Params) (x, y int, ok bool) {
	w := r.Width + 2*p.Border
	h := r.Height + 2*p.Border

	left := mon.X + p.Gaps.Left
	right := mon.Right() - p.Gaps.Right - w
	top := mon.Y + p.Gaps.Up
	bottom := mon.Bottom() - p.Gaps.Down - h
	midX := mon.X + (mon.Width-w)/2
	midY := mon.Y + (mon.Height-h)/2

	switch pos {
	case geom.TopLeft:
		return left, top, true
	case geom.TopRight:
		return right, top, true
	case geom.BottomLeft:
		return left, bottom, true
	case geom.BottomRight:
		return right, bottom, true
	case geom.Center:
		return midX, midY, true
	case geom.Left:
		return left, midY, true
	case geom.Right:
		return right, midY, true
	case geom.Top:
		return midX, top, true
	case geom.Bottom:
		return midX, bottom, true
	}
	return r.X, r.Y, false
}
