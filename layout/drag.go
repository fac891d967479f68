package layout

import "github.com/BobdaProgrammer/chefwm/geom"

// Handle is the part of a window a pointer resize is pulling on.
type Handle int

const (
	HandleLeft Handle = iota
	HandleBottom
	HandleTop
	HandleRight
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

func (h Handle) movesLeft() bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

func (h Handle) movesTop() bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

// SideHandle splits r along both diagonals and returns the side whose
// triangle holds the point (px, py), given in root coordinates.
func SideHandle(r geom.Rect, px, py int) Handle {
	x := px - r.X
	y := py - r.Y
	leftOfA := x*r.Height < r.Width*y
	leftOfB := (r.Width-x)*r.Height > r.Width*y

	switch {
	case leftOfA && leftOfB:
		return HandleLeft
	case leftOfA:
		return HandleBottom
	case leftOfB:
		return HandleTop
	}
	return HandleRight
}

// CornerHandle returns the corner of the quadrant holding (px, py).
func CornerHandle(r geom.Rect, px, py int) Handle {
	midX, midY := r.Center()
	if py < midY {
		if px < midX {
			return HandleTopLeft
		}
		return HandleTopRight
	}
	if px < midX {
		return HandleBottomLeft
	}
	return HandleBottomRight
}

// DragMove translates the rectangle captured at grab time.
func DragMove(start geom.Rect, dx, dy int) geom.Rect {
	start.X += dx
	start.Y += dy
	return start
}

// DragResize applies a pointer delta to the edges controlled by hd. start is
// the geometry captured when the drag began. Sizes never go under the minimum
// hints (or one pixel); when clamped, the edge opposite the handle stays put.
func DragResize(start geom.Rect, hd Handle, dx, dy int, hints geom.Hints, honorHints bool) geom.Rect {
	if honorHints {
		wi, hi := max(hints.WidthInc, 1), max(hints.HeightInc, 1)
		dx = dx / wi * wi
		dy = dy / hi * hi
	}

	out := start
	if hd.movesLeft() {
		out.X = start.X + dx
		out.Width = start.Width - dx
	}
	if hd == HandleRight || hd == HandleTopRight || hd == HandleBottomRight {
		out.Width = start.Width + dx
	}
	if hd.movesTop() {
		out.Y = start.Y + dy
		out.Height = start.Height - dy
	}
	if hd == HandleBottom || hd == HandleBottomLeft || hd == HandleBottomRight {
		out.Height = start.Height + dy
	}

	if minW := max(hints.MinWidth, 1); out.Width < minW {
		out.Width = minW
		if hd.movesLeft() {
			out.X = start.Right() - minW
		}
	}
	if minH := max(hints.MinHeight, 1); out.Height < minH {
		out.Height = minH
		if hd.movesTop() {
			out.Y = start.Bottom() - minH
		}
	}
	return out
}
