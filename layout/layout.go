// Package layout is the placement math of the window manager. Everything here
// is pure: it takes geometry in and hands geometry back, and the engine decides
// what to send to the display server.
package layout

import "github.com/BobdaProgrammer/chefwm/geom"

// Params are the configuration values that shape every placement.
type Params struct {
	Border  int
	Gaps    geom.Gaps
	GridGap int
}

// IsFullSize reports whether a window asks to cover the whole monitor, which
// is treated as a request to maximize.
func IsFullSize(r, mon geom.Rect) bool {
	return r.Width == mon.Width && r.Height == mon.Height
}

// Fit clamps r so that it is on mon and no smaller than the minimum hints nor
// larger than the monitor minus borders. moved and resized report which parts
// of r changed.
func Fit(r geom.Rect, h geom.Hints, mon geom.Rect, border int) (out geom.Rect, moved, resized bool) {
	out = r
	outer := 2 * border

	if out.X > mon.Right() || out.Y > mon.Bottom() || out.X < mon.X || out.Y < mon.Y {
		moved = true
		if out.X > mon.Right() {
			out.X = mon.Right() - out.Width - outer
		} else if out.X < mon.X {
			out.X = mon.X
		}
		if out.Y > mon.Bottom() {
			out.Y = mon.Bottom() - out.Height - outer
		} else if out.Y < mon.Y {
			out.Y = mon.Y
		}
	}

	if h.MinWidth != 0 && out.Width < h.MinWidth {
		out.Width = h.MinWidth
		resized = true
	}
	if h.MinHeight != 0 && out.Height < h.MinHeight {
		out.Height = h.MinHeight
		resized = true
	}

	if out.Width+outer > mon.Width {
		out.X = mon.X
		out.Width = max(mon.Width-outer, 1)
		moved, resized = true, true
	} else if out.X+out.Width+outer > mon.Right() {
		out.X = mon.Right() - out.Width - outer
		moved = true
	}

	if out.Height+outer > mon.Height {
		out.Y = mon.Y
		out.Height = max(mon.Height-outer, 1)
		moved, resized = true, true
	} else if out.Y+out.Height+outer > mon.Bottom() {
		out.Y = mon.Bottom() - out.Height - outer
		moved = true
	}

	return out, moved, resized
}

// Maximized is the target of a full maximize. The window loses its border.
func Maximized(mon geom.Rect) geom.Rect {
	return mon
}

// HMaximized stretches r across the monitor between the left and right gaps.
func HMaximized(r, mon geom.Rect, p Params) geom.Rect {
	r.X = mon.X + p.Gaps.Left
	r.Width = max(mon.Width-p.Gaps.Left-p.Gaps.Right-2*p.Border, 1)
	return r
}

// VMaximized stretches r down the monitor between the top and bottom gaps.
func VMaximized(r, mon geom.Rect, p Params) geom.Rect {
	r.Y = mon.Y + p.Gaps.Up
	r.Height = max(mon.Height-p.Gaps.Up-p.Gaps.Down-2*p.Border, 1)
	return r
}

// Monocle fills the monitor inside all four gaps, border included.
func Monocle(mon geom.Rect, p Params) geom.Rect {
	return geom.Rect{
		X:      mon.X + p.Gaps.Left,
		Y:      mon.Y + p.Gaps.Up,
		Width:  max(mon.Width-2*p.Border-p.Gaps.Left-p.Gaps.Right, 1),
		Height: max(mon.Height-2*p.Border-p.Gaps.Up-p.Gaps.Down, 1),
	}
}

// ResizeBy grows or shrinks a size by (dw, dh). A delta that would make a side
// zero or negative is ignored for that side. When honorHints is set the result
// is rounded down to the size increments.
func ResizeBy(w, h, dw, dh int, hints geom.Hints, honorHints bool) (int, int) {
	if w+dw > 0 {
		w += dw
	}
	if h+dh > 0 {
		h += dh
	}
	w, h = ApplyMin(w, h, hints)
	if honorHints {
		w -= w % max(hints.WidthInc, 1)
		h -= h % max(hints.HeightInc, 1)
	}
	return max(w, 1), max(h, 1)
}

// ApplyMin raises a size to the minimum hints.
func ApplyMin(w, h int, hints geom.Hints) (int, int) {
	if hints.MinWidth != 0 && w < hints.MinWidth {
		w = hints.MinWidth
	}
	if hints.MinHeight != 0 && h < hints.MinHeight {
		h = hints.MinHeight
	}
	return w, h
}

// CursorPoint is where the pointer is warped to, relative to the window
// origin, for a configured cursor position. Corners and edges sit on the
// border.
func CursorPoint(pos geom.Position, w, h, border int) (int, int) {
	switch pos {
	case geom.TopLeft:
		return -border, -border
	case geom.TopRight:
		return w + border, -border
	case geom.BottomLeft:
		return -border, h + border
	case geom.BottomRight:
		return w + border, h + border
	case geom.Left:
		return -border, h / 2
	case geom.Right:
		return w + border, h / 2
	case geom.Top:
		return w / 2, -border
	case geom.Bottom:
		return w / 2, h + border
	}
	return w / 2, h / 2
}
