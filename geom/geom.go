// Package geom holds the plain geometry types shared by the layout engine,
// the configuration and the wire protocol.
package geom

// Rect is an axis-aligned rectangle in root window coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r. Edges are inclusive on
// both sides, so a point on the seam between two monitors matches both.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point, truncated.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Geometry is the client area of a window plus whether its origin was
// requested explicitly (USPosition).
type Geometry struct {
	Rect
	SetByUser bool
}

// Hints are the parts of WM_NORMAL_HINTS the engine cares about.
// Zero minimum/maximum means "no constraint". Increments are at least 1.
type Hints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
	WidthInc, HeightInc int
	UserPosition        bool
}

// DefaultHints returns hints with no constraints.
func DefaultHints() Hints {
	return Hints{WidthInc: 1, HeightInc: 1}
}

// Output is one display output as reported by the transport.
// Enabled is false when the output has no CRTC attached.
type Output struct {
	ID      uint32
	Name    string
	Enabled bool
	Rect
}

// GridPlacement describes where a gridded window sits: grid size in cells,
// target cell and how many cells it spans.
type GridPlacement struct {
	Columns, Rows int
	Col, Row      int
	SpanW, SpanH  int
}

// Valid reports whether the placement lies completely inside its grid.
func (g GridPlacement) Valid() bool {
	if g.Columns < 1 || g.Rows < 1 || g.SpanW < 1 || g.SpanH < 1 {
		return false
	}
	if g.Col < 0 || g.Row < 0 || g.Col >= g.Columns || g.Row >= g.Rows {
		return false
	}
	return g.Col+g.SpanW <= g.Columns && g.Row+g.SpanH <= g.Rows
}

// Gaps are the empty margins kept between windows and each monitor edge.
type Gaps struct {
	Left  int `koanf:"left"`
	Down  int `koanf:"down"`
	Up    int `koanf:"up"`
	Right int `koanf:"right"`
}
