package layout

import "github.com/BobdaProgrammer/chefwm/geom"

// BorderRects returns the rectangles to fill in a border pixmap of size
// (w+2*border) x (h+2*border) so that the border shows an inner stripe of
// width inner next to the window and the outer colour beyond it. Border
// pixmaps are tiled from the window origin, so stripes start past the content.
func BorderRects(w, h, border, inner int) (outer, innerRects []geom.Rect) {
	o := border - inner

	innerRects = []geom.Rect{
		{X: w, Y: 0, Width: border - o, Height: h + border - o},
		{X: w + border + o, Y: 0, Width: border - o, Height: h + border - o},
		{X: 0, Y: h, Width: w + border - o, Height: border - o},
		{X: 0, Y: h + border + o, Width: w + border - o, Height: border - o},
		{X: w + border + o, Y: border + h + o, Width: border, Height: border},
	}
	outer = []geom.Rect{
		{X: w + border - o, Y: 0, Width: o, Height: h + border*2},
		{X: w + border, Y: 0, Width: o, Height: h + border*2},
		{X: 0, Y: h + border - o, Width: w + border*2, Height: o},
		{X: 0, Y: h + border, Width: w + border*2, Height: o},
		{X: 1, Y: 1, Width: 1, Height: 1},
	}
	return outer, innerRects
}
