package xconn

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/BobdaProgrammer/chefwm/layout"
	"github.com/BobdaProgrammer/chefwm/wm"
)

var errNoDelete = errors.New("WM_DELETE_WINDOW not supported")

// Manage subscribes to the events chefwm needs from a client and puts it in
// the save set, so it survives a crash of the window manager.
func (c *Conn) Manage(w xproto.Window) {
	xproto.ChangeWindowAttributes(c.conn, w, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange})
	xproto.ChangeSaveSet(c.conn, xproto.SetModeInsert, w)
}

func (c *Conn) Map(w xproto.Window)   { xproto.MapWindow(c.conn, w) }
func (c *Conn) Unmap(w xproto.Window) { xproto.UnmapWindow(c.conn, w) }

func (c *Conn) Raise(w xproto.Window) {
	xproto.ConfigureWindow(c.conn, w, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

func (c *Conn) Restack(w xproto.Window, mode byte) {
	xproto.ConfigureWindow(c.conn, w, xproto.ConfigWindowStackMode, []uint32{uint32(mode)})
}

func (c *Conn) Move(w xproto.Window, x, y int) {
	xproto.ConfigureWindow(c.conn, w, xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}

func (c *Conn) Resize(w xproto.Window, width, height int) {
	xproto.ConfigureWindow(c.conn, w, xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)})
}

func (c *Conn) SetBorderWidth(w xproto.Window, width int) {
	xproto.ConfigureWindow(c.conn, w, xproto.ConfigWindowBorderWidth, []uint32{uint32(width)})
}

// Configure grants a configure request unchanged.
func (c *Conn) Configure(ev xproto.ConfigureRequestEvent) {
	err := xproto.ConfigureWindowChecked(c.conn, ev.Window, ev.ValueMask, configureValues(ev)).Check()
	if err != nil {
		slog.Debug("Couldn't configure window", "window", ev.Window, "error", err)
	}
}

// configureValues lists the values of a configure request in value mask
// order.
func configureValues(ev xproto.ConfigureRequestEvent) []uint32 {
	values := make([]uint32, 0, 7)

	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(ev.Y))
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	return values
}

func (c *Conn) Circulate(w xproto.Window, place byte) {
	xproto.CirculateWindow(c.conn, place, w)
}

func (c *Conn) Focus(w xproto.Window) {
	xproto.SetInputFocus(c.conn, xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime)
}

// FocusRoot hands the focus back to whatever is under the pointer.
func (c *Conn) FocusRoot() {
	xproto.SetInputFocus(c.conn, xproto.InputFocusNone, xproto.InputFocusPointerRoot, xproto.TimeCurrentTime)
}

// Warp moves the pointer to (x, y) relative to w.
func (c *Conn) Warp(w xproto.Window, x, y int) {
	xproto.WarpPointer(c.conn, xproto.WindowNone, w, 0, 0, 0, 0, int16(x), int16(y))
}

// CloseWindow asks w to close with WM_DELETE_WINDOW and kills its client
// when it does not support that.
func (c *Conn) CloseWindow(w xproto.Window) {
	if err := c.sendDelete(w); err != nil {
		slog.Debug("killing client", "window", w, "reason", err)
		xproto.KillClient(c.conn, uint32(w))
	}
}

func (c *Conn) sendDelete(w xproto.Window) error {
	protocols, err := icccm.WmProtocolsGet(c.X, w)
	if err != nil {
		return err
	}
	if !slices.Contains(protocols, "WM_DELETE_WINDOW") {
		return errNoDelete
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.Atom("WM_PROTOCOLS"),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.Atom("WM_DELETE_WINDOW")),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(c.conn, false, w, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// PaintBorder sets the border of w. A border with an inner stripe is drawn
// into a pixmap the size of the window plus its border.
func (c *Conn) PaintBorder(w xproto.Window, width, height int, b wm.Border) {
	if b.Inner == 0 || b.Width == 0 {
		xproto.ChangeWindowAttributes(c.conn, w, xproto.CwBorderPixel, []uint32{b.Color})
		return
	}

	g, err := xproto.GetGeometry(c.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		slog.Debug("Couldn't get window depth", "window", w, "error", err)
		return
	}
	pix, err := xproto.NewPixmapId(c.conn)
	if err != nil {
		slog.Error("Couldn't allocate pixmap id", "error", err)
		return
	}
	gc, err := xproto.NewGcontextId(c.conn)
	if err != nil {
		slog.Error("Couldn't allocate gc id", "error", err)
		return
	}

	xproto.CreatePixmap(c.conn, g.Depth, pix, xproto.Drawable(c.root),
		uint16(width+2*b.Width), uint16(height+2*b.Width))
	xproto.CreateGC(c.conn, gc, xproto.Drawable(pix), 0, nil)

	outer, inner := layout.BorderRects(width, height, b.Width, b.Inner)
	xproto.ChangeGC(c.conn, gc, xproto.GcForeground, []uint32{b.Color})
	xproto.PolyFillRectangle(c.conn, xproto.Drawable(pix), gc, rectangles(outer))
	xproto.ChangeGC(c.conn, gc, xproto.GcForeground, []uint32{b.InnerColor})
	xproto.PolyFillRectangle(c.conn, xproto.Drawable(pix), gc, rectangles(inner))

	xproto.ChangeWindowAttributes(c.conn, w, xproto.CwBorderPixmap, []uint32{uint32(pix)})
	xproto.FreePixmap(c.conn, pix)
	xproto.FreeGC(c.conn, gc)
}
