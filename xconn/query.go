package xconn

import (
	"log/slog"
	"slices"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/wm"
)

// decorativeTypes are window types that are shown but never managed.
var decorativeTypes = []string{
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
}

func (c *Conn) Children() ([]xproto.Window, bool) {
	tree, err := xproto.QueryTree(c.conn, c.root).Reply()
	if err != nil {
		slog.Error("Couldn't query tree", "error", err)
		return nil, false
	}
	return tree.Children, true
}

// Outputs lists every RandR output with the CRTC it is shown on.
func (c *Conn) Outputs() ([]geom.Output, bool) {
	if !c.randr {
		return nil, false
	}
	res, err := randr.GetScreenResourcesCurrent(c.conn, c.root).Reply()
	if err != nil {
		slog.Error("Couldn't get screen resources", "error", err)
		return nil, false
	}

	outputs := make([]geom.Output, 0, len(res.Outputs))
	for _, o := range res.Outputs {
		info, err := randr.GetOutputInfo(c.conn, o, res.ConfigTimestamp).Reply()
		if err != nil {
			slog.Debug("no info for output", "output", o, "error", err)
			continue
		}
		out := geom.Output{ID: uint32(o), Name: string(info.Name)}
		if info.Crtc != 0 {
			crtc, err := randr.GetCrtcInfo(c.conn, info.Crtc, res.ConfigTimestamp).Reply()
			if err != nil {
				slog.Debug("no info for crtc", "crtc", info.Crtc, "error", err)
			} else {
				out.Enabled = true
				out.Rect = geom.Rect{
					X:      int(crtc.X),
					Y:      int(crtc.Y),
					Width:  int(crtc.Width),
					Height: int(crtc.Height),
				}
			}
		}
		outputs = append(outputs, out)
	}
	return outputs, true
}

func (c *Conn) Attributes(w xproto.Window) (wm.Attributes, bool) {
	attrs, err := xproto.GetWindowAttributes(c.conn, w).Reply()
	if err != nil {
		slog.Debug("no attributes", "window", w, "error", err)
		return wm.Attributes{}, false
	}
	return wm.Attributes{
		OverrideRedirect: attrs.OverrideRedirect,
		Viewable:         attrs.MapState == xproto.MapStateViewable,
	}, true
}

func (c *Conn) Geometry(w xproto.Window) (geom.Rect, bool) {
	g, err := xproto.GetGeometry(c.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		slog.Debug("no geometry", "window", w, "error", err)
		return geom.Rect{}, false
	}
	return geom.Rect{X: int(g.X), Y: int(g.Y), Width: int(g.Width), Height: int(g.Height)}, true
}

// NormalHints reads WM_NORMAL_HINTS. Fields the client did not set keep
// their unconstrained defaults.
func (c *Conn) NormalHints(w xproto.Window) (geom.Hints, bool) {
	nh, err := icccm.WmNormalHintsGet(c.X, w)
	if err != nil {
		return geom.DefaultHints(), false
	}

	h := geom.DefaultHints()
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.MinWidth, h.MinHeight = int(nh.MinWidth), int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		h.MaxWidth, h.MaxHeight = int(nh.MaxWidth), int(nh.MaxHeight)
	}
	if nh.Flags&icccm.SizeHintPResizeInc != 0 {
		h.WidthInc, h.HeightInc = max(int(nh.WidthInc), 1), max(int(nh.HeightInc), 1)
	}
	h.UserPosition = nh.Flags&icccm.SizeHintUSPosition != 0
	return h, true
}

func (c *Conn) Decorative(w xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.X, w)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(types, func(t string) bool {
		return slices.Contains(decorativeTypes, t)
	})
}

func (c *Conn) Pointer() (wm.Pointer, bool) {
	p, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		slog.Debug("Couldn't query pointer", "error", err)
		return wm.Pointer{}, false
	}
	return wm.Pointer{X: int(p.RootX), Y: int(p.RootY), Child: p.Child}, true
}

func (c *Conn) InputFocus() (xproto.Window, bool) {
	f, err := xproto.GetInputFocus(c.conn).Reply()
	if err != nil {
		return 0, false
	}
	return f.Focus, true
}
