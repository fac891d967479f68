package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/layout"
)

// drag is a pointer move or resize in progress. Motion events are measured
// against the pointer position and geometry captured when it started.
type drag struct {
	win    *Window
	action config.PointerAction
	handle layout.Handle
	start  geom.Rect
	x, y   int
}

// pointerGrab runs a pointer action on the window under the pointer. It
// reports whether the click was consumed; false means it should be replayed
// to the client.
func (wm *WindowManager) pointerGrab(action config.PointerAction) bool {
	p, ok := wm.display.Pointer()
	if !ok {
		return false
	}
	w := wm.reg.find(p.Child)
	if w == nil {
		return true
	}

	wm.display.Raise(w.ID)
	if action == config.ActionFocus {
		if w != wm.focused {
			wm.setFocused(w)
			if !wm.conf.ReplayClickOnFocus {
				return true
			}
		}
		return false
	}

	if action == config.ActionNothing || w.Mode.Special() {
		return true
	}
	if wm.drag != nil {
		wm.endDrag()
	}
	if !wm.display.GrabPointer() {
		slog.Debug("pointer grab refused", "window", w.ID)
		return true
	}

	d := &drag{win: w, action: action, start: w.Geom.Rect, x: p.X, y: p.Y}
	switch action {
	case config.ActionResizeSide:
		d.handle = layout.SideHandle(w.Geom.Rect, p.X, p.Y)
	case config.ActionResizeCorner:
		d.handle = layout.CornerHandle(w.Geom.Rect, p.X, p.Y)
	default:
		d.handle = layout.HandleTopLeft
	}
	wm.drag = d
	slog.Debug("drag started", "window", w.ID, "action", action)
	return true
}

func (wm *WindowManager) onMotion(e xproto.MotionNotifyEvent) {
	d := wm.drag
	if d == nil {
		return
	}
	dx := int(e.RootX) - d.x
	dy := int(e.RootY) - d.y

	switch d.action {
	case config.ActionMove:
		r := layout.DragMove(d.start, dx, dy)
		wm.teleport(d.win, r.X, r.Y)
	case config.ActionResizeSide, config.ActionResizeCorner:
		r := layout.DragResize(d.start, d.handle, dx, dy, d.win.Hints, wm.conf.ResizeHints)
		wm.place(d.win, r)
	}
}

func (wm *WindowManager) onButtonRelease() {
	if wm.drag != nil {
		wm.endDrag()
	}
}

func (wm *WindowManager) endDrag() {
	slog.Debug("drag ended", "window", wm.drag.win.ID)
	wm.drag = nil
	wm.display.UngrabPointer()
}
