package wm

import (
	"log/slog"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/layout"
	"github.com/BobdaProgrammer/chefwm/list"
)

func (wm *WindowManager) params() layout.Params { return wm.conf.Layout() }

// monitorRect is the rectangle of w's monitor, or the whole screen when w has
// none.
func (wm *WindowManager) monitorRect(w *Window) geom.Rect {
	if m, ok := wm.reg.monitorOf(w); ok {
		return m.Rect
	}
	return wm.screen()
}

// assignMonitor attaches w to the monitor under its origin, falling back to
// the first monitor.
func (wm *WindowManager) assignMonitor(w *Window) {
	m := wm.reg.monitorAt(w.Geom.X, w.Geom.Y)
	if m == nil {
		w.monitor = wm.reg.monitors.Front()
		return
	}
	w.monitor = m.item
}

func (wm *WindowManager) teleport(w *Window, x, y int) {
	w.Geom.X, w.Geom.Y = x, y
	wm.display.Move(w.ID, x, y)
	wm.publish(w)
}

func (wm *WindowManager) resize(w *Window, width, height int) {
	w.Geom.Width, w.Geom.Height = max(width, 1), max(height, 1)
	wm.display.Resize(w.ID, w.Geom.Width, w.Geom.Height)
	wm.publish(w)
	// the border pixmap is sized after the window
	wm.repaint(w)
}

// place moves and resizes w to r, sending only what changed.
func (wm *WindowManager) place(w *Window, r geom.Rect) {
	if r.X != w.Geom.X || r.Y != w.Geom.Y {
		wm.teleport(w, r.X, r.Y)
	}
	if r.Width != w.Geom.Width || r.Height != w.Geom.Height {
		wm.resize(w, r.Width, r.Height)
	}
}

// fit clamps w onto its monitor. A normal window asking for exactly the
// monitor size is maximized instead.
func (wm *WindowManager) fit(w *Window) {
	mon := wm.monitorRect(w)
	if w.Mode == Normal && layout.IsFullSize(w.Geom.Rect, mon) {
		b2 := 2 * wm.conf.BorderWidth
		w.Geom.Rect = geom.Rect{X: mon.X, Y: mon.Y, Width: max(mon.Width-b2, 1), Height: max(mon.Height-b2, 1)}
		wm.maximize(w)
		return
	}

	r, moved, resized := layout.Fit(w.Geom.Rect, w.Hints, mon, wm.conf.BorderWidth)
	if moved {
		wm.teleport(w, r.X, r.Y)
	}
	if resized {
		wm.resize(w, r.Width, r.Height)
	}
}

// relayout puts w back in shape after its monitor changed. Special windows
// take their layout again on the new rectangle.
func (wm *WindowManager) relayout(w *Window) {
	mon := wm.monitorRect(w)
	p := wm.params()

	switch w.Mode {
	case Maximized:
		wm.place(w, layout.Maximized(mon))
	case HMaximized:
		wm.place(w, layout.HMaximized(w.Geom.Rect, mon, p))
	case VMaximized:
		wm.place(w, layout.VMaximized(w.Geom.Rect, mon, p))
	case Monocle:
		wm.place(w, layout.Monocle(mon, p))
	case Gridded:
		r, err := layout.GridRect(mon, p, w.Grid)
		if err != nil {
			slog.Debug("grid no longer fits, resetting", "window", w.ID, "error", err)
			wm.reset(w)
			wm.fit(w)
			return
		}
		wm.place(w, r)
	default:
		wm.fit(w)
	}
}

// save records the geometry to restore on reset. A window already at target
// keeps what was saved before, unless nothing was.
func (wm *WindowManager) save(w *Window, target geom.Rect) {
	if w.Geom.Rect != target || w.saved == (geom.Rect{}) {
		w.saved = w.Geom.Rect
	}
}

// maximize makes w cover its monitor without a border.
func (wm *WindowManager) maximize(w *Window) {
	if w.Mode.Special() {
		wm.reset(w)
	}
	target := layout.Maximized(wm.monitorRect(w))

	wm.save(w, target)
	w.Mode = Maximized
	wm.display.SetBorderWidth(w.ID, 0)
	wm.teleport(w, target.X, target.Y)
	wm.resize(w, target.Width, target.Height)
	wm.focusNoRaise(w)

	wm.display.SetWindowState(w.ID, w.Mode)
	wm.publish(w)
}

func (wm *WindowManager) hmaximize(w *Window) {
	if w.Mode.Special() {
		wm.reset(w)
	}
	r := layout.HMaximized(w.Geom.Rect, wm.monitorRect(w), wm.params())

	wm.save(w, r)
	w.Mode = HMaximized
	wm.teleport(w, r.X, r.Y)
	wm.resize(w, r.Width, r.Height)

	wm.display.SetWindowState(w.ID, w.Mode)
	wm.publish(w)
}

func (wm *WindowManager) vmaximize(w *Window) {
	if w.Mode.Special() {
		wm.reset(w)
	}
	r := layout.VMaximized(w.Geom.Rect, wm.monitorRect(w), wm.params())

	wm.save(w, r)
	w.Mode = VMaximized
	wm.teleport(w, r.X, r.Y)
	wm.resize(w, r.Width, r.Height)

	wm.display.SetWindowState(w.ID, w.Mode)
	wm.publish(w)
}

func (wm *WindowManager) monocle(w *Window) {
	if w.Mode.Special() {
		wm.reset(w)
	}
	r := layout.Monocle(wm.monitorRect(w), wm.params())

	w.saved = w.Geom.Rect
	w.Mode = Monocle
	wm.teleport(w, r.X, r.Y)
	wm.resize(w, r.Width, r.Height)
	wm.focusNoRaise(w)

	wm.display.SetWindowState(w.ID, w.Mode)
	wm.publish(w)
}

// reset restores the geometry saved when w entered its special mode.
func (wm *WindowManager) reset(w *Window) {
	r := w.saved
	w.Mode = Normal
	w.Grid = geom.GridPlacement{}

	wm.teleport(w, r.X, r.Y)
	wm.resize(w, r.Width, r.Height)
	wm.paintBorder(w, false)

	wm.display.SetWindowState(w.ID, Normal)
	wm.publish(w)
}

// unspecial resets a special window and focuses it again. Commands that
// move or resize by hand start with it.
func (wm *WindowManager) unspecial(w *Window) {
	if w.Mode.Special() {
		wm.reset(w)
		wm.setFocused(w)
	}
}

// grid places w in a grid cell. An invalid placement leaves w untouched.
func (wm *WindowManager) grid(w *Window, g geom.GridPlacement) error {
	r, err := layout.GridRect(wm.monitorRect(w), wm.params(), g)
	if err != nil {
		return err
	}
	wm.unspecial(w)

	w.saved = w.Geom.Rect
	w.Mode = Gridded
	w.Grid = g
	wm.teleport(w, r.X, r.Y)
	wm.resize(w, r.Width, r.Height)
	wm.display.SetWindowState(w.ID, w.Mode)
	wm.publish(w)
	return nil
}

func (wm *WindowManager) moveInGrid(w *Window, dx, dy int) {
	if w.Mode != Gridded {
		return
	}
	g, ok := layout.MoveInGrid(w.Grid, dx, dy)
	if !ok {
		slog.Debug("grid move out of bounds", "window", w.ID, "dx", dx, "dy", dy)
		return
	}
	if err := wm.grid(w, g); err != nil {
		slog.Warn("Couldn't move window in grid", "window", w.ID, "error", err)
	}
}

func (wm *WindowManager) resizeInGrid(w *Window, dw, dh int) {
	if w.Mode != Gridded {
		return
	}
	g, ok := layout.ResizeInGrid(w.Grid, dw, dh)
	if !ok {
		slog.Debug("grid resize out of bounds", "window", w.ID, "dw", dw, "dh", dh)
		return
	}
	if err := wm.grid(w, g); err != nil {
		slog.Warn("Couldn't resize window in grid", "window", w.ID, "error", err)
	}
}

// snap moves w to a named spot on its monitor. All maximizes.
func (wm *WindowManager) snap(w *Window, pos geom.Position) {
	wm.unspecial(w)
	if pos == geom.All {
		wm.maximize(w)
		return
	}

	wm.fit(w)
	if w.Mode == Maximized {
		return
	}
	x, y, ok := layout.Snap(pos, w.Geom.Rect, wm.monitorRect(w), wm.params())
	if !ok {
		return
	}
	wm.teleport(w, x, y)
	wm.warp(w)
}

// warp puts the pointer on w at the configured cursor position.
func (wm *WindowManager) warp(w *Window) {
	x, y := layout.CursorPoint(wm.conf.CursorPosition, w.Geom.Width, w.Geom.Height, wm.conf.BorderWidth)
	wm.display.Warp(w.ID, x, y)
}

// refreshOutputs syncs the monitor list with the outputs the server reports.
func (wm *WindowManager) refreshOutputs() {
	outputs, ok := wm.display.Outputs()
	if !ok {
		slog.Debug("no output information, using the whole screen")
		return
	}

	for _, out := range outputs {
		if out.Enabled {
			if wm.reg.clone(out.ID, out.X, out.Y) != nil {
				continue
			}
			m := wm.reg.findMonitor(out.ID)
			if m == nil {
				m = wm.reg.addMonitor(out)
				slog.Info("monitor added", "name", m.Name, "x", m.X, "y", m.Y, "width", m.Width, "height", m.Height)
				continue
			}
			m.Rect = out.Rect
			for w := range wm.reg.windows.Values() {
				if w.monitor == m.item {
					wm.relayout(w)
				}
			}
			continue
		}

		m := wm.reg.findMonitor(out.ID)
		if m == nil {
			continue
		}
		var home list.Handle
		if next := wm.reg.successor(m); next != nil {
			home = next.item
		}
		for w := range wm.reg.windows.Values() {
			if w.monitor == m.item {
				w.monitor = home
				wm.relayout(w)
			}
		}
		wm.reg.removeMonitor(m)
		slog.Info("monitor removed", "name", m.Name)
	}
}
