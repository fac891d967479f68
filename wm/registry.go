package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/list"
)

// registry owns every managed window and monitor. windows is in creation
// order, newest first; focus is most recently focused first.
type registry struct {
	windows  list.List[*Window]
	focus    list.List[*Window]
	monitors list.List[*Monitor]
}

func (r *registry) add(w *Window) {
	w.item = r.windows.PushFront(w)
	w.focus = r.focus.PushFront(w)
}

func (r *registry) remove(w *Window) {
	r.windows.Remove(w.item)
	r.focus.Remove(w.focus)
}

func (r *registry) find(id xproto.Window) *Window {
	for w := range r.windows.Values() {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (r *registry) addMonitor(out geom.Output) *Monitor {
	m := &Monitor{Output: out.ID, Name: out.Name, Rect: out.Rect}
	m.item = r.monitors.PushFront(m)
	return m
}

func (r *registry) removeMonitor(m *Monitor) {
	r.monitors.Remove(m.item)
}

func (r *registry) findMonitor(output uint32) *Monitor {
	for m := range r.monitors.Values() {
		if m.Output == output {
			return m
		}
	}
	return nil
}

// monitorAt returns the first monitor containing the point.
func (r *registry) monitorAt(x, y int) *Monitor {
	for m := range r.monitors.Values() {
		if m.Contains(x, y) {
			return m
		}
	}
	return nil
}

// clone returns a monitor of another output sharing the origin (x, y).
func (r *registry) clone(output uint32, x, y int) *Monitor {
	for m := range r.monitors.Values() {
		if m.Output != output && m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

// monitorOf resolves a window's monitor. A removed monitor does not resolve.
func (r *registry) monitorOf(w *Window) (*Monitor, bool) {
	return r.monitors.Get(w.monitor)
}

// successor is the monitor after m, wrapping to the first one. It is nil
// when m is the only monitor.
func (r *registry) successor(m *Monitor) *Monitor {
	h := r.monitors.Next(m.item)
	if h.IsZero() {
		h = r.monitors.Front()
	}
	if next, ok := r.monitors.Get(h); ok && next != m {
		return next
	}
	return nil
}
