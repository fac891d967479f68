package wm

import (
	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/layout"
	"github.com/BobdaProgrammer/chefwm/list"
)

// focusNoRaise gives w the input focus without changing the stacking order.
func (wm *WindowManager) focusNoRaise(w *Window) {
	if w == nil {
		return
	}
	wm.display.Map(w.ID)
	if w.Mode != Maximized {
		wm.paintBorder(w, true)
	}

	wm.display.Focus(w.ID)
	wm.display.SetActiveWindow(w.ID)

	if prev := wm.focused; prev != nil && prev != w && prev.Mode != Maximized {
		wm.paintBorder(prev, false)
	}

	wm.reg.focus.MoveToFront(w.focus)
	wm.focused = w
	wm.grabButtons(w)
}

func (wm *WindowManager) setFocused(w *Window) {
	if w == nil {
		return
	}
	wm.focusNoRaise(w)
	wm.display.Raise(w.ID)
}

// focusLastBest focuses the most recently focused mapped window other than
// except. The walk starts at the second entry: the head is the window that
// is going away.
func (wm *WindowManager) focusLastBest(except *Window) {
	l := &wm.reg.focus
	h := l.Next(l.Front())
	if h.IsZero() {
		h = l.Front()
	}
	for ; !h.IsZero(); h = l.Next(h) {
		w, ok := l.Get(h)
		if ok && w != except && w.Mapped {
			wm.setFocused(w)
			return
		}
	}
}

// cycle focuses the next mapped window in list order, wrapping around. With
// inGroup set only windows of the focused window's group qualify.
func (wm *WindowManager) cycle(forward, inGroup bool) {
	start := wm.focused
	if inGroup && start == nil {
		return
	}

	l := &wm.reg.windows
	step, wrap := l.Next, l.Front
	if !forward {
		step, wrap = l.Prev, l.Back
	}

	var h list.Handle
	if start != nil {
		h = start.item
	}
	for range l.Len() {
		if h.IsZero() {
			h = wrap()
		} else if h = step(h); h.IsZero() {
			h = wrap()
		}
		w, ok := l.Get(h)
		if !ok || w == start {
			return
		}
		if w.Mapped && (!inGroup || w.Group == start.Group) {
			wm.setFocused(w)
			return
		}
	}
}

// cardinal focuses the window that best lies in direction dir of the
// focused one.
func (wm *WindowManager) cardinal(dir geom.Direction) {
	from := wm.focused
	if from == nil {
		return
	}

	var (
		candidates []*Window
		rects      []geom.Rect
	)
	for w := range wm.reg.windows.Values() {
		if w == from || !w.Mapped {
			continue
		}
		candidates = append(candidates, w)
		rects = append(rects, w.Geom.Rect)
	}

	if i := layout.Cardinal(dir, from.Geom.Rect, rects); i >= 0 {
		wm.setFocused(candidates[i])
	}
}

// closeWindow asks w to close. Focus moves on first so the window does not
// take it along.
func (wm *WindowManager) closeWindow(w *Window) {
	if w == nil {
		return
	}
	if wm.conf.LastWindowFocusing && w == wm.focused {
		wm.focusLastBest(w)
	}
	if wm.focused == w {
		wm.focused = nil
	}
	wm.display.CloseWindow(w.ID)
}
