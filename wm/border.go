package wm

// paintBorder draws the border of w in its focused or unfocused colours.
// Nothing is drawn while borders are disabled.
func (wm *WindowManager) paintBorder(w *Window, focused bool) {
	if !wm.conf.Borders {
		return
	}
	b := Border{
		Width:      wm.conf.BorderWidth,
		Inner:      wm.conf.InternalBorderWidth,
		Color:      uint32(wm.conf.UnfocusColor),
		InnerColor: uint32(wm.conf.InternalUnfocusColor),
	}
	if focused {
		b.Color = uint32(wm.conf.FocusColor)
		b.InnerColor = uint32(wm.conf.InternalFocusColor)
	}
	wm.display.SetBorderWidth(w.ID, b.Width)
	wm.display.PaintBorder(w.ID, w.Geom.Width, w.Geom.Height, b)
}

// repaint redraws the border of w in its current focus state.
func (wm *WindowManager) repaint(w *Window) {
	if w.Mode == Maximized {
		return
	}
	wm.paintBorder(w, w == wm.focused)
}

// refreshBorders repaints every window after a border setting changed.
func (wm *WindowManager) refreshBorders() {
	if !wm.conf.ApplySettings {
		return
	}
	for w := range wm.reg.windows.Values() {
		wm.repaint(w)
	}
}
