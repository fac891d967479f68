package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
)

// _NET_WM_STATE actions.
const (
	stateRemove = 0
	stateAdd    = 1
	stateToggle = 2
)

// manage starts tracking a window. Docks, toolbars and desktop windows are
// mapped and otherwise left alone; nil is returned for them.
func (wm *WindowManager) manage(id xproto.Window) *Window {
	if wm.display.Decorative(id) {
		wm.display.Map(id)
		return nil
	}

	wm.display.Manage(id)
	wm.display.SetDesktop(id, allDesktops)

	w := &Window{ID: id, Group: NoGroup, Hints: geom.DefaultHints()}
	if r, ok := wm.display.Geometry(id); ok {
		w.Geom.Rect = r
	} else {
		slog.Debug("no geometry for new window", "window", id)
	}
	if h, ok := wm.display.NormalHints(id); ok {
		w.Hints = h
		w.Geom.SetByUser = h.UserPosition
	}

	wm.reg.add(w)
	wm.publish(w)
	slog.Debug("managing window", "window", id)
	return w
}

// show finishes mapping a managed window: monitor, placement, borders and
// the root properties.
func (wm *WindowManager) show(w *Window) {
	wm.assignMonitor(w)
	wm.fit(w)

	wm.display.SetWindowState(w.ID, w.Mode)
	wm.warp(w)
	wm.updateClientList()

	if w.Mode != Maximized {
		wm.paintBorder(w, true)
	}
	wm.updateCurrentDesktop(w)
}

func (wm *WindowManager) onMapRequest(e xproto.MapRequestEvent) {
	w := wm.reg.find(e.Window)
	if w == nil {
		w = wm.manage(e.Window)
		if w == nil {
			return
		}
		if !w.Geom.SetByUser {
			x, y := 0, 0
			if p, ok := wm.display.Pointer(); ok {
				x, y = p.X, p.Y
			}
			wm.teleport(w, x-w.Geom.Width/2, y-w.Geom.Height/2)
		}
		if wm.conf.StickyWindows {
			wm.groupAdd(w, wm.lastGroup)
		}
	}

	wm.display.Map(e.Window)
	wm.show(w)
}

func (wm *WindowManager) onMapNotify(e xproto.MapNotifyEvent) {
	w := wm.reg.find(e.Window)
	if w == nil {
		return
	}
	w.Mapped = true
	wm.setFocused(w)
	wm.publish(w)
}

func (wm *WindowManager) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	w := wm.reg.find(e.Window)
	if w == nil {
		return
	}
	w.Mapped = false
	if wm.focused == w {
		wm.focused = nil
		if wm.conf.LastWindowFocusing {
			wm.focusLastBest(w)
		}
	}
	wm.updateClientList()
	wm.publish(w)
}

func (wm *WindowManager) onDestroyNotify(e xproto.DestroyNotifyEvent) {
	if w := wm.reg.find(e.Window); w != nil {
		wm.forget(w)
	}
	wm.updateClientList()
	wm.updateGroupList()
}

// forget drops w from the registry. Every reference to it goes first.
func (wm *WindowManager) forget(w *Window) {
	if wm.drag != nil && wm.drag.win == w {
		wm.endDrag()
	}
	if wm.focused == w {
		wm.focused = nil
		if wm.conf.LastWindowFocusing {
			wm.focusLastBest(w)
		}
	}
	wm.reg.remove(w)
	slog.Debug("forgot window", "window", w.ID)
}

func (wm *WindowManager) onEnterNotify(e xproto.EnterNotifyEvent) {
	if !wm.conf.SloppyFocus || wm.drag != nil {
		return
	}
	if wm.focused != nil && e.Event == wm.focused.ID {
		return
	}
	if w := wm.reg.find(e.Event); w != nil {
		wm.focusNoRaise(w)
	}
}

func (wm *WindowManager) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	w := wm.reg.find(e.Window)
	if w == nil {
		wm.display.Configure(e)
		return
	}

	horizontal := w.Mode != Maximized && w.Mode != Monocle && w.Mode != HMaximized
	vertical := w.Mode != Maximized && w.Mode != Monocle && w.Mode != VMaximized
	r := w.Geom.Rect
	if e.ValueMask&xproto.ConfigWindowX != 0 && horizontal {
		r.X = int(e.X)
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 && vertical {
		r.Y = int(e.Y)
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 && horizontal {
		r.Width = int(e.Width)
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 && vertical {
		r.Height = int(e.Height)
	}
	w.Geom.Rect = r

	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		wm.display.Restack(w.ID, e.StackMode)
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		wm.display.SetBorderWidth(w.ID, int(e.BorderWidth))
	}

	if w.Mode != Maximized {
		wm.fit(w)
	}
	wm.teleport(w, w.Geom.X, w.Geom.Y)
	wm.resize(w, w.Geom.Width, w.Geom.Height)
}

func (wm *WindowManager) onConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window == wm.root {
		if int(e.Width) == wm.width && int(e.Height) == wm.height {
			return
		}
		wm.width, wm.height = int(e.Width), int(e.Height)
		slog.Info("screen size changed", "width", wm.width, "height", wm.height)
		wm.refreshOutputs()
		for w := range wm.reg.windows.Values() {
			wm.relayout(w)
		}
		return
	}

	w := wm.reg.find(e.Window)
	if w == nil {
		return
	}
	if m := wm.reg.monitorAt(w.Geom.X, w.Geom.Y); m != nil {
		w.monitor = m.item
	}
	wm.updateCurrentDesktop(w)
}

func (wm *WindowManager) onClientMessage(e xproto.ClientMessageEvent) {
	data := e.Data.Data32
	if e.Type == wm.atoms.command && e.Format == 32 {
		wm.command(data)
		return
	}
	if len(data) < 3 {
		return
	}
	if e.Type == wm.atoms.currentDesktop {
		wm.groupActivateOnly(int(data[0]))
		return
	}

	w := wm.reg.find(e.Window)
	if w == nil {
		return
	}
	switch e.Type {
	case wm.atoms.wmState:
		wm.handleState(w, xproto.Atom(data[1]), data[0])
		wm.handleState(w, xproto.Atom(data[2]), data[0])
	case wm.atoms.activeWindow:
		wm.setFocused(w)
	case wm.atoms.closeWindow:
		wm.closeWindow(w)
	}
}

// handleState applies one _NET_WM_STATE change request.
func (wm *WindowManager) handleState(w *Window, state xproto.Atom, action uint32) {
	if state == 0 {
		return
	}
	switch state {
	case wm.atoms.fullscreen:
		on := w.Mode == Maximized
		switch {
		case action == stateAdd || action == stateToggle && !on:
			wm.maximize(w)
		case on && (action == stateRemove || action == stateToggle):
			wm.reset(w)
			wm.setFocused(w)
		}
	case wm.atoms.maxVert:
		on := w.Mode == VMaximized
		switch {
		case action == stateAdd || action == stateToggle && !on:
			wm.vmaximize(w)
		case on && (action == stateRemove || action == stateToggle):
			wm.reset(w)
		}
	case wm.atoms.maxHorz:
		on := w.Mode == HMaximized
		switch {
		case action == stateAdd || action == stateToggle && !on:
			wm.hmaximize(w)
		case on && (action == stateRemove || action == stateToggle):
			wm.reset(w)
		}
	}
}

func (wm *WindowManager) onFocusIn(e xproto.FocusInEvent) {
	if w := wm.reg.find(e.Event); w != nil {
		wm.updateCurrentDesktop(w)
	}
}

// onFocusOut reconciles our focus with the server's: focus may have moved
// without us, for example when the focused window closed.
func (wm *WindowManager) onFocusOut() {
	f, ok := wm.display.InputFocus()
	if !ok {
		return
	}
	if wm.focused != nil && f == wm.focused.ID {
		return
	}
	if f == wm.root {
		wm.focused = nil
		return
	}
	if w := wm.reg.find(f); w != nil {
		wm.focusNoRaise(w)
	}
}

var buttons = [config.Buttons]xproto.Button{xproto.ButtonIndex1, xproto.ButtonIndex2, xproto.ButtonIndex3}

func (wm *WindowManager) onButtonPress(e xproto.ButtonPressEvent) {
	replay := false
	locks := wm.display.LockMask()
	for i, b := range buttons {
		if e.Detail != b {
			continue
		}
		if wm.conf.ClickToFocus.Matches(int(b)) && e.State&^locks == 0 {
			replay = !wm.pointerGrab(config.ActionFocus)
		} else {
			wm.pointerGrab(wm.conf.PointerActions[i])
		}
	}
	wm.display.AllowEvents(replay, e.Time)
}

// grabButtons installs the click-to-focus and pointer action grabs on w.
func (wm *WindowManager) grabButtons(w *Window) {
	for i, b := range buttons {
		if wm.conf.ClickToFocus.Matches(int(b)) {
			wm.display.GrabButton(w.ID, b, 0)
		}
		if wm.conf.PointerActions[i] != config.ActionNothing {
			wm.display.GrabButton(w.ID, b, uint16(wm.conf.PointerModifier))
		}
	}
}

func (wm *WindowManager) regrabButtons() {
	for w := range wm.reg.windows.Values() {
		wm.display.UngrabButtons(w.ID)
		wm.grabButtons(w)
	}
}

func (wm *WindowManager) updateClientList() {
	children, ok := wm.display.Children()
	if !ok {
		wm.display.SetClientList(nil)
		return
	}
	ids := make([]xproto.Window, 0, len(children))
	for _, id := range children {
		if wm.reg.find(id) != nil {
			ids = append(ids, id)
		}
	}
	wm.display.SetClientList(ids)
}
