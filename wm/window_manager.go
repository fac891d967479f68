// Package wm is the window management engine: it keeps the registry of
// windows and monitors, reacts to X events and runs the commands sent by
// chefc. All X traffic goes through a Display.
package wm

import (
	"errors"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/ipc"
)

// ErrOtherWM is returned by Create when another window manager already
// redirects the root window.
var ErrOtherWM = errors.New("another window manager is running")

type atoms struct {
	command        xproto.Atom
	wmState        xproto.Atom
	activeWindow   xproto.Atom
	closeWindow    xproto.Atom
	currentDesktop xproto.Atom
	fullscreen     xproto.Atom
	maxVert        xproto.Atom
	maxHorz        xproto.Atom
}

type WindowManager struct {
	display       Display
	conf          config.Config
	root          xproto.Window
	width, height int
	atoms         atoms

	reg       registry
	focused   *Window
	drag      *drag
	inUse     []bool
	lastGroup int

	halt     bool
	exitCode int
}

// Create takes over the display, publishes the EWMH root properties and
// adopts every window that is already on screen.
func Create(d Display, conf config.Config) (*WindowManager, error) {
	if err := d.Redirect(); err != nil {
		return nil, err
	}

	wm := &WindowManager{
		display: d,
		conf:    conf,
		root:    d.Root(),
		inUse:   make([]bool, conf.Groups),
		atoms: atoms{
			command:        d.Atom(ipc.CommandAtom),
			wmState:        d.Atom("_NET_WM_STATE"),
			activeWindow:   d.Atom("_NET_ACTIVE_WINDOW"),
			closeWindow:    d.Atom("_NET_CLOSE_WINDOW"),
			currentDesktop: d.Atom("_NET_CURRENT_DESKTOP"),
			fullscreen:     d.Atom("_NET_WM_STATE_FULLSCREEN"),
			maxVert:        d.Atom("_NET_WM_STATE_MAXIMIZED_VERT"),
			maxHorz:        d.Atom("_NET_WM_STATE_MAXIMIZED_HORZ"),
		},
	}
	wm.width, wm.height = d.ScreenSize()

	if err := d.Announce(config.AppName, conf.Groups); err != nil {
		slog.Warn("Couldn't publish EWMH root properties", "error", err)
	}

	wm.refreshOutputs()
	wm.adopt()
	return wm, nil
}

// adopt manages the windows that were mapped before we started.
func (wm *WindowManager) adopt() {
	children, ok := wm.display.Children()
	if !ok {
		slog.Error("Couldn't query tree")
		return
	}

	var last *Window
	for _, id := range children {
		attrs, ok := wm.display.Attributes(id)
		if !ok || attrs.OverrideRedirect || !attrs.Viewable {
			continue
		}
		w := wm.manage(id)
		if w == nil {
			continue
		}
		w.Mapped = true
		wm.publish(w)
		last = w
	}
	if last != nil {
		wm.setFocused(last)
	}
}

// Run handles events until a wm_quit command arrives and returns the
// requested exit code.
func (wm *WindowManager) Run() int {
	slog.Info("window manager up and running")

	wm.updateGroupList()
	for !wm.halt {
		wm.display.Flush()
		ev, err := wm.display.NextEvent()
		if err != nil {
			slog.Debug("X error", "error", err)
			continue
		}
		if ev == nil {
			slog.Error("lost connection to the X server")
			return 1
		}
		wm.handle(ev)
	}
	return wm.exitCode
}

func (wm *WindowManager) handle(ev xgb.Event) {
	slog.Debug("event", "event", ev.String())

	switch e := ev.(type) {
	case randr.ScreenChangeNotifyEvent:
		wm.refreshOutputs()
	case xproto.ConfigureRequestEvent:
		wm.onConfigureRequest(e)
	case xproto.DestroyNotifyEvent:
		wm.onDestroyNotify(e)
	case xproto.EnterNotifyEvent:
		wm.onEnterNotify(e)
	case xproto.MapRequestEvent:
		wm.onMapRequest(e)
	case xproto.MapNotifyEvent:
		wm.onMapNotify(e)
	case xproto.UnmapNotifyEvent:
		wm.onUnmapNotify(e)
	case xproto.ConfigureNotifyEvent:
		wm.onConfigureNotify(e)
	case xproto.CirculateRequestEvent:
		wm.display.Circulate(e.Window, e.Place)
	case xproto.ClientMessageEvent:
		wm.onClientMessage(e)
	case xproto.FocusInEvent:
		wm.onFocusIn(e)
	case xproto.FocusOutEvent:
		wm.onFocusOut()
	case xproto.ButtonPressEvent:
		wm.onButtonPress(e)
	case xproto.MotionNotifyEvent:
		wm.onMotion(e)
	case xproto.ButtonReleaseEvent:
		wm.onButtonRelease()
	}
}

// Close gives input focus back to the pointer root, drops every button grab
// and disconnects.
func (wm *WindowManager) Close() {
	wm.display.FocusRoot()
	for w := range wm.reg.windows.Values() {
		wm.display.UngrabButtons(w.ID)
	}
	if wm.drag != nil {
		wm.endDrag()
	}
	wm.focused = nil
	wm.reg.windows.Clear()
	wm.reg.focus.Clear()
	wm.reg.monitors.Clear()
	wm.display.Flush()
	wm.display.Disconnect()
}

// Focused returns the focused window, or nil.
func (wm *WindowManager) Focused() *Window { return wm.focused }

// Window returns the managed window with the given id, or nil.
func (wm *WindowManager) Window(id xproto.Window) *Window { return wm.reg.find(id) }

// Config returns the live configuration.
func (wm *WindowManager) Config() config.Config { return wm.conf }

func (wm *WindowManager) screen() geom.Rect {
	return geom.Rect{Width: wm.width, Height: wm.height}
}
