package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/geom"
)

// Display is everything the engine needs from the X server. Queries report
// ok == false when the server had no answer; the engine then falls back to a
// safe default instead of failing.
type Display interface {
	Root() xproto.Window
	ScreenSize() (width, height int)
	Atom(name string) xproto.Atom

	// Redirect takes the substructure redirect on the root window. It fails
	// with ErrOtherWM when another window manager holds it.
	Redirect() error
	// Announce publishes the root window EWMH properties of a running
	// window manager.
	Announce(name string, desktops int) error
	Flush()
	// NextEvent blocks for the next event. A nil event with a nil error
	// means the connection is gone.
	NextEvent() (xgb.Event, error)
	Disconnect()

	Children() ([]xproto.Window, bool)
	Outputs() ([]geom.Output, bool)

	Attributes(w xproto.Window) (Attributes, bool)
	Geometry(w xproto.Window) (geom.Rect, bool)
	NormalHints(w xproto.Window) (geom.Hints, bool)
	// Decorative reports docks, toolbars and desktop windows, which are
	// shown but never managed.
	Decorative(w xproto.Window) bool
	Pointer() (Pointer, bool)
	InputFocus() (xproto.Window, bool)

	Manage(w xproto.Window)
	Map(w xproto.Window)
	Unmap(w xproto.Window)
	Raise(w xproto.Window)
	Move(w xproto.Window, x, y int)
	Resize(w xproto.Window, width, height int)
	SetBorderWidth(w xproto.Window, width int)
	PaintBorder(w xproto.Window, width, height int, b Border)
	Restack(w xproto.Window, mode byte)
	Configure(ev xproto.ConfigureRequestEvent)
	Circulate(w xproto.Window, place byte)
	Focus(w xproto.Window)
	FocusRoot()
	Warp(w xproto.Window, x, y int)
	CloseWindow(w xproto.Window)

	// LockMask is the union of the NumLock, CapsLock and ScrollLock
	// modifier bits.
	LockMask() uint16
	// GrabButton grabs button with mods on w, once for every combination
	// of lock modifiers.
	GrabButton(w xproto.Window, button xproto.Button, mods uint16)
	UngrabButtons(w xproto.Window)
	GrabPointer() bool
	UngrabPointer()
	AllowEvents(replay bool, t xproto.Timestamp)

	SetActiveWindow(w xproto.Window)
	SetClientList(ws []xproto.Window)
	SetDesktop(w xproto.Window, desktop uint32)
	SetCurrentDesktop(desktop uint32)
	SetDesktopCount(n int)
	SetWindowState(w xproto.Window, mode LayoutMode)
	SetStatus(w xproto.Window, status []byte)
	SetActiveGroups(groups []uint32)
}

// Attributes are the window attributes the engine looks at.
type Attributes struct {
	OverrideRedirect bool
	Viewable         bool
}

// Pointer is the pointer position in root coordinates and the top-level
// window under it.
type Pointer struct {
	X, Y  int
	Child xproto.Window
}

// Border describes how a window border is painted. Inner is the width of the
// stripe drawn in InnerColor next to the window; zero paints a plain border.
type Border struct {
	Width      int
	Inner      int
	Color      uint32
	InnerColor uint32
}
