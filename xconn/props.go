package xconn

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/ipc"
	"github.com/BobdaProgrammer/chefwm/wm"
)

var supported = []string{
	"_NET_SUPPORTED",
	"_NET_WM_DESKTOP",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_CURRENT_DESKTOP",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLOSE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CLIENT_LIST_STACKING",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_MAXIMIZED_VERT",
	"_NET_WM_STATE_MAXIMIZED_HORZ",
	"_NET_WM_NAME",
	"_NET_WM_ICON_NAME",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_PID",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_DESKTOP_VIEWPORT",
}

// Announce publishes the root window properties EWMH pagers and panels look
// for.
func (c *Conn) Announce(name string, desktops int) error {
	return errors.Join(
		ewmh.SupportedSet(c.X, supported),
		ewmh.SupportingWmCheckSet(c.X, c.root, c.root),
		ewmh.WmNameSet(c.X, c.root, name),
		ewmh.WmPidSet(c.X, c.root, uint(os.Getpid())),
		ewmh.CurrentDesktopSet(c.X, 0),
		ewmh.NumberOfDesktopsSet(c.X, uint(desktops)),
		c.setViewports(desktops),
	)
}

func (c *Conn) setViewports(desktops int) error {
	return ewmh.DesktopViewportSet(c.X, make([]ewmh.DesktopViewport, desktops))
}

func (c *Conn) SetActiveWindow(w xproto.Window) {
	logErr("active window", ewmh.ActiveWindowSet(c.X, w))
}

func (c *Conn) SetClientList(ws []xproto.Window) {
	logErr("client list", ewmh.ClientListSet(c.X, ws))
	logErr("stacking client list", ewmh.ClientListStackingSet(c.X, ws))
}

func (c *Conn) SetDesktop(w xproto.Window, desktop uint32) {
	logErr("window desktop", ewmh.WmDesktopSet(c.X, w, uint(desktop)))
}

func (c *Conn) SetCurrentDesktop(desktop uint32) {
	logErr("current desktop", ewmh.CurrentDesktopSet(c.X, uint(desktop)))
}

func (c *Conn) SetDesktopCount(n int) {
	logErr("number of desktops", ewmh.NumberOfDesktopsSet(c.X, uint(n)))
	logErr("desktop viewport", c.setViewports(n))
}

// windowState maps a layout mode to its _NET_WM_STATE atoms.
func windowState(mode wm.LayoutMode) []string {
	switch mode {
	case wm.Maximized:
		return []string{"_NET_WM_STATE_FULLSCREEN"}
	case wm.HMaximized:
		return []string{"_NET_WM_STATE_MAXIMIZED_HORZ"}
	case wm.VMaximized:
		return []string{"_NET_WM_STATE_MAXIMIZED_VERT"}
	}
	return []string{}
}

func (c *Conn) SetWindowState(w xproto.Window, mode wm.LayoutMode) {
	logErr("window state", ewmh.WmStateSet(c.X, w, windowState(mode)))
}

func (c *Conn) SetStatus(w xproto.Window, status []byte) {
	logErr("window status", xprop.ChangeProp(c.X, w, 8, ipc.StatusAtom, "UTF8_STRING", status))
}

func (c *Conn) SetActiveGroups(groups []uint32) {
	data := make([]uint, len(groups))
	for i, g := range groups {
		data[i] = uint(g)
	}
	logErr("active groups", xprop.ChangeProp32(c.X, c.root, ipc.ActiveGroupsAtom, "CARDINAL", data...))
}

// SendCommand delivers one command message to the running window manager.
func (c *Conn) SendCommand(words ipc.Words) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: c.root,
		Type:   c.Atom(ipc.CommandAtom),
		Data:   xproto.ClientMessageDataUnionData32New(words[:]),
	}
	err := xproto.SendEventChecked(c.conn, false, c.root,
		xproto.EventMaskSubstructureRedirect, string(ev.Bytes())).Check()
	if err != nil {
		return fmt.Errorf("couldn't send command: %w", err)
	}
	return nil
}

// Statuses reads the status property of every managed window, in client
// list order.
func (c *Conn) Statuses() ([]ipc.Status, error) {
	clients, err := ewmh.ClientListGet(c.X)
	if err != nil {
		return nil, fmt.Errorf("couldn't read client list: %w", err)
	}

	var out []ipc.Status
	for _, w := range clients {
		raw, err := xprop.PropValStr(xprop.GetProperty(c.X, w, ipc.StatusAtom))
		if err != nil {
			continue
		}
		s, err := ipc.ParseStatus([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ActiveGroups reads the 1-based groups in use.
func (c *Conn) ActiveGroups() ([]uint32, error) {
	vals, err := xprop.PropValNums(xprop.GetProperty(c.X, c.root, ipc.ActiveGroupsAtom))
	if err != nil {
		return nil, fmt.Errorf("couldn't read active groups: %w", err)
	}
	groups := make([]uint32, len(vals))
	for i, v := range vals {
		groups[i] = uint32(v)
	}
	return groups, nil
}

func rectangles(rs []geom.Rect) []xproto.Rectangle {
	out := make([]xproto.Rectangle, len(rs))
	for i, r := range rs {
		out[i] = xproto.Rectangle{X: int16(r.X), Y: int16(r.Y), Width: uint16(r.Width), Height: uint16(r.Height)}
	}
	return out
}
