package xconn

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
)

func (c *Conn) LockMask() uint16 {
	var m uint16
	for _, l := range c.locks {
		m |= l
	}
	return m
}

// GrabButton grabs synchronously, so a click that only focuses can be
// replayed to the client or swallowed.
func (c *Conn) GrabButton(w xproto.Window, button xproto.Button, mods uint16) {
	for _, combo := range lockCombos(c.locks) {
		err := xproto.GrabButtonChecked(
			c.conn,
			false,
			w,
			uint16(xproto.EventMaskButtonPress),
			xproto.GrabModeSync,
			xproto.GrabModeAsync,
			xproto.WindowNone,
			xproto.CursorNone,
			byte(button),
			mods|combo,
		).Check()
		if err != nil {
			slog.Debug("Couldn't grab button", "window", w, "button", button, "mods", mods|combo, "error", err)
		}
	}
}

func (c *Conn) UngrabButtons(w xproto.Window) {
	xproto.UngrabButton(c.conn, xproto.ButtonIndexAny, w, xproto.ModMaskAny)
}

// GrabPointer takes the pointer for the length of a drag.
func (c *Conn) GrabPointer() bool {
	reply, err := xproto.GrabPointer(
		c.conn,
		false,
		c.root,
		uint16(xproto.EventMaskButtonRelease|xproto.EventMaskButtonMotion),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		slog.Debug("Couldn't grab pointer", "error", err)
		return false
	}
	return reply.Status == xproto.GrabStatusSuccess
}

func (c *Conn) UngrabPointer() {
	xproto.UngrabPointer(c.conn, xproto.TimeCurrentTime)
}

// AllowEvents releases a frozen pointer, replaying the click to the client
// when replay is set.
func (c *Conn) AllowEvents(replay bool, t xproto.Timestamp) {
	mode := byte(xproto.AllowSyncPointer)
	if replay {
		mode = xproto.AllowReplayPointer
	}
	xproto.AllowEvents(c.conn, mode, t)
}

func logErr(what string, err error) {
	if err != nil {
		slog.Debug("Couldn't set property", "property", what, "error", err)
	}
}
