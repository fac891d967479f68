// Package xconn talks to the X server for chefwm and chefc. Conn implements
// wm.Display on top of xgb and xgbutil.
package xconn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/BobdaProgrammer/chefwm/wm"
)

var _ wm.Display = (*Conn)(nil)

type Conn struct {
	X      *xgbutil.XUtil
	conn   *xgb.Conn
	root   xproto.Window
	screen *xproto.ScreenInfo

	randr bool
	locks []uint16
}

// Open connects to display, or to $DISPLAY when display is empty.
func Open(display string) (*Conn, error) {
	X, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("couldn't open X display: %w", err)
	}

	keybind.Initialize(X)

	c := &Conn{
		X:      X,
		conn:   X.Conn(),
		root:   X.RootWin(),
		screen: X.Screen(),
	}
	c.locks = lockMasks(X)

	if err := randr.Init(c.conn); err != nil {
		slog.Warn("RandR unavailable, using the whole screen", "error", err)
	} else {
		c.randr = true
	}
	return c, nil
}

// lockMasks looks up the modifier bits of CapsLock, NumLock and ScrollLock.
// Keys missing from the keyboard are left out.
func lockMasks(X *xgbutil.XUtil) []uint16 {
	masks := []uint16{xproto.ModMaskLock}
	for _, key := range []string{"Num_Lock", "Scroll_Lock"} {
		for _, kc := range keybind.StrToKeycodes(X, key) {
			if m := keybind.ModGet(X, kc); m != 0 {
				masks = append(masks, m)
				break
			}
		}
	}
	return masks
}

// lockCombos returns every union of the given lock masks, the empty one
// included.
func lockCombos(masks []uint16) []uint16 {
	combos := []uint16{0}
	for _, m := range masks {
		for _, c := range combos {
			combos = append(combos, c|m)
		}
	}
	return combos
}

func (c *Conn) Root() xproto.Window { return c.root }

func (c *Conn) ScreenSize() (int, int) {
	return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
}

func (c *Conn) Atom(name string) xproto.Atom {
	a, err := xprop.Atm(c.X, name)
	if err != nil {
		slog.Error("Couldn't intern atom", "atom", name, "error", err)
		return xproto.AtomNone
	}
	return a
}

// Redirect selects substructure redirection on the root window, which only
// one client at a time may hold.
func (c *Conn) Redirect() error {
	err := xproto.ChangeWindowAttributesChecked(
		c.conn,
		c.root,
		xproto.CwEventMask,
		[]uint32{
			xproto.EventMaskSubstructureNotify |
				xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskStructureNotify,
		},
	).Check()

	var access xproto.AccessError
	if errors.As(err, &access) {
		return wm.ErrOtherWM
	}
	if err != nil {
		return fmt.Errorf("couldn't select root events: %w", err)
	}

	if c.randr {
		err = randr.SelectInputChecked(c.conn, c.root, randr.NotifyMaskScreenChange|
			randr.NotifyMaskOutputChange|randr.NotifyMaskCrtcChange).Check()
		if err != nil {
			slog.Warn("Couldn't select RandR events", "error", err)
		}
	}
	return nil
}

// Flush is a no-op: xgb writes every request as it is made.
func (c *Conn) Flush() {}

func (c *Conn) NextEvent() (xgb.Event, error) {
	ev, xerr := c.conn.WaitForEvent()
	if xerr != nil {
		return nil, xerr
	}
	return ev, nil
}

func (c *Conn) Disconnect() {
	if c.conn != nil {
		c.conn.Close()
	}
}
