package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/list"
)

// NoGroup marks a window that belongs to no group.
const NoGroup = -1

// allDesktops is the _NET_WM_DESKTOP value of an ungrouped window.
const allDesktops = 0xFFFFFFFF

// LayoutMode is the layout a window is in. Everything but Normal is a special
// mode that Reset undoes.
type LayoutMode uint8

const (
	Normal LayoutMode = iota
	Maximized
	HMaximized
	VMaximized
	Monocle
	Gridded
)

func (m LayoutMode) Special() bool { return m != Normal }

func (m LayoutMode) String() string {
	switch m {
	case Maximized:
		return "maxed"
	case HMaximized:
		return "hmaxed"
	case VMaximized:
		return "vmaxed"
	case Monocle:
		return "monocled"
	case Gridded:
		return "gridded"
	}
	return "normal"
}

// Window is a managed top-level window.
type Window struct {
	ID    xproto.Window
	Geom  geom.Geometry
	Mode  LayoutMode
	Grid  geom.GridPlacement // meaningful while Mode == Gridded
	Hints geom.Hints
	// Mapped is true between MapNotify and UnmapNotify.
	Mapped bool
	Group  int

	saved   geom.Rect
	monitor list.Handle
	item    list.Handle
	focus   list.Handle
}

// Monitor is one active output.
type Monitor struct {
	Output uint32
	Name   string
	geom.Rect

	item list.Handle
}
