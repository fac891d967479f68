package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/ipc"
	"github.com/BobdaProgrammer/chefwm/layout"
)

// command runs one command message. data is the five payload words.
func (wm *WindowManager) command(data []uint32) {
	if len(data) < len(ipc.Words{}) {
		slog.Warn("dropping short command", "words", len(data))
		return
	}
	cmd := ipc.Command(data[0])
	args := data[1:5]
	if !cmd.Valid() {
		slog.Warn("dropping unknown command", "code", data[0])
		return
	}
	slog.Debug("command", "command", cmd, "args", args)

	switch cmd {
	case ipc.WindowCycle:
		wm.cycle(true, false)
		return
	case ipc.WindowRevCycle:
		wm.cycle(false, false)
		return
	case ipc.WindowCycleInGroup:
		wm.cycle(true, true)
		return
	case ipc.WindowRevCycleInGroup:
		wm.cycle(false, true)
		return
	case ipc.WindowCardinalFocus:
		dir := geom.Direction(args[0])
		if !dir.Valid() {
			slog.Warn("dropping cardinal focus", "direction", args[0])
			return
		}
		wm.cardinal(dir)
		return
	case ipc.WindowFocus:
		wm.setFocused(wm.reg.find(xproto.Window(args[0])))
		return
	case ipc.GroupRemoveAllWindows, ipc.GroupActivate, ipc.GroupDeactivate,
		ipc.GroupToggle, ipc.GroupActivateSpecific:
		g, ok := wm.groupArg(args[0])
		if !ok {
			return
		}
		switch cmd {
		case ipc.GroupRemoveAllWindows:
			wm.groupRemoveAll(g)
		case ipc.GroupActivate:
			wm.groupActivate(g)
		case ipc.GroupDeactivate:
			wm.groupDeactivate(g)
		case ipc.GroupToggle:
			wm.groupToggle(g)
		default:
			wm.groupActivateOnly(g)
		}
		return
	case ipc.WMQuit:
		wm.halt = true
		wm.exitCode = int(args[0])
		return
	case ipc.WMConfig:
		wm.configure(args)
		return
	}

	// everything below works on the focused window
	w := wm.focused
	if w == nil {
		slog.Debug("no focused window", "command", cmd)
		return
	}

	switch cmd {
	case ipc.WindowMove:
		wm.unspecial(w)
		dx, dy := ipc.Offset(args)
		wm.teleport(w, w.Geom.X+dx, w.Geom.Y+dy)
		wm.warp(w)
	case ipc.WindowMoveAbsolute:
		wm.unspecial(w)
		x, y := ipc.Offset(args)
		wm.teleport(w, x, y)
		wm.warp(w)
	case ipc.WindowResize:
		wm.unspecial(w)
		dw, dh := ipc.Offset(args)
		width, height := layout.ResizeBy(w.Geom.Width, w.Geom.Height, dw, dh, w.Hints, wm.conf.ResizeHints)
		wm.resize(w, width, height)
		wm.warp(w)
	case ipc.WindowResizeAbsolute:
		wm.unspecial(w)
		width, height := layout.ApplyMin(int(args[0]), int(args[1]), w.Hints)
		wm.resize(w, width, height)
		wm.warp(w)
	case ipc.WindowMaximize:
		if w.Mode == Maximized {
			wm.reset(w)
		} else {
			wm.maximize(w)
		}
		wm.setFocused(w)
	case ipc.WindowUnmaximize:
		wm.unspecial(w)
	case ipc.WindowHorMaximize:
		if w.Mode == HMaximized {
			wm.reset(w)
		} else {
			wm.hmaximize(w)
		}
		wm.setFocused(w)
	case ipc.WindowVerMaximize:
		if w.Mode == VMaximized {
			wm.reset(w)
		} else {
			wm.vmaximize(w)
		}
		wm.setFocused(w)
	case ipc.WindowMonocle:
		if w.Mode == Monocle {
			wm.reset(w)
		} else {
			wm.monocle(w)
		}
		wm.setFocused(w)
	case ipc.WindowClose:
		wm.closeWindow(w)
	case ipc.WindowPutInGrid:
		cols, rows := ipc.Unpack16(args[0])
		col, row := ipc.Unpack16(args[1])
		spanW, spanH := ipc.Unpack16(args[2])
		g := geom.GridPlacement{
			Columns: int(cols), Rows: int(rows),
			Col: int(col), Row: int(row),
			SpanW: int(spanW), SpanH: int(spanH),
		}
		if err := wm.grid(w, g); err != nil {
			slog.Warn("dropping grid placement", "placement", g, "error", err)
		}
	case ipc.WindowMoveInGrid:
		dx, dy := ipc.Offset(args)
		wm.moveInGrid(w, dx, dy)
	case ipc.WindowResizeInGrid:
		dw, dh := ipc.Offset(args)
		wm.resizeInGrid(w, dw, dh)
	case ipc.WindowSnap:
		pos := geom.Position(args[0])
		if !pos.Valid() {
			slog.Warn("dropping snap", "position", args[0])
			return
		}
		wm.snap(w, pos)
	case ipc.WindowFocusLast:
		wm.focusLastBest(w)
	case ipc.GroupAddWindow:
		if g, ok := wm.groupArg(args[0]); ok {
			wm.groupAdd(w, g)
		}
	case ipc.GroupRemoveWindow:
		wm.groupRemove(w)
	}
}

// groupArg turns a 1-based group number from the wire into an index.
func (wm *WindowManager) groupArg(v uint32) (int, bool) {
	if v == 0 || int(v) > wm.conf.Groups {
		slog.Warn("dropping command for invalid group", "group", v, "groups", wm.conf.Groups)
		return 0, false
	}
	return int(v) - 1, true
}

// configure applies a wm_config command. The change is validated as a whole
// and dropped when the result would be an invalid configuration.
func (wm *WindowManager) configure(args []uint32) {
	key := ipc.ConfigKey(args[0])
	v := args[1]
	next := wm.conf
	borders, buttons, groups := false, false, false

	switch key {
	case ipc.ConfigBorderWidth:
		next.BorderWidth = int(v)
		borders = true
	case ipc.ConfigColorFocused:
		next.FocusColor = config.Color(v)
		borders = true
	case ipc.ConfigColorUnfocused:
		next.UnfocusColor = config.Color(v)
		borders = true
	case ipc.ConfigInternalBorderWidth:
		next.InternalBorderWidth = int(v)
		borders = true
	case ipc.ConfigInternalColorFocused:
		next.InternalFocusColor = config.Color(v)
		borders = true
	case ipc.ConfigInternalColorUnfocused:
		next.InternalUnfocusColor = config.Color(v)
		borders = true
	case ipc.ConfigGapWidth:
		gap := int(args[2])
		switch geom.Position(v) {
		case geom.Left:
			next.Gaps.Left = gap
		case geom.Bottom:
			next.Gaps.Down = gap
		case geom.Top:
			next.Gaps.Up = gap
		case geom.Right:
			next.Gaps.Right = gap
		case geom.All:
			next.Gaps = geom.Gaps{Left: gap, Down: gap, Up: gap, Right: gap}
		default:
			slog.Warn("dropping gap change", "edge", v)
			return
		}
	case ipc.ConfigGridGapWidth:
		next.GridGap = int(v)
	case ipc.ConfigCursorPosition:
		next.CursorPosition = geom.Position(v)
	case ipc.ConfigGroupsNr:
		next.Groups = int(v)
		groups = true
	case ipc.ConfigEnableSloppyFocus:
		next.SloppyFocus = v != 0
	case ipc.ConfigEnableResizeHints:
		next.ResizeHints = v != 0
	case ipc.ConfigStickyWindows:
		next.StickyWindows = v != 0
	case ipc.ConfigEnableBorders:
		next.Borders = v != 0
	case ipc.ConfigEnableLastWindowFocusing:
		next.LastWindowFocusing = v != 0
	case ipc.ConfigApplySettings:
		next.ApplySettings = v != 0
	case ipc.ConfigReplayClickOnFocus:
		next.ReplayClickOnFocus = v != 0
	case ipc.ConfigPointerActions:
		for i := range next.PointerActions {
			next.PointerActions[i] = config.PointerAction(args[1+i])
		}
		buttons = true
	case ipc.ConfigPointerModifier:
		if v&^uint32(config.ModMask) != 0 {
			slog.Warn("dropping pointer modifier change", "modifier", v)
			return
		}
		next.PointerModifier = config.Modifier(v)
		buttons = true
	case ipc.ConfigClickToFocus:
		switch {
		case v == 0xFFFFFFFF:
			next.ClickToFocus = config.ButtonNone
		case v <= uint32(config.ButtonRight):
			next.ClickToFocus = config.ClickButton(v)
		default:
			slog.Warn("dropping click to focus change", "button", v)
			return
		}
		buttons = true
	default:
		slog.Warn("dropping unknown config key", "key", args[0])
		return
	}

	if err := next.Validate(); err != nil {
		slog.Warn("dropping config change", "key", key, "error", err)
		return
	}
	if groups {
		wm.setGroupCount(next.Groups)
	}
	wm.conf = next
	slog.Debug("config changed", "key", key)

	if borders {
		wm.refreshBorders()
	}
	if buttons {
		wm.regrabButtons()
	}
}
