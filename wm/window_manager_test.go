package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/ipc"
	"github.com/BobdaProgrammer/chefwm/layout"
)

var _ Display = (*fakeDisplay)(nil)

var screen = geom.Rect{Width: 1920, Height: 1080}

func setup(t *testing.T) (*WindowManager, *fakeDisplay) {
	t.Helper()
	d := newFakeDisplay(screen.Width, screen.Height)
	d.pointer = Pointer{X: 960, Y: 540}
	wm, err := Create(d, config.Default())
	require.NoError(t, err)
	return wm, d
}

// mapWindow runs a window through the map request and map notify a client
// would cause.
func mapWindow(t *testing.T, wm *WindowManager, d *fakeDisplay, id xproto.Window, r geom.Rect) *Window {
	t.Helper()
	d.addWindow(id, r)
	wm.handle(xproto.MapRequestEvent{Parent: d.root, Window: id})
	wm.handle(xproto.MapNotifyEvent{Event: d.root, Window: id})
	w := wm.Window(id)
	require.NotNil(t, w)
	return w
}

// placed maps a window that asked for its own position.
func placed(t *testing.T, wm *WindowManager, d *fakeDisplay, id xproto.Window, r geom.Rect) *Window {
	t.Helper()
	d.hints[id] = geom.Hints{WidthInc: 1, HeightInc: 1, UserPosition: true}
	return mapWindow(t, wm, d, id, r)
}

func message(d *fakeDisplay, w xproto.Window, atom string, data ...uint32) xproto.ClientMessageEvent {
	words := make([]uint32, 5)
	copy(words, data)
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   d.Atom(atom),
		Data:   xproto.ClientMessageDataUnionData32New(words),
	}
}

func send(t *testing.T, wm *WindowManager, d *fakeDisplay, args ...string) {
	t.Helper()
	words, err := ipc.Parse(args)
	require.NoError(t, err)
	wm.handle(message(d, d.root, ipc.CommandAtom, words[:]...))
}

func TestCreate(t *testing.T) {
	d := newFakeDisplay(screen.Width, screen.Height)
	d.addWindow(10, geom.Rect{X: 10, Y: 10, Width: 200, Height: 100})
	d.addWindow(11, geom.Rect{Width: 50, Height: 50})
	d.addWindow(12, geom.Rect{Width: 50, Height: 50})
	d.attrs[10] = Attributes{Viewable: true}
	d.attrs[11] = Attributes{Viewable: true, OverrideRedirect: true}
	d.attrs[12] = Attributes{}

	wm, err := Create(d, config.Default())
	require.NoError(t, err)

	assert.NotNil(t, wm.Window(10))
	assert.Nil(t, wm.Window(11))
	assert.Nil(t, wm.Window(12))
	assert.Equal(t, wm.Window(10), wm.Focused())
	assert.Equal(t, 1, wm.reg.monitors.Len())

	t.Run("other window manager", func(t *testing.T) {
		d := newFakeDisplay(screen.Width, screen.Height)
		d.redirectErr = ErrOtherWM
		_, err := Create(d, config.Default())
		assert.ErrorIs(t, err, ErrOtherWM)
	})
}

func TestMapRequest(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})

	want := geom.Rect{X: 760, Y: 390, Width: 400, Height: 300}
	assert.Equal(t, want, w.Geom.Rect)
	assert.Equal(t, want, d.geoms[10])
	assert.True(t, w.Mapped)
	assert.True(t, d.mapped[10])
	assert.True(t, d.managed[10])
	assert.Equal(t, w, wm.Focused())
	assert.Equal(t, xproto.Window(10), d.focus)
	assert.Equal(t, xproto.Window(10), d.active)
	assert.Equal(t, []xproto.Window{10}, d.clientList)
	assert.Equal(t, uint32(allDesktops), d.desktops[10])
	assert.Equal(t, uint32(config.Default().FocusColor), d.borders[10].Color)
	assert.Contains(t, d.grabs[10], buttonGrab{xproto.ButtonIndex1, 0})
	assert.Contains(t, d.grabs[10], buttonGrab{xproto.ButtonIndex1, uint16(config.ModSuper)})

	st, err := ipc.ParseStatus(d.status[10])
	require.NoError(t, err)
	assert.Equal(t, "0x0000000a", st.Window)
	assert.Equal(t, "normal", st.State)
	assert.Equal(t, 760, st.Geom.X)
	assert.True(t, st.Mapped)
	assert.Equal(t, NoGroup, st.Group)
}

func TestMapRequestUserPosition(t *testing.T) {
	wm, d := setup(t)
	w := placed(t, wm, d, 10, geom.Rect{X: 100, Y: 120, Width: 400, Height: 300})
	assert.Equal(t, geom.Rect{X: 100, Y: 120, Width: 400, Height: 300}, w.Geom.Rect)
	assert.True(t, w.Geom.SetByUser)
}

func TestMapRequestDecorative(t *testing.T) {
	wm, d := setup(t)
	d.decorative[10] = true
	d.addWindow(10, geom.Rect{Width: 1920, Height: 30})
	wm.handle(xproto.MapRequestEvent{Parent: d.root, Window: 10})

	assert.True(t, d.mapped[10])
	assert.Nil(t, wm.Window(10))
	assert.False(t, d.managed[10])
}

func TestFullSizeWindowIsMaximized(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, screen)

	assert.Equal(t, Maximized, w.Mode)
	assert.Equal(t, screen, w.Geom.Rect)
	assert.Equal(t, 0, d.borderWidth[10])
	assert.Equal(t, Maximized, d.states[10])

	send(t, wm, d, "window_maximize")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, geom.Rect{Width: 1910, Height: 1070}, w.Geom.Rect)
}

func TestToggleModes(t *testing.T) {
	tests := []struct {
		command string
		mode    LayoutMode
		want    geom.Rect
	}{
		{"window_maximize", Maximized, screen},
		{"window_hor_maximize", HMaximized, geom.Rect{X: 0, Y: 390, Width: 1910, Height: 300}},
		{"window_ver_maximize", VMaximized, geom.Rect{X: 760, Y: 0, Width: 400, Height: 1070}},
		{"window_monocle", Monocle, geom.Rect{Width: 1910, Height: 1070}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			wm, d := setup(t)
			w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
			orig := w.Geom.Rect

			send(t, wm, d, tt.command)
			assert.Equal(t, tt.mode, w.Mode)
			assert.Equal(t, tt.want, w.Geom.Rect)
			assert.Equal(t, tt.mode, d.states[10])

			send(t, wm, d, tt.command)
			assert.Equal(t, Normal, w.Mode)
			assert.Equal(t, orig, w.Geom.Rect)
			assert.Equal(t, orig, d.geoms[10])
			assert.Equal(t, Normal, d.states[10])
		})
	}
}

func TestMaximizeAtTargetKeepsSavedGeometry(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	orig := w.Geom.Rect
	target := geom.Rect{X: 0, Y: 390, Width: 1910, Height: 300}

	send(t, wm, d, "window_hor_maximize")
	send(t, wm, d, "window_hor_maximize")
	require.Equal(t, orig, w.Geom.Rect)

	send(t, wm, d, "window_resize_absolute", "1910", "300")
	send(t, wm, d, "window_move_absolute", "0", "390")
	require.Equal(t, target, w.Geom.Rect)

	send(t, wm, d, "window_hor_maximize")
	assert.Equal(t, HMaximized, w.Mode)
	assert.Equal(t, target, w.Geom.Rect)

	send(t, wm, d, "window_hor_maximize")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, orig, w.Geom.Rect)
}

func TestMaximizeAtTargetWithNothingSaved(t *testing.T) {
	wm, d := setup(t)
	target := geom.Rect{X: 0, Y: 390, Width: 1910, Height: 300}
	w := placed(t, wm, d, 10, target)
	require.Equal(t, target, w.Geom.Rect)

	send(t, wm, d, "window_hor_maximize")
	send(t, wm, d, "window_hor_maximize")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, target, w.Geom.Rect)
}

func TestModesAreExclusive(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	orig := w.Geom.Rect

	send(t, wm, d, "window_maximize")
	send(t, wm, d, "window_hor_maximize")
	assert.Equal(t, HMaximized, w.Mode)
	assert.Equal(t, orig.Y, w.Geom.Y)
	assert.Equal(t, orig.Height, w.Geom.Height)

	send(t, wm, d, "window_unmaximize")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, orig, w.Geom.Rect)

	// a manual move leaves the special mode first
	send(t, wm, d, "window_monocle")
	send(t, wm, d, "window_move", "10", "-20")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, geom.Rect{X: 770, Y: 370, Width: 400, Height: 300}, w.Geom.Rect)
}

func TestMoveAndResize(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})

	send(t, wm, d, "window_move", "-10", "20")
	assert.Equal(t, geom.Rect{X: 750, Y: 410, Width: 400, Height: 300}, w.Geom.Rect)

	send(t, wm, d, "window_move_absolute", "5", "6")
	assert.Equal(t, geom.Rect{X: 5, Y: 6, Width: 400, Height: 300}, w.Geom.Rect)

	send(t, wm, d, "window_resize", "-100", "50")
	assert.Equal(t, geom.Rect{X: 5, Y: 6, Width: 300, Height: 350}, w.Geom.Rect)

	send(t, wm, d, "window_resize", "-500", "0")
	assert.Equal(t, 300, w.Geom.Width, "a resize down to nothing is ignored")

	send(t, wm, d, "window_resize_absolute", "640", "480")
	assert.Equal(t, geom.Rect{X: 5, Y: 6, Width: 640, Height: 480}, d.geoms[10])
	assert.NotEmpty(t, d.warps)
}

func TestGrid(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	orig := w.Geom.Rect
	p := config.Default()

	send(t, wm, d, "window_put_in_grid", "2", "2", "1", "0", "1", "1")
	g := geom.GridPlacement{Columns: 2, Rows: 2, Col: 1, Row: 0, SpanW: 1, SpanH: 1}
	want, err := layout.GridRect(screen, p.Layout(), g)
	require.NoError(t, err)
	assert.Equal(t, Gridded, w.Mode)
	assert.Equal(t, g, w.Grid)
	assert.Equal(t, want, w.Geom.Rect)

	send(t, wm, d, "window_move_in_grid", "-1", "1")
	g.Col, g.Row = 0, 1
	want, err = layout.GridRect(screen, p.Layout(), g)
	require.NoError(t, err)
	assert.Equal(t, want, w.Geom.Rect)

	send(t, wm, d, "window_resize_in_grid", "1", "1")
	assert.Equal(t, g, w.Grid, "span past the grid is ignored")

	send(t, wm, d, "window_resize_in_grid", "1", "0")
	assert.Equal(t, 2, w.Grid.SpanW)

	send(t, wm, d, "window_unmaximize")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, orig, w.Geom.Rect)

	t.Run("outside the grid", func(t *testing.T) {
		send(t, wm, d, "window_put_in_grid", "2", "2", "5", "0", "1", "1")
		assert.Equal(t, Normal, w.Mode)
		assert.Equal(t, orig, w.Geom.Rect)
	})
}

func TestSnap(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	p := config.Default()

	x, y, ok := layout.Snap(geom.BottomRight, w.Geom.Rect, screen, p.Layout())
	require.True(t, ok)
	send(t, wm, d, "window_snap", "bottomright")
	assert.Equal(t, x, w.Geom.X)
	assert.Equal(t, y, w.Geom.Y)

	send(t, wm, d, "window_snap", "all")
	assert.Equal(t, Maximized, w.Mode)
}

func TestCycle(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
	c := mapWindow(t, wm, d, 12, geom.Rect{Width: 400, Height: 300})
	require.Equal(t, c, wm.Focused())

	send(t, wm, d, "window_cycle")
	assert.Equal(t, b, wm.Focused())
	send(t, wm, d, "window_rev_cycle")
	assert.Equal(t, c, wm.Focused())

	for _, want := range []*Window{b, a, c} {
		send(t, wm, d, "window_cycle")
		assert.Equal(t, want, wm.Focused())
	}

	t.Run("skips unmapped windows", func(t *testing.T) {
		wm.handle(xproto.UnmapNotifyEvent{Event: d.root, Window: 11})
		send(t, wm, d, "window_cycle")
		assert.Equal(t, a, wm.Focused())
	})

	t.Run("in group", func(t *testing.T) {
		wm.groupAdd(a, 0)
		wm.groupAdd(c, 0)
		send(t, wm, d, "window_cycle_in_group")
		assert.Equal(t, c, wm.Focused())
		send(t, wm, d, "window_rev_cycle_in_group")
		assert.Equal(t, a, wm.Focused())
	})
}

func TestCardinalFocus(t *testing.T) {
	wm, d := setup(t)
	left := placed(t, wm, d, 10, geom.Rect{X: 100, Y: 400, Width: 300, Height: 200})
	right := placed(t, wm, d, 11, geom.Rect{X: 1000, Y: 400, Width: 300, Height: 200})
	require.Equal(t, right, wm.Focused())

	send(t, wm, d, "window_cardinal_focus", "west")
	assert.Equal(t, left, wm.Focused())
	send(t, wm, d, "window_cardinal_focus", "north")
	assert.Equal(t, left, wm.Focused())
	send(t, wm, d, "window_cardinal_focus", "east")
	assert.Equal(t, right, wm.Focused())
}

func TestFocusCommands(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})

	send(t, wm, d, "window_focus", "0xa")
	assert.Equal(t, a, wm.Focused())
	assert.Equal(t, xproto.Window(10), d.raised[len(d.raised)-1])

	send(t, wm, d, "window_focus_last")
	assert.Equal(t, b, wm.Focused())
}

func TestFocusFallsBack(t *testing.T) {
	t.Run("destroy", func(t *testing.T) {
		wm, d := setup(t)
		a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})

		wm.handle(xproto.DestroyNotifyEvent{Event: d.root, Window: 11})
		assert.Nil(t, wm.Window(11))
		assert.Equal(t, a, wm.Focused())
		assert.Equal(t, xproto.Window(10), d.focus)
	})

	t.Run("unmap", func(t *testing.T) {
		wm, d := setup(t)
		a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})

		wm.handle(xproto.UnmapNotifyEvent{Event: d.root, Window: 11})
		assert.False(t, b.Mapped)
		assert.Equal(t, a, wm.Focused())

		st, err := ipc.ParseStatus(d.status[11])
		require.NoError(t, err)
		assert.False(t, st.Mapped)
	})

	t.Run("close", func(t *testing.T) {
		wm, d := setup(t)
		a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})

		send(t, wm, d, "window_close")
		assert.Equal(t, []xproto.Window{11}, d.closed)
		assert.Equal(t, a, wm.Focused())
	})

	t.Run("disabled", func(t *testing.T) {
		wm, d := setup(t)
		mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
		send(t, wm, d, "wm_config", "enable_last_window_focusing", "false")

		wm.handle(xproto.DestroyNotifyEvent{Event: d.root, Window: 11})
		assert.Nil(t, wm.Focused())
	})
}

func TestPointerDrag(t *testing.T) {
	press := func(b xproto.Button) xproto.ButtonPressEvent {
		return xproto.ButtonPressEvent{Detail: b, State: uint16(config.ModSuper) | xproto.ModMask2}
	}

	t.Run("move", func(t *testing.T) {
		wm, d := setup(t)
		w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		d.pointer = Pointer{X: 800, Y: 400, Child: 10}

		wm.handle(press(xproto.ButtonIndex1))
		require.NotNil(t, wm.drag)
		assert.True(t, d.grabbed)
		assert.False(t, d.replays[len(d.replays)-1])

		wm.handle(xproto.MotionNotifyEvent{RootX: 850, RootY: 420})
		assert.Equal(t, geom.Rect{X: 810, Y: 410, Width: 400, Height: 300}, w.Geom.Rect)
		wm.handle(xproto.MotionNotifyEvent{RootX: 700, RootY: 400})
		assert.Equal(t, geom.Rect{X: 660, Y: 390, Width: 400, Height: 300}, w.Geom.Rect)

		wm.handle(xproto.ButtonReleaseEvent{Detail: xproto.ButtonIndex1})
		assert.Nil(t, wm.drag)
		assert.False(t, d.grabbed)

		wm.handle(xproto.MotionNotifyEvent{RootX: 0, RootY: 0})
		assert.Equal(t, 660, w.Geom.X)
	})

	t.Run("resize corner", func(t *testing.T) {
		wm, d := setup(t)
		w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		d.pointer = Pointer{X: 1100, Y: 650, Child: 10}

		wm.handle(press(xproto.ButtonIndex3))
		require.NotNil(t, wm.drag)
		assert.Equal(t, layout.HandleBottomRight, wm.drag.handle)

		wm.handle(xproto.MotionNotifyEvent{RootX: 1150, RootY: 680})
		assert.Equal(t, geom.Rect{X: 760, Y: 390, Width: 450, Height: 330}, w.Geom.Rect)
		assert.Equal(t, w.Geom.Rect, d.geoms[10])
	})

	t.Run("special windows stay put", func(t *testing.T) {
		wm, d := setup(t)
		mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		send(t, wm, d, "window_monocle")
		d.pointer = Pointer{X: 800, Y: 400, Child: 10}

		wm.handle(press(xproto.ButtonIndex1))
		assert.Nil(t, wm.drag)
		assert.False(t, d.grabbed)
	})

	t.Run("destroyed while dragging", func(t *testing.T) {
		wm, d := setup(t)
		mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
		d.pointer = Pointer{X: 800, Y: 400, Child: 10}
		wm.handle(press(xproto.ButtonIndex1))
		require.NotNil(t, wm.drag)

		wm.handle(xproto.DestroyNotifyEvent{Event: d.root, Window: 10})
		assert.Nil(t, wm.drag)
		assert.False(t, d.grabbed)
		assert.Nil(t, wm.Focused())
		assert.NotPanics(t, func() {
			wm.handle(xproto.MotionNotifyEvent{RootX: 900, RootY: 500})
		})
	})
}

func TestClickToFocus(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})

	d.pointer = Pointer{X: 800, Y: 400, Child: 10}
	wm.handle(xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1, State: xproto.ModMaskLock})
	assert.Equal(t, a, wm.Focused())
	assert.True(t, d.replays[len(d.replays)-1], "the click goes on to the client")
	assert.Nil(t, wm.drag)

	send(t, wm, d, "wm_config", "replay_click_on_focus", "false")
	send(t, wm, d, "window_focus", "0xb")
	wm.handle(xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1})
	assert.Equal(t, a, wm.Focused())
	assert.False(t, d.replays[len(d.replays)-1])
}

func TestSloppyFocus(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
	raised := len(d.raised)

	wm.handle(xproto.EnterNotifyEvent{Event: 10})
	assert.Equal(t, a, wm.Focused())
	assert.Len(t, d.raised, raised, "sloppy focus does not raise")

	send(t, wm, d, "wm_config", "enable_sloppy_focus", "false")
	wm.handle(xproto.EnterNotifyEvent{Event: 11})
	assert.Equal(t, a, wm.Focused())
}

func TestConfigureRequest(t *testing.T) {
	wm, d := setup(t)

	req := xproto.ConfigureRequestEvent{
		Window:    99,
		ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowWidth,
		X:         5,
		Width:     50,
	}
	wm.handle(req)
	assert.Equal(t, []xproto.ConfigureRequestEvent{req}, d.configured)

	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	wm.handle(xproto.ConfigureRequestEvent{
		Window:    10,
		ValueMask: xproto.ConfigWindowWidth | xproto.ConfigWindowHeight,
		Width:     500,
		Height:    200,
	})
	assert.Equal(t, geom.Rect{X: 760, Y: 390, Width: 500, Height: 200}, w.Geom.Rect)

	send(t, wm, d, "window_maximize")
	wm.handle(xproto.ConfigureRequestEvent{
		Window:    10,
		ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowWidth,
		X:         40,
		Width:     300,
	})
	assert.Equal(t, screen, w.Geom.Rect)

	send(t, wm, d, "window_maximize")
	send(t, wm, d, "window_ver_maximize")
	wm.handle(xproto.ConfigureRequestEvent{
		Window:    10,
		ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowHeight,
		X:         40,
		Height:    100,
	})
	assert.Equal(t, 40, w.Geom.X)
	assert.Equal(t, 1070, w.Geom.Height)
}

func TestNetWMState(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	orig := w.Geom.Rect
	state := func(action uint32, atom string) {
		wm.handle(message(d, 10, "_NET_WM_STATE", action, uint32(d.Atom(atom)), 0))
	}

	state(stateAdd, "_NET_WM_STATE_FULLSCREEN")
	assert.Equal(t, Maximized, w.Mode)
	state(stateRemove, "_NET_WM_STATE_FULLSCREEN")
	assert.Equal(t, Normal, w.Mode)
	assert.Equal(t, orig, w.Geom.Rect)

	state(stateToggle, "_NET_WM_STATE_MAXIMIZED_HORZ")
	assert.Equal(t, HMaximized, w.Mode)
	state(stateToggle, "_NET_WM_STATE_MAXIMIZED_HORZ")
	assert.Equal(t, Normal, w.Mode)

	state(stateAdd, "_NET_WM_STATE_MAXIMIZED_VERT")
	assert.Equal(t, VMaximized, w.Mode)
	state(stateRemove, "_NET_WM_STATE_MAXIMIZED_HORZ")
	assert.Equal(t, VMaximized, w.Mode, "removing a state the window is not in")
	state(stateRemove, "_NET_WM_STATE_MAXIMIZED_VERT")
	assert.Equal(t, orig, w.Geom.Rect)
}

func TestRootMessages(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
	wm.groupAdd(a, 0)
	wm.groupAdd(b, 1)

	wm.handle(message(d, d.root, "_NET_CURRENT_DESKTOP", 1))
	assert.False(t, d.mapped[10])
	assert.True(t, d.mapped[11])
	assert.Equal(t, []uint32{2}, d.groups)

	wm.handle(message(d, 10, "_NET_ACTIVE_WINDOW"))
	assert.Equal(t, a, wm.Focused())

	wm.handle(message(d, 11, "_NET_CLOSE_WINDOW"))
	assert.Equal(t, []xproto.Window{11}, d.closed)
}

func TestGroups(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})

	send(t, wm, d, "group_add_window", "3")
	assert.Equal(t, 2, w.Group)
	assert.Equal(t, uint32(2), d.desktops[10])
	assert.Equal(t, uint32(2), d.current)
	assert.Equal(t, []uint32{3}, d.groups)

	send(t, wm, d, "group_deactivate", "3")
	assert.False(t, d.mapped[10])
	assert.Equal(t, []uint32{0}, d.groups)

	send(t, wm, d, "group_toggle", "3")
	assert.True(t, d.mapped[10])
	assert.Equal(t, []uint32{3}, d.groups)

	for _, g := range []string{"0", "11"} {
		send(t, wm, d, "group_add_window", g)
		assert.Equal(t, 2, w.Group, "group %s is rejected", g)
	}

	send(t, wm, d, "group_remove_window")
	assert.Equal(t, NoGroup, w.Group)
	assert.Equal(t, uint32(allDesktops), d.desktops[10])

	st, err := ipc.ParseStatus(d.status[10])
	require.NoError(t, err)
	assert.Equal(t, NoGroup, st.Group)
}

func TestGroupRemoveAll(t *testing.T) {
	wm, d := setup(t)
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
	wm.groupAdd(a, 4)
	wm.groupAdd(b, 4)

	send(t, wm, d, "group_remove_all_windows", "5")
	assert.Equal(t, NoGroup, a.Group)
	assert.Equal(t, NoGroup, b.Group)
	assert.False(t, wm.inUse[4])
}

func TestStickyWindows(t *testing.T) {
	wm, d := setup(t)
	send(t, wm, d, "wm_config", "sticky_windows", "true")
	a := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	wm.groupAdd(a, 3)
	send(t, wm, d, "group_activate", "4")

	b := mapWindow(t, wm, d, 11, geom.Rect{Width: 400, Height: 300})
	assert.Equal(t, 3, b.Group)
}

func TestShrinkGroupCount(t *testing.T) {
	wm, d := setup(t)
	w := mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})
	send(t, wm, d, "group_add_window", "8")
	send(t, wm, d, "group_deactivate", "8")
	require.False(t, d.mapped[10])

	send(t, wm, d, "wm_config", "groups_nr", "3")
	assert.Equal(t, 3, wm.Config().Groups)
	assert.Len(t, wm.inUse, 3)
	assert.Equal(t, NoGroup, w.Group)
	assert.True(t, d.mapped[10])
	assert.Equal(t, uint32(allDesktops), d.desktops[10])
	assert.Equal(t, 3, d.desktopCount)

	for _, n := range []string{"0", "65536", "4294967295"} {
		send(t, wm, d, "wm_config", "groups_nr", n)
		assert.Equal(t, 3, wm.Config().Groups, n)
		assert.Len(t, wm.inUse, 3, n)
		assert.Equal(t, 3, d.desktopCount, n)
	}
}

func TestConfigCommand(t *testing.T) {
	wm, d := setup(t)
	mapWindow(t, wm, d, 10, geom.Rect{Width: 400, Height: 300})

	send(t, wm, d, "wm_config", "border_width", "8")
	assert.Equal(t, 8, wm.Config().BorderWidth)
	assert.Equal(t, 8, d.borderWidth[10])

	send(t, wm, d, "wm_config", "color_focused", "#ff0000")
	assert.Equal(t, uint32(0xff0000), d.borders[10].Color)

	send(t, wm, d, "wm_config", "internal_border_width", "20")
	assert.Equal(t, 0, wm.Config().InternalBorderWidth, "wider than the border")

	send(t, wm, d, "wm_config", "gap_width", "left", "12")
	assert.Equal(t, geom.Gaps{Left: 12}, wm.Config().Gaps)
	send(t, wm, d, "config", "gap_width", "all", "4")
	assert.Equal(t, geom.Gaps{Left: 4, Down: 4, Up: 4, Right: 4}, wm.Config().Gaps)

	send(t, wm, d, "wm_config", "cursor_position", "topleft")
	assert.Equal(t, geom.TopLeft, wm.Config().CursorPosition)

	send(t, wm, d, "wm_config", "pointer_actions", "resize_side", "nothing", "move")
	assert.Equal(t, [config.Buttons]config.PointerAction{config.ActionResizeSide, config.ActionNothing, config.ActionMove},
		wm.Config().PointerActions)

	send(t, wm, d, "wm_config", "click_to_focus", "none")
	assert.Equal(t, config.ButtonNone, wm.Config().ClickToFocus)
	assert.ElementsMatch(t, []buttonGrab{
		{xproto.ButtonIndex1, uint16(config.ModSuper)},
		{xproto.ButtonIndex3, uint16(config.ModSuper)},
	}, d.grabs[10])

	send(t, wm, d, "wm_config", "pointer_modifier", "alt")
	assert.Contains(t, d.grabs[10], buttonGrab{xproto.ButtonIndex1, uint16(config.ModAlt)})

	for _, mods := range []uint32{0x10008, 0x100} {
		wm.handle(message(d, d.root, ipc.CommandAtom,
			uint32(ipc.WMConfig), uint32(ipc.ConfigPointerModifier), mods))
		assert.Equal(t, config.ModAlt, wm.Config().PointerModifier)
	}
}

func TestMonitors(t *testing.T) {
	d := newFakeDisplay(3840, 1080)
	d.outputs = []geom.Output{
		{ID: 100, Name: "eDP-1", Enabled: true, Rect: geom.Rect{Width: 1920, Height: 1080}},
		{ID: 101, Name: "HDMI-1", Enabled: true, Rect: geom.Rect{X: 1920, Width: 1920, Height: 1080}},
		{ID: 102, Name: "HDMI-2", Enabled: true, Rect: geom.Rect{X: 1920, Width: 1280, Height: 720}},
	}
	wm, err := Create(d, config.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, wm.reg.monitors.Len(), "a clone is not a monitor of its own")

	w := placed(t, wm, d, 10, geom.Rect{X: 2000, Y: 100, Width: 400, Height: 300})
	send(t, wm, d, "window_monocle")
	assert.Equal(t, geom.Rect{X: 1920, Width: 1910, Height: 1070}, w.Geom.Rect)
	send(t, wm, d, "window_monocle")

	d.outputs[1].Enabled = false
	d.outputs[2].Enabled = false
	wm.handle(randr.ScreenChangeNotifyEvent{})
	assert.Equal(t, 1, wm.reg.monitors.Len())
	assert.Equal(t, geom.Rect{X: 1510, Y: 100, Width: 400, Height: 300}, w.Geom.Rect)

	d.outputs[0].Rect = geom.Rect{Width: 1280, Height: 720}
	send(t, wm, d, "window_maximize")
	wm.handle(randr.ScreenChangeNotifyEvent{})
	assert.Equal(t, geom.Rect{Width: 1280, Height: 720}, w.Geom.Rect)
}

func TestRun(t *testing.T) {
	wm, d := setup(t)
	words, err := ipc.Parse([]string{"wm_quit", "3"})
	require.NoError(t, err)
	d.addWindow(10, geom.Rect{Width: 400, Height: 300})
	d.events = append(d.events,
		xproto.MapRequestEvent{Parent: d.root, Window: 10},
		xproto.MapNotifyEvent{Event: d.root, Window: 10},
		message(d, d.root, ipc.CommandAtom, words[:]...),
		xproto.DestroyNotifyEvent{Event: d.root, Window: 10},
	)

	assert.Equal(t, 3, wm.Run())
	assert.NotNil(t, wm.Window(10), "events after the quit are left alone")

	wm.Close()
	assert.True(t, d.disconnected)
	assert.Equal(t, d.root, d.focus)
	assert.Empty(t, d.grabs)
	assert.Nil(t, wm.Focused())

	t.Run("lost connection", func(t *testing.T) {
		wm, _ := setup(t)
		assert.Equal(t, 1, wm.Run())
	})
}

func TestCommandWithoutFocus(t *testing.T) {
	wm, d := setup(t)
	assert.NotPanics(t, func() {
		send(t, wm, d, "window_maximize")
		send(t, wm, d, "window_cycle_in_group")
		send(t, wm, d, "window_cardinal_focus", "east")
		send(t, wm, d, "window_focus_last")
		send(t, wm, d, "group_add_window", "1")
		wm.handle(message(d, d.root, ipc.CommandAtom, 999))
	})
}
