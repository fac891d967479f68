package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BobdaProgrammer/chefwm/geom"
)

type buttonGrab struct {
	button xproto.Button
	mods   uint16
}

// fakeDisplay is an in-memory X server. Queries answer from the maps below
// and requests are recorded so tests can look at what the engine sent.
type fakeDisplay struct {
	root          xproto.Window
	width, height int
	atoms         map[string]xproto.Atom
	redirectErr   error
	events        []xgb.Event

	children   []xproto.Window
	outputs    []geom.Output
	attrs      map[xproto.Window]Attributes
	geoms      map[xproto.Window]geom.Rect
	hints      map[xproto.Window]geom.Hints
	decorative map[xproto.Window]bool
	pointer    Pointer
	noGrab     bool

	managed      map[xproto.Window]bool
	mapped       map[xproto.Window]bool
	raised       []xproto.Window
	focus        xproto.Window
	active       xproto.Window
	borderWidth  map[xproto.Window]int
	borders      map[xproto.Window]Border
	states       map[xproto.Window]LayoutMode
	desktops     map[xproto.Window]uint32
	current      uint32
	desktopCount int
	clientList   []xproto.Window
	status       map[xproto.Window][]byte
	groups       []uint32
	closed       []xproto.Window
	grabs        map[xproto.Window][]buttonGrab
	configured   []xproto.ConfigureRequestEvent
	warps        []xproto.Window
	replays      []bool
	grabbed      bool
	disconnected bool
}

func newFakeDisplay(width, height int) *fakeDisplay {
	return &fakeDisplay{
		root:        1,
		width:       width,
		height:      height,
		atoms:       map[string]xproto.Atom{},
		outputs:     []geom.Output{{ID: 100, Name: "eDP-1", Enabled: true, Rect: geom.Rect{Width: width, Height: height}}},
		attrs:       map[xproto.Window]Attributes{},
		geoms:       map[xproto.Window]geom.Rect{},
		hints:       map[xproto.Window]geom.Hints{},
		decorative:  map[xproto.Window]bool{},
		managed:     map[xproto.Window]bool{},
		mapped:      map[xproto.Window]bool{},
		borderWidth: map[xproto.Window]int{},
		borders:     map[xproto.Window]Border{},
		states:      map[xproto.Window]LayoutMode{},
		desktops:    map[xproto.Window]uint32{},
		status:      map[xproto.Window][]byte{},
		grabs:       map[xproto.Window][]buttonGrab{},
	}
}

// addWindow creates a top-level window that is not mapped yet.
func (d *fakeDisplay) addWindow(id xproto.Window, r geom.Rect) {
	d.children = append(d.children, id)
	d.geoms[id] = r
}

func (d *fakeDisplay) Root() xproto.Window { return d.root }
func (d *fakeDisplay) ScreenSize() (int, int) { return d.width, d.height }
func (d *fakeDisplay) Redirect() error { return d.redirectErr }
func (d *fakeDisplay) Announce(string, int) error { return nil }
func (d *fakeDisplay) Flush() {}
func (d *fakeDisplay) Disconnect() { d.disconnected = true }
func (d *fakeDisplay) Decorative(w xproto.Window) bool { return d.decorative[w] }
func (d *fakeDisplay) LockMask() uint16 { return xproto.ModMask2 | xproto.ModMaskLock }

func (d *fakeDisplay) Atom(name string) xproto.Atom {
	if a, ok := d.atoms[name]; ok {
		return a
	}
	a := xproto.Atom(len(d.atoms) + 300)
	d.atoms[name] = a
	return a
}

func (d *fakeDisplay) NextEvent() (xgb.Event, error) {
	if len(d.events) == 0 {
		return nil, nil
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, nil
}

func (d *fakeDisplay) Children() ([]xproto.Window, bool) { return d.children, true }

func (d *fakeDisplay) Outputs() ([]geom.Output, bool) { return d.outputs, len(d.outputs) > 0 }

func (d *fakeDisplay) Attributes(w xproto.Window) (Attributes, bool) {
	a, ok := d.attrs[w]
	return a, ok
}

func (d *fakeDisplay) Geometry(w xproto.Window) (geom.Rect, bool) {
	r, ok := d.geoms[w]
	return r, ok
}

func (d *fakeDisplay) NormalHints(w xproto.Window) (geom.Hints, bool) {
	h, ok := d.hints[w]
	return h, ok
}

func (d *fakeDisplay) Pointer() (Pointer, bool) { return d.pointer, true }

func (d *fakeDisplay) InputFocus() (xproto.Window, bool) { return d.focus, true }

func (d *fakeDisplay) Manage(w xproto.Window) { d.managed[w] = true }
func (d *fakeDisplay) Map(w xproto.Window) { d.mapped[w] = true }
func (d *fakeDisplay) Unmap(w xproto.Window) { d.mapped[w] = false }
func (d *fakeDisplay) Raise(w xproto.Window) { d.raised = append(d.raised, w) }

func (d *fakeDisplay) Move(w xproto.Window, x, y int) {
	r := d.geoms[w]
	r.X, r.Y = x, y
	d.geoms[w] = r
}

func (d *fakeDisplay) Resize(w xproto.Window, width, height int) {
	r := d.geoms[w]
	r.Width, r.Height = width, height
	d.geoms[w] = r
}

func (d *fakeDisplay) SetBorderWidth(w xproto.Window, width int) { d.borderWidth[w] = width }

func (d *fakeDisplay) PaintBorder(w xproto.Window, _, _ int, b Border) { d.borders[w] = b }

func (d *fakeDisplay) Restack(xproto.Window, byte) {}

func (d *fakeDisplay) Configure(ev xproto.ConfigureRequestEvent) {
	d.configured = append(d.configured, ev)
}

func (d *fakeDisplay) Circulate(xproto.Window, byte) {}

func (d *fakeDisplay) Focus(w xproto.Window) { d.focus = w }
func (d *fakeDisplay) FocusRoot() { d.focus = d.root }

func (d *fakeDisplay) Warp(w xproto.Window, _, _ int) { d.warps = append(d.warps, w) }

func (d *fakeDisplay) CloseWindow(w xproto.Window) { d.closed = append(d.closed, w) }

func (d *fakeDisplay) GrabButton(w xproto.Window, b xproto.Button, mods uint16) {
	d.grabs[w] = append(d.grabs[w], buttonGrab{b, mods})
}

func (d *fakeDisplay) UngrabButtons(w xproto.Window) { delete(d.grabs, w) }

func (d *fakeDisplay) GrabPointer() bool {
	if d.noGrab {
		return false
	}
	d.grabbed = true
	return true
}

func (d *fakeDisplay) UngrabPointer() { d.grabbed = false }

func (d *fakeDisplay) AllowEvents(replay bool, _ xproto.Timestamp) {
	d.replays = append(d.replays, replay)
}

func (d *fakeDisplay) SetActiveWindow(w xproto.Window) { d.active = w }
func (d *fakeDisplay) SetClientList(ws []xproto.Window) { d.clientList = ws }
func (d *fakeDisplay) SetDesktop(w xproto.Window, v uint32) { d.desktops[w] = v }
func (d *fakeDisplay) SetCurrentDesktop(v uint32) { d.current = v }
func (d *fakeDisplay) SetDesktopCount(n int) { d.desktopCount = n }
func (d *fakeDisplay) SetActiveGroups(groups []uint32) { d.groups = groups }

func (d *fakeDisplay) SetWindowState(w xproto.Window, mode LayoutMode) { d.states[w] = mode }

func (d *fakeDisplay) SetStatus(w xproto.Window, status []byte) { d.status[w] = status }
