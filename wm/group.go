package wm

import (
	"log/slog"

	"github.com/BobdaProgrammer/chefwm/config"
)

func (wm *WindowManager) validGroup(g int) bool {
	return g >= 0 && g < wm.conf.Groups
}

func (wm *WindowManager) groupAdd(w *Window, g int) {
	if w == nil || !wm.validGroup(g) {
		return
	}
	w.Group = g
	wm.inUse[g] = true
	wm.display.SetDesktop(w.ID, uint32(g))
	wm.updateGroupList()
	wm.updateCurrentDesktop(w)
	wm.publish(w)
}

func (wm *WindowManager) groupRemove(w *Window) {
	if w == nil {
		return
	}
	w.Group = NoGroup
	wm.display.SetDesktop(w.ID, allDesktops)
	wm.updateGroupList()
	wm.publish(w)
}

func (wm *WindowManager) groupRemoveAll(g int) {
	if !wm.validGroup(g) {
		return
	}
	for w := range wm.reg.windows.Values() {
		if w.Group == g {
			wm.groupRemove(w)
		}
	}
	wm.inUse[g] = false
}

// groupActivate shows and focuses every window of g.
func (wm *WindowManager) groupActivate(g int) {
	if !wm.validGroup(g) {
		return
	}
	for w := range wm.reg.windows.Values() {
		if w.Group == g {
			wm.display.Map(w.ID)
			wm.setFocused(w)
		}
	}
	wm.inUse[g] = true
	wm.lastGroup = g
	wm.updateGroupList()
}

func (wm *WindowManager) groupDeactivate(g int) {
	if !wm.validGroup(g) {
		return
	}
	for w := range wm.reg.windows.Values() {
		if w.Group == g {
			wm.display.Unmap(w.ID)
		}
	}
	wm.inUse[g] = false
	wm.updateGroupList()
}

func (wm *WindowManager) groupToggle(g int) {
	if !wm.validGroup(g) {
		return
	}
	if wm.inUse[g] {
		wm.groupDeactivate(g)
	} else {
		wm.groupActivate(g)
	}
	wm.lastGroup = g
	wm.updateGroupList()
}

// groupActivateOnly switches to g alone.
func (wm *WindowManager) groupActivateOnly(g int) {
	if !wm.validGroup(g) {
		return
	}
	for i := range wm.conf.Groups {
		if i == g {
			wm.groupActivate(i)
		} else {
			wm.groupDeactivate(i)
		}
	}
	wm.updateGroupList()
}

// setGroupCount changes the number of groups. Windows of groups that no
// longer exist are shown and become ungrouped.
func (wm *WindowManager) setGroupCount(n int) {
	if n < 1 || n > config.MaxGroups {
		slog.Warn("rejecting group count", "groups", n)
		return
	}

	inUse := make([]bool, n)
	copy(inUse, wm.inUse)

	if n < wm.conf.Groups {
		for w := range wm.reg.windows.Values() {
			if w.Group != NoGroup && w.Group >= n {
				wm.groupActivate(w.Group)
				w.Group = NoGroup
				wm.display.SetDesktop(w.ID, allDesktops)
				wm.publish(w)
			}
		}
	}

	wm.conf.Groups = n
	wm.inUse = inUse
	if wm.lastGroup >= n {
		wm.lastGroup = 0
	}
	wm.display.SetDesktopCount(n)
	wm.updateGroupList()
}

// updateGroupList drops the in-use mark of empty groups and publishes the
// 1-based list of groups in use, or a single 0 when there are none.
func (wm *WindowManager) updateGroupList() {
	populated := make([]bool, len(wm.inUse))
	for w := range wm.reg.windows.Values() {
		if w.Group >= 0 && w.Group < len(populated) {
			populated[w.Group] = true
		}
	}

	var groups []uint32
	for i := range wm.inUse {
		if !populated[i] {
			wm.inUse[i] = false
		}
		if wm.inUse[i] {
			groups = append(groups, uint32(i+1))
		}
	}
	if len(groups) == 0 {
		groups = []uint32{0}
	}
	wm.display.SetActiveGroups(groups)
}

func (wm *WindowManager) updateCurrentDesktop(w *Window) {
	if w != nil && w.Group != NoGroup {
		wm.display.SetCurrentDesktop(uint32(w.Group))
	}
}
