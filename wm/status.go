package wm

import (
	"encoding/json"
	"log/slog"

	"github.com/BobdaProgrammer/chefwm/ipc"
)

// status describes w the way chefc reads it back.
func status(w *Window) ipc.Status {
	return ipc.Status{
		Window: ipc.WindowID(uint32(w.ID)),
		Geom: ipc.StatusGeom{
			X:         w.Geom.X,
			Y:         w.Geom.Y,
			Width:     w.Geom.Width,
			Height:    w.Geom.Height,
			SetByUser: w.Geom.SetByUser,
		},
		State:     w.Mode.String(),
		MinWidth:  w.Hints.MinWidth,
		MinHeight: w.Hints.MinHeight,
		MaxWidth:  w.Hints.MaxWidth,
		MaxHeight: w.Hints.MaxHeight,
		WidthInc:  w.Hints.WidthInc,
		HeightInc: w.Hints.HeightInc,
		Mapped:    w.Mapped,
		Group:     w.Group,
	}
}

// publish refreshes the status property of w.
func (wm *WindowManager) publish(w *Window) {
	b, err := json.Marshal(status(w))
	if err != nil {
		slog.Error("Couldn't encode window status", "window", w.ID, "error", err)
		return
	}
	wm.display.SetStatus(w.ID, b)
}
