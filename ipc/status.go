package ipc

import (
	"encoding/json"
	"fmt"
)

// Status is the JSON document stored in StatusAtom on every managed window.
// Field names and order are the documented introspection surface.
type Status struct {
	Window    string     `json:"window"`
	Geom      StatusGeom `json:"geom"`
	State     string     `json:"state"`
	MinWidth  int        `json:"min_width"`
	MinHeight int        `json:"min_height"`
	MaxWidth  int        `json:"max_width"`
	MaxHeight int        `json:"max_height"`
	WidthInc  int        `json:"width_inc"`
	HeightInc int        `json:"height_inc"`
	Mapped    bool       `json:"mapped"`
	Group     int        `json:"group"`
}

type StatusGeom struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	SetByUser bool `json:"set_by_user"`
}

// WindowID formats a window id the way Status does.
func WindowID(id uint32) string { return fmt.Sprintf("0x%08x", id) }

// ParseStatus decodes a status property value.
func ParseStatus(b []byte) (Status, error) {
	var s Status
	if err := json.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("%w: status: %v", ErrMalformed, err)
	}
	return s, nil
}
