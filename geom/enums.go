package geom

import (
	"fmt"
	"strings"
)

// Position names a spot on a monitor. The numeric values are part of the
// wire protocol.
type Position uint32

const (
	BottomLeft Position = iota
	BottomRight
	TopLeft
	TopRight
	Center
	Left
	Bottom
	Top
	Right
	All
)

var positionNames = map[string]Position{
	"bottomleft":  BottomLeft,
	"bottomright": BottomRight,
	"topleft":     TopLeft,
	"topright":    TopRight,
	"middle":      Center,
	"center":      Center,
	"left":        Left,
	"bottom":      Bottom,
	"top":         Top,
	"right":       Right,
	"all":         All,
}

// ParsePosition resolves a position name, case-insensitively.
func ParsePosition(s string) (Position, error) {
	if p, ok := positionNames[strings.ToLower(s)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func (p Position) Valid() bool { return p <= All }

func (p Position) String() string {
	switch p {
	case BottomLeft:
		return "bottomleft"
	case BottomRight:
		return "bottomright"
	case TopLeft:
		return "topleft"
	case TopRight:
		return "topright"
	case Center:
		return "middle"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Right:
		return "right"
	case All:
		return "all"
	}
	return fmt.Sprintf("position(%d)", uint32(p))
}

func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Direction is a compass direction used by cardinal focus.
type Direction uint32

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = map[string]Direction{
	"north": North,
	"up":    North,
	"south": South,
	"down":  South,
	"east":  East,
	"right": East,
	"west":  West,
	"left":  West,
}

// ParseDirection accepts compass names and up/down/left/right.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) Valid() bool { return d <= West }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint32(d))
}
