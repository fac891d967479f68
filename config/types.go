package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 0xRRGGBB value.
type Color uint32

func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) String() string { return fmt.Sprintf("0x%06x", uint32(c)) }

// PointerAction is what a modifier+button press on a window does.
type PointerAction uint32

const (
	ActionNothing PointerAction = iota
	ActionFocus
	ActionMove
	ActionResizeCorner
	ActionResizeSide
)

var actionNames = map[string]PointerAction{
	"nothing":       ActionNothing,
	"focus":         ActionFocus,
	"move":          ActionMove,
	"resize_corner": ActionResizeCorner,
	"resize_side":   ActionResizeSide,
}

func ParsePointerAction(s string) (PointerAction, error) {
	if a, ok := actionNames[strings.ToLower(s)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown pointer action %q", s)
}

func (a PointerAction) Valid() bool { return a <= ActionResizeSide }

func (a PointerAction) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint32(a))
}

func (a *PointerAction) UnmarshalText(b []byte) error {
	v, err := ParsePointerAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Modifier is an X modifier mask.
type Modifier uint16

const (
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 2
	ModAlt   Modifier = 1 << 3 // Mod1
	ModSuper Modifier = 1 << 6 // Mod4

	// ModMask covers the core X modifiers: Shift, Lock, Control and Mod1
	// to Mod5.
	ModMask Modifier = 0xFF
)

var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"super": ModSuper,
}

func ParseModifier(s string) (Modifier, error) {
	if m, ok := modifierNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown modifier %q", s)
}

func (m *Modifier) UnmarshalText(b []byte) error {
	v, err := ParseModifier(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ClickButton selects which button focuses a window on click. ButtonAny
// matches every button and ButtonNone disables click to focus.
type ClickButton int32

const (
	ButtonNone   ClickButton = -1
	ButtonAny    ClickButton = 0
	ButtonLeft   ClickButton = 1
	ButtonMiddle ClickButton = 2
	ButtonRight  ClickButton = 3
)

var buttonNames = map[string]ClickButton{
	"none":   ButtonNone,
	"any":    ButtonAny,
	"left":   ButtonLeft,
	"middle": ButtonMiddle,
	"right":  ButtonRight,
}

func ParseClickButton(s string) (ClickButton, error) {
	if b, ok := buttonNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Matches reports whether a press of button (1..3) should focus.
func (c ClickButton) Matches(button int) bool {
	return c == ButtonAny || int(c) == button
}

func (c *ClickButton) UnmarshalText(b []byte) error {
	v, err := ParseClickButton(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
