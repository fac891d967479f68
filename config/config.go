// Package config holds the process-wide window manager settings: the built-in
// defaults and the optional YAML file layered on top of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/BobdaProgrammer/chefwm/geom"
	"github.com/BobdaProgrammer/chefwm/layout"
)

const (
	AppName  = "chefwm"
	FileName = "config.yaml"
	RCName   = "chefwmrc"
)

var ErrInvalid = errors.New("invalid configuration")

// Buttons is the number of pointer buttons with configurable actions:
// left, middle and right.
const Buttons = 3

// MaxGroups is the largest accepted groups_nr.
const MaxGroups = 0xFFFF

type Config struct {
	BorderWidth          int                    `koanf:"border_width"`
	InternalBorderWidth  int                    `koanf:"internal_border_width"`
	FocusColor           Color                  `koanf:"color_focused"`
	UnfocusColor         Color                  `koanf:"color_unfocused"`
	InternalFocusColor   Color                  `koanf:"internal_color_focused"`
	InternalUnfocusColor Color                  `koanf:"internal_color_unfocused"`
	Gaps                 geom.Gaps              `koanf:"gaps"`
	GridGap              int                    `koanf:"grid_gap_width"`
	CursorPosition       geom.Position          `koanf:"cursor_position"`
	Groups               int                    `koanf:"groups_nr"`
	SloppyFocus          bool                   `koanf:"enable_sloppy_focus"`
	ResizeHints          bool                   `koanf:"enable_resize_hints"`
	StickyWindows        bool                   `koanf:"sticky_windows"`
	Borders              bool                   `koanf:"enable_borders"`
	LastWindowFocusing   bool                   `koanf:"enable_last_window_focusing"`
	ApplySettings        bool                   `koanf:"apply_settings"`
	ReplayClickOnFocus   bool                   `koanf:"replay_click_on_focus"`
	PointerActions       [Buttons]PointerAction `koanf:"pointer_actions"`
	PointerModifier      Modifier               `koanf:"pointer_modifier"`
	ClickToFocus         ClickButton            `koanf:"click_to_focus"`
	Autostart            []string               `koanf:"autostart"`
}

func Default() Config {
	return Config{
		BorderWidth:          5,
		InternalBorderWidth:  0,
		FocusColor:           0x97a293,
		UnfocusColor:         0x393638,
		InternalFocusColor:   0x393638,
		InternalUnfocusColor: 0x97a293,
		CursorPosition:       geom.Center,
		Groups:               10,
		SloppyFocus:          true,
		ResizeHints:          false,
		StickyWindows:        false,
		Borders:              true,
		LastWindowFocusing:   true,
		ApplySettings:        true,
		ReplayClickOnFocus:   true,
		PointerActions:       [Buttons]PointerAction{ActionMove, ActionResizeSide, ActionResizeCorner},
		PointerModifier:      ModSuper,
		ClickToFocus:         ButtonAny,
	}
}

// Load overlays the YAML file at path on the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("couldn't read config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("couldn't decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.BorderWidth < 0:
		return fmt.Errorf("%w: border_width %d", ErrInvalid, c.BorderWidth)
	case c.InternalBorderWidth < 0 || c.InternalBorderWidth > c.BorderWidth:
		return fmt.Errorf("%w: internal_border_width %d must be between 0 and border_width", ErrInvalid, c.InternalBorderWidth)
	case c.Gaps.Left < 0 || c.Gaps.Right < 0 || c.Gaps.Up < 0 || c.Gaps.Down < 0:
		return fmt.Errorf("%w: negative gap", ErrInvalid)
	case c.GridGap < 0:
		return fmt.Errorf("%w: grid_gap_width %d", ErrInvalid, c.GridGap)
	case c.Groups < 1 || c.Groups > MaxGroups:
		return fmt.Errorf("%w: groups_nr %d must be between 1 and %d", ErrInvalid, c.Groups, MaxGroups)
	case c.PointerModifier&^ModMask != 0:
		return fmt.Errorf("%w: pointer_modifier %#x", ErrInvalid, uint16(c.PointerModifier))
	case !c.CursorPosition.Valid():
		return fmt.Errorf("%w: cursor_position %d", ErrInvalid, c.CursorPosition)
	}
	for i, a := range c.PointerActions {
		if !a.Valid() {
			return fmt.Errorf("%w: pointer action %d: %d", ErrInvalid, i, a)
		}
	}
	return nil
}

// Layout returns the values the placement math needs.
func (c *Config) Layout() layout.Params {
	return layout.Params{Border: c.BorderWidth, Gaps: c.Gaps, GridGap: c.GridGap}
}

// Dir is $XDG_CONFIG_HOME/chefwm, falling back to ~/.config/chefwm.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

func DefaultPath() string   { return filepath.Join(Dir(), FileName) }
func DefaultRCPath() string { return filepath.Join(Dir(), RCName) }
