package ipc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/geom"
)

// parser fills words from the arguments of a command or config key.
type parser func(words []uint32, args []string) error

type commandSpec struct {
	name  string
	code  Command
	argc  int // -1: variable
	parse parser
	usage string
}

type configSpec struct {
	name  string
	code  ConfigKey
	argc  int
	parse parser
	usage string
}

var commands = []commandSpec{
	{"window_move", WindowMove, 2, parseOffset, "DX DY"},
	{"window_move_absolute", WindowMoveAbsolute, 2, parseOffset, "X Y"},
	{"window_resize", WindowResize, 2, parseOffset, "DW DH"},
	{"window_resize_absolute", WindowResizeAbsolute, 2, parseNaturals, "W H"},
	{"window_maximize", WindowMaximize, 0, nil, ""},
	{"window_unmaximize", WindowUnmaximize, 0, nil, ""},
	{"window_hor_maximize", WindowHorMaximize, 0, nil, ""},
	{"window_ver_maximize", WindowVerMaximize, 0, nil, ""},
	{"window_monocle", WindowMonocle, 0, nil, ""},
	{"window_close", WindowClose, 0, nil, ""},
	{"window_put_in_grid", WindowPutInGrid, 6, parseGrid, "COLS ROWS COL ROW SPANW SPANH"},
	{"window_move_in_grid", WindowMoveInGrid, 2, parseOffset, "DCOL DROW"},
	{"window_resize_in_grid", WindowResizeInGrid, 2, parseOffset, "DSPANW DSPANH"},
	{"window_snap", WindowSnap, 1, parsePosition, "POSITION"},
	{"window_cycle", WindowCycle, 0, nil, ""},
	{"window_rev_cycle", WindowRevCycle, 0, nil, ""},
	{"window_cycle_in_group", WindowCycleInGroup, 0, nil, ""},
	{"window_rev_cycle_in_group", WindowRevCycleInGroup, 0, nil, ""},
	{"window_cardinal_focus", WindowCardinalFocus, 1, parseDirection, "DIRECTION"},
	{"window_focus", WindowFocus, 1, parseHex, "WINDOW_ID"},
	{"window_focus_last", WindowFocusLast, 0, nil, ""},
	{"group_add_window", GroupAddWindow, 1, parseNaturals, "GROUP"},
	{"group_remove_window", GroupRemoveWindow, 0, nil, ""},
	{"group_remove_all_windows", GroupRemoveAllWindows, 1, parseNaturals, "GROUP"},
	{"group_activate", GroupActivate, 1, parseNaturals, "GROUP"},
	{"group_deactivate", GroupDeactivate, 1, parseNaturals, "GROUP"},
	{"group_toggle", GroupToggle, 1, parseNaturals, "GROUP"},
	{"group_activate_specific", GroupActivateSpecific, 1, parseNaturals, "GROUP"},
	{"wm_quit", WMQuit, 1, parseNaturals, "EXIT_CODE"},
	{"wm_config", WMConfig, -1, parseConfig, "KEY VALUE..."},
}

var commandAliases = map[string]string{
	"config": "wm_config",
}

var configKeys = []configSpec{
	{"border_width", ConfigBorderWidth, 1, parseNaturals, "PIXELS"},
	{"color_focused", ConfigColorFocused, 1, parseHex, "RRGGBB"},
	{"color_unfocused", ConfigColorUnfocused, 1, parseHex, "RRGGBB"},
	{"internal_border_width", ConfigInternalBorderWidth, 1, parseNaturals, "PIXELS"},
	{"internal_color_focused", ConfigInternalColorFocused, 1, parseHex, "RRGGBB"},
	{"internal_color_unfocused", ConfigInternalColorUnfocused, 1, parseHex, "RRGGBB"},
	{"gap_width", ConfigGapWidth, 2, parseGap, "left|bottom|top|right|all PIXELS"},
	{"grid_gap_width", ConfigGridGapWidth, 1, parseNaturals, "PIXELS"},
	{"cursor_position", ConfigCursorPosition, 1, parsePosition, "POSITION"},
	{"groups_nr", ConfigGroupsNr, 1, parseNaturals, "COUNT"},
	{"enable_sloppy_focus", ConfigEnableSloppyFocus, 1, parseBool, "BOOL"},
	{"enable_resize_hints", ConfigEnableResizeHints, 1, parseBool, "BOOL"},
	{"sticky_windows", ConfigStickyWindows, 1, parseBool, "BOOL"},
	{"enable_borders", ConfigEnableBorders, 1, parseBool, "BOOL"},
	{"enable_last_window_focusing", ConfigEnableLastWindowFocusing, 1, parseBool, "BOOL"},
	{"apply_settings", ConfigApplySettings, 1, parseBool, "BOOL"},
	{"replay_click_on_focus", ConfigReplayClickOnFocus, 1, parseBool, "BOOL"},
	{"pointer_actions", ConfigPointerActions, 3, parseActions, "LEFT MIDDLE RIGHT"},
	{"pointer_modifier", ConfigPointerModifier, 1, parseModifier, "alt|super|shift|ctrl"},
	{"click_to_focus", ConfigClickToFocus, 1, parseButton, "left|middle|right|any|none"},
}

// Parse turns a command line such as ["window_snap", "topleft"] into the
// words of one command message.
func Parse(args []string) (Words, error) {
	var w Words
	if len(args) == 0 {
		return w, fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	name := args[0]
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}
	spec, ok := lookupCommand(name)
	if !ok {
		return w, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	rest := args[1:]
	if spec.argc >= 0 && len(rest) != spec.argc {
		return w, fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, spec.name, spec.argc, len(rest))
	}
	w[0] = uint32(spec.code)
	if spec.parse != nil {
		if err := spec.parse(w[1:], rest); err != nil {
			return Words{}, err
		}
	}
	return w, nil
}

func lookupCommand(name string) (commandSpec, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return commandSpec{}, false
}

// Usage describes one command or config key for help output.
type Usage struct {
	Name string
	Args string
}

// CommandUsage lists every command in wire order.
func CommandUsage() []Usage {
	out := make([]Usage, 0, len(commands))
	for _, c := range commands {
		out = append(out, Usage{Name: c.name, Args: c.usage})
	}
	return out
}

// ConfigUsage lists every config key in wire order.
func ConfigUsage() []Usage {
	out := make([]Usage, 0, len(configKeys))
	for _, c := range configKeys {
		out = append(out, Usage{Name: c.name, Args: c.usage})
	}
	return out
}

func parseConfig(words []uint32, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: config wants a key", ErrArgCount)
	}
	var spec *configSpec
	for i := range configKeys {
		if configKeys[i].name == args[0] {
			spec = &configKeys[i]
			break
		}
	}
	if spec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
	}
	rest := args[1:]
	if len(rest) != spec.argc {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, spec.name, spec.argc, len(rest))
	}
	words[0] = uint32(spec.code)
	return spec.parse(words[1:], rest)
}

func malformed(arg string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformed, arg, err)
	}
	return fmt.Errorf("%w: %q", ErrMalformed, arg)
}

// parseOffset fills two sign words followed by two magnitudes.
func parseOffset(words []uint32, args []string) error {
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return malformed(a, err)
		}
		words[i] = Plus
		if v < 0 {
			words[i] = Minus
			v = -v
		}
		words[i+2] = uint32(v)
	}
	return nil
}

func parseNaturals(words []uint32, args []string) error {
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return malformed(a, err)
		}
		words[i] = uint32(v)
	}
	return nil
}

func parseHex(words []uint32, args []string) error {
	for i, a := range args {
		s := strings.TrimPrefix(a, "#")
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return malformed(a, err)
		}
		words[i] = uint32(v)
	}
	return nil
}

// ParseBool accepts true, yes, t, y and 1 in any case as true. Everything
// else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "t", "y", "1":
		return true
	}
	return false
}

func parseBool(words []uint32, args []string) error {
	for i, a := range args {
		if ParseBool(a) {
			words[i] = 1
		} else {
			words[i] = 0
		}
	}
	return nil
}

func parsePosition(words []uint32, args []string) error {
	p, err := geom.ParsePosition(args[0])
	if err != nil {
		return malformed(args[0], nil)
	}
	words[0] = uint32(p)
	return nil
}

func parseDirection(words []uint32, args []string) error {
	d, err := geom.ParseDirection(args[0])
	if err != nil {
		return malformed(args[0], nil)
	}
	words[0] = uint32(d)
	return nil
}

func parseActions(words []uint32, args []string) error {
	for i, a := range args {
		v, err := config.ParsePointerAction(a)
		if err != nil {
			return malformed(a, nil)
		}
		words[i] = uint32(v)
	}
	return nil
}

func parseModifier(words []uint32, args []string) error {
	m, err := config.ParseModifier(args[0])
	if err != nil {
		return malformed(args[0], nil)
	}
	words[0] = uint32(m)
	return nil
}

func parseButton(words []uint32, args []string) error {
	b, err := config.ParseClickButton(args[0])
	if err != nil {
		return malformed(args[0], nil)
	}
	words[0] = uint32(b)
	return nil
}

// parseGrid packs six naturals into three words, two 16-bit values each.
func parseGrid(words []uint32, args []string) error {
	if len(args)%2 != 0 {
		return fmt.Errorf("%w: grid values come in pairs", ErrMalformed)
	}
	for i := 0; i < len(args); i += 2 {
		hi, err := strconv.ParseUint(args[i], 10, 16)
		if err != nil {
			return malformed(args[i], err)
		}
		lo, err := strconv.ParseUint(args[i+1], 10, 16)
		if err != nil {
			return malformed(args[i+1], err)
		}
		words[i/2] = Pack16(uint16(hi), uint16(lo))
	}
	return nil
}

func parseGap(words []uint32, args []string) error {
	if err := parsePosition(words[:1], args[:1]); err != nil {
		return err
	}
	switch geom.Position(words[0]) {
	case geom.Left, geom.Bottom, geom.Top, geom.Right, geom.All:
	default:
		return malformed(args[0], nil)
	}
	return parseNaturals(words[1:2], args[1:2])
}
