// Package ipc is the command protocol spoken between chefc and chefwm.
//
// A command is a client message addressed to the root window with the
// CommandAtom type and five 32-bit words: the command code followed by up to
// four argument words, zero padded.
package ipc

import "errors"

const (
	// CommandAtom is the client message type carrying commands.
	CommandAtom = "__CHEFWM_IPC_COMMAND"
	// StatusAtom is the per-window status property.
	StatusAtom = "CHEFWM_STATUS"
	// ActiveGroupsAtom lists the 1-based groups in use on the root window.
	ActiveGroupsAtom = "CHEFWM_ACTIVE_GROUPS"
)

// Words is the payload of one command message.
type Words [5]uint32

// Sign words used by offset arguments.
const (
	Plus  uint32 = 0
	Minus uint32 = 1
)

var (
	ErrUnknownCommand   = errors.New("no such command")
	ErrUnknownConfigKey = errors.New("no such config key")
	ErrArgCount         = errors.New("wrong number of arguments")
	ErrMalformed        = errors.New("malformed input")
)

// Command is a command code. The values are part of the wire format.
type Command uint32

const (
	WindowMove Command = iota
	WindowMoveAbsolute
	WindowResize
	WindowResizeAbsolute
	WindowMaximize
	WindowUnmaximize
	WindowHorMaximize
	WindowVerMaximize
	WindowMonocle
	WindowClose
	WindowPutInGrid
	WindowMoveInGrid
	WindowResizeInGrid
	WindowSnap
	WindowCycle
	WindowRevCycle
	WindowCycleInGroup
	WindowRevCycleInGroup
	WindowCardinalFocus
	WindowFocus
	WindowFocusLast
	GroupAddWindow
	GroupRemoveWindow
	GroupRemoveAllWindows
	GroupActivate
	GroupDeactivate
	GroupToggle
	GroupActivateSpecific
	WMQuit
	WMConfig
	numCommands
)

func (c Command) Valid() bool { return c < numCommands }

func (c Command) String() string {
	for _, s := range commands {
		if s.code == c {
			return s.name
		}
	}
	return "unknown"
}

// ConfigKey is a configuration key code used by WMConfig.
type ConfigKey uint32

const (
	ConfigBorderWidth ConfigKey = iota
	ConfigColorFocused
	ConfigColorUnfocused
	ConfigInternalBorderWidth
	ConfigInternalColorFocused
	ConfigInternalColorUnfocused
	ConfigGapWidth
	ConfigGridGapWidth
	ConfigCursorPosition
	ConfigGroupsNr
	ConfigEnableSloppyFocus
	ConfigEnableResizeHints
	ConfigStickyWindows
	ConfigEnableBorders
	ConfigEnableLastWindowFocusing
	ConfigApplySettings
	ConfigReplayClickOnFocus
	ConfigPointerActions
	ConfigPointerModifier
	ConfigClickToFocus
	numConfigKeys
)

func (k ConfigKey) Valid() bool { return k < numConfigKeys }

func (k ConfigKey) String() string {
	for _, s := range configKeys {
		if s.code == k {
			return s.name
		}
	}
	return "unknown"
}

// Pack16 stores two 16-bit values in one word, hi in the upper half.
func Pack16(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// Unpack16 splits a word built by Pack16.
func Unpack16(w uint32) (hi, lo uint16) {
	return uint16(w >> 16), uint16(w & 0xffff)
}

// Offset decodes a signed pair stored as two sign words followed by two
// magnitudes, starting at args[0].
func Offset(args []uint32) (x, y int) {
	x, y = int(args[2]), int(args[3])
	if args[0] == Minus {
		x = -x
	}
	if args[1] == Minus {
		y = -y
	}
	return x, y
}

// EncodeOffset is the inverse of Offset.
func EncodeOffset(x, y int) [4]uint32 {
	var w [4]uint32
	for i, v := range []int{x, y} {
		if v < 0 {
			w[i] = Minus
			v = -v
		}
		w[i+2] = uint32(v)
	}
	return w
}
