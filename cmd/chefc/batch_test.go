package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BobdaProgrammer/chefwm/ipc"
)

type recorder struct {
	sent []ipc.Words
	fail int
}

func (r *recorder) SendCommand(words ipc.Words) error {
	if r.fail > 0 && len(r.sent)+1 == r.fail {
		return errors.New("broken pipe")
	}
	r.sent = append(r.sent, words)
	return nil
}

func TestParseBatch(t *testing.T) {
	input := `
# layout
window_move -20 0
  config border_width 3

window_snap "topleft"
`
	batch, err := parseBatch(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, batch, 3)

	assert.Equal(t, ipc.Words{uint32(ipc.WindowMove), ipc.Minus, ipc.Plus, 20, 0}, batch[0])
	assert.Equal(t, uint32(ipc.WMConfig), batch[1][0])
	assert.Equal(t, uint32(ipc.ConfigBorderWidth), batch[1][1])
	assert.Equal(t, uint32(3), batch[1][2])
	assert.Equal(t, uint32(ipc.WindowSnap), batch[2][0])
}

func TestParseBatchReportsLine(t *testing.T) {
	_, err := parseBatch(strings.NewReader("window_maximize\nwindow_fly 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ipc.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")

	_, err = parseBatch(strings.NewReader(`window_snap "top`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestSendAll(t *testing.T) {
	batch := []ipc.Words{{uint32(ipc.WindowMaximize)}, {uint32(ipc.WindowClose)}}

	r := &recorder{}
	require.NoError(t, sendAll(r, batch))
	assert.Equal(t, batch, r.sent)

	r = &recorder{fail: 2}
	err := sendAll(r, batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 2")
	assert.Len(t, r.sent, 1)
}

func TestPrintStatuses(t *testing.T) {
	var buf bytes.Buffer
	printStatuses(&buf, []ipc.Status{
		{
			Window: ipc.WindowID(0x1c00007),
			Geom:   ipc.StatusGeom{X: 10, Y: 20, Width: 640, Height: 480},
			State:  "MONOCLE",
			Mapped: true,
			Group:  2,
		},
		{Window: ipc.WindowID(0x1c0000a), State: "NORMAL", Group: -1},
	})

	out := buf.String()
	assert.Contains(t, out, "0x01c00007")
	assert.Contains(t, out, "640x480+10+20")
	assert.Contains(t, out, "MONOCLE")
	assert.Contains(t, out, "0x01c0000a")
}

func TestFormatGroups(t *testing.T) {
	assert.Equal(t, "3", formatGroup(2))
	assert.Equal(t, "-", formatGroup(-1))
	assert.Equal(t, "1 4", formatGroups([]uint32{1, 4}))
	assert.Equal(t, "none", formatGroups([]uint32{0}))
	assert.Equal(t, "none", formatGroups(nil))
}
