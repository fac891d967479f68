package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	t.Setenv("CHEFWM_TEST_TERM", "xterm")

	tests := []struct {
		line string
		want []string
	}{
		{"picom -b", []string{"picom", "-b"}},
		{`feh --bg-fill "/home/me/my wallpaper.png"`, []string{"feh", "--bg-fill", "/home/me/my wallpaper.png"}},
		{"$CHEFWM_TEST_TERM -e top", []string{"xterm", "-e", "top"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCommandEmpty(t *testing.T) {
	got, err := splitCommand("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplitCommandUnterminatedQuote(t *testing.T) {
	_, err := splitCommand(`sh -c "echo`)
	assert.Error(t, err)
}

func TestStartRCSkipsMissingAndNonExecutable(t *testing.T) {
	dir := t.TempDir()
	startRC(filepath.Join(dir, "missing"))

	rc := filepath.Join(dir, "chefwmrc")
	require.NoError(t, os.WriteFile(rc, []byte("#!/bin/sh\n"), 0o644))
	startRC(rc)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpawnLogsExitStatus(t *testing.T) {
	var logs syncBuffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rc := filepath.Join(t.TempDir(), "chefwmrc")
	require.NoError(t, os.WriteFile(rc, []byte("#!/bin/sh\nexit 3\n"), 0o755))
	startRC(rc)

	assert.Eventually(t, func() bool {
		out := logs.String()
		return strings.Contains(out, "program exited") && strings.Contains(out, "exit status 3")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, logs.String(), rc)
}
