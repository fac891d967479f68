package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/mattn/go-shellwords"
)

// startRC runs the rc script if there is one. It usually configures chefwm
// through chefc, so it is started once the window manager owns the display.
func startRC(path string) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		slog.Error("Couldn't stat rc file", "path", path, "error", err)
		return
	}
	if info.Mode()&0o111 == 0 {
		slog.Warn("rc file is not executable", "path", path)
		return
	}
	spawn([]string{path})
}

func autostart(lines []string) {
	for _, line := range lines {
		args, err := splitCommand(line)
		if err != nil {
			slog.Error("Couldn't parse autostart line", "line", line, "error", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		spawn(args)
	}
}

// splitCommand splits a command line the way a shell would, expanding
// environment variables.
func splitCommand(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = true
	return p.Parse(line)
}

// spawn starts args in its own session so it outlives chefwm and does not
// share its signals.
func spawn(args []string) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		slog.Error("Couldn't start program", "program", args[0], "error", err)
		return
	}
	slog.Debug("started", "program", args[0], "pid", cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("program exited", "program", args[0], "error", err)
		}
	}()
}
