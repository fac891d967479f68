// Package main.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/BobdaProgrammer/chefwm/config"
	"github.com/BobdaProgrammer/chefwm/wm"
	"github.com/BobdaProgrammer/chefwm/xconn"
)

var version = "dev"

var (
	configPath string
	rcPath     string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "A reparenting-free X11 window manager driven by chefc",
	Args:          cobra.NoArgs,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		os.Exit(run())
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "configuration file")
	rootCmd.Flags().StringVar(&rcPath, "rc", config.DefaultRCPath(), "executable run once the window manager is up")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log every event and command")
}

func run() int {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	conf, err := config.Load(configPath)
	if err != nil {
		slog.Error("Couldn't load configuration", "path", configPath, "error", err)
		return 1
	}

	c, err := xconn.Open("")
	if err != nil {
		slog.Error("Couldn't connect to X", "error", err)
		return 1
	}

	WM, err := wm.Create(c, conf)
	if err != nil {
		slog.Error("Couldn't initialise window manager", "error", err)
		c.Disconnect()
		return 1
	}
	defer WM.Close()

	startRC(rcPath)
	autostart(conf.Autostart)

	return WM.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("chefwm", "error", err)
		os.Exit(1)
	}
}
