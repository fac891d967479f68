// Command chefc sends commands to a running chefwm and reads back the window
// status it publishes.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BobdaProgrammer/chefwm/ipc"
	"github.com/BobdaProgrammer/chefwm/xconn"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	keyColor   = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "chefc COMMAND [ARGS...]",
	Short: "Control chefwm",
	Long: `chefc sends one command to chefwm, for example

  chefc window_move -20 0
  chefc config border_width 3

Run "chefc commands" for the full list.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := ipc.Parse(args)
		if err != nil {
			return err
		}
		c, err := xconn.Open("")
		if err != nil {
			return err
		}
		defer c.Disconnect()
		return c.SendCommand(words)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE|-",
	Short: "Send one command per line of FILE, or of stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		batch, err := parseBatch(r)
		if err != nil {
			return err
		}
		c, err := xconn.Open("")
		if err != nil {
			return err
		}
		defer c.Disconnect()
		return sendAll(c, batch)
	},
}

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every managed window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := xconn.Open("")
		if err != nil {
			return err
		}
		defer c.Disconnect()

		statuses, err := c.Statuses()
		if err != nil {
			return err
		}
		if statusJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, s := range statuses {
				if err := enc.Encode(s); err != nil {
					return err
				}
			}
			return nil
		}
		printStatuses(cmd.OutOrStdout(), statuses)

		groups, err := c.ActiveGroups()
		if err == nil {
			keyColor.Fprint(cmd.OutOrStdout(), "active groups: ")
			fmt.Fprintln(cmd.OutOrStdout(), formatGroups(groups))
		}
		return nil
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every command and config key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printUsage(cmd.OutOrStdout(), "Command", ipc.CommandUsage())
		fmt.Fprintln(cmd.OutOrStdout())
		printUsage(cmd.OutOrStdout(), "Config key", ipc.ConfigUsage())
	},
}

func init() {
	// Offsets such as -20 are arguments, not flags.
	rootCmd.Flags().SetInterspersed(false)

	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print one status document per line")
	rootCmd.AddCommand(batchCmd, statusCmd, commandsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "chefc:", err)
		os.Exit(1)
	}
}
