package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/olekukonko/tablewriter"

	"github.com/BobdaProgrammer/chefwm/ipc"
)

type sender interface {
	SendCommand(words ipc.Words) error
}

// parseBatch reads one command per line. Blank lines and lines starting with
// # are skipped. Nothing is sent unless every line parses.
func parseBatch(r io.Reader) ([]ipc.Words, error) {
	var out []ipc.Words
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		words, err := ipc.Parse(args)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, words)
	}
	return out, sc.Err()
}

func sendAll(s sender, batch []ipc.Words) error {
	for i, words := range batch {
		if err := s.SendCommand(words); err != nil {
			return fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	return nil
}

func printStatuses(w io.Writer, statuses []ipc.Status) {
	table := tablewriter.NewWriter(w)
	table.Header("Window", "Geometry", "State", "Group", "Mapped")
	for _, s := range statuses {
		table.Append(
			s.Window,
			fmt.Sprintf("%dx%d+%d+%d", s.Geom.Width, s.Geom.Height, s.Geom.X, s.Geom.Y),
			s.State,
			formatGroup(s.Group),
			strconv.FormatBool(s.Mapped),
		)
	}
	table.Render()
}

func printUsage(w io.Writer, kind string, usage []ipc.Usage) {
	table := tablewriter.NewWriter(w)
	table.Header(kind, "Arguments")
	for _, u := range usage {
		table.Append(u.Name, u.Args)
	}
	table.Render()
}

// formatGroup shows the 0-based group of a status 1-based, the way chefc
// takes it.
func formatGroup(g int) string {
	if g < 0 {
		return "-"
	}
	return strconv.Itoa(g + 1)
}

// formatGroups lists active groups. chefwm publishes a lone 0 when no group
// is active.
func formatGroups(groups []uint32) string {
	var parts []string
	for _, g := range groups {
		if g != 0 {
			parts = append(parts, strconv.FormatUint(uint64(g), 10))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
