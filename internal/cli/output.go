package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Device is one row of the devices listing.
type Device struct {
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	ID     string `json:"id" yaml:"id" toml:"id"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty" toml:"detail,omitempty"`
}

// Formats accepted by --format.
var Formats = []string{"table", "json", "yaml", "toml"}

var (
	colorPrimary = lipgloss.Color("12")
	colorSubtle  = lipgloss.Color("8")
	colorInfo    = lipgloss.Color("14")
)

// isTTY reports whether w is an interactive terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render writes devices in format. The table format falls back to plain
// tab-separated columns when w is not a terminal.
func Render(w io.Writer, format string, devices []Device) error {
	switch strings.ToLower(format) {
	case "", "table":
		if isTTY(w) {
			_, err := fmt.Fprintln(w, styledTable(devices))
			return err
		}
		return plainTable(w, devices)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(devices)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(devices); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(struct {
			Devices []Device `toml:"devices"`
		}{devices})
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func rows(devices []Device) [][]string {
	out := make([][]string, len(devices))
	for i, d := range devices {
		out[i] = []string{d.Kind, d.ID, d.Name, d.Detail}
	}
	return out
}

func styledTable(devices []Device) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSubtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorInfo).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("KIND", "ID", "NAME", "DETAIL").
		Rows(rows(devices)...).
		String()
}

func plainTable(w io.Writer, devices []Device) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tID\tNAME\tDETAIL")
	for _, r := range rows(devices) {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}
