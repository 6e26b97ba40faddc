package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nigeltao/nordwm/wm"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print a cheat sheet of the key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := currentConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCheatSheet(cfg.Keys, nord))
		return nil
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print swatches of the color palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), renderSwatches(nord))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(colorsCmd)
}

// sections orders the cheat sheet.
var sections = []string{"Windows", "Programs", "Groups", "Session"}

func sectionOf(a wm.Action) string {
	switch a.(type) {
	case wm.Spawn:
		return "Programs"
	case wm.ToScreen, wm.ToGroup:
		return "Groups"
	case wm.Restart, wm.Shutdown:
		return "Session"
	}
	return "Windows"
}

// renderCheatSheet lists keys by section, in table order within a section.
func renderCheatSheet(keys []wm.Key, c wm.Colors) string {
	heading := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(c.Bright.Cyan))).
		Bold(true).
		MarginTop(1)
	desc := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(c.Foreground)))

	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.Label()))
	}
	chord := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(c.Normal.Yellow))).
		Width(width + 2)

	bySection := map[string][]string{}
	for _, k := range keys {
		s := sectionOf(k.Action)
		row := lipgloss.JoinHorizontal(lipgloss.Top, chord.Render(k.Label()), desc.Render(k.Desc))
		bySection[s] = append(bySection[s], row)
	}

	var blocks []string
	for _, s := range sections {
		rows := bySection[s]
		if len(rows) == 0 {
			continue
		}
		blocks = append(blocks, heading.Render(s))
		blocks = append(blocks, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderSwatches shows each palette color on its own background, normal and
// bright side by side, followed by the base colors.
func renderSwatches(c wm.Colors) string {
	swatch := func(label, color string) string {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(hex(color))).
			Foreground(lipgloss.Color(hex(textOn(c, color)))).
			Width(26).
			Padding(0, 1).
			Render(label + " " + color)
	}

	var rows []string
	for _, name := range wm.PaletteNames {
		normal, _ := c.Normal.Lookup(name)
		bright, _ := c.Bright.Lookup(name)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			swatch(name, normal), swatch("bright "+name, bright)))
	}
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Top, swatch("background", c.Background), swatch("foreground", c.Foreground)),
		lipgloss.JoinHorizontal(lipgloss.Top, swatch("bar bg", c.BG), swatch("bar fg", c.FG)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// hex drops the alpha byte, which terminals cannot show, and normalizes s to
// "#rrggbb". Validation has already rejected malformed colors; any that slip
// through render as the empty, no-op color.
func hex(s string) string {
	col, err := wm.ParseColor(s)
	if err != nil {
		return ""
	}
	return col.Hex()
}

// textOn picks the palette's foreground or background, whichever reads
// better on color.
func textOn(c wm.Colors, color string) string {
	col, err := wm.ParseColor(color)
	if err != nil {
		return c.Foreground
	}
	if l, _, _ := col.Lab(); l > 0.6 {
		return c.Background
	}
	return c.Foreground
}
