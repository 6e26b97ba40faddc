package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nigeltao/nordwm/wm"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: "Check assembles and validates the configuration. With --x it also " +
		"checks that the live keyboard mapping can produce every bound key.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := currentConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, summarize(cfg))

		if live, _ := cmd.Flags().GetBool("x"); !live {
			return nil
		}
		if err := connect(s.Display); err != nil {
			return err
		}
		defer xConn.Close()
		if err := loadKeyboardMapping(); err != nil {
			return fmt.Errorf("keyboard mapping: %w", err)
		}
		if n := reportUnreachable(out, cfg.Keys); n > 0 {
			return fmt.Errorf("%d keys cannot be typed on this keyboard", n)
		}
		fmt.Fprintln(out, "✓ every key is on the keyboard")
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("x", false, "also check keys against the X keyboard mapping")
	rootCmd.AddCommand(checkCmd)
}

// summarize is the one-line description check prints for a valid
// configuration.
func summarize(cfg *wm.Config) string {
	widgets := 0
	for _, s := range cfg.Screens {
		if s.Top != nil {
			widgets += len(s.Top.Widgets)
		}
	}
	return fmt.Sprintf("✓ %d keys, %d groups, %d layouts, %d float rules, %d widgets, wmname %s",
		len(cfg.Keys), len(cfg.Groups), len(cfg.Layouts), len(cfg.Floating.Rules),
		widgets, cfg.Flags.WMName)
}

// reportUnreachable writes a line for every key whose keysym no keycode in
// the keysyms table produces, and returns how many there were.
func reportUnreachable(w io.Writer, keys []wm.Key) int {
	n := 0
	for _, k := range keys {
		c, err := k.Chord()
		if err != nil {
			continue
		}
		if keycode, _ := findKeycode(c.Keysym); keycode == 0 {
			fmt.Fprintf(w, "✗ %s (%s): no key produces %s\n", k.Label(), k.Desc, wm.KeysymName(c.Keysym))
			n++
		}
	}
	return n
}
