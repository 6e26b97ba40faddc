package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nigeltao/nordwm/wm"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the assembled configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		f := wm.Format(format)
		if !slices.Contains(wm.Formats, f) {
			return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
		}
		_, cfg, err := currentConfig()
		if err != nil {
			return err
		}
		return wm.Encode(cmd.OutOrStdout(), cfg, f)
	},
}

func init() {
	dumpCmd.Flags().StringP("format", "f", string(wm.FormatJSON), "output format: json, yaml or toml")
	rootCmd.AddCommand(dumpCmd)
}
