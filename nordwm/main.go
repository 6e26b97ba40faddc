package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nigeltao/nordwm/wm"
)

var rootCmd = &cobra.Command{
	Use:   "nordwm",
	Short: "Nord tiling window manager configuration",
	Long: "Nordwm assembles a Nord themed tiling window manager configuration " +
		"and runs a session daemon that grabs its key bindings.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("settings", "", "settings file (default $XDG_CONFIG_HOME/nordwm/settings.yaml)")
	pf.String("overrides", "", "override file (default $XDG_CONFIG_HOME/nordwm/overrides.toml)")
	pf.String("display", "", "X display to connect to (default $DISPLAY)")
	pf.BoolP("verbose", "v", false, "verbose output")
	for _, name := range []string{"overrides", "display", "verbose"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
}

// loadConfig assembles the configuration that the current settings, the
// environment and the override file describe. Shadowed key bindings are
// logged, not rejected.
func loadConfig(s settings) (*wm.Config, error) {
	o, err := loadOverrides(s.Overrides)
	if err != nil {
		return nil, err
	}
	in := o.apply(defaultInputs(guessTerminal(os.Getenv, exec.LookPath)))
	cfg, err := assemble(in)
	if err != nil {
		return nil, err
	}
	for _, c := range wm.Conflicts(cfg.Keys) {
		log.Printf("%s: %q is shadowed by %q", c.Winner.Label(), c.Shadowed.Desc, c.Winner.Desc)
	}
	return cfg, nil
}

// currentConfig is loadConfig with the settings viper holds.
func currentConfig() (settings, *wm.Config, error) {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return settings{}, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	cfg, err := loadConfig(s)
	if err != nil {
		return settings{}, nil, err
	}
	return s, cfg, nil
}
