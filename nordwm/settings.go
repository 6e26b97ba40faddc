package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// settings are the process settings, as opposed to the window manager
// configuration. Values come from settings.yaml, NORDWM_* env vars and flags.
type settings struct {
	Overrides string `mapstructure:"overrides"`
	Display   string `mapstructure:"display"`
	Watch     bool   `mapstructure:"watch"`
	Verbose   bool   `mapstructure:"verbose"`
}

// initConfig points viper at the optional settings file and the environment.
func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("settings"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("settings")
		viper.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "nordwm"))
		}
	}

	viper.SetEnvPrefix("NORDWM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			log.Printf("settings: %v", err)
		}
	}
}

// loadSettings reads settings from v, applying defaults for anything not set
// by a settings file, the environment or flags.
func loadSettings(v *viper.Viper) (settings, error) {
	v.SetDefault("overrides", defaultOverridesPath())
	v.SetDefault("display", "")
	v.SetDefault("watch", false)
	v.SetDefault("verbose", false)

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, err
	}
	return s, nil
}
