package main

import (
	"errors"
	"testing"
)

func TestGuessTerminal(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		installed []string
		want      string
	}{
		{"env installed", "foot", []string{"foot", "alacritty"}, "foot"},
		{"env missing", "foot", []string{"alacritty"}, "alacritty"},
		{"preference order", "", []string{"xterm", "kitty", "alacritty"}, "alacritty"},
		{"nothing installed", "", nil, "xterm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string {
				if k == "TERMINAL" {
					return tt.env
				}
				return ""
			}
			lookPath := func(name string) (string, error) {
				for _, i := range tt.installed {
					if i == name {
						return "/usr/bin/" + name, nil
					}
				}
				return "", errors.New("not found")
			}
			if got := guessTerminal(getenv, lookPath); got != tt.want {
				t.Errorf("guessTerminal = %q, want %q", got, tt.want)
			}
		})
	}
}
