package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nigeltao/nordwm/wm"
)

func TestDecodeOverrides(t *testing.T) {
	const input = `
mod = "mod1"
terminal = "kitty"
groups = "asdf"
wallpaper = "~/Pictures/other.jpg"

[theme]
border_width = 2
margin = 0
border_focus = "bright.blue"
border_normal = "#2E3440"
`
	got, err := decodeOverrides(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decodeOverrides: %v", err)
	}
	want := overrides{
		Mod:       "mod1",
		Terminal:  "kitty",
		Groups:    "asdf",
		Wallpaper: "~/Pictures/other.jpg",
		Theme: themeOverrides{
			BorderWidth:  wm.Int(2),
			Margin:       wm.Int(0),
			BorderFocus:  "#81A1C1",
			BorderNormal: "#2E3440",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOverridesErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{name: "unknown key", input: `colour = "red"`, wantMsg: "unknown keys: colour"},
		{name: "unknown theme key", input: "[theme]\nborder = 1", wantMsg: "unknown keys: theme.border"},
		{name: "bad modifier", input: `mod = "super"`, wantErr: wm.ErrUnknownModifier},
		{name: "lock modifier", input: `mod = "lock"`, wantErr: wm.ErrIgnoredModifier},
		{name: "num lock modifier", input: `mod = "mod2"`, wantErr: wm.ErrIgnoredModifier},
		{name: "bad palette", input: "[theme]\nborder_focus = \"dim.blue\"", wantErr: wm.ErrBadColor},
		{name: "bad color name", input: "[theme]\nborder_focus = \"normal.orange\"", wantErr: wm.ErrBadColor},
		{name: "bad hex", input: "[theme]\nborder_normal = \"#12345\"", wantErr: wm.ErrBadColor},
		{name: "wrong type", input: "[theme]\nmargin = \"wide\"", wantMsg: "parse TOML"},
		{name: "syntax", input: `mod = `, wantMsg: "parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeOverrides(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("decodeOverrides succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()

	o, err := loadOverrides(filepath.Join(dir, "missing.toml"))
	if err != nil || o != (overrides{}) {
		t.Errorf("missing file: %+v, %v", o, err)
	}

	path := filepath.Join(dir, "overrides.toml")
	if err := os.WriteFile(path, []byte("terminal = \"st\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err = loadOverrides(path)
	if err != nil {
		t.Fatalf("loadOverrides: %v", err)
	}
	if o.Terminal != "st" {
		t.Errorf("terminal = %q, want st", o.Terminal)
	}

	if err := os.WriteFile(path, []byte("terminl = \"st\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOverrides(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, want it to name %s", err, path)
	}
}

func TestOverridesApply(t *testing.T) {
	base := defaultInputs("alacritty")

	if got := (overrides{}).apply(base); got != base {
		t.Errorf("empty overrides changed inputs: %+v", got)
	}

	o := overrides{Terminal: "kitty", Theme: themeOverrides{BorderFocus: "#81A1C1"}}
	got := o.apply(base)
	if got.terminal != "kitty" || got.mod != defaultMod || got.groups != defaultGroups {
		t.Errorf("apply = %+v", got)
	}

	cfg := mustAssemble(t, got)
	for _, l := range cfg.Layouts {
		if l.Theme.BorderFocus != "#81A1C1" {
			t.Errorf("%v border focus = %s", l.Kind, l.Theme.BorderFocus)
		}
	}
}
