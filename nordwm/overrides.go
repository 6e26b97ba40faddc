package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nigeltao/nordwm/wm"
)

// overrides is the optional TOML file that adjusts the compiled-in
// configuration without recompiling. For example:
//
//	mod = "mod1"
//	terminal = "kitty"
//	groups = "asdf"
//
//	[theme]
//	margin = 4
//	border_focus = "bright.blue"
type overrides struct {
	Mod       string         `toml:"mod"`
	Terminal  string         `toml:"terminal"`
	Groups    string         `toml:"groups"`
	Wallpaper string         `toml:"wallpaper"`
	Theme     themeOverrides `toml:"theme"`
}

// themeOverrides replaces entries of the layout theme. Colors are either hex
// or a palette reference such as "normal.black" or "bright.cyan".
type themeOverrides struct {
	BorderWidth  *int   `toml:"border_width"`
	Margin       *int   `toml:"margin"`
	BorderFocus  string `toml:"border_focus"`
	BorderNormal string `toml:"border_normal"`
}

// defaultOverridesPath is $XDG_CONFIG_HOME/nordwm/overrides.toml.
func defaultOverridesPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nordwm", "overrides.toml")
}

// loadOverrides reads the overrides file. A missing file means no overrides.
func loadOverrides(path string) (overrides, error) {
	if path == "" {
		return overrides{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides{}, nil
		}
		return overrides{}, err
	}
	defer f.Close()
	o, err := decodeOverrides(f)
	if err != nil {
		return overrides{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

func decodeOverrides(r io.Reader) (overrides, error) {
	var o overrides
	md, err := toml.NewDecoder(r).Decode(&o)
	if err != nil {
		return overrides{}, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return overrides{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if o.Mod != "" {
		switch m := wm.Modifier(o.Mod); {
		case !m.Valid():
			return overrides{}, fmt.Errorf("mod: %w: %q", wm.ErrUnknownModifier, o.Mod)
		case m.Ignored():
			return overrides{}, fmt.Errorf("mod: %w: %q", wm.ErrIgnoredModifier, o.Mod)
		}
	}
	for _, c := range []*string{&o.Theme.BorderFocus, &o.Theme.BorderNormal} {
		if *c == "" {
			continue
		}
		resolved, err := resolveColor(nord, *c)
		if err != nil {
			return overrides{}, fmt.Errorf("theme: %w", err)
		}
		*c = resolved
	}
	return o, nil
}

// resolveColor turns a palette reference into its hex value. Anything else
// must already be a color.
func resolveColor(c wm.Colors, s string) (string, error) {
	if set, name, ok := strings.Cut(s, "."); ok {
		var p wm.Palette
		switch set {
		case "normal":
			p = c.Normal
		case "bright":
			p = c.Bright
		default:
			return "", fmt.Errorf("%w: %q", wm.ErrBadColor, s)
		}
		v, ok := p.Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", wm.ErrBadColor, s)
		}
		return v, nil
	}
	if _, err := wm.ParseColor(s); err != nil {
		return "", err
	}
	return s, nil
}

// apply returns in with every set override replacing the matching input.
func (o overrides) apply(in inputs) inputs {
	if o.Mod != "" {
		in.mod = wm.Modifier(o.Mod)
	}
	if o.Terminal != "" {
		in.terminal = o.Terminal
	}
	if o.Groups != "" {
		in.groups = o.Groups
	}
	if o.Wallpaper != "" {
		in.wallpaper = o.Wallpaper
	}
	in.theme = o.Theme
	return in
}
