/*
Nordwm is a Nord themed tiling window manager configuration. The configuration
is Go code: key bindings, groups, layouts, the top bar and floating rules are
literals in config.go, assembled and validated into a single wm.Config.


INSTALLATION

To install nordwm:
	1. Install Go (as per https://go.dev/doc/install or get it from
	   your distribution).
	2. Run "go install github.com/nigeltao/nordwm/nordwm@latest".

The bar glyphs need a Nerd Font, and the bar text uses Hack.


USAGE

	nordwm check       validate the configuration
	nordwm check --x   also check that every bound key is on the keyboard
	nordwm dump -f yaml
	                   print the assembled configuration as json, yaml or toml
	nordwm keys        print a cheat sheet of the key bindings
	nordwm colors      print the palettes
	nordwm run         run the session daemon

The run command is meant to start from an Xsession session. It grabs every
bound key on the root window, runs spawn bindings with /bin/sh, and
advertises the window manager name (LG3D, for Java programs) through
_NET_SUPPORTING_WM_CHECK. Mod4+Control+r re-reads the override file and
regrabs the keys; with --watch that happens whenever the file changes.
Mod4+Control+q quits.

Most bindings use Mod4, typically the 'Windows' key that is between the left
Control and Alt keys. Each group, named "1" to "5" by default, gets three:
	Mod4+N          switch to group N
	Mod4+Shift+N    switch to group N, taking the focused window along
	Mod4+Control+N  send the focused window to group N, staying put
Run "nordwm keys" for the full list.


OVERRIDES

An optional TOML file, $XDG_CONFIG_HOME/nordwm/overrides.toml by default,
changes a few inputs without recompiling:
	mod = "mod1"
	terminal = "kitty"
	groups = "asdfg"
	wallpaper = "~/Pictures/other.jpg"

	[theme]
	border_width = 2
	margin = 4
	border_focus = "bright.blue"
	border_normal = "#3B4252"
Theme entries apply to every layout. Unknown keys are an error.

Without a terminal override, nordwm uses $TERMINAL if it is installed, or else
the first installed of a list of common terminal emulators.


SETTINGS

Process settings come from flags, NORDWM_* environment variables (such as
NORDWM_DISPLAY or NORDWM_OVERRIDES) or $XDG_CONFIG_HOME/nordwm/settings.yaml.
*/
package main
