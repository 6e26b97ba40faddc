package main

import (
	"github.com/nigeltao/nordwm/wm"
)

// defaultMod is the modifier every binding uses. Mod4 is typically the
// 'Windows' key that is between the left Control and Alt keys.
const defaultMod = wm.Mod4

// defaultGroups names the groups, one per character.
const defaultGroups = "12345"

const defaultWallpaper = "~/Pictures/wp.jpg"

// nord is the Nord color scheme. BG and FG are the translucent bar colors.
var nord = wm.Colors{
	Background: "#2E3440",
	Foreground: "#D8DEE9",
	BG:         "#4c566a60",
	FG:         "ffffff",
	Normal: wm.Palette{
		Black:   "#3B4252",
		Red:     "#BF616A",
		Green:   "#A3BE8C",
		Yellow:  "#EBCB8B",
		Blue:    "#81A1C1",
		Magenta: "#B48EAD",
		Cyan:    "#88C0D0",
		White:   "#E5E9F0",
	},
	Bright: wm.Palette{
		Black:   "#4C566A",
		Red:     "#BF616A",
		Green:   "#A3BE8C",
		Yellow:  "#EBCB8B",
		Blue:    "#81A1C1",
		Magenta: "#B48EAD",
		Cyan:    "#8FBCBB",
		White:   "#ECEFF4",
	},
}

// layoutTheme is the one theme every layout is drawn with.
func layoutTheme(c wm.Colors, o themeOverrides) wm.Theme {
	t := wm.Theme{
		BorderWidth:  4,
		Margin:       10,
		BorderFocus:  c.Bright.Cyan,
		BorderNormal: c.Normal.Black,
	}
	if o.BorderWidth != nil {
		t.BorderWidth = *o.BorderWidth
	}
	if o.Margin != nil {
		t.Margin = *o.Margin
	}
	if o.BorderFocus != "" {
		t.BorderFocus = o.BorderFocus
	}
	if o.BorderNormal != "" {
		t.BorderNormal = o.BorderNormal
	}
	return t
}

var widgetDefaults = wm.WidgetDefaults{
	Font:     "Hack",
	FontSize: 14,
	Padding:  3,
}

func key(mods []wm.Modifier, keysym string, a wm.Action, desc string) wm.Key {
	return wm.Key{Modifiers: mods, Keysym: keysym, Action: a, Desc: desc}
}

// baseKeys lists the hand-written bindings. The per-group bindings are
// appended by wm.WithGroupKeys.
func baseKeys(mod wm.Modifier, terminal string) []wm.Key {
	m := []wm.Modifier{mod}
	ms := []wm.Modifier{mod, wm.Shift}
	mc := []wm.Modifier{mod, wm.Control}
	return []wm.Key{
		// Switch between windows.
		key(m, "Left", wm.LayoutCmd{Name: "left"}, "Move focus to left"),
		key(m, "Right", wm.LayoutCmd{Name: "right"}, "Move focus to right"),
		key(m, "Down", wm.LayoutCmd{Name: "down"}, "Move focus down"),
		key(m, "Up", wm.LayoutCmd{Name: "up"}, "Move focus up"),
		key(m, "space", wm.LayoutCmd{Name: "next"}, "Move window focus to other window"),

		// Move windows between left/right columns or up/down in the current
		// stack. Moving past the last column creates a new one.
		key(ms, "Left", wm.LayoutCmd{Name: "shuffle_left"}, "Move window to the left"),
		key(ms, "Right", wm.LayoutCmd{Name: "shuffle_right"}, "Move window to the right"),
		key(ms, "Down", wm.LayoutCmd{Name: "shuffle_down"}, "Move window down"),
		key(ms, "Up", wm.LayoutCmd{Name: "shuffle_up"}, "Move window up"),

		// Grow windows. Growing towards the screen edge shrinks a window
		// that is already on that edge.
		key(mc, "Left", wm.LayoutCmd{Name: "grow_left"}, "Grow window to the left"),
		key(mc, "Right", wm.LayoutCmd{Name: "grow_right"}, "Grow window to the right"),
		key(mc, "Down", wm.LayoutCmd{Name: "grow_down"}, "Grow window down"),
		key(mc, "Up", wm.LayoutCmd{Name: "grow_up"}, "Grow window up"),
		key(m, "n", wm.LayoutCmd{Name: "normalize"}, "Reset all window sizes"),

		// Programs.
		key(m, "Return", wm.Spawn{Cmd: terminal}, "Launch terminal"),
		key(m, "b", wm.Spawn{Cmd: "firefox"}, "Launch firefox"),
		key(m, "e", wm.Spawn{Cmd: "fish -c 'set -e COLUMNS ; set -e LINES; alacritty -e ranger'"}, "Launch file manager"),
		key(nil, "Print", wm.Spawn{Cmd: "fish -c 'maim ~/Pictures/Screenshot/(date +%s).png'"}, "Screenshot of the whole screen"),
		key(m, "Print", wm.Spawn{Cmd: "fish -c 'maim -i (xdotool getactivewindow) ~/Pictures/Screenshot/(date +%s).png'"}, "Screenshot of the focused window"),
		key([]wm.Modifier{wm.Control}, "Print", wm.Spawn{Cmd: "fish -c 'maim | feh - -x & maim -s (date +%s).png'"}, "Screenshot of a selection"),

		key(m, "Tab", wm.NextLayout{}, "Toggle between layouts"),
		key(m, "w", wm.WindowCmd{Name: "kill"}, "Kill focused window"),
		key(m, "m", wm.LayoutCmd{Name: "toggle_split"}, "Toggle split"),

		// Session.
		key(mc, "r", wm.Restart{}, "Restart the window manager"),
		key(ms, "r", wm.Spawn{Cmd: "reboot"}, "Reboot"),
		key(ms, "q", wm.Spawn{Cmd: "poweroff"}, "Power off"),
		key(mc, "q", wm.Shutdown{}, "Quit the window manager"),
		key(m, "r", wm.Spawn{Cmd: "rofi -show drun -font 'hack 14' -icon-theme 'Papirus' -show-icons"}, "Launch an application"),
	}
}

// barWidgets lists the top bar, left to right: layout and groups, then the
// system monitors in the middle, then the clock. The two stretch spacers
// center the middle segment.
func barWidgets(c wm.Colors) []wm.Widget {
	// The caps are Nerd Font half circles that round off each segment.
	capLeft := func(size int) wm.Widget {
		return wm.Widget{Kind: wm.TextBox, Text: "\ue0b6", Style: wm.Style{FontSize: wm.Int(size), Foreground: c.BG, Padding: wm.Int(0)}}
	}
	capRight := func(size int) wm.Widget {
		return wm.Widget{Kind: wm.TextBox, Text: "\ue0b4", Style: wm.Style{FontSize: wm.Int(size), Foreground: c.BG, Padding: wm.Int(0)}}
	}
	sep := func() wm.Widget {
		return wm.Widget{Kind: wm.Sep, Style: wm.Style{Background: c.BG, Foreground: c.FG, Padding: wm.Int(10)}}
	}
	onBG := wm.Style{Background: c.BG}

	return []wm.Widget{
		capLeft(26),
		{Kind: wm.CurrentLayout, Style: onBG},
		{Kind: wm.CurrentLayoutIcon, Style: onBG, Scale: 0.8},
		sep(),
		{
			Kind:            wm.GroupBox,
			Style:           onBG,
			DisableDrag:     true,
			HighlightMethod: "line",
			HighlightColor:  []string{c.Normal.Blue, c.Normal.Blue},
		},
		capRight(26),
		{Kind: wm.Spacer, Length: wm.Stretch},

		capLeft(30),
		{
			Kind:              wm.CheckUpdates,
			Style:             onBG,
			ColourHaveUpdates: c.FG,
			ColourNoUpdates:   c.FG,
			NoUpdateString:    "Updated!",
		},
		sep(),
		{Kind: wm.TextBox, Text: "CPU", Style: onBG},
		{Kind: wm.CPUGraph, Style: onBG},
		sep(),
		{Kind: wm.TextBox, Text: "Memory", Style: onBG},
		{Kind: wm.MemoryGraph, Style: onBG},
		sep(),
		{Kind: wm.TextBox, Text: "Vol:", Style: onBG},
		{Kind: wm.PulseVolume, Style: onBG},
		{Kind: wm.Systray, Style: onBG, IconSize: 30},
		capRight(30),

		{Kind: wm.Spacer, Length: wm.Stretch},
		capLeft(26),
		{Kind: wm.Clock, Format: "%A, %d de %B %H:%M:%S", Style: onBG},
		capRight(26),
	}
}

// floatRules are the windows that float on top of the default rules. Run
// xprop and click a window to see its WM_CLASS and WM_NAME.
var floatRules = []wm.Match{
	{WMClass: "confirmreset"}, // gitk
	{WMClass: "makebranch"},   // gitk
	{WMClass: "maketag"},      // gitk
	{WMClass: "ssh-askpass"},  // ssh-askpass
	{Title: "branchdialog"},   // gitk
	{Title: "pinentry"},       // GPG key password entry
}

// mouseBindings drag floating windows with mod+Button1.
func mouseBindings(mod wm.Modifier) []wm.Mouse {
	return []wm.Mouse{{
		Kind:      wm.Drag,
		Modifiers: []wm.Modifier{mod},
		Button:    "Button1",
		Action:    wm.WindowCmd{Name: "set_position_floating"},
		Start:     wm.WindowCmd{Name: "get_position"},
	}}
}

var behavior = wm.Flags{
	DGroupsKeyBinder:        "",
	DGroupsAppRules:         nil,
	FollowMouseFocus:        true,
	BringFrontClick:         false,
	CursorWarp:              false,
	AutoFullscreen:          false,
	FocusOnWindowActivation: wm.FocusSmart,
	ReconfigureScreens:      true,
	AutoMinimize:            true,

	// Nobody but Java UI toolkits reads this, and they only work with the
	// WMs on their whitelist. LG3D is a 3D non-reparenting WM written in
	// Java that is on it.
	WMName: "LG3D",
}

// inputs is everything assemble reads besides the literals above.
type inputs struct {
	mod       wm.Modifier
	terminal  string
	groups    string
	wallpaper string
	theme     themeOverrides
}

func defaultInputs(terminal string) inputs {
	return inputs{
		mod:       defaultMod,
		terminal:  terminal,
		groups:    defaultGroups,
		wallpaper: defaultWallpaper,
	}
}

// assemble builds and validates the whole configuration. It depends only on
// in: calling it twice with the same inputs gives equal configurations.
func assemble(in inputs) (*wm.Config, error) {
	groups := wm.GroupsFromString(in.groups)
	theme := layoutTheme(nord, in.theme)
	cfg := &wm.Config{
		Keys:   wm.WithGroupKeys(baseKeys(in.mod, in.terminal), groups, in.mod),
		Groups: groups,
		Layouts: []wm.Layout{
			wm.NewLayout(wm.Columns, theme),
			wm.NewLayout(wm.MonadWide, theme),
			wm.NewLayout(wm.Max, theme),
		},
		Floating: wm.Floating{Rules: wm.FloatRules(floatRules...)},
		Screens: []wm.Screen{{
			Top: &wm.Bar{
				Widgets:    wm.ApplyDefaults(wm.ActiveWidgets(barWidgets(nord)), widgetDefaults),
				Size:       30,
				Margin:     [4]int{9, 10, 0, 10},
				Background: "00000000",
			},
			Wallpaper:     in.wallpaper,
			WallpaperMode: "stretch",
		}},
		Mouse:             mouseBindings(in.mod),
		WidgetDefaults:    widgetDefaults,
		ExtensionDefaults: widgetDefaults,
		Flags:             behavior,
	}
	if err := wm.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
