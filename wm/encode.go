package wm

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is a flat, serializable view of a Config. Actions appear as their
// command paths and optional style fields as resolved values.
type Document struct {
	Keys              []KeyDoc    `json:"keys" yaml:"keys" toml:"keys"`
	Groups            []string    `json:"groups" yaml:"groups" toml:"groups"`
	Layouts           []LayoutDoc `json:"layouts" yaml:"layouts" toml:"layouts"`
	FloatRules        []string    `json:"float_rules" yaml:"float_rules" toml:"float_rules"`
	Screens           []ScreenDoc `json:"screens" yaml:"screens" toml:"screens"`
	Mouse             []MouseDoc  `json:"mouse" yaml:"mouse" toml:"mouse"`
	WidgetDefaults    DefaultsDoc `json:"widget_defaults" yaml:"widget_defaults" toml:"widget_defaults"`
	ExtensionDefaults DefaultsDoc `json:"extension_defaults" yaml:"extension_defaults" toml:"extension_defaults"`
	Flags             FlagsDoc    `json:"flags" yaml:"flags" toml:"flags"`
}

type KeyDoc struct {
	Chord  string `json:"chord" yaml:"chord" toml:"chord"`
	Action string `json:"action" yaml:"action" toml:"action"`
	Desc   string `json:"desc" yaml:"desc" toml:"desc"`
}

type LayoutDoc struct {
	Kind         string `json:"kind" yaml:"kind" toml:"kind"`
	BorderWidth  int    `json:"border_width" yaml:"border_width" toml:"border_width"`
	Margin       int    `json:"margin" yaml:"margin" toml:"margin"`
	BorderFocus  string `json:"border_focus" yaml:"border_focus" toml:"border_focus"`
	BorderNormal string `json:"border_normal" yaml:"border_normal" toml:"border_normal"`
	NumStacks    int    `json:"num_stacks,omitempty" yaml:"num_stacks,omitempty" toml:"num_stacks,omitempty"`
}

type ScreenDoc struct {
	Bar           *BarDoc `json:"top,omitempty" yaml:"top,omitempty" toml:"top,omitempty"`
	Wallpaper     string  `json:"wallpaper,omitempty" yaml:"wallpaper,omitempty" toml:"wallpaper,omitempty"`
	WallpaperMode string  `json:"wallpaper_mode,omitempty" yaml:"wallpaper_mode,omitempty" toml:"wallpaper_mode,omitempty"`
}

type BarDoc struct {
	Size       int         `json:"size" yaml:"size" toml:"size"`
	Margin     [4]int      `json:"margin" yaml:"margin" toml:"margin"`
	Background string      `json:"background" yaml:"background" toml:"background"`
	Widgets    []WidgetDoc `json:"widgets" yaml:"widgets" toml:"widgets"`
}

type WidgetDoc struct {
	Kind       string   `json:"kind" yaml:"kind" toml:"kind"`
	Font       string   `json:"font" yaml:"font" toml:"font"`
	FontSize   int      `json:"fontsize" yaml:"fontsize" toml:"fontsize"`
	Padding    int      `json:"padding" yaml:"padding" toml:"padding"`
	Foreground string   `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background string   `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Format     string   `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Scale      float64  `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	Length     string   `json:"length,omitempty" yaml:"length,omitempty" toml:"length,omitempty"`
	Options    []string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

type MouseDoc struct {
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	Chord  string `json:"chord" yaml:"chord" toml:"chord"`
	Action string `json:"action" yaml:"action" toml:"action"`
	Start  string `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
}

type DefaultsDoc struct {
	Font     string `json:"font" yaml:"font" toml:"font"`
	FontSize int    `json:"fontsize" yaml:"fontsize" toml:"fontsize"`
	Padding  int    `json:"padding" yaml:"padding" toml:"padding"`
}

type FlagsDoc struct {
	DGroupsKeyBinder        string   `json:"dgroups_key_binder" yaml:"dgroups_key_binder" toml:"dgroups_key_binder"`
	DGroupsAppRules         []string `json:"dgroups_app_rules" yaml:"dgroups_app_rules" toml:"dgroups_app_rules"`
	FollowMouseFocus        bool     `json:"follow_mouse_focus" yaml:"follow_mouse_focus" toml:"follow_mouse_focus"`
	BringFrontClick         bool     `json:"bring_front_click" yaml:"bring_front_click" toml:"bring_front_click"`
	CursorWarp              bool     `json:"cursor_warp" yaml:"cursor_warp" toml:"cursor_warp"`
	AutoFullscreen          bool     `json:"auto_fullscreen" yaml:"auto_fullscreen" toml:"auto_fullscreen"`
	FocusOnWindowActivation string   `json:"focus_on_window_activation" yaml:"focus_on_window_activation" toml:"focus_on_window_activation"`
	ReconfigureScreens      bool     `json:"reconfigure_screens" yaml:"reconfigure_screens" toml:"reconfigure_screens"`
	AutoMinimize            bool     `json:"auto_minimize" yaml:"auto_minimize" toml:"auto_minimize"`
	WMName                  string   `json:"wmname" yaml:"wmname" toml:"wmname"`
}

// NewDocument flattens c.
func NewDocument(c *Config) *Document {
	d := &Document{
		Keys:              make([]KeyDoc, 0, len(c.Keys)),
		Groups:            make([]string, 0, len(c.Groups)),
		Layouts:           make([]LayoutDoc, 0, len(c.Layouts)),
		FloatRules:        make([]string, 0, len(c.Floating.Rules)),
		Screens:           make([]ScreenDoc, 0, len(c.Screens)),
		Mouse:             make([]MouseDoc, 0, len(c.Mouse)),
		WidgetDefaults:    DefaultsDoc(c.WidgetDefaults),
		ExtensionDefaults: DefaultsDoc(c.ExtensionDefaults),
		Flags: FlagsDoc{
			DGroupsKeyBinder:        c.Flags.DGroupsKeyBinder,
			DGroupsAppRules:         make([]string, 0, len(c.Flags.DGroupsAppRules)),
			FollowMouseFocus:        c.Flags.FollowMouseFocus,
			BringFrontClick:         c.Flags.BringFrontClick,
			CursorWarp:              c.Flags.CursorWarp,
			AutoFullscreen:          c.Flags.AutoFullscreen,
			FocusOnWindowActivation: string(c.Flags.FocusOnWindowActivation),
			ReconfigureScreens:      c.Flags.ReconfigureScreens,
			AutoMinimize:            c.Flags.AutoMinimize,
			WMName:                  c.Flags.WMName,
		},
	}
	for _, k := range c.Keys {
		d.Keys = append(d.Keys, KeyDoc{Chord: k.Label(), Action: actionString(k.Action), Desc: k.Desc})
	}
	for _, g := range c.Groups {
		d.Groups = append(d.Groups, g.Name)
	}
	for _, l := range c.Layouts {
		d.Layouts = append(d.Layouts, LayoutDoc{
			Kind:         l.Kind.String(),
			BorderWidth:  l.Theme.BorderWidth,
			Margin:       l.Theme.Margin,
			BorderFocus:  l.Theme.BorderFocus,
			BorderNormal: l.Theme.BorderNormal,
			NumStacks:    l.NumStacks,
		})
	}
	for _, m := range c.Floating.Rules {
		d.FloatRules = append(d.FloatRules, m.String())
	}
	for _, s := range c.Screens {
		sd := ScreenDoc{Wallpaper: s.Wallpaper, WallpaperMode: s.WallpaperMode}
		if s.Top != nil {
			sd.Bar = newBarDoc(s.Top)
		}
		d.Screens = append(d.Screens, sd)
	}
	for _, m := range c.Mouse {
		md := MouseDoc{
			Kind:   m.Kind.String(),
			Chord:  Key{Modifiers: m.Modifiers, Keysym: m.Button}.Label(),
			Action: actionString(m.Action),
		}
		if m.Start != nil {
			md.Start = m.Start.String()
		}
		d.Mouse = append(d.Mouse, md)
	}
	for _, r := range c.Flags.DGroupsAppRules {
		d.Flags.DGroupsAppRules = append(d.Flags.DGroupsAppRules, r.Match.String()+" -> "+r.Group)
	}
	return d
}

func actionString(a Action) string {
	if a == nil {
		return ""
	}
	return a.String()
}

func newBarDoc(b *Bar) *BarDoc {
	bd := &BarDoc{
		Size:       b.Size,
		Margin:     b.Margin,
		Background: b.Background,
		Widgets:    make([]WidgetDoc, 0, len(b.Widgets)),
	}
	for _, w := range b.Widgets {
		wd := WidgetDoc{
			Kind:       w.Kind.String(),
			Font:       w.Font,
			Foreground: w.Foreground,
			Background: w.Background,
			Text:       w.Text,
			Format:     w.Format,
			Scale:      w.Scale,
		}
		if w.FontSize != nil {
			wd.FontSize = *w.FontSize
		}
		if w.Padding != nil {
			wd.Padding = *w.Padding
		}
		switch {
		case w.Length == Stretch:
			wd.Length = "stretch"
		case w.Length > 0:
			wd.Length = fmt.Sprint(int(w.Length))
		}
		if w.DisableDrag {
			wd.Options = append(wd.Options, "disable_drag")
		}
		if w.HighlightMethod != "" {
			wd.Options = append(wd.Options, "highlight_method="+w.HighlightMethod)
		}
		for _, c := range w.HighlightColor {
			wd.Options = append(wd.Options, "highlight_color="+c)
		}
		if w.ColourHaveUpdates != "" {
			wd.Options = append(wd.Options, "colour_have_updates="+w.ColourHaveUpdates)
		}
		if w.ColourNoUpdates != "" {
			wd.Options = append(wd.Options, "colour_no_updates="+w.ColourNoUpdates)
		}
		if w.NoUpdateString != "" {
			wd.Options = append(wd.Options, "no_update_string="+w.NoUpdateString)
		}
		if w.IconSize != 0 {
			wd.Options = append(wd.Options, fmt.Sprintf("icon_size=%d", w.IconSize))
		}
		bd.Widgets = append(bd.Widgets, wd)
	}
	return bd
}

// Format is an output encoding for Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *Config, f Format) error {
	d := NewDocument(c)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("unknown format %q", f)
}
