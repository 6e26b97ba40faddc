package wm

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	theme := Theme{BorderWidth: 2, Margin: 4, BorderFocus: "#88C0D0", BorderNormal: "#3B4252"}
	groups := GroupsFromString("12")
	return &Config{
		Keys: WithGroupKeys([]Key{
			{Modifiers: []Modifier{Mod4}, Keysym: "Return", Action: Spawn{Cmd: "xterm"}, Desc: "Launch terminal"},
		}, groups, Mod4),
		Groups:   groups,
		Layouts:  []Layout{NewLayout(Columns, theme), NewLayout(Max, theme)},
		Floating: Floating{Rules: FloatRules(Match{Title: "pinentry"})},
		Screens: []Screen{{
			Top: &Bar{
				Size:       24,
				Background: "00000000",
				Widgets: []Widget{
					{Kind: TextBox, Text: "hi", Style: Style{Foreground: "#4c566a60"}},
					{Kind: GroupBox, HighlightColor: []string{"#81A1C1", "#81A1C1"}},
				},
			},
		}},
		Mouse: []Mouse{{Kind: Drag, Modifiers: []Modifier{Mod4}, Button: "Button1",
			Action: WindowCmd{Name: "set_position_floating"}, Start: WindowCmd{Name: "get_position"}}},
		Flags: Flags{FocusOnWindowActivation: FocusSmart, WMName: "LG3D"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_SingleProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantCat ValidationCategory
	}{
		{"no keys", func(c *Config) { c.Keys = nil }, ErrNoKeys, ValCatKeys},
		{"no groups", func(c *Config) { c.Groups = nil; c.Keys = c.Keys[:1] }, ErrNoGroups, ValCatGroups},
		{"duplicate group", func(c *Config) { c.Groups = append(c.Groups, Group{Name: "1"}) }, ErrDuplicateGroup, ValCatGroups},
		{"empty group name", func(c *Config) { c.Groups = append(c.Groups, Group{}) }, ErrEmptyName, ValCatGroups},
		{"unknown modifier", func(c *Config) { c.Keys[0].Modifiers = []Modifier{"hyper"} }, ErrUnknownModifier, ValCatKeys},
		{"lock modifier", func(c *Config) { c.Keys[0].Modifiers = []Modifier{Mod4, Lock} }, ErrIgnoredModifier, ValCatKeys},
		{"num lock modifier", func(c *Config) { c.Keys[0].Modifiers = []Modifier{Mod2} }, ErrIgnoredModifier, ValCatKeys},
		{"mouse lock modifier", func(c *Config) { c.Mouse[0].Modifiers = []Modifier{Lock} }, ErrIgnoredModifier, ValCatMouse},
		{"unknown keysym", func(c *Config) { c.Keys[0].Keysym = "Enter" }, ErrUnknownKeysym, ValCatKeys},
		{"no action", func(c *Config) { c.Keys[0].Action = nil }, ErrNoAction, ValCatKeys},
		{"empty spawn", func(c *Config) { c.Keys[0].Action = Spawn{} }, ErrEmptyCommand, ValCatKeys},
		{"unknown group", func(c *Config) { c.Keys[0].Action = ToScreen{Group: "9"} }, ErrUnknownGroup, ValCatKeys},
		{"no layouts", func(c *Config) { c.Layouts = nil }, ErrNoLayouts, ValCatLayouts},
		{"bad theme color", func(c *Config) { c.Layouts[1].Theme.BorderFocus = "cyan" }, ErrBadColor, ValCatLayouts},
		{"bad widget color", func(c *Config) { c.Screens[0].Top.Widgets[0].Foreground = "#12345" }, ErrBadColor, ValCatScreens},
		{"bad highlight color", func(c *Config) { c.Screens[0].Top.Widgets[1].HighlightColor[0] = "#zzzzzz" }, ErrBadColor, ValCatScreens},
		{"bad bar size", func(c *Config) { c.Screens[0].Top.Size = 0 }, ErrBadBar, ValCatScreens},
		{"bad button", func(c *Config) { c.Mouse[0].Button = "Left" }, ErrUnknownButton, ValCatMouse},
		{"bad policy", func(c *Config) { c.Flags.FocusOnWindowActivation = "sometimes" }, ErrBadPolicy, ValCatFlags},
		{"empty float rule", func(c *Config) { c.Floating.Rules = append(c.Floating.Rules, Match{}) }, ErrEmptyName, ValCatFloating},
		{"app rule group", func(c *Config) {
			c.Flags.DGroupsAppRules = []AppRule{{Match: Match{WMClass: "steam"}, Group: "7"}}
		}, ErrUnknownGroup, ValCatFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := Validate(c)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			var fault *Fault
			if !errors.As(err, &fault) {
				t.Fatalf("Validate() error is %T, want *Fault", err)
			}
			if len(fault.Errors) != 1 {
				t.Fatalf("got %d problems, want 1: %v", len(fault.Errors), err)
			}
			if got := fault.Errors[0].Category; got != tt.wantCat {
				t.Errorf("Category = %q, want %q", got, tt.wantCat)
			}
		})
	}
}

func TestValidate_IgnoredPrimaryModifier(t *testing.T) {
	for _, mod := range []Modifier{Lock, Mod2} {
		t.Run(string(mod), func(t *testing.T) {
			c := validConfig()
			c.Keys = WithGroupKeys(c.Keys[:1], c.Groups, mod)
			err := Validate(c)
			var fault *Fault
			if !errors.As(err, &fault) {
				t.Fatalf("Validate() = %v, want *Fault", err)
			}
			if got, want := len(fault.Errors), 3*len(c.Groups); got != want {
				t.Errorf("got %d problems, want %d: %v", got, want, err)
			}
			if !errors.Is(err, ErrIgnoredModifier) {
				t.Errorf("errors.Is(err, ErrIgnoredModifier) = false: %v", err)
			}
		})
	}
}

func TestValidate_Aggregates(t *testing.T) {
	c := validConfig()
	c.Groups = append(c.Groups, Group{Name: "2"})
	c.Keys[0].Keysym = "NoSuchKey"
	c.Layouts[0].Theme.BorderNormal = "black"

	err := Validate(c)
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("Validate() = %v, want *Fault", err)
	}
	if len(fault.Errors) != 3 {
		t.Fatalf("got %d problems, want 3: %v", len(fault.Errors), err)
	}
	for _, want := range []error{ErrDuplicateGroup, ErrUnknownKeysym, ErrBadColor} {
		if !errors.Is(err, want) {
			t.Errorf("errors.Is(err, %v) = false", want)
		}
	}
	if msg := err.Error(); !strings.Contains(msg, "3 problems") || !strings.Contains(msg, "keys[0]") {
		t.Errorf("Error() = %q", msg)
	}
}
