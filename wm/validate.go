package wm

import (
	"fmt"
)

type validator struct {
	errs []*ValidationError
}

func (v *validator) add(cat ValidationCategory, field string, err error) {
	v.errs = append(v.errs, &ValidationError{Category: cat, Field: field, Err: err})
}

func (v *validator) color(cat ValidationCategory, field, s string) {
	if _, err := ParseColor(s); err != nil {
		v.add(cat, field, err)
	}
}

// Validate checks the whole configuration and returns nil or a *Fault
// listing every problem found.
func Validate(c *Config) error {
	v := &validator{}
	v.groups(c.Groups)
	v.keys(c.Keys, c)
	v.layouts(c.Layouts)
	v.floating(c.Floating)
	v.screens(c.Screens)
	v.mouse(c.Mouse)
	if !c.Flags.FocusOnWindowActivation.Valid() {
		v.add(ValCatFlags, "flags.focus_on_window_activation",
			fmt.Errorf("%w: %q", ErrBadPolicy, c.Flags.FocusOnWindowActivation))
	}
	for i, r := range c.Flags.DGroupsAppRules {
		if _, ok := c.Group(r.Group); !ok {
			v.add(ValCatFlags, fmt.Sprintf("flags.dgroups_app_rules[%d]", i),
				fmt.Errorf("%w: %q", ErrUnknownGroup, r.Group))
		}
	}
	if len(v.errs) == 0 {
		return nil
	}
	return &Fault{Errors: v.errs}
}

func (v *validator) groups(groups []Group) {
	if len(groups) == 0 {
		v.add(ValCatGroups, "groups", ErrNoGroups)
	}
	seen := make(map[string]bool, len(groups))
	for i, g := range groups {
		field := fmt.Sprintf("groups[%d]", i)
		if g.Name == "" {
			v.add(ValCatGroups, field, ErrEmptyName)
			continue
		}
		if seen[g.Name] {
			v.add(ValCatGroups, field, fmt.Errorf("%w: %q", ErrDuplicateGroup, g.Name))
		}
		seen[g.Name] = true
	}
}

func (v *validator) keys(keys []Key, c *Config) {
	if len(keys) == 0 {
		v.add(ValCatKeys, "keys", ErrNoKeys)
	}
	for i, k := range keys {
		field := fmt.Sprintf("keys[%d]", i)
		v.modifiers(ValCatKeys, field, k.Modifiers)
		if _, ok := LookupKeysym(k.Keysym); !ok {
			v.add(ValCatKeys, field, fmt.Errorf("%w: %q", ErrUnknownKeysym, k.Keysym))
		}
		v.action(ValCatKeys, field, k.Action, c)
	}
}

func (v *validator) modifiers(cat ValidationCategory, field string, mods []Modifier) {
	mask, err := ModMask(mods)
	if err != nil {
		v.add(cat, field, err)
		return
	}
	if mask&IgnoredMask != 0 {
		v.add(cat, field, fmt.Errorf("%w: %v", ErrIgnoredModifier, mods))
	}
}

func (v *validator) action(cat ValidationCategory, field string, a Action, c *Config) {
	switch a := a.(type) {
	case nil:
		v.add(cat, field, ErrNoAction)
	case Spawn:
		if a.Cmd == "" {
			v.add(cat, field, ErrEmptyCommand)
		}
	case ToScreen:
		if _, ok := c.Group(a.Group); !ok {
			v.add(cat, field, fmt.Errorf("%w: %q", ErrUnknownGroup, a.Group))
		}
	case ToGroup:
		if _, ok := c.Group(a.Group); !ok {
			v.add(cat, field, fmt.Errorf("%w: %q", ErrUnknownGroup, a.Group))
		}
	case LayoutCmd:
		if a.Name == "" {
			v.add(cat, field, ErrEmptyName)
		}
	case WindowCmd:
		if a.Name == "" {
			v.add(cat, field, ErrEmptyName)
		}
	}
}

func (v *validator) theme(cat ValidationCategory, field string, t Theme) {
	v.color(cat, field+".border_focus", t.BorderFocus)
	v.color(cat, field+".border_normal", t.BorderNormal)
}

func (v *validator) layouts(layouts []Layout) {
	if len(layouts) == 0 {
		v.add(ValCatLayouts, "layouts", ErrNoLayouts)
	}
	for i, l := range layouts {
		v.theme(ValCatLayouts, fmt.Sprintf("layouts[%d]", i), l.Theme)
	}
}

func (v *validator) floating(f Floating) {
	for i, m := range f.Rules {
		if m == (Match{}) {
			v.add(ValCatFloating, fmt.Sprintf("floating.rules[%d]", i), ErrEmptyName)
		}
	}
}

func (v *validator) screens(screens []Screen) {
	for i, s := range screens {
		if s.Top == nil {
			continue
		}
		field := fmt.Sprintf("screens[%d].top", i)
		if s.Top.Size <= 0 {
			v.add(ValCatScreens, field, ErrBadBar)
		}
		if s.Top.Background != "" {
			v.color(ValCatScreens, field+".background", s.Top.Background)
		}
		for j, w := range s.Top.Widgets {
			for _, c := range w.colors() {
				v.color(ValCatScreens, fmt.Sprintf("%s.widgets[%d]", field, j), c)
			}
		}
	}
}

func (v *validator) mouse(mouse []Mouse) {
	for i, m := range mouse {
		field := fmt.Sprintf("mouse[%d]", i)
		v.modifiers(ValCatMouse, field, m.Modifiers)
		if _, ok := ButtonNumber(m.Button); !ok {
			v.add(ValCatMouse, field, fmt.Errorf("%w: %q", ErrUnknownButton, m.Button))
		}
		if m.Action == nil {
			v.add(ValCatMouse, field, ErrNoAction)
		}
	}
}
