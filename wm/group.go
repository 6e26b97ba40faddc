package wm

// Group is a named virtual desktop.
type Group struct {
	Name string
}

// GroupsFromString makes one group per character of names, in order.
func GroupsFromString(names string) []Group {
	groups := make([]Group, 0, len(names))
	for _, r := range names {
		groups = append(groups, Group{Name: string(r)})
	}
	return groups
}

// GroupKeys returns the three bindings every group gets: mod+name shows the
// group, mod+shift+name moves the focused window there and follows it, and
// mod+control+name moves the window without following.
func GroupKeys(mod Modifier, g Group) [3]Key {
	return [3]Key{
		{
			Modifiers: []Modifier{mod},
			Keysym:    g.Name,
			Action:    ToScreen{Group: g.Name},
			Desc:      "Switch to group " + g.Name,
		},
		{
			Modifiers: []Modifier{mod, Shift},
			Keysym:    g.Name,
			Action:    ToGroup{Group: g.Name, Switch: true},
			Desc:      "Switch to & move focused window to group " + g.Name,
		},
		{
			Modifiers: []Modifier{mod, Control},
			Keysym:    g.Name,
			Action:    ToGroup{Group: g.Name},
			Desc:      "move focused window to group " + g.Name,
		},
	}
}

// WithGroupKeys returns base followed by the GroupKeys of each group, in
// group order. The result never shares a backing array with base.
func WithGroupKeys(base []Key, groups []Group, mod Modifier) []Key {
	keys := make([]Key, 0, len(base)+3*len(groups))
	keys = append(keys, base...)
	for _, g := range groups {
		gk := GroupKeys(mod, g)
		keys = append(keys, gk[:]...)
	}
	return keys
}
