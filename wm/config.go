// Package wm is the vocabulary a tiling window manager runtime reads its
// configuration in: key and mouse bindings, groups, layouts, bars and
// widgets, floating rules and behavior flags.
//
// A configuration is plain data. Build it once at startup, check it with
// Validate, and rebuild it from scratch on restart.
//
// Some of the API is for the runtime that applies a configuration rather
// than for the code that declares one: Floating.ShouldFloat and
// Match.Matches decide whether a new Window floats, Bar.Segments splits a
// bar at its stretch spacers for drawing, and Index maps key presses to
// bindings.
package wm

// Config is the whole configuration object graph.
type Config struct {
	Keys              []Key
	Groups            []Group
	Layouts           []Layout
	Floating          Floating
	Screens           []Screen
	Mouse             []Mouse
	WidgetDefaults    WidgetDefaults
	ExtensionDefaults WidgetDefaults
	Flags             Flags
}

// Group returns the group with the given name.
func (c *Config) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
