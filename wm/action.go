package wm

import (
	"fmt"
)

// Action is what a key or mouse binding does. Actions are plain values: the
// runtime interprets them when a matching input event arrives.
//
// The concrete types are Spawn, LayoutCmd, WindowCmd, NextLayout, ToScreen,
// ToGroup, Restart and Shutdown. String returns a stable command path such as
// "layout.left" or "group[2].toscreen".
type Action interface {
	fmt.Stringer
	action()
}

// Spawn runs Cmd through the host shell. Cmd is opaque: it is neither parsed
// nor escaped.
type Spawn struct {
	Cmd string
}

// LayoutCmd invokes a named command on the current group's layout, such as
// "left", "shuffle_up", "grow_down", "normalize" or "toggle_split".
type LayoutCmd struct {
	Name string
}

// WindowCmd invokes a named command on the focused window, such as "kill",
// "toggle_fullscreen", "set_position_floating" or "get_position".
type WindowCmd struct {
	Name string
}

// NextLayout cycles the current group to its next layout.
type NextLayout struct{}

// ToScreen shows Group on the current screen.
type ToScreen struct {
	Group string
}

// ToGroup moves the focused window to Group. If Switch is set, the current
// screen follows the window.
type ToGroup struct {
	Group  string
	Switch bool
}

// Restart rebuilds the configuration from scratch and re-applies it.
type Restart struct{}

// Shutdown ends the session.
type Shutdown struct{}

func (Spawn) action()      {}
func (LayoutCmd) action()  {}
func (WindowCmd) action()  {}
func (NextLayout) action() {}
func (ToScreen) action()   {}
func (ToGroup) action()    {}
func (Restart) action()    {}
func (Shutdown) action()   {}

func (a Spawn) String() string     { return "spawn " + a.Cmd }
func (a LayoutCmd) String() string { return "layout." + a.Name }
func (a WindowCmd) String() string { return "window." + a.Name }
func (NextLayout) String() string  { return "next_layout" }
func (a ToScreen) String() string  { return "group[" + a.Group + "].toscreen" }
func (Restart) String() string     { return "restart" }
func (Shutdown) String() string    { return "shutdown" }

func (a ToGroup) String() string {
	if a.Switch {
		return "window.togroup " + a.Group + " switch_group"
	}
	return "window.togroup " + a.Group
}
