package wm

import (
	"fmt"
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
)

// Key binds a chord (modifiers plus a keysym name) to an action.
type Key struct {
	Modifiers []Modifier
	Keysym    string
	Action    Action
	Desc      string
}

// Chord is a resolved key combination, comparable so it can key a map.
type Chord struct {
	Mask   uint16
	Keysym xp.Keysym
}

// Chord resolves k's modifiers and keysym name.
func (k Key) Chord() (Chord, error) {
	mask, err := ModMask(k.Modifiers)
	if err != nil {
		return Chord{}, err
	}
	keysym, ok := LookupKeysym(k.Keysym)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownKeysym, k.Keysym)
	}
	return Chord{Mask: mask, Keysym: keysym}, nil
}

// Label renders the chord the way people write it, e.g. "mod4+shift+Left".
func (k Key) Label() string {
	parts := make([]string, 0, len(k.Modifiers)+1)
	for _, m := range k.Modifiers {
		parts = append(parts, string(m))
	}
	return strings.Join(append(parts, k.Keysym), "+")
}

// Index maps each resolvable chord to its binding. When two keys share a
// chord, the later one wins, matching how the runtime overrides on conflict.
// Keys that do not resolve are skipped; Validate reports them.
func Index(keys []Key) map[Chord]Key {
	m := make(map[Chord]Key, len(keys))
	for _, k := range keys {
		c, err := k.Chord()
		if err != nil {
			continue
		}
		m[c] = k
	}
	return m
}

// Conflict records a binding that a later binding with the same chord
// shadows.
type Conflict struct {
	Shadowed Key
	Winner   Key
}

// Conflicts lists every binding shadowed by a later one, in table order.
func Conflicts(keys []Key) []Conflict {
	last := make(map[Chord]int, len(keys))
	chords := make([]*Chord, len(keys))
	for i, k := range keys {
		c, err := k.Chord()
		if err != nil {
			continue
		}
		chords[i] = &c
		last[c] = i
	}
	var out []Conflict
	for i, c := range chords {
		if c == nil {
			continue
		}
		if j := last[*c]; j != i {
			out = append(out, Conflict{Shadowed: keys[i], Winner: keys[j]})
		}
	}
	return out
}

// MouseKind distinguishes drags from clicks.
type MouseKind int

const (
	Drag MouseKind = iota
	Click
)

func (k MouseKind) String() string {
	if k == Click {
		return "click"
	}
	return "drag"
}

// Mouse binds a modified pointer button. For a Drag, Start runs when the
// drag begins and Action runs as the pointer moves.
type Mouse struct {
	Kind      MouseKind
	Modifiers []Modifier
	Button    string
	Action    Action
	Start     Action
}

// ButtonNumber parses names of the form "Button1".."Button9".
func ButtonNumber(name string) (xp.Button, bool) {
	if len(name) != len("Button1") || !strings.HasPrefix(name, "Button") {
		return 0, false
	}
	c := name[len(name)-1]
	if c < '1' || '9' < c {
		return 0, false
	}
	return xp.Button(c - '0'), true
}
