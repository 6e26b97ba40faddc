package wm

import (
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

// Modifier names a keyboard modifier as the X server knows it. Mod4 is
// typically the 'Windows' key and Mod1 the Alt key.
type Modifier string

const (
	Shift   Modifier = "shift"
	Lock    Modifier = "lock"
	Control Modifier = "control"
	Mod1    Modifier = "mod1"
	Mod2    Modifier = "mod2"
	Mod3    Modifier = "mod3"
	Mod4    Modifier = "mod4"
	Mod5    Modifier = "mod5"
)

var modMasks = map[Modifier]uint16{
	Shift:   xp.ModMaskShift,
	Lock:    xp.ModMaskLock,
	Control: xp.ModMaskControl,
	Mod1:    xp.ModMask1,
	Mod2:    xp.ModMask2,
	Mod3:    xp.ModMask3,
	Mod4:    xp.ModMask4,
	Mod5:    xp.ModMask5,
}

// IgnoredMask holds the modifiers that key dispatch ignores: Caps Lock and
// Num Lock (conventionally Mod2) should not change what a chord does.
const IgnoredMask = uint16(xp.ModMaskLock | xp.ModMask2)

// Ignored reports whether dispatch strips m from every key press.
func (m Modifier) Ignored() bool {
	return modMasks[m]&IgnoredMask != 0
}

// Valid reports whether m is a modifier name the X server understands.
func (m Modifier) Valid() bool {
	_, ok := modMasks[m]
	return ok
}

// ModMask combines modifiers into an X11 modifier mask.
func ModMask(mods []Modifier) (uint16, error) {
	mask := uint16(0)
	for _, m := range mods {
		bit, ok := modMasks[m]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, m)
		}
		mask |= bit
	}
	return mask, nil
}
