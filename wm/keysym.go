package wm

import (
	"strconv"

	xp "github.com/BurntSushi/xgb/xproto"
)

// These constants come from /usr/include/X11/keysymdef.h and
// /usr/include/X11/XF86keysym.h.
const (
	xkSpace       = 0x0020
	xkISOLeftTab  = 0xfe20
	xkBackspace   = 0xff08
	xkTab         = 0xff09
	xkReturn      = 0xff0d
	xkEscape      = 0xff1b
	xkHome        = 0xff50
	xkLeft        = 0xff51
	xkUp          = 0xff52
	xkRight       = 0xff53
	xkDown        = 0xff54
	xkPageUp      = 0xff55
	xkPageDown    = 0xff56
	xkEnd         = 0xff57
	xkPrint       = 0xff61
	xkF1          = 0xffbe
	xkShiftL      = 0xffe1
	xkShiftR      = 0xffe2
	xkControlL    = 0xffe3
	xkControlR    = 0xffe4
	xkCapsLock    = 0xffe5
	xkShiftLock   = 0xffe6
	xkMetaL       = 0xffe7
	xkMetaR       = 0xffe8
	xkAltL        = 0xffe9
	xkAltR        = 0xffea
	xkSuperL      = 0xffeb
	xkSuperR      = 0xffec
	xkHyperL      = 0xffed
	xkHyperR      = 0xffee
	xkDelete      = 0xffff
	xkAudioLower  = 0x1008ff11
	xkAudioMute   = 0x1008ff12
	xkAudioRaise  = 0x1008ff13
	xkAudioPlay   = 0x1008ff14
	xkAudioStop   = 0x1008ff15
	xkAudioPrev   = 0x1008ff16
	xkAudioNext   = 0x1008ff17
	xkMonBrightUp = 0x1008ff02
	xkMonBrightDn = 0x1008ff03
)

// namedKeysyms holds the keysym names that are not a single printable
// character. Single printable Latin-1 characters map to their own code point.
var namedKeysyms = map[string]xp.Keysym{
	"space":        xkSpace,
	"ISO_Left_Tab": xkISOLeftTab,
	"BackSpace":    xkBackspace,
	"Tab":          xkTab,
	"Return":       xkReturn,
	"Escape":       xkEscape,
	"Home":         xkHome,
	"Left":         xkLeft,
	"Up":           xkUp,
	"Right":        xkRight,
	"Down":         xkDown,
	"Page_Up":      xkPageUp,
	"Prior":        xkPageUp,
	"Page_Down":    xkPageDown,
	"Next":         xkPageDown,
	"End":          xkEnd,
	"Print":        xkPrint,
	"Delete":       xkDelete,
	"Shift_L":      xkShiftL,
	"Shift_R":      xkShiftR,
	"Control_L":    xkControlL,
	"Control_R":    xkControlR,
	"Caps_Lock":    xkCapsLock,
	"Shift_Lock":   xkShiftLock,
	"Meta_L":       xkMetaL,
	"Meta_R":       xkMetaR,
	"Alt_L":        xkAltL,
	"Alt_R":        xkAltR,
	"Super_L":      xkSuperL,
	"Super_R":      xkSuperR,
	"Hyper_L":      xkHyperL,
	"Hyper_R":      xkHyperR,

	"XF86AudioLowerVolume":  xkAudioLower,
	"XF86AudioMute":         xkAudioMute,
	"XF86AudioRaiseVolume":  xkAudioRaise,
	"XF86AudioPlay":         xkAudioPlay,
	"XF86AudioStop":         xkAudioStop,
	"XF86AudioPrev":         xkAudioPrev,
	"XF86AudioNext":         xkAudioNext,
	"XF86MonBrightnessUp":   xkMonBrightUp,
	"XF86MonBrightnessDown": xkMonBrightDn,
}

func init() {
	for i := 0; i < 12; i++ {
		namedKeysyms["F"+strconv.Itoa(i+1)] = xp.Keysym(xkF1 + i)
	}
}

// LookupKeysym returns the X keysym for a key name such as "Left", "Return",
// "space", "F5" or a single printable character such as "r" or "1".
func LookupKeysym(name string) (xp.Keysym, bool) {
	if k, ok := namedKeysyms[name]; ok {
		return k, true
	}
	if r := []rune(name); len(r) == 1 && r[0] > 0x20 && r[0] < 0x7f {
		c := r[0]
		// Keysyms for letters are the lower case code points. The shift
		// modifier, not the keysym, selects the upper case.
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		return xp.Keysym(c), true
	}
	return 0, false
}

// KeysymName is the inverse of LookupKeysym, used in diagnostics.
func KeysymName(keysym xp.Keysym) string {
	if 0x20 < keysym && keysym < 0x7f {
		return string(rune(keysym))
	}
	for name, k := range namedKeysyms {
		if k == keysym && name != "Prior" && name != "Next" {
			return name
		}
	}
	return "UnknownKeysym"
}
