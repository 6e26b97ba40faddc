package main

import (
	"log"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/nordwm/wm"
)

// lockCombos are the ignored modifier states a chord is grabbed under, so
// that bindings still fire with Caps Lock or Num Lock on.
var lockCombos = []uint16{
	0,
	xp.ModMaskLock,
	xp.ModMask2,
	xp.ModMaskLock | xp.ModMask2,
}

// grabKeys replaces every passive grab on the root window with one per
// binding.
func grabKeys() {
	check(xp.UngrabKeyChecked(xConn, xp.GrabAny, rootXWin, xp.ModMaskAny))
	for chord, k := range bindings {
		keycode, shift := findKeycode(chord.Keysym)
		if keycode == 0 {
			log.Printf("%s: no key produces %s", k.Label(), wm.KeysymName(chord.Keysym))
			continue
		}
		mask := chord.Mask
		if shift {
			mask |= xp.ModMaskShift
		}
		for _, extra := range lockCombos {
			check(xp.GrabKeyChecked(xConn, true, rootXWin, mask|extra, keycode,
				xp.GrabModeAsync, xp.GrabModeAsync))
		}
	}
}

// chordsFor lists the chords a key press could mean, most specific first:
// the unshifted keysym with the full modifier state, then the shifted keysym
// with Shift consumed.
func chordsFor(keycode xp.Keycode, state uint16) []wm.Chord {
	mask := state & 0xff &^ wm.IgnoredMask
	out := []wm.Chord{{Mask: mask, Keysym: keysyms[keycode][0]}}
	if mask&xp.ModMaskShift != 0 {
		if k := keysyms[keycode][1]; k != 0 {
			out = append(out, wm.Chord{Mask: mask &^ xp.ModMaskShift, Keysym: k})
		}
	}
	return out
}

func handleKeyPress(e xp.KeyPressEvent) {
	for _, c := range chordsFor(e.Detail, e.State) {
		if k, ok := bindings[c]; ok {
			do(k)
			return
		}
	}
}

func handleMappingNotify(e xp.MappingNotifyEvent) {
	if e.Request != xp.MappingKeyboard && e.Request != xp.MappingModifier {
		return
	}
	if err := loadKeyboardMapping(); err != nil {
		log.Println(err)
		return
	}
	grabKeys()
}
