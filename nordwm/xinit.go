package main

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	keyLo = 8
	keyHi = 255
)

var (
	atomNetSupportingWMCheck xp.Atom
	atomNetWMName            xp.Atom
	atomUTF8String           xp.Atom

	// checkXWin is the window that _NET_SUPPORTING_WM_CHECK points at. It
	// is never mapped.
	checkXWin xp.Window

	keysyms [256][2]xp.Keysym
)

// connect opens the X connection and finds the root window. An empty display
// means $DISPLAY.
func connect(display string) error {
	var err error
	xConn, err = xgb.NewConnDisplay(display)
	if err != nil {
		return fmt.Errorf("connect to X: %w", err)
	}
	xSetup := xp.Setup(xConn)
	if len(xSetup.Roots) != 1 {
		xConn.Close()
		return fmt.Errorf("X setup has unsupported number of roots: %d", len(xSetup.Roots))
	}
	rootXWin = xSetup.Roots[0].Root
	return nil
}

func initAtoms() {
	atomNetSupportingWMCheck = internAtom("_NET_SUPPORTING_WM_CHECK")
	atomNetWMName = internAtom("_NET_WM_NAME")
	atomUTF8String = internAtom("UTF8_STRING")
}

func internAtom(name string) xp.Atom {
	r, err := xp.InternAtom(xConn, false, uint16(len(name)), name).Reply()
	if err != nil {
		log.Fatal(err)
	}
	return r.Atom
}

// initIdentity creates the supporting window that EWMH clients read the
// window manager's name from.
func initIdentity(wmName string) {
	var err error
	checkXWin, err = xp.NewWindowId(xConn)
	if err != nil {
		log.Fatal(err)
	}
	if err := xp.CreateWindowChecked(
		xConn, 0, checkXWin, rootXWin,
		-1, -1, 1, 1, 0,
		xp.WindowClassInputOnly,
		0,
		xp.CwOverrideRedirect,
		[]uint32{
			1,
		},
	).Check(); err != nil {
		log.Fatal(err)
	}

	b := make([]byte, 4)
	xgb.Put32(b, uint32(checkXWin))
	for _, xWin := range []xp.Window{rootXWin, checkXWin} {
		if err := xp.ChangePropertyChecked(xConn, xp.PropModeReplace, xWin,
			atomNetSupportingWMCheck, xp.AtomWindow, 32, 1, b).Check(); err != nil {
			log.Fatal(err)
		}
	}
	setWMName(wmName)
}

func setWMName(wmName string) {
	check(xp.ChangePropertyChecked(xConn, xp.PropModeReplace, checkXWin,
		atomNetWMName, atomUTF8String, 8, uint32(len(wmName)), []byte(wmName)))
}

// loadKeyboardMapping fills the keysyms table with the unshifted and shifted
// keysym of every keycode.
func loadKeyboardMapping() error {
	km, err := xp.GetKeyboardMapping(xConn, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		return err
	}
	n := int(km.KeysymsPerKeycode)
	if n < 2 {
		return fmt.Errorf("too few keysyms per keycode: %d", n)
	}
	keysyms = [256][2]xp.Keysym{}
	for i := keyLo; i <= keyHi; i++ {
		keysyms[i][0] = km.Keysyms[(i-keyLo)*n+0]
		keysyms[i][1] = km.Keysyms[(i-keyLo)*n+1]
	}
	return nil
}

func findKeycode(keysym xp.Keysym) (keycode xp.Keycode, shift bool) {
	for i, k := range keysyms {
		if k[0] == keysym {
			return xp.Keycode(i), false
		}
	}
	for i, k := range keysyms {
		if k[1] == keysym {
			return xp.Keycode(i), true
		}
	}
	return 0, false
}
