package wm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the visual parameters shared by layouts. It is a value: every
// layout built from the same Theme renders the same borders and margins, and
// editing the one Theme literal changes them all.
type Theme struct {
	BorderWidth  int
	Margin       int
	BorderFocus  string
	BorderNormal string
}

// Palette is the eight ANSI color slots of a terminal color scheme.
type Palette struct {
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string
}

// PaletteNames lists the slot names in ANSI order.
var PaletteNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Lookup returns the color in the named slot.
func (p Palette) Lookup(name string) (string, bool) {
	switch name {
	case "black":
		return p.Black, true
	case "red":
		return p.Red, true
	case "green":
		return p.Green, true
	case "yellow":
		return p.Yellow, true
	case "blue":
		return p.Blue, true
	case "magenta":
		return p.Magenta, true
	case "cyan":
		return p.Cyan, true
	case "white":
		return p.White, true
	}
	return "", false
}

// Colors is a color scheme: a normal and a bright palette plus loose
// background/foreground colors. BG and FG are the translucent bar colors.
type Colors struct {
	Background string
	Foreground string
	BG         string
	FG         string
	Normal     Palette
	Bright     Palette
}

// Color is a parsed color string.
type Color struct {
	colorful.Color
	Alpha uint8
}

// ParseColor accepts "#rrggbb" or "rrggbb", optionally followed by a
// two-digit alpha, e.g. "#4c566a60" or "00000000". A missing alpha is opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	alpha := uint64(0xff)
	if len(hex) == 8 {
		alpha, err = strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
	}
	return Color{Color: c, Alpha: uint8(alpha)}, nil
}

// RGB returns the color as 24-bit 0xRRGGBB, the form X11 pixel values take
// on a TrueColor visual.
func (c Color) RGB() uint32 {
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
