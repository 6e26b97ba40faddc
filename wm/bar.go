package wm

// Bar is a status bar along one screen edge. Margin is top, right, bottom,
// left in pixels.
type Bar struct {
	Widgets    []Widget
	Size       int
	Margin     [4]int
	Background string
}

// Screen is one physical output. Top is nil for a screen without a bar.
type Screen struct {
	Top           *Bar
	Wallpaper     string
	WallpaperMode string
}

// ActiveWidgets returns the widgets that are not Disabled, in declaration
// order.
func ActiveWidgets(widgets []Widget) []Widget {
	out := make([]Widget, 0, len(widgets))
	for _, w := range widgets {
		if !w.Disabled {
			out = append(out, w)
		}
	}
	return out
}

// Segments splits the bar at its stretch spacers. The runtime lays out each
// segment at its natural width and gives the spacers the remainder, so for a
// bar with two stretch spacers the middle segment floats in the middle.
func (b *Bar) Segments() [][]Widget {
	var segs [][]Widget
	cur := []Widget{}
	for _, w := range b.Widgets {
		if w.Kind == Spacer && w.Length == Stretch {
			segs = append(segs, cur)
			cur = []Widget{}
			continue
		}
		cur = append(cur, w)
	}
	return append(segs, cur)
}
