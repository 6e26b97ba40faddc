package wm

// WidgetKind names a bar widget the runtime knows how to draw.
type WidgetKind int

const (
	TextBox WidgetKind = iota
	CurrentLayout
	CurrentLayoutIcon
	Sep
	GroupBox
	Spacer
	CheckUpdates
	CPUGraph
	MemoryGraph
	PulseVolume
	Systray
	Clock
)

var widgetNames = [...]string{
	TextBox:           "textbox",
	CurrentLayout:     "currentlayout",
	CurrentLayoutIcon: "currentlayouticon",
	Sep:               "sep",
	GroupBox:          "groupbox",
	Spacer:            "spacer",
	CheckUpdates:      "checkupdates",
	CPUGraph:          "cpugraph",
	MemoryGraph:       "memorygraph",
	PulseVolume:       "pulsevolume",
	Systray:           "systray",
	Clock:             "clock",
}

func (k WidgetKind) String() string {
	if k < 0 || int(k) >= len(widgetNames) {
		return "unknown"
	}
	return widgetNames[k]
}

// Length is a widget's width in pixels. Stretch widgets share whatever width
// the fixed widgets leave over; zero means the widget sizes itself.
type Length int

const Stretch Length = -1

// Style is the per-widget look. A nil pointer or empty string means "use the
// WidgetDefaults".
type Style struct {
	Font       string
	FontSize   *int
	Padding    *int
	Foreground string
	Background string
}

// Int returns a pointer to v, for the optional Style fields.
func Int(v int) *int {
	return &v
}

// Widget is one bar element. Kind selects which of the kind-specific fields
// the runtime reads; the rest stay zero.
type Widget struct {
	Kind WidgetKind
	Style

	// TextBox.
	Text string

	// Clock. Format is strftime-style.
	Format string

	// CurrentLayoutIcon. Zero means unscaled.
	Scale float64

	// Spacer.
	Length Length

	// GroupBox.
	DisableDrag     bool
	HighlightMethod string
	HighlightColor  []string

	// CheckUpdates.
	ColourHaveUpdates string
	ColourNoUpdates   string
	NoUpdateString    string

	// Systray.
	IconSize int

	// Disabled widgets are kept in the declaration but never reach a bar.
	Disabled bool
}

// WidgetDefaults fill in the Style fields a widget leaves unset.
type WidgetDefaults struct {
	Font     string
	FontSize int
	Padding  int
}

// ApplyDefaults returns a copy of widgets with unset style fields taken from
// d. The input is not modified.
func ApplyDefaults(widgets []Widget, d WidgetDefaults) []Widget {
	out := make([]Widget, len(widgets))
	for i, w := range widgets {
		if w.Font == "" {
			w.Font = d.Font
		}
		if w.FontSize == nil {
			w.FontSize = Int(d.FontSize)
		}
		if w.Padding == nil {
			w.Padding = Int(d.Padding)
		}
		if w.HighlightColor != nil {
			w.HighlightColor = append([]string(nil), w.HighlightColor...)
		}
		out[i] = w
	}
	return out
}

// colors lists the color strings a widget carries, for validation.
func (w Widget) colors() []string {
	var c []string
	for _, s := range []string{w.Foreground, w.Background, w.ColourHaveUpdates, w.ColourNoUpdates} {
		if s != "" {
			c = append(c, s)
		}
	}
	return append(c, w.HighlightColor...)
}
