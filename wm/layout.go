package wm

// LayoutKind names a tiling strategy the runtime implements.
type LayoutKind int

const (
	Columns LayoutKind = iota
	MonadTall
	MonadWide
	Max
	Stack
	Bsp
	Matrix
	RatioTile
	Tile
	TreeTab
	VerticalTile
	Zoomy
	FloatingLayout
)

var layoutNames = [...]string{
	Columns:        "columns",
	MonadTall:      "monadtall",
	MonadWide:      "monadwide",
	Max:            "max",
	Stack:          "stack",
	Bsp:            "bsp",
	Matrix:         "matrix",
	RatioTile:      "ratiotile",
	Tile:           "tile",
	TreeTab:        "treetab",
	VerticalTile:   "verticaltile",
	Zoomy:          "zoomy",
	FloatingLayout: "floating",
}

func (k LayoutKind) String() string {
	if k < 0 || int(k) >= len(layoutNames) {
		return "unknown"
	}
	return layoutNames[k]
}

// Layout is one entry in the layout cycle. NumStacks only applies to Stack;
// zero means the runtime's default.
type Layout struct {
	Kind      LayoutKind
	Theme     Theme
	NumStacks int
}

// NewLayout builds a layout of the given kind drawn with t.
func NewLayout(kind LayoutKind, t Theme) Layout {
	return Layout{Kind: kind, Theme: t}
}

// NewStack builds a Stack layout with n stacks.
func NewStack(t Theme, n int) Layout {
	return Layout{Kind: Stack, Theme: t, NumStacks: n}
}

// Floating is the layout that holds windows exempt from tiling. Rules decide
// which new windows start floating.
type Floating struct {
	Rules []Match
}
