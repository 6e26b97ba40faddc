package wm

import "strings"

// Match is a window predicate. Every non-zero field must match; a Match with
// no fields set matches nothing.
type Match struct {
	WMClass    string
	Title      string
	WMType     string
	Transient  bool
	FixedSize  bool
	FixedRatio bool
}

// Window is what a Match is evaluated against.
type Window struct {
	WMClass   []string // Instance and class, from WM_CLASS.
	Title     string
	WMType    string
	Transient bool // Whether WM_TRANSIENT_FOR is set.

	// From WM_NORMAL_HINTS: the minimum and maximum size are equal, or the
	// minimum and maximum aspect ratio are.
	FixedSize  bool
	FixedRatio bool
}

// Matches reports whether w satisfies m.
func (m Match) Matches(w Window) bool {
	if m == (Match{}) {
		return false
	}
	if m.WMClass != "" && !contains(w.WMClass, m.WMClass) {
		return false
	}
	if m.Title != "" && m.Title != w.Title {
		return false
	}
	if m.WMType != "" && m.WMType != w.WMType {
		return false
	}
	if m.Transient && !w.Transient {
		return false
	}
	if m.FixedSize && !w.FixedSize {
		return false
	}
	if m.FixedRatio && !w.FixedRatio {
		return false
	}
	return true
}

func (m Match) String() string {
	var parts []string
	if m.WMClass != "" {
		parts = append(parts, "wm_class="+m.WMClass)
	}
	if m.Title != "" {
		parts = append(parts, "title="+m.Title)
	}
	if m.WMType != "" {
		parts = append(parts, "wm_type="+m.WMType)
	}
	if m.Transient {
		parts = append(parts, "transient")
	}
	if m.FixedSize {
		parts = append(parts, "fixed_size")
	}
	if m.FixedRatio {
		parts = append(parts, "fixed_ratio")
	}
	return strings.Join(parts, " ")
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// DefaultFloatRules returns the runtime's base floating rules: dialog-like
// window types, the well known dialog classes, and windows whose size or
// aspect ratio cannot change. Each call returns a fresh slice.
func DefaultFloatRules() []Match {
	return []Match{
		{WMType: "utility"},
		{WMType: "notification"},
		{WMType: "toolbar"},
		{WMType: "splash"},
		{WMType: "dialog"},
		{WMClass: "file_progress"},
		{WMClass: "confirm"},
		{WMClass: "dialog"},
		{WMClass: "download"},
		{WMClass: "error"},
		{WMClass: "notification"},
		{WMClass: "splash"},
		{WMClass: "toolbar"},
		{FixedSize: true},
		{FixedRatio: true},
	}
}

// FloatRules returns DefaultFloatRules followed by extra, in order.
func FloatRules(extra ...Match) []Match {
	return append(DefaultFloatRules(), extra...)
}

// ShouldFloat reports whether any rule matches w.
func (f Floating) ShouldFloat(w Window) bool {
	for _, m := range f.Rules {
		if m.Matches(w) {
			return true
		}
	}
	return false
}
