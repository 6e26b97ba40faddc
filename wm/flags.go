package wm

// FocusPolicy says what happens when a client asks to be activated.
type FocusPolicy string

const (
	FocusSmart  FocusPolicy = "smart"  // Focus if the window is on the current group, else mark urgent.
	FocusAlways FocusPolicy = "focus"  // Always focus.
	FocusUrgent FocusPolicy = "urgent" // Only mark urgent.
	FocusNever  FocusPolicy = "never"  // Ignore.
)

// Valid reports whether p is one of the known policies.
func (p FocusPolicy) Valid() bool {
	switch p {
	case FocusSmart, FocusAlways, FocusUrgent, FocusNever:
		return true
	}
	return false
}

// AppRule sends windows matching Match to Group when they appear.
type AppRule struct {
	Match Match
	Group string
	Float bool
}

// Flags are the runtime-wide behavior switches.
type Flags struct {
	// DGroupsKeyBinder names the dynamic-groups key binder. Empty means
	// none: group keys come from the key table.
	DGroupsKeyBinder string
	DGroupsAppRules  []AppRule

	FollowMouseFocus        bool
	BringFrontClick         bool
	CursorWarp              bool
	AutoFullscreen          bool
	FocusOnWindowActivation FocusPolicy
	ReconfigureScreens      bool

	// AutoMinimize lets windows such as games minimize themselves when they
	// lose focus.
	AutoMinimize bool

	// WMName is the window manager name announced to clients. Java UI
	// toolkits consult a whitelist of non-reparenting WM names, so this is
	// usually a name from that list rather than the truth.
	WMName string
}
