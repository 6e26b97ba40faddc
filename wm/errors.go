package wm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	// ErrNoKeys indicates an empty key table.
	ErrNoKeys = errors.New("no key bindings")
	// ErrNoGroups indicates an empty group list.
	ErrNoGroups = errors.New("no groups")
	// ErrDuplicateGroup indicates two groups share a name.
	ErrDuplicateGroup = errors.New("duplicate group name")
	// ErrEmptyName indicates a group or binding with an empty name.
	ErrEmptyName = errors.New("empty name")
	// ErrUnknownModifier indicates a modifier name the X server does not know.
	ErrUnknownModifier = errors.New("unknown modifier")
	// ErrIgnoredModifier indicates a binding that needs a modifier key
	// dispatch ignores (Caps Lock or Num Lock), so it can never fire.
	ErrIgnoredModifier = errors.New("modifier is ignored by key dispatch")
	// ErrUnknownKeysym indicates a key name with no keysym.
	ErrUnknownKeysym = errors.New("unknown keysym")
	// ErrUnknownButton indicates a mouse button name other than Button1..Button9.
	ErrUnknownButton = errors.New("unknown mouse button")
	// ErrBadColor indicates a malformed color string.
	ErrBadColor = errors.New("malformed color")
	// ErrNoAction indicates a binding without an action.
	ErrNoAction = errors.New("binding has no action")
	// ErrEmptyCommand indicates a spawn action with an empty command.
	ErrEmptyCommand = errors.New("empty spawn command")
	// ErrUnknownGroup indicates an action that names a group that does not exist.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrNoLayouts indicates an empty layout list.
	ErrNoLayouts = errors.New("no layouts")
	// ErrBadBar indicates a bar with a non-positive size.
	ErrBadBar = errors.New("bar size must be positive")
	// ErrBadPolicy indicates an unknown focus-on-activation policy.
	ErrBadPolicy = errors.New("unknown focus policy")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	ValCatKeys     ValidationCategory = "keys"
	ValCatGroups   ValidationCategory = "groups"
	ValCatLayouts  ValidationCategory = "layouts"
	ValCatScreens  ValidationCategory = "screens"
	ValCatMouse    ValidationCategory = "mouse"
	ValCatFloating ValidationCategory = "floating"
	ValCatFlags    ValidationCategory = "flags"
)

// ValidationError records one problem and where it is.
type ValidationError struct {
	Category ValidationCategory
	Field    string // e.g. "keys[3]" or "screens[0].top.widgets[5].foreground"
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fault aggregates every problem Validate found, so that a configuration is
// either accepted whole or rejected whole.
type Fault struct {
	Errors []*ValidationError
}

func (f *Fault) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration (%d problems)", len(f.Errors))
	for _, e := range f.Errors {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is and errors.As see each underlying problem.
func (f *Fault) Unwrap() []error {
	errs := make([]error, len(f.Errors))
	for i, e := range f.Errors {
		errs[i] = e
	}
	return errs
}
