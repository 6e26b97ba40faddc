package wm

import (
	"errors"
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
)

func TestLookupKeysym(t *testing.T) {
	tests := []struct {
		name string
		want xp.Keysym
		ok   bool
	}{
		{"Left", 0xff51, true},
		{"Return", 0xff0d, true},
		{"Print", 0xff61, true},
		{"space", 0x20, true},
		{"Tab", 0xff09, true},
		{"F1", 0xffbe, true},
		{"F12", 0xffc9, true},
		{"r", 'r', true},
		{"R", 'r', true},
		{"1", '1', true},
		{"XF86AudioMute", 0x1008ff12, true},
		{"", 0, false},
		{"NoSuchKey", 0, false},
		{" ", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupKeysym(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("LookupKeysym(%q) = %#x, %v; want %#x, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeysymName(t *testing.T) {
	for _, name := range []string{"Left", "Return", "space", "Print", "F5", "q", "5"} {
		k, ok := LookupKeysym(name)
		if !ok {
			t.Fatalf("LookupKeysym(%q) failed", name)
		}
		if got := KeysymName(k); got != name {
			t.Errorf("KeysymName(%#x) = %q, want %q", k, got, name)
		}
	}
}

func TestModMask(t *testing.T) {
	mask, err := ModMask([]Modifier{Mod4, Shift})
	if err != nil {
		t.Fatalf("ModMask: %v", err)
	}
	if want := uint16(xp.ModMask4 | xp.ModMaskShift); mask != want {
		t.Errorf("mask = %#x, want %#x", mask, want)
	}

	if _, err := ModMask([]Modifier{"super"}); !errors.Is(err, ErrUnknownModifier) {
		t.Errorf("ModMask(super) err = %v, want ErrUnknownModifier", err)
	}
}

func TestKeyLabel(t *testing.T) {
	k := Key{Modifiers: []Modifier{Mod4, Control}, Keysym: "Up"}
	if got, want := k.Label(), "mod4+control+Up"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if got, want := (Key{Keysym: "Print"}).Label(), "Print"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestIndexAndConflicts(t *testing.T) {
	keys := []Key{
		{Modifiers: []Modifier{Mod4}, Keysym: "m", Action: WindowCmd{Name: "toggle_fullscreen"}, Desc: "first"},
		{Modifiers: []Modifier{Mod4}, Keysym: "n", Action: LayoutCmd{Name: "normalize"}, Desc: "other"},
		{Modifiers: []Modifier{Mod4}, Keysym: "m", Action: LayoutCmd{Name: "toggle_split"}, Desc: "second"},
		{Modifiers: []Modifier{"bogus"}, Keysym: "m", Desc: "unresolvable"},
	}

	idx := Index(keys)
	if len(idx) != 2 {
		t.Fatalf("len(Index) = %d, want 2", len(idx))
	}
	c, err := keys[0].Chord()
	if err != nil {
		t.Fatal(err)
	}
	if got := idx[c].Desc; got != "second" {
		t.Errorf("winner = %q, want %q", got, "second")
	}

	conflicts := Conflicts(keys)
	if len(conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(conflicts))
	}
	if conflicts[0].Shadowed.Desc != "first" || conflicts[0].Winner.Desc != "second" {
		t.Errorf("conflict = %q shadowed by %q", conflicts[0].Shadowed.Desc, conflicts[0].Winner.Desc)
	}
}

func TestButtonNumber(t *testing.T) {
	tests := []struct {
		in   string
		want xp.Button
		ok   bool
	}{
		{"Button1", 1, true},
		{"Button3", 3, true},
		{"Button0", 0, false},
		{"Button10", 0, false},
		{"Mouse1", 0, false},
	}
	for _, tt := range tests {
		got, ok := ButtonNumber(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ButtonNumber(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Spawn{Cmd: "firefox"}, "spawn firefox"},
		{LayoutCmd{Name: "shuffle_left"}, "layout.shuffle_left"},
		{WindowCmd{Name: "kill"}, "window.kill"},
		{NextLayout{}, "next_layout"},
		{ToScreen{Group: "2"}, "group[2].toscreen"},
		{ToGroup{Group: "2", Switch: true}, "window.togroup 2 switch_group"},
		{ToGroup{Group: "2"}, "window.togroup 2"},
		{Restart{}, "restart"},
		{Shutdown{}, "shutdown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%T.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
