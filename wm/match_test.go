package wm

import "testing"

func TestMatch(t *testing.T) {
	f := Floating{Rules: FloatRules(Match{WMClass: "ssh-askpass"}, Match{Title: "pinentry"})}

	tests := []struct {
		name string
		w    Window
		want bool
	}{
		{"askpass", Window{WMClass: []string{"ssh-askpass", "Ssh-askpass"}}, true},
		{"pinentry", Window{Title: "pinentry"}, true},
		{"dialog type", Window{WMType: "dialog"}, true},
		{"fixed size", Window{WMClass: []string{"pavucontrol"}, FixedSize: true}, true},
		{"fixed ratio", Window{WMClass: []string{"mpv"}, FixedRatio: true}, true},
		{"transient", Window{WMClass: []string{"x"}, Transient: true}, false},
		{"terminal", Window{WMClass: []string{"alacritty", "Alacritty"}, Title: "fish", WMType: "normal"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ShouldFloat(tt.w); got != tt.want {
				t.Errorf("ShouldFloat = %v, want %v", got, tt.want)
			}
		})
	}

	if (Match{}).Matches(Window{}) {
		t.Error("empty Match matched")
	}
}

func TestFloatRulesOrder(t *testing.T) {
	extra := []Match{{WMClass: "confirmreset"}, {Title: "branchdialog"}}
	got := FloatRules(extra...)
	base := DefaultFloatRules()
	if len(got) != len(base)+len(extra) {
		t.Fatalf("len = %d, want %d", len(got), len(base)+len(extra))
	}
	for i, m := range base {
		if got[i] != m {
			t.Errorf("rule %d = %v, want %v", i, got[i], m)
		}
	}
	for i, m := range extra {
		if got[len(base)+i] != m {
			t.Errorf("rule %d = %v, want %v", len(base)+i, got[len(base)+i], m)
		}
	}

	got[0] = Match{Title: "changed"}
	if DefaultFloatRules()[0].Title != "" {
		t.Error("DefaultFloatRules shares storage")
	}
}
