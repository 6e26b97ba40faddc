package main

// terminals is the order in which guessTerminal tries terminal emulators.
var terminals = []string{
	"roxterm",
	"sakura",
	"hyper",
	"alacritty",
	"terminator",
	"termite",
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"lxterminal",
	"mate-terminal",
	"kitty",
	"yakuake",
	"tilda",
	"guake",
	"eterm",
	"st",
	"urxvt",
	"xterm",
	"x-terminal-emulator",
}

// guessTerminal picks the terminal emulator to launch: $TERMINAL if it is
// installed, else the first installed entry of terminals, else "xterm".
func guessTerminal(getenv func(string) string, lookPath func(string) (string, error)) string {
	if t := getenv("TERMINAL"); t != "" {
		if _, err := lookPath(t); err == nil {
			return t
		}
	}
	for _, t := range terminals {
		if _, err := lookPath(t); err == nil {
			return t
		}
	}
	return "xterm"
}
