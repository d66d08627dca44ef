package tui

import (
	"os"
	"strings"
)

// trueColorEnv lists variables set by emulators known to support 24-bit color.
var trueColorEnv = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",  // Kitty
	"KONSOLE_VERSION",  // Konsole
	"VTE_VERSION",      // GNOME Terminal, Tilix
	"WEZTERM_PANE",     // WezTerm
}

// DetectCapabilities determines terminal capabilities from environment
// variables. It returns conservative defaults when nothing is known.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:    Color16,
		Unicode:   true,
		AltScreen: true,
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		caps.Colors = ColorNone
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" {
		return Capabilities{}
	}

	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	trueColor := colorterm == "truecolor" || colorterm == "24bit" || strings.Contains(term, "truecolor")
	for _, key := range trueColorEnv {
		if os.Getenv(key) != "" {
			trueColor = true
			caps.SyncUpdate = true
		}
	}

	if caps.Colors == ColorNone {
		return caps
	}
	switch {
	case trueColor:
		caps.Colors = ColorTrue
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}

// EffectiveColor returns the closest color the terminal can show.
func (c Capabilities) EffectiveColor(color Color) Color {
	switch {
	case color.IsDefault():
		return color
	case c.Colors == ColorNone:
		return DefaultColor()
	case c.Colors == Color16:
		return color.ToBasic()
	case c.Colors == Color256 && color.Type() == ColorRGB:
		return color.ToANSI()
	}
	return color
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	if c.AltScreen {
		parts = append(parts, "altscreen")
	}
	if c.SyncUpdate {
		parts = append(parts, "sync")
	}

	return strings.Join(parts, ", ")
}
